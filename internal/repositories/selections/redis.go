package selections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

// DefaultTTL is how long an untouched session is kept
const DefaultTTL = 24 * time.Hour

// Data is the stored form of a session
type Data struct {
	ID        string                `json:"id"`
	OwnerID   string                `json:"owner_id"`
	Variant   string                `json:"variant"`
	Selection enhancement.Selection `json:"selection"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration // default: DefaultTTL
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = RealTimeProvider{}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: tp,
		ttl:          ttl,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("selection:%s", id)
}

func (r *redisRepo) ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:selections", ownerID)
}

// Create stores a new session
func (r *redisRepo) Create(ctx context.Context, session *enhancement.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(session.ID)).Result()
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to check session existence")
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("session with ID '%s' already exists", session.ID).
			WithMeta("session_id", session.ID)
	}

	now := r.timeProvider.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	if err := r.set(ctx, session); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to create session")
	}

	return nil
}

// Get retrieves a session by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*enhancement.Session, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(id)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get session from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to unmarshal session data")
	}

	return toSession(&data), nil
}

// Update replaces an existing session and resets its TTL
func (r *redisRepo) Update(ctx context.Context, session *enhancement.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}

	existing, err := r.Get(ctx, session.ID)
	if err != nil {
		return err
	}

	session.CreatedAt = existing.CreatedAt
	session.UpdatedAt = r.timeProvider.Now()

	if err := r.set(ctx, session); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to update session")
	}

	return nil
}

// Delete removes a session and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	session, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerKey(session.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to delete session from Redis")
	}

	return nil
}

// ListByOwner returns the live sessions of an owner, oldest first. Index
// entries whose session has expired are dropped.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*enhancement.Session, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get owner sessions from Redis")
	}

	found := make([]*enhancement.Session, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			session, err := r.Get(gctx, id)
			if err != nil {
				if apperr.IsNotFound(err) {
					return nil
				}
				return apperr.Wrapf(err, "failed to get session %s", id)
			}
			found[i] = session
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sessions []*enhancement.Session
	var stale []interface{}
	for i, session := range found {
		if session == nil {
			stale = append(stale, ids[i])
			continue
		}
		sessions = append(sessions, session)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, r.ownerKey(ownerID), stale...).Err(); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to prune owner sessions")
		}
	}

	sortSessions(sessions)
	return sessions, nil
}

func (r *redisRepo) set(ctx context.Context, session *enhancement.Session) error {
	jsonData, err := json.Marshal(toSessionData(session))
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(session.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, r.ownerKey(session.OwnerID), session.ID)
	pipe.Expire(ctx, r.ownerKey(session.OwnerID), r.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func toSessionData(session *enhancement.Session) *Data {
	return &Data{
		ID:        session.ID,
		OwnerID:   session.OwnerID,
		Variant:   session.Variant,
		Selection: session.Selection,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func toSession(data *Data) *enhancement.Session {
	return &enhancement.Session{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Variant:   data.Variant,
		Selection: data.Selection,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
