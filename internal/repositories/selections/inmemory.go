package selections

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

type entry struct {
	session   enhancement.Session
	expiresAt time.Time
}

// InMemoryRepository keeps sessions in process memory. Used when no Redis is configured.
type InMemoryRepository struct {
	mu           sync.RWMutex
	sessions     map[string]*entry
	timeProvider TimeProvider
	ttl          time.Duration
}

// InMemoryConfig holds configuration for the in-memory repository
type InMemoryConfig struct {
	TimeProvider TimeProvider
	TTL          time.Duration // zero keeps sessions until deleted
}

// NewInMemoryRepository creates a new in-memory session repository
func NewInMemoryRepository(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	tp := cfg.TimeProvider
	if tp == nil {
		tp = RealTimeProvider{}
	}

	return &InMemoryRepository{
		sessions:     make(map[string]*entry),
		timeProvider: tp,
		ttl:          cfg.TTL,
	}
}

// Create stores a new session
func (r *InMemoryRepository) Create(ctx context.Context, session *enhancement.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if e, exists := r.sessions[session.ID]; exists && !r.expired(e, now) {
		return apperr.AlreadyExistsf("session with ID '%s' already exists", session.ID).
			WithMeta("session_id", session.ID)
	}

	session.CreatedAt = now
	session.UpdatedAt = now
	r.sessions[session.ID] = r.newEntry(session, now)

	return nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*enhancement.Session, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.sessions[id]
	if !exists || r.expired(e, r.timeProvider.Now()) {
		return nil, notFound(id)
	}

	session := e.session
	return &session, nil
}

// Update replaces an existing session and extends its lifetime
func (r *InMemoryRepository) Update(ctx context.Context, session *enhancement.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	e, exists := r.sessions[session.ID]
	if !exists || r.expired(e, now) {
		return notFound(session.ID)
	}

	session.CreatedAt = e.session.CreatedAt
	session.UpdatedAt = now
	r.sessions[session.ID] = r.newEntry(session, now)

	return nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.sessions[id]
	if !exists || r.expired(e, r.timeProvider.Now()) {
		delete(r.sessions, id)
		return notFound(id)
	}

	delete(r.sessions, id)
	return nil
}

// ListByOwner returns the live sessions of an owner, oldest first
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*enhancement.Session, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.timeProvider.Now()
	var out []*enhancement.Session
	for _, e := range r.sessions {
		if e.session.OwnerID != ownerID || r.expired(e, now) {
			continue
		}
		session := e.session
		out = append(out, &session)
	}
	sortSessions(out)

	return out, nil
}

func (r *InMemoryRepository) newEntry(session *enhancement.Session, now time.Time) *entry {
	e := &entry{session: *session}
	if r.ttl > 0 {
		e.expiresAt = now.Add(r.ttl)
	}
	return e
}

func (r *InMemoryRepository) expired(e *entry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func validateSession(session *enhancement.Session) error {
	if session == nil {
		return apperr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return apperr.InvalidArgument("session ID is required")
	}
	if session.OwnerID == "" {
		return apperr.InvalidArgument("session owner ID is required")
	}
	return nil
}

func notFound(id string) error {
	return apperr.NotFoundf("session with ID '%s' not found", id).
		WithMeta("session_id", id)
}

func sortSessions(sessions []*enhancement.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
}
