//go:build integration
// +build integration

package selections_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
	"github.com/KirkDiggler/enhancement-calculator/internal/repositories/selections"
	"github.com/KirkDiggler/enhancement-calculator/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := selections.NewRedisRepository(&selections.RedisRepoConfig{
		Client: client,
		TTL:    time.Minute,
	})

	ctx := context.Background()

	t.Run("create and retrieve session", func(t *testing.T) {
		session := testutils.CreateTestSession("sel-1", "owner-1", "frosthaven")
		session.Selection = testutils.CreateTestSelection(enhancement.EffectAttack, 5)

		require.NoError(t, repo.Create(ctx, session))

		got, err := repo.Get(ctx, "sel-1")
		require.NoError(t, err)
		assert.Equal(t, session.Selection, got.Selection)
		assert.Equal(t, "frosthaven", got.Variant)
		assert.WithinDuration(t, session.CreatedAt, got.CreatedAt, time.Millisecond)
	})

	t.Run("keys carry the ttl", func(t *testing.T) {
		ttl, err := client.TTL(ctx, "selection:sel-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)

		ttl, err = client.TTL(ctx, "owner:owner-1:selections").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("create duplicate fails", func(t *testing.T) {
		err := repo.Create(ctx, testutils.CreateTestSession("sel-1", "owner-1", "frosthaven"))
		assert.True(t, apperr.IsAlreadyExists(err))
	})

	t.Run("update and list", func(t *testing.T) {
		session, err := repo.Get(ctx, "sel-1")
		require.NoError(t, err)
		session.Selection.IsLostCard = true
		require.NoError(t, repo.Update(ctx, session))

		require.NoError(t, repo.Create(ctx, testutils.CreateTestSession("sel-2", "owner-1", "gloomhaven_digital")))

		list, err := repo.ListByOwner(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.True(t, list[0].Selection.IsLostCard)
	})

	t.Run("list drops expired sessions", func(t *testing.T) {
		require.NoError(t, client.Del(ctx, "selection:sel-2").Err())

		list, err := repo.ListByOwner(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, list, 1)

		members, err := client.SMembers(ctx, "owner:owner-1:selections").Result()
		require.NoError(t, err)
		assert.Equal(t, []string{"sel-1"}, members)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "sel-1"))

		_, err := repo.Get(ctx, "sel-1")
		assert.True(t, apperr.IsNotFound(err))
	})
}
