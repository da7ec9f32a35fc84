package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepository_Redis(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewSessionRepository(rdb, 2*time.Second)

	t.Run("Set and Get", func(t *testing.T) {
		s := &models.Session{ID: uuid.NewString(), UserID: uuid.New(), Username: "alice"}

		assert.NoError(t, repo.Set(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	})

	t.Run("Get missing returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Clear", func(t *testing.T) {
		s := &models.Session{ID: uuid.NewString(), UserID: uuid.New(), Username: "bob"}
		assert.NoError(t, repo.Set(ctx, s))

		assert.NoError(t, repo.Clear(ctx, s.ID))
		got, err := repo.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		// idempotent
		assert.NoError(t, repo.Clear(ctx, s.ID))
	})

	t.Run("Session expires", func(t *testing.T) {
		s := &models.Session{ID: uuid.NewString(), UserID: uuid.New(), Username: "carol"}
		assert.NoError(t, repo.Set(ctx, s))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupt value", func(t *testing.T) {
		id := uuid.NewString()
		assert.NoError(t, rdb.Set(ctx, "session:"+id, "not-json", time.Minute).Err())

		got, err := repo.Get(ctx, id)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
