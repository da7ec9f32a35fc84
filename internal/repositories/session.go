package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
)

// SessionRepository keeps session state in Redis under session:<id>.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// NewSessionRepository creates a new repository; every Set refreshes the TTL to expiration.
func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Get returns the session stored under id, or nil if it is missing or expired.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	key := sessionKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		logger.Log.Errorw("failed to decode session", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", session.UserID,
		"error", nil,
	)

	return &session, nil
}

// Set stores the session under its id with the repository TTL.
func (r *SessionRepository) Set(ctx context.Context, session *models.Session) error {
	key := sessionKey(session.ID)

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"user_id", session.UserID,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Clear removes the session. Clearing a missing session is not an error.
func (r *SessionRepository) Clear(ctx context.Context, id string) error {
	key := sessionKey(id)

	deleted, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", deleted,
		"error", err,
	)

	return err
}
