// Package redis provides the Redis-backed durable client storage.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"transverse/internal/repository"
)

// Key prefix for session state. Session values have no TTL: they survive
// restarts until an explicit delete, matching durable client storage.
const sessionKeyPrefix = "session:"

// SessionStore persists session key-value state in Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Set stores a value under the given key.
func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, sessionKeyPrefix+key, value, 0).Err()
}

// Get retrieves the value stored under the given key.
func (s *SessionStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, sessionKeyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *SessionStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = sessionKeyPrefix + key
	}
	return s.client.Del(ctx, prefixed...).Err()
}

// Ensure interfaces are satisfied.
var _ repository.SessionRepository = (*SessionStore)(nil)
