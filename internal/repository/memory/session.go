// Package memory provides in-memory repository implementations used as the
// demo default and in tests.
package memory

import (
	"context"
	"sync"

	"transverse/internal/repository"
)

// SessionRepository is an in-memory implementation of repository.SessionRepository.
type SessionRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSessionRepository creates an empty in-memory session repository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{values: make(map[string]string)}
}

// Set stores a value under the given key.
func (r *SessionRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// Get retrieves the value stored under the given key.
func (r *SessionRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return value, nil
}

// Delete removes the given keys.
func (r *SessionRepository) Delete(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}
