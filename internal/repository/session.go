package repository

import "context"

// SessionRepository defines durable key-value persistence for session state.
// Values are plain strings; JSON-encoded records are stored as strings too.
// Get returns ErrNotFound for a missing key, which callers must treat as
// "unset", never as a parse error.
type SessionRepository interface {
	// Set stores a value under the given key.
	Set(ctx context.Context, key, value string) error

	// Get retrieves the value stored under the given key.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
