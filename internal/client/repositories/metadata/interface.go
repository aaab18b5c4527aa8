// Package metadata is the client's local key/value store, backed by SQLite.
// It holds the persisted bearer token (and the matching account email) under
// fixed keys; nothing else survives between runs.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany stores all pairs atomically.
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	// Clear wipes all stored keys (used on logout).
	Clear(ctx context.Context) error
}
