package kvstore

import "context"

// Store persists small opaque blobs under string keys. The notification
// engine uses it for the settings and analytics documents, which are
// read once at startup and rewritten on every mutation, so
// implementations optimize for simple overwrite semantics rather than
// partial updates.
type Store interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the blob stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error
}
