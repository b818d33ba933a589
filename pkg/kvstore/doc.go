// Package kvstore provides the key-value blob persistence used by the
// notification engine for its settings and analytics documents.
//
// Three implementations are included:
//
//   - MemoryStore: process-local, for tests and ephemeral sessions.
//   - FileStore: one file per key with atomic rename on write.
//   - RedisStore: shared storage backed by go-redis, with a retrying
//     Connect helper configured through environment variables.
//
// All blobs are opaque to the store; the engine serializes JSON
// documents into them and rewrites the whole blob on every mutation.
package kvstore
