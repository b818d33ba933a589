package kvstore

import "errors"

var (
	// ErrNotFound is returned when no blob exists under the requested key.
	ErrNotFound = errors.New("key not found")

	// ErrKeyEmpty is returned when an empty key is used.
	ErrKeyEmpty = errors.New("key cannot be empty")

	// ErrNilClient is returned when a nil Redis client is provided.
	ErrNilClient = errors.New("redis client cannot be nil")

	// ErrFailedToParseConnString is returned when the Redis connection URL is invalid.
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when the Redis server cannot be reached
	// within the configured retry budget.
	ErrRedisNotReady = errors.New("redis server is not ready")
)
