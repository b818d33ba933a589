package settings

import "errors"

var (
	// ErrStorageNil is returned when a nil blob store is provided.
	ErrStorageNil = errors.New("blob storage cannot be nil")

	// ErrInvalidSettings is returned when a mutation produces settings
	// that fail validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
