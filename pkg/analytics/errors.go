package analytics

import "errors"

// ErrStorageNil is returned when a nil blob store is provided.
var ErrStorageNil = errors.New("blob storage cannot be nil")
