package sink

import "errors"

var (
	// ErrUnsupported is returned when the host lacks the requested surface.
	ErrUnsupported = errors.New("notification surface not supported")

	// ErrPermissionDenied is returned when display is attempted without permission.
	ErrPermissionDenied = errors.New("notification permission denied")

	// ErrTooManyActions is returned when a payload carries more action
	// buttons than the platform accepts.
	ErrTooManyActions = errors.New("too many notification actions")
)
