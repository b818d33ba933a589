package registry

import "errors"

var (
	// ErrUnknownPriority is returned when a priority string cannot be parsed.
	ErrUnknownPriority = errors.New("unknown priority")

	// ErrUnknownType is returned when a notification type is not registered.
	ErrUnknownType = errors.New("unknown notification type")

	// ErrInvalidOverride is returned when an override document fails validation.
	ErrInvalidOverride = errors.New("invalid registry override")
)
