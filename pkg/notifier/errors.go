package notifier

import "errors"

// Common errors
var (
	// ErrSinkNil is returned when a nil notification sink is provided.
	ErrSinkNil = errors.New("notification sink cannot be nil")

	// ErrEngineClosed is returned for operations on a closed engine.
	ErrEngineClosed = errors.New("notification engine is closed")
)

// Reason strings surfaced through Result for callers that branch on
// the hold/rejection cause. These are part of the inbound contract.
const (
	ReasonNoPermission = "No permission"
	ReasonDisabled     = "Desktop notifications disabled"
	ReasonClosed       = "Notification engine closed"
	ReasonInternal     = "Internal error"
)
