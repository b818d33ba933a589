package notifier

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/registry"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

// Status is the explicit lifecycle state of a notification inside the
// engine. State is carried on the notification itself rather than
// inferred from queue membership, so invariants stay checkable.
type Status string

const (
	// StatusPending is the initial state of an accepted request.
	StatusPending Status = "pending"
	// StatusBatched means the notification waits in an aggregation window.
	StatusBatched Status = "batched"
	// StatusQueued means the notification is held in the offline or
	// quiet-hours queue.
	StatusQueued Status = "queued"
	// StatusDelivering means a display attempt is in progress.
	StatusDelivering Status = "delivering"
	// StatusDelivered means the platform accepted the display.
	StatusDelivered Status = "delivered"
	// StatusRetrying means a failed display attempt awaits its backoff timer.
	StatusRetrying Status = "retrying"
	// StatusFailed is terminal: every retry attempt was exhausted.
	StatusFailed Status = "failed"
	// StatusClicked is terminal: the user interacted with the notification.
	StatusClicked Status = "clicked"
	// StatusDismissed is terminal: the user closed the notification.
	StatusDismissed Status = "dismissed"
)

// transitions is the closed set of legal lifecycle moves.
var transitions = map[Status][]Status{
	StatusPending:    {StatusBatched, StatusQueued, StatusDelivering},
	StatusBatched:    {StatusDelivering, StatusQueued},
	StatusQueued:     {StatusDelivering, StatusQueued},
	StatusDelivering: {StatusDelivered, StatusRetrying, StatusFailed, StatusQueued},
	StatusDelivered:  {StatusClicked, StatusDismissed, StatusRetrying},
	StatusRetrying:   {StatusDelivering, StatusFailed, StatusQueued},
}

// CanTransition reports whether moving from s to next is a legal
// lifecycle transition.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the notification's lifecycle.
func (s Status) Terminal() bool {
	return s == StatusFailed || s == StatusClicked || s == StatusDismissed
}

// Notification is a single alert request with identity, content,
// priority, and delivery metadata. Once delivered it is immutable
// except for the attempt counter maintained by the retry engine.
type Notification struct {
	ID                 string
	Title              string
	Message            string
	Type               registry.Type
	Priority           registry.Priority
	Data               map[string]any
	Actions            []sink.Action
	Icon               string
	Badge              string
	Persistent         bool
	Silent             bool
	Tag                string
	Renotify           bool
	RequireInteraction bool
	URL                string
	Sound              string
	Vibrate            []int
	Attempts           int
	Status             Status
	CreatedAt          time.Time
}

// Request is the inbound contract consumed from business-domain
// collaborators. Zero-valued optional fields resolve to registry and
// settings defaults when the engine builds the Notification.
type Request struct {
	Title              string
	Message            string
	Type               registry.Type
	Priority           registry.Priority
	Data               map[string]any
	Actions            []sink.Action
	Icon               string
	Badge              string
	Persistent         bool
	Silent             bool
	Tag                string
	Renotify           bool
	RequireInteraction bool
	URL                string
	Sound              string
	Vibrate            []int
}

// Result is the synchronous status returned by Show. Delivery may
// complete asynchronously afterward; Success reports only that the
// request was accepted into one of the engine's paths.
type Result struct {
	// Success is false only when the request was rejected outright.
	Success bool
	// Batched means the notification joined an aggregation window.
	Batched bool
	// Queued means the notification is held in the offline queue.
	Queued bool
	// Deferred means the notification is held until quiet hours end.
	Deferred bool
	// ID identifies the accepted notification.
	ID string
	// Reason describes a rejection or hold in human-readable form.
	Reason string
}

// FailedEntry records a permanently failed notification for diagnostic
// review. Entries are pruned after the configured retention period and
// never retried automatically.
type FailedEntry struct {
	Notification Notification
	Err          string
	At           time.Time
}
