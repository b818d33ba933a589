package sink

import (
	"context"
	"time"
)

// Permission is the host platform's notification permission state.
type Permission string

const (
	// PermissionDefault means the user has not been asked yet.
	PermissionDefault Permission = "default"
	// PermissionGranted means notifications may be displayed.
	PermissionGranted Permission = "granted"
	// PermissionDenied means the user refused notifications.
	PermissionDenied Permission = "denied"
)

// Capabilities describes which optional surfaces the host supports.
type Capabilities struct {
	Sound     bool
	Vibration bool
}

// Action is one of up to two buttons attached to a displayed notification.
type Action struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

// MaxActions is the largest number of action buttons a platform surface accepts.
const MaxActions = 2

// Payload is the options bag handed to the platform display primitive.
type Payload struct {
	Title              string
	Body               string
	Icon               string
	Badge              string
	Tag                string
	Data               map[string]any
	Actions            []Action
	RequireInteraction bool
	Silent             bool
	Renotify           bool
	Timestamp          time.Time
}

// Handle represents one displayed notification. Callback registration
// must happen before the platform event can fire; implementations
// buffer events that arrive first.
type Handle interface {
	// OnClick registers the callback invoked when the user clicks the body.
	OnClick(fn func())

	// OnAction registers the callback invoked when the user clicks an
	// action button, receiving the action identifier.
	OnAction(fn func(action string))

	// OnClose registers the callback invoked when the notification is
	// dismissed without interaction.
	OnClose(fn func())

	// OnError registers the callback invoked when the platform reports
	// a display error after the notification was handed over.
	OnError(fn func(err error))

	// Close removes the notification from the platform surface.
	Close() error

	// Focus brings the application to the foreground.
	Focus()

	// Navigate points the application at the given target URL.
	Navigate(url string)
}

// Sink is the capability interface over the host's notification
// surface: permission management, the display primitive, and the
// audio/vibration side channels.
type Sink interface {
	// Permission returns the current permission state.
	Permission() Permission

	// RequestPermission prompts the user if permission was not decided yet.
	RequestPermission(ctx context.Context) (Permission, error)

	// Display attempts to show a notification and returns its handle.
	Display(ctx context.Context, p Payload) (Handle, error)

	// Capabilities reports the optional surfaces this host supports.
	Capabilities() Capabilities

	// PlaySound plays the named notification sound.
	PlaySound(name string) error

	// Vibrate triggers the given vibration pattern (milliseconds on/off).
	Vibrate(pattern []int) error
}
