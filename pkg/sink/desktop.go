package sink

import (
	"context"

	"github.com/gen2brain/beeep"
)

// DesktopSink displays notifications through the operating system's
// notification daemon via the cross-platform beeep library. Desktop
// daemons grant permission implicitly and expose no click surface to
// the sender, so handles are inert and callbacks never fire.
type DesktopSink struct {
	appName string
}

// DesktopOption configures a DesktopSink.
type DesktopOption func(*DesktopSink)

// WithAppName sets the application name shown by the OS daemon.
func WithAppName(name string) DesktopOption {
	return func(s *DesktopSink) {
		if name != "" {
			s.appName = name
		}
	}
}

// NewDesktopSink creates an OS-notification-backed sink.
func NewDesktopSink(opts ...DesktopOption) *DesktopSink {
	s := &DesktopSink{appName: "notifykit"}
	for _, opt := range opts {
		opt(s)
	}
	beeep.AppName = s.appName
	return s
}

func (s *DesktopSink) Permission() Permission {
	return PermissionGranted
}

func (s *DesktopSink) RequestPermission(ctx context.Context) (Permission, error) {
	return PermissionGranted, nil
}

func (s *DesktopSink) Display(ctx context.Context, p Payload) (Handle, error) {
	if len(p.Actions) > MaxActions {
		return nil, ErrTooManyActions
	}
	if err := beeep.Notify(p.Title, p.Body, p.Icon); err != nil {
		return nil, err
	}
	return inertHandle{}, nil
}

func (s *DesktopSink) Capabilities() Capabilities {
	return Capabilities{Sound: true, Vibration: false}
}

func (s *DesktopSink) PlaySound(name string) error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

func (s *DesktopSink) Vibrate(pattern []int) error {
	return ErrUnsupported
}

// inertHandle satisfies Handle for surfaces that report no user events.
type inertHandle struct{}

func (inertHandle) OnClick(func())        {}
func (inertHandle) OnAction(func(string)) {}
func (inertHandle) OnClose(func())        {}
func (inertHandle) OnError(func(error))   {}
func (inertHandle) Close() error          { return nil }
func (inertHandle) Focus()                {}
func (inertHandle) Navigate(string)       {}
