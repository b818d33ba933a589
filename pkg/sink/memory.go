package sink

import (
	"context"
	"sync"
)

// MemorySink is a scriptable in-process Sink for tests and headless
// sessions. Permission state, capabilities, and display failures are
// all injectable, and every interaction is recorded.
type MemorySink struct {
	mu           sync.Mutex
	permission   Permission
	capabilities Capabilities
	displayErrs  []error
	displayed    []*MemoryHandle
	sounds       []string
	vibrations   [][]int
	promptFn     func() Permission
}

// MemorySinkOption configures a MemorySink.
type MemorySinkOption func(*MemorySink)

// WithPermission sets the initial permission state.
func WithPermission(p Permission) MemorySinkOption {
	return func(s *MemorySink) { s.permission = p }
}

// WithCapabilities sets the reported host capabilities.
func WithCapabilities(c Capabilities) MemorySinkOption {
	return func(s *MemorySink) { s.capabilities = c }
}

// WithPromptResult scripts the outcome of the permission prompt.
func WithPromptResult(fn func() Permission) MemorySinkOption {
	return func(s *MemorySink) { s.promptFn = fn }
}

// NewMemorySink creates a memory sink. By default permission is
// granted and both sound and vibration are supported.
func NewMemorySink(opts ...MemorySinkOption) *MemorySink {
	s := &MemorySink{
		permission:   PermissionGranted,
		capabilities: Capabilities{Sound: true, Vibration: true},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemorySink) Permission() Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// SetPermission changes the permission state, simulating the user
// flipping the platform toggle.
func (s *MemorySink) SetPermission(p Permission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permission = p
}

func (s *MemorySink) RequestPermission(ctx context.Context) (Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission != PermissionDefault {
		return s.permission, nil
	}
	if s.promptFn != nil {
		s.permission = s.promptFn()
	} else {
		s.permission = PermissionGranted
	}
	return s.permission, nil
}

// FailNextDisplays queues errors returned by the next len(errs) Display calls.
func (s *MemorySink) FailNextDisplays(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayErrs = append(s.displayErrs, errs...)
}

func (s *MemorySink) Display(ctx context.Context, p Payload) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission != PermissionGranted {
		return nil, ErrPermissionDenied
	}
	if len(p.Actions) > MaxActions {
		return nil, ErrTooManyActions
	}
	if len(s.displayErrs) > 0 {
		err := s.displayErrs[0]
		s.displayErrs = s.displayErrs[1:]
		return nil, err
	}

	h := &MemoryHandle{Payload: p}
	s.displayed = append(s.displayed, h)
	return h, nil
}

func (s *MemorySink) Capabilities() Capabilities {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capabilities
}

func (s *MemorySink) PlaySound(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.capabilities.Sound {
		return ErrUnsupported
	}
	s.sounds = append(s.sounds, name)
	return nil
}

func (s *MemorySink) Vibrate(pattern []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.capabilities.Vibration {
		return ErrUnsupported
	}
	s.vibrations = append(s.vibrations, pattern)
	return nil
}

// Displayed returns the handles of every successfully displayed notification.
func (s *MemorySink) Displayed() []*MemoryHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*MemoryHandle, len(s.displayed))
	copy(out, s.displayed)
	return out
}

// Sounds returns the names of every played sound, in order.
func (s *MemorySink) Sounds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sounds))
	copy(out, s.sounds)
	return out
}

// Vibrations returns every triggered vibration pattern, in order.
func (s *MemorySink) Vibrations() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]int, len(s.vibrations))
	copy(out, s.vibrations)
	return out
}

// MemoryHandle is the Handle produced by MemorySink. Tests drive
// platform events through Click, ClickAction, Dismiss, and Fail.
type MemoryHandle struct {
	Payload Payload

	mu          sync.Mutex
	onClick     func()
	onAction    func(string)
	onClose     func()
	onError     func(error)
	closed      bool
	focused     int
	navigations []string
}

func (h *MemoryHandle) OnClick(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onClick = fn
}

func (h *MemoryHandle) OnAction(fn func(action string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAction = fn
}

func (h *MemoryHandle) OnClose(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onClose = fn
}

func (h *MemoryHandle) OnError(fn func(err error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onError = fn
}

func (h *MemoryHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

func (h *MemoryHandle) Focus() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focused++
}

func (h *MemoryHandle) Navigate(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.navigations = append(h.navigations, url)
}

// Click simulates the user clicking the notification body.
func (h *MemoryHandle) Click() {
	h.mu.Lock()
	fn := h.onClick
	h.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// ClickAction simulates the user clicking an action button.
func (h *MemoryHandle) ClickAction(action string) {
	h.mu.Lock()
	fn := h.onAction
	h.mu.Unlock()
	if fn != nil {
		fn(action)
	}
}

// Dismiss simulates the user closing the notification without interacting.
func (h *MemoryHandle) Dismiss() {
	h.mu.Lock()
	fn := h.onClose
	h.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Fail simulates a platform error reported after display.
func (h *MemoryHandle) Fail(err error) {
	h.mu.Lock()
	fn := h.onError
	h.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// Closed reports whether the handle was closed.
func (h *MemoryHandle) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Focused returns how many times the application was brought to the foreground.
func (h *MemoryHandle) Focused() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focused
}

// Navigations returns the target URLs navigated to through this handle.
func (h *MemoryHandle) Navigations() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.navigations))
	copy(out, h.navigations)
	return out
}
