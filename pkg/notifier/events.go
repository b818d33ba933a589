package notifier

import "context"

// ClickEvent is published when the user clicks a delivered notification.
type ClickEvent struct {
	Notification Notification
}

// ActionEvent is published when the user clicks one of a notification's
// action buttons.
type ActionEvent struct {
	Action       string
	Data         map[string]any
	Notification Notification
}

// Clicks subscribes to notification click events. The subscription ends
// when ctx is canceled or the engine closes; slow consumers drop events
// rather than block delivery.
func (e *Engine) Clicks(ctx context.Context) <-chan ClickEvent {
	return e.clicks.Subscribe(ctx)
}

// Actions subscribes to notification action-button events with the same
// lifetime and drop semantics as Clicks.
func (e *Engine) Actions(ctx context.Context) <-chan ActionEvent {
	return e.actions.Subscribe(ctx)
}
