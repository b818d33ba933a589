package notifier

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

// showImmediate performs one display attempt against the platform
// surface, applying the sound/vibration policy and wiring the platform
// event callbacks. Failures are handed to the retry engine.
func (e *Engine) showImmediate(ctx context.Context, n *Notification) Result {
	if e.sink.Permission() != sink.PermissionGranted {
		return e.holdForPermission(ctx, n)
	}

	e.transition(n, StatusDelivering)

	handle, err := e.sink.Display(ctx, e.payload(n))
	if err != nil {
		e.logger.LogAttrs(ctx, slog.LevelWarn, "notification display failed",
			logger.NotificationID(n.ID),
			logger.NotificationType(string(n.Type)),
			logger.Error(err))
		e.addToRetryQueue(ctx, n, err)
		return Result{Success: false, Reason: err.Error(), ID: n.ID}
	}

	e.transition(n, StatusDelivered)
	e.clearRetryRecord(n.ID)

	st := e.settings.Current()
	if !n.Silent {
		caps := e.sink.Capabilities()
		if st.SoundEnabled && caps.Sound {
			if err := e.sink.PlaySound(n.Sound); err != nil {
				e.logger.LogAttrs(ctx, slog.LevelDebug, "notification sound failed",
					slog.String("sound", n.Sound),
					logger.Error(err))
			}
		}
		if st.VibrationEnabled && caps.Vibration {
			_ = e.sink.Vibrate(n.Vibrate)
		}
	}

	e.analytics.Sent(ctx)

	handle.OnClick(func() { e.handleClick(n, handle) })
	handle.OnAction(func(action string) { e.handleAction(n, action) })
	handle.OnClose(func() { e.handleDismiss(n) })
	handle.OnError(func(err error) { e.addToRetryQueue(context.Background(), n, err) })

	e.logger.LogAttrs(ctx, slog.LevelDebug, "notification delivered",
		logger.NotificationID(n.ID),
		logger.NotificationType(string(n.Type)),
		slog.String("priority", n.Priority.String()))

	return Result{Success: true, ID: n.ID}
}

// holdForPermission parks an undeliverable request pending a permission
// grant: held in the same queue as offline deferrals, distinguished
// only by the returned reason.
func (e *Engine) holdForPermission(ctx context.Context, n *Notification) Result {
	e.mu.Lock()
	queued := false
	if !e.closed && e.online {
		e.transition(n, StatusQueued)
		e.offline = append(e.offline, n)
		queued = true
	}
	e.mu.Unlock()

	e.logger.LogAttrs(ctx, slog.LevelDebug, "notification held, no permission",
		logger.NotificationID(n.ID),
		slog.Bool("queued", queued))
	return Result{Success: false, Reason: ReasonNoPermission, Queued: queued, ID: n.ID}
}

// payload translates a Notification into the platform options bag.
func (e *Engine) payload(n *Notification) sink.Payload {
	data := make(map[string]any, len(n.Data)+3)
	maps.Copy(data, n.Data)
	data["id"] = n.ID
	data["type"] = string(n.Type)
	if n.URL != "" {
		data["url"] = n.URL
	}

	return sink.Payload{
		Title:              n.Title,
		Body:               n.Message,
		Icon:               n.Icon,
		Badge:              n.Badge,
		Tag:                n.Tag,
		Data:               data,
		Actions:            n.Actions,
		RequireInteraction: n.RequireInteraction,
		Silent:             n.Silent,
		Renotify:           n.Renotify,
		Timestamp:          n.CreatedAt,
	}
}

// handleClick reacts to the user clicking the notification body:
// foreground the app, navigate to the target, close the notification,
// and relay the event to collaborators.
func (e *Engine) handleClick(n *Notification, h sink.Handle) {
	ctx := context.Background()
	e.analytics.Clicked(ctx)

	h.Focus()
	if n.URL != "" {
		h.Navigate(n.URL)
	}
	_ = h.Close()

	e.transition(n, StatusClicked)
	e.clicks.Publish(ClickEvent{Notification: *n})
}

// handleAction relays a platform action-button click to collaborators.
func (e *Engine) handleAction(n *Notification, action string) {
	e.actions.Publish(ActionEvent{Action: action, Data: n.Data, Notification: *n})
}

// handleDismiss records a close without interaction.
func (e *Engine) handleDismiss(n *Notification) {
	if n.Status.Terminal() {
		return
	}
	e.analytics.Dismissed(context.Background())
	e.transition(n, StatusDismissed)
}
