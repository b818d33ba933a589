package notifier

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/registry"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

// enqueueOffline holds a notification until connectivity returns.
func (e *Engine) enqueueOffline(n *Notification) {
	e.transition(n, StatusQueued)

	e.mu.Lock()
	if !e.closed {
		e.offline = append(e.offline, n)
	}
	size := len(e.offline)
	e.mu.Unlock()

	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification queued offline",
		logger.NotificationID(n.ID),
		slog.Int("queue_size", size))
}

// watchConnectivity consumes monitor transitions for the engine's lifetime.
func (e *Engine) watchConnectivity(ctx context.Context) {
	defer close(e.watchDone)

	ch := e.monitor.Subscribe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-ch:
			if !ok {
				return
			}
			e.handleConnectivityChange(online)
		}
	}
}

// handleConnectivityChange flips the engine's connectivity flag,
// announces the transition, and on reconnect drains the offline queue
// in insertion order. Drain failures enter the normal retry path; they
// are never re-queued as offline.
func (e *Engine) handleConnectivityChange(online bool) {
	e.mu.Lock()
	if e.closed || e.online == online {
		e.mu.Unlock()
		return
	}
	e.online = online
	var drained []*Notification
	if online {
		drained = e.offline
		e.offline = nil
	}
	e.mu.Unlock()

	ctx := context.Background()
	if !online {
		e.logger.InfoContext(ctx, "connection lost, deferring notifications")
		e.notifyConnectionStatus(ctx, "Connection Lost",
			"You're offline. Notifications will be delivered when the connection returns.")
		return
	}

	e.logger.InfoContext(ctx, "connection restored, draining offline queue",
		slog.Int("queued", len(drained)))
	e.notifyConnectionStatus(ctx, "Connection Restored", "You're back online.")

	for _, n := range drained {
		e.showImmediate(ctx, n)
	}
}

// notifyConnectionStatus displays a silenced low-priority status
// notification, best effort: failures are dropped rather than retried.
func (e *Engine) notifyConnectionStatus(ctx context.Context, title, message string) {
	if e.sink.Permission() != sink.PermissionGranted {
		return
	}

	n := e.build(Request{
		Title:    title,
		Message:  message,
		Type:     registry.TypeConnectionStatus,
		Priority: registry.PriorityLow,
		Silent:   true,
	})
	e.transition(n, StatusDelivering)

	if _, err := e.sink.Display(ctx, e.payload(n)); err != nil {
		e.logger.LogAttrs(ctx, slog.LevelDebug, "connection status notification dropped",
			logger.Error(err))
		return
	}
	e.transition(n, StatusDelivered)
	e.analytics.Sent(ctx)
}
