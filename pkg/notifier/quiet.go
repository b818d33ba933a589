package notifier

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/quiethours"
)

// deferUntilQuietEnd holds a sub-high-priority notification until the
// quiet window closes. The first deferral arms a wake timer for the end
// of the window; when it fires the held notifications drain in FIFO
// order. This wake-timer behavior is the engine's documented deferral
// contract: callers never need to re-submit deferred notifications.
func (e *Engine) deferUntilQuietEnd(n *Notification, w quiethours.Window) {
	e.transition(n, StatusQueued)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.quiet = append(e.quiet, n)
	if e.quietWake == nil {
		now := e.sched.Now()
		if end, ok := w.NextEnd(now); ok {
			e.quietWake = e.sched.After(end.Sub(now), e.flushQuietQueue)
		}
	}
	size := len(e.quiet)
	e.mu.Unlock()

	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification deferred for quiet hours",
		logger.NotificationID(n.ID),
		slog.Int("deferred", size))
}

// flushQuietQueue drains the quiet queue through immediate delivery.
func (e *Engine) flushQuietQueue() {
	e.mu.Lock()
	e.quietWake = nil
	if e.closed {
		e.mu.Unlock()
		return
	}
	held := e.quiet
	e.quiet = nil
	e.mu.Unlock()

	if len(held) == 0 {
		return
	}

	ctx := context.Background()
	e.logger.LogAttrs(ctx, slog.LevelInfo, "quiet hours ended, delivering deferred notifications",
		slog.Int("count", len(held)))
	for _, n := range held {
		e.showImmediate(ctx, n)
	}
}

// FlushDeferred delivers every quiet-hours-deferred notification now,
// without waiting for the window to end.
func (e *Engine) FlushDeferred() {
	e.mu.Lock()
	if e.quietWake != nil {
		e.quietWake()
		e.quietWake = nil
	}
	e.mu.Unlock()

	e.flushQuietQueue()
}

// DeferredLen reports how many notifications await the end of quiet hours.
func (e *Engine) DeferredLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.quiet)
}
