package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// retryRecord tracks the backoff state of one failing notification.
type retryRecord struct {
	attempts int
	touched  time.Time
}

// addToRetryQueue schedules a bounded exponential-backoff re-attempt
// after a transient display failure. Delays double from RetryBaseDelay
// (1s, 2s, 4s by default); exhausting MaxRetries files the notification
// as permanently failed, a terminal state that is reported through
// analytics and FailedEntries but never retried again.
func (e *Engine) addToRetryQueue(ctx context.Context, n *Notification, cause error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	attempts := 0
	if rec, ok := e.retries[n.ID]; ok {
		attempts = rec.attempts
	}

	if attempts >= e.cfg.MaxRetries {
		delete(e.retries, n.ID)
		delete(e.retryTimers, n.ID)
		e.transition(n, StatusFailed)
		e.failed = append(e.failed, FailedEntry{
			Notification: *n,
			Err:          cause.Error(),
			At:           e.sched.Now(),
		})
		e.mu.Unlock()

		e.analytics.Failed(ctx)
		e.logger.LogAttrs(ctx, slog.LevelError, "notification permanently failed",
			logger.NotificationID(n.ID),
			logger.NotificationType(string(n.Type)),
			logger.Attempt(attempts),
			logger.Error(cause))
		return
	}

	delay := e.cfg.RetryBaseDelay << attempts
	e.retries[n.ID] = &retryRecord{attempts: attempts + 1, touched: e.sched.Now()}
	e.transition(n, StatusRetrying)

	id := n.ID
	e.retryTimers[id] = e.sched.After(delay, func() {
		e.mu.Lock()
		delete(e.retryTimers, id)
		closed := e.closed
		e.mu.Unlock()
		if closed {
			return
		}

		retryCtx := context.Background()
		e.analytics.Retried(retryCtx)
		n.Attempts++
		e.showImmediate(retryCtx, n)
	})
	e.mu.Unlock()

	e.logger.LogAttrs(ctx, slog.LevelInfo, "notification retry scheduled",
		logger.NotificationID(n.ID),
		logger.Attempt(attempts+1),
		slog.Duration("delay", delay),
		logger.Error(cause))
}

// clearRetryRecord forgets the backoff state after a successful delivery.
func (e *Engine) clearRetryRecord(id string) {
	e.mu.Lock()
	delete(e.retries, id)
	e.mu.Unlock()
}

// retryAttempts reports the stored attempt count for a notification id.
func (e *Engine) retryAttempts(id string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rec, ok := e.retries[id]; ok {
		return rec.attempts
	}
	return 0
}
