package notifier

import (
	"context"
	"log/slog"
)

// scheduleCleanup arms the next periodic pruning pass.
func (e *Engine) scheduleCleanup() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.cleanupCancel = e.sched.After(e.cfg.CleanupInterval, func() {
		e.cleanup()
		e.scheduleCleanup()
	})
	e.mu.Unlock()
}

// cleanup prunes retry records and failed entries older than the
// retention period so a long-lived session cannot grow without bound.
func (e *Engine) cleanup() {
	cutoff := e.sched.Now().Add(-e.cfg.RetentionPeriod)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	prunedRetries := 0
	for id, rec := range e.retries {
		if rec.touched.Before(cutoff) {
			delete(e.retries, id)
			if cancel, ok := e.retryTimers[id]; ok {
				cancel()
				delete(e.retryTimers, id)
			}
			prunedRetries++
		}
	}

	kept := e.failed[:0]
	for _, entry := range e.failed {
		if !entry.At.Before(cutoff) {
			kept = append(kept, entry)
		}
	}
	prunedFailed := len(e.failed) - len(kept)
	e.failed = kept
	e.mu.Unlock()

	if prunedRetries > 0 || prunedFailed > 0 {
		e.logger.LogAttrs(context.Background(), slog.LevelDebug, "pruned stale notification records",
			slog.Int("retry_records", prunedRetries),
			slog.Int("failed_entries", prunedFailed))
	}
}
