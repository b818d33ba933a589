package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/registry"
	"github.com/dmitrymomot/notifykit/pkg/scheduler"
	"github.com/dmitrymomot/notifykit/pkg/settings"
)

// batch accumulates same-type, same-priority notifications inside one
// debounce window. A batch is flushed exactly once: it is removed from
// the registry before delivery, so a racing timer cannot deliver twice.
type batch struct {
	typ      registry.Type
	priority registry.Priority
	members  []*Notification
	cancel   scheduler.Cancel
}

// shouldBatch implements the aggregation eligibility rule: batching
// enabled, priority at most medium, and neither requireInteraction nor
// persistent set.
func shouldBatch(st settings.Settings, n *Notification) bool {
	return st.BatchingEnabled &&
		n.Priority.Batchable() &&
		!n.RequireInteraction &&
		!n.Persistent
}

func batchKey(t registry.Type, p registry.Priority) string {
	return fmt.Sprintf("%s_%d", t, p)
}

// addToBatch appends the notification to its (type, priority) batch and
// restarts the flush timer. The debounce means a burst keeps resetting
// the clock and flushes once, after the burst stops.
func (e *Engine) addToBatch(n *Notification) {
	e.transition(n, StatusBatched)

	key := batchKey(n.Type, n.Priority)
	delay := e.cfg.BatchDelay
	if e.registry.Type(n.Type).FastAggregate {
		delay = e.cfg.FastBatchDelay
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	b, ok := e.batches[key]
	if !ok {
		b = &batch{typ: n.Type, priority: n.Priority}
		e.batches[key] = b
	}
	b.members = append(b.members, n)
	if b.cancel != nil {
		b.cancel()
	}
	b.cancel = e.sched.After(delay, func() { e.flushBatch(key) })
	size := len(b.members)
	e.mu.Unlock()

	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification batched",
		logger.NotificationID(n.ID),
		logger.BatchKey(key),
		slog.Int("batch_size", size))
}

// flushBatch delivers a batch: a singleton passes through unchanged, two
// or more members collapse into one synthetic aggregate notification.
func (e *Engine) flushBatch(key string) {
	e.mu.Lock()
	b, ok := e.batches[key]
	if ok {
		delete(e.batches, key)
	}
	closed := e.closed
	e.mu.Unlock()

	if !ok || closed {
		return
	}

	ctx := context.Background()
	if len(b.members) == 1 {
		e.showImmediate(ctx, b.members[0])
		return
	}

	agg := e.aggregate(b)
	for _, m := range b.members {
		e.transition(m, StatusDelivering)
	}
	res := e.showImmediate(ctx, agg)
	if res.Success {
		for _, m := range b.members {
			e.transition(m, StatusDelivered)
		}
	}

	e.logger.LogAttrs(ctx, slog.LevelDebug, "batch flushed",
		logger.BatchKey(key),
		slog.Int("members", len(b.members)),
		slog.Bool("delivered", res.Success))
}

// aggregate builds the synthetic notification representing a collapsed
// batch: silenced, titled from the type's count templates, carrying the
// member ids in insertion order.
func (e *Engine) aggregate(b *batch) *Notification {
	profile := e.registry.Type(b.typ)
	count := len(b.members)

	ids := make([]string, 0, count)
	for _, m := range b.members {
		ids = append(ids, m.ID)
	}

	return &Notification{
		ID:       uuid.New().String(),
		Title:    fmt.Sprintf(profile.AggregateTitle, count),
		Message:  fmt.Sprintf(profile.AggregateBody, count),
		Type:     b.typ,
		Priority: b.priority,
		Data: map[string]any{
			"ids":       ids,
			"count":     count,
			"aggregate": true,
		},
		Icon:      profile.Icon,
		Silent:    true,
		Tag:       batchKey(b.typ, b.priority) + "_aggregate",
		URL:       profile.AggregateURL,
		Status:    StatusPending,
		CreatedAt: e.sched.Now(),
	}
}
