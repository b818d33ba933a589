package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/notifykit/pkg/kvstore"
)

// DefaultStorageKey is the blob key used when none is configured.
const DefaultStorageKey = "notification_analytics"

// Counters are the observability tallies kept by the engine. They only
// ever increase, except through an explicit Reset.
type Counters struct {
	Sent      uint64 `json:"sent"`
	Failed    uint64 `json:"failed"`
	Clicked   uint64 `json:"clicked"`
	Dismissed uint64 `json:"dismissed"`
	Retried   uint64 `json:"retried"`
}

// Recorder counts notification delivery events and persists the tallies
// after every mutation. Persistence failures are logged but never
// propagate: analytics must not interfere with delivery.
type Recorder struct {
	mu       sync.Mutex
	counters Counters
	blobs    kvstore.Store
	key      string
	logger   *slog.Logger
	metrics  *metrics
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithStorageKey overrides the blob key the counters are kept under.
func WithStorageKey(key string) RecorderOption {
	return func(r *Recorder) {
		if key != "" {
			r.key = key
		}
	}
}

// WithLogger sets the logger for the Recorder.
func WithLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRecorder loads previously persisted counters and returns a
// write-through recorder. A missing or unreadable document starts the
// counters at zero.
func NewRecorder(ctx context.Context, blobs kvstore.Store, opts ...RecorderOption) (*Recorder, error) {
	if blobs == nil {
		return nil, ErrStorageNil
	}

	r := &Recorder{
		blobs:  blobs,
		key:    DefaultStorageKey,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	blob, err := blobs.Get(ctx, r.key)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		// First run, start at zero.
	case err != nil:
		r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to load notification analytics, starting at zero",
			slog.String("key", r.key),
			slog.String("error", err.Error()))
	default:
		if err := json.Unmarshal(blob, &r.counters); err != nil {
			r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to parse notification analytics, starting at zero",
				slog.String("key", r.key),
				slog.String("error", err.Error()))
			r.counters = Counters{}
		}
	}

	return r, nil
}

// Sent records a successful delivery.
func (r *Recorder) Sent(ctx context.Context) { r.record(ctx, "sent") }

// Failed records a permanent delivery failure.
func (r *Recorder) Failed(ctx context.Context) { r.record(ctx, "failed") }

// Clicked records a user click on a displayed notification.
func (r *Recorder) Clicked(ctx context.Context) { r.record(ctx, "clicked") }

// Dismissed records a notification dismissed without interaction.
func (r *Recorder) Dismissed(ctx context.Context) { r.record(ctx, "dismissed") }

// Retried records a retry attempt, regardless of its outcome.
func (r *Recorder) Retried(ctx context.Context) { r.record(ctx, "retried") }

func (r *Recorder) record(ctx context.Context, event string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch event {
	case "sent":
		r.counters.Sent++
	case "failed":
		r.counters.Failed++
	case "clicked":
		r.counters.Clicked++
	case "dismissed":
		r.counters.Dismissed++
	case "retried":
		r.counters.Retried++
	}

	if r.metrics != nil {
		r.metrics.inc(event)
	}

	r.persist(ctx)
}

// Snapshot returns the current counter values.
func (r *Recorder) Snapshot() Counters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters
}

// Reset zeroes every counter and persists the empty document.
func (r *Recorder) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters = Counters{}
	r.persist(ctx)
}

// persist writes the counters through to storage. Callers hold r.mu.
func (r *Recorder) persist(ctx context.Context) {
	blob, err := json.Marshal(r.counters)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "failed to serialize notification analytics",
			slog.String("error", err.Error()))
		return
	}
	if err := r.blobs.Set(ctx, r.key, blob); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to persist notification analytics",
			slog.String("key", r.key),
			slog.String("error", err.Error()))
	}
}
