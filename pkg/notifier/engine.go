package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/analytics"
	"github.com/dmitrymomot/notifykit/pkg/connectivity"
	"github.com/dmitrymomot/notifykit/pkg/eventbus"
	"github.com/dmitrymomot/notifykit/pkg/kvstore"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/registry"
	"github.com/dmitrymomot/notifykit/pkg/scheduler"
	"github.com/dmitrymomot/notifykit/pkg/settings"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

// Engine is the notification delivery engine: it gates requests on
// permission, quiet hours, and connectivity, aggregates floods into
// batches, retries transient platform failures with bounded backoff,
// and records delivery analytics.
//
// All queues are in-memory for the life of the engine; only settings
// and analytics survive restarts.
type Engine struct {
	mu sync.Mutex

	registry  *registry.Registry
	settings  *settings.Store
	analytics *analytics.Recorder
	sink      sink.Sink
	sched     scheduler.Scheduler
	monitor   connectivity.Monitor
	logger    *slog.Logger
	cfg       Config

	online bool
	closed bool

	batches     map[string]*batch
	retries     map[string]*retryRecord
	retryTimers map[string]scheduler.Cancel
	offline     []*Notification
	quiet       []*Notification
	quietWake   scheduler.Cancel
	failed      []FailedEntry

	clicks  *eventbus.Bus[ClickEvent]
	actions *eventbus.Bus[ActionEvent]

	cleanupCancel scheduler.Cancel
	watchCancel   context.CancelFunc
	watchDone     chan struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the default type/priority registry.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithSettings replaces the default in-memory settings store.
func WithSettings(s *settings.Store) Option {
	return func(e *Engine) {
		if s != nil {
			e.settings = s
		}
	}
}

// WithAnalytics replaces the default in-memory analytics recorder.
func WithAnalytics(r *analytics.Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.analytics = r
		}
	}
}

// WithScheduler replaces the wall-clock scheduler, typically with a
// fake for deterministic tests.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sched = s
		}
	}
}

// WithMonitor replaces the default always-online connectivity monitor.
func WithMonitor(m connectivity.Monitor) Option {
	return func(e *Engine) {
		if m != nil {
			e.monitor = m
		}
	}
}

// WithLogger sets the logger for the Engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConfig overrides the engine tunables.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg.sanitize()
	}
}

// New creates a delivery engine over the given notification sink.
// Unconfigured dependencies fall back to in-memory defaults, so a bare
// New(ctx, sink) yields a fully working engine for a single session.
func New(ctx context.Context, snk sink.Sink, opts ...Option) (*Engine, error) {
	if snk == nil {
		return nil, ErrSinkNil
	}

	e := &Engine{
		sink:        snk,
		sched:       scheduler.NewReal(),
		monitor:     connectivity.NewManual(true),
		logger:      slog.Default(),
		cfg:         DefaultConfig(),
		batches:     make(map[string]*batch),
		retries:     make(map[string]*retryRecord),
		retryTimers: make(map[string]scheduler.Cancel),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.settings == nil {
		store, err := settings.NewStore(ctx, kvstore.NewMemoryStore(), settings.WithLogger(e.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create settings store: %w", err)
		}
		e.settings = store
	}
	if e.analytics == nil {
		rec, err := analytics.NewRecorder(ctx, kvstore.NewMemoryStore(), analytics.WithLogger(e.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create analytics recorder: %w", err)
		}
		e.analytics = rec
	}
	if e.registry == nil {
		reg, err := registry.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create registry: %w", err)
		}
		e.registry = reg
	}

	e.clicks = eventbus.New[ClickEvent](e.cfg.EventBuffer)
	e.actions = eventbus.New[ActionEvent](e.cfg.EventBuffer)
	e.online = e.monitor.Online()

	watchCtx, cancel := context.WithCancel(context.Background())
	e.watchCancel = cancel
	e.watchDone = make(chan struct{})
	go e.watchConnectivity(watchCtx)

	e.scheduleCleanup()

	return e, nil
}

// Show accepts a notification request and routes it through the
// quiet-hours gate, the batching engine, or immediate delivery. It
// never panics and never blocks on delivery: the returned Result
// reflects only which path accepted the request.
func (e *Engine) Show(ctx context.Context, req Request) (res Result) {
	// Hard contract: callers fire-and-forget, so internal failures must
	// surface as a Result, never as a panic.
	defer func() {
		if r := recover(); r != nil {
			e.logger.LogAttrs(ctx, slog.LevelError, "panic in notification delivery",
				slog.Any("panic", r),
				logger.NotificationType(string(req.Type)))
			res = Result{Success: false, Reason: ReasonInternal}
		}
	}()

	n := e.build(req)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return Result{Success: false, Reason: ReasonClosed, ID: n.ID}
	}
	online := e.online
	e.mu.Unlock()

	st := e.settings.Current()
	if !st.DesktopEnabled {
		return Result{Success: false, Reason: ReasonDisabled, ID: n.ID}
	}

	if !online {
		e.enqueueOffline(n)
		return Result{Success: true, Queued: true, ID: n.ID}
	}

	// Gate on permission before batching or deferring: the synchronous
	// Result must report an undeliverable request, not accept it into a
	// window that can only fail later.
	if e.sink.Permission() != sink.PermissionGranted {
		return e.holdForPermission(ctx, n)
	}

	if !n.Priority.BypassesQuietHours() && st.QuietHours.Contains(e.sched.Now()) {
		e.deferUntilQuietEnd(n, st.QuietHours)
		return Result{Success: true, Deferred: true, ID: n.ID}
	}

	if shouldBatch(st, n) {
		e.addToBatch(n)
		return Result{Success: true, Batched: true, ID: n.ID}
	}

	return e.showImmediate(ctx, n)
}

// build resolves a Request into a Notification, filling priority,
// icon, URL, sound, and vibration defaults from settings and registry.
func (e *Engine) build(req Request) *Notification {
	profile := e.registry.Type(req.Type)

	priority := req.Priority
	if !priority.Valid() {
		priority = e.settings.Current().PriorityFor(req.Type, profile.Priority)
	}
	prioProfile := e.registry.Priority(priority)

	n := &Notification{
		ID:                 uuid.New().String(),
		Title:              req.Title,
		Message:            req.Message,
		Type:               req.Type,
		Priority:           priority,
		Data:               req.Data,
		Actions:            req.Actions,
		Icon:               req.Icon,
		Badge:              req.Badge,
		Persistent:         req.Persistent,
		Silent:             req.Silent,
		Tag:                req.Tag,
		Renotify:           req.Renotify,
		RequireInteraction: req.RequireInteraction,
		URL:                req.URL,
		Sound:              req.Sound,
		Vibrate:            req.Vibrate,
		Status:             StatusPending,
		CreatedAt:          e.sched.Now(),
	}

	// The platform surface accepts at most two action buttons; excess
	// buttons are dropped here so an oversized request cannot enter the
	// retry path as a phantom transient failure.
	if len(n.Actions) > sink.MaxActions {
		n.Actions = n.Actions[:sink.MaxActions]
	}

	if n.Icon == "" {
		n.Icon = profile.Icon
	}
	if n.URL == "" {
		n.URL = profile.URL
	}
	if n.Sound == "" {
		n.Sound = prioProfile.Sound
	}
	if len(n.Vibrate) == 0 {
		n.Vibrate = prioProfile.Vibration
	}
	if n.Tag == "" {
		n.Tag = fmt.Sprintf("%s_%d", n.Type, n.Priority)
	}

	return n
}

// transition moves a notification to the next lifecycle state,
// logging illegal moves instead of failing delivery over bookkeeping.
func (e *Engine) transition(n *Notification, next Status) {
	if !n.Status.CanTransition(next) {
		e.logger.LogAttrs(context.Background(), slog.LevelWarn, "illegal notification state transition",
			logger.NotificationID(n.ID),
			slog.String("from", string(n.Status)),
			slog.String("to", string(next)))
		return
	}
	n.Status = next
}

// Settings returns the underlying settings store.
func (e *Engine) Settings() *settings.Store {
	return e.settings
}

// Analytics returns the underlying analytics recorder.
func (e *Engine) Analytics() *analytics.Recorder {
	return e.analytics
}

// Online reports the engine's current view of host connectivity.
func (e *Engine) Online() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.online
}

// FailedEntries returns a snapshot of permanently failed notifications
// retained for diagnostics.
func (e *Engine) FailedEntries() []FailedEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]FailedEntry, len(e.failed))
	copy(out, e.failed)
	return out
}

// OfflineQueueLen reports how many notifications await reconnection.
func (e *Engine) OfflineQueueLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.offline)
}

// Close tears the engine down: every pending batch, retry, wake, and
// cleanup timer is canceled and all queues are emptied. Close is
// idempotent and used only at full teardown; queued notifications are
// dropped, not flushed.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true

	for key, b := range e.batches {
		if b.cancel != nil {
			b.cancel()
		}
		delete(e.batches, key)
	}
	for id, cancel := range e.retryTimers {
		cancel()
		delete(e.retryTimers, id)
	}
	clear(e.retries)
	if e.quietWake != nil {
		e.quietWake()
		e.quietWake = nil
	}
	if e.cleanupCancel != nil {
		e.cleanupCancel()
		e.cleanupCancel = nil
	}
	e.offline = nil
	e.quiet = nil
	e.failed = nil
	e.mu.Unlock()

	e.watchCancel()
	<-e.watchDone

	_ = e.clicks.Close()
	_ = e.actions.Close()

	e.logger.Info("notification engine closed")
	return nil
}

func (e *Engine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}
