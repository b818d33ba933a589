package notifykit

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifier"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

// Re-exported engine types, so simple consumers need a single import.
type (
	// Engine is the notification delivery engine.
	Engine = notifier.Engine
	// Request is an inbound notification request.
	Request = notifier.Request
	// Result reports which delivery path accepted a request.
	Result = notifier.Result
	// Option configures the engine.
	Option = notifier.Option
)

// New creates a desktop-backed notification engine configured from the
// environment (NOTIFY_* variables, with an optional .env file). The
// appName is shown by the OS notification daemon and attached to every
// log record.
//
// For non-desktop surfaces or custom wiring, use pkg/notifier directly.
func New(ctx context.Context, appName string, opts ...Option) (*Engine, error) {
	var cfg notifier.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithConfig(logCfg),
		logger.WithAttr(slog.String("app", appName)),
	)
	snk := sink.NewDesktopSink(sink.WithAppName(appName))
	opts = append([]Option{
		notifier.WithConfig(cfg),
		notifier.WithLogger(log),
	}, opts...)

	return notifier.New(ctx, snk, opts...)
}
