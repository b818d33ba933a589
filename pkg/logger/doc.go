// Package logger builds configured slog.Logger instances for the
// toolkit's components.
//
// New applies functional options over production-safe defaults (JSON to
// stdout at info level); Config carries the same settings as env-tagged
// fields for loading through pkg/config:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(logger.WithConfig(cfg))
//	logger.SetAsDefault(log)
//
// Attribute helpers (Error, NotificationID, BatchKey, ...) keep log
// field names consistent across packages.
package logger
