// Package notifykit is a notification delivery engine for Go
// applications: priority-aware routing, flood aggregation, quiet
// hours, offline queueing, bounded retries, and delivery analytics
// over a pluggable platform surface.
//
// The root package is a thin facade; the building blocks live under
// pkg/:
//
//   - pkg/notifier: the delivery engine (Show, batching, retry,
//     offline and quiet-hours queues, permission flow, events)
//   - pkg/registry: notification types, priorities, and their
//     presentation defaults, with YAML overrides
//   - pkg/settings: persisted user preferences
//   - pkg/analytics: delivery counters with optional Prometheus export
//   - pkg/sink: the platform surface, desktop (beeep) and a
//     scriptable in-memory fake
//   - pkg/kvstore: blob persistence over memory, file, or Redis
//   - pkg/scheduler, pkg/connectivity, pkg/eventbus, pkg/quiethours:
//     supporting infrastructure
//
// Quick start:
//
//	engine, err := notifykit.New(ctx, "myapp")
//	if err != nil {
//		return err
//	}
//	defer engine.Close()
//
//	engine.Show(ctx, notifier.TaskAssigned("42", "Ship the report", "Alex"))
package notifykit
