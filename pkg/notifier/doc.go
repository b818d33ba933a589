// Package notifier implements the notification delivery engine: a
// routing layer between business events and the host platform's
// notification surface.
//
// A Request submitted through Show passes a series of gates before it
// reaches the platform sink:
//
//   - engine closed or desktop notifications disabled: rejected
//   - host offline: held in the offline queue, drained FIFO on reconnect
//   - quiet hours (unless priority high or critical): held until the
//     window ends
//   - batchable priority: debounced into a per-type aggregation window
//   - otherwise: delivered immediately
//
// Display failures retry with exponential backoff (1s, 2s, 4s by
// default) and land in FailedEntries once retries are exhausted. User
// interactions are relayed through the Clicks and Actions event
// streams, and every outcome feeds the analytics recorder.
//
// Basic usage:
//
//	engine, err := notifier.New(ctx, desktopSink,
//		notifier.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	defer engine.Close()
//
//	res := engine.Show(ctx, notifier.TaskAssigned("42", "Ship the report", "Alex"))
//	if !res.Success {
//		logger.Warn("notification rejected", slog.String("reason", res.Reason))
//	}
//
// Show never panics and never blocks on platform delivery; the Result
// reports which path accepted the request. Deterministic tests replace
// the wall clock with scheduler.NewFake and the platform with
// sink.NewMemorySink.
package notifier
