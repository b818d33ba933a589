// Package scheduler abstracts timers behind an explicit interface so
// time-driven control flow (batch flush windows, retry backoff,
// periodic cleanup) is injectable and deterministic under test.
//
// Real wraps the runtime clock and time.AfterFunc. Fake is a manually
// advanced clock whose callbacks fire synchronously inside Advance.
package scheduler
