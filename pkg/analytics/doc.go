// Package analytics counts sent, failed, clicked, dismissed, and
// retried notification events.
//
// Counters are loaded once at construction, incremented in memory, and
// written through to the blob store after every mutation. Persistence
// failures are logged and swallowed: observability must never block
// delivery. An optional Prometheus collector mirrors the counters for
// scrape-based monitoring.
package analytics
