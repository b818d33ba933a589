// Package connectivity tracks the host's online/offline state and
// publishes transitions to subscribers.
//
// Manual is driven by explicit SetOnline calls, for tests and for
// hosts that surface their own connectivity signals. Prober derives
// the state by periodically probing a well-known HTTP endpoint.
package connectivity
