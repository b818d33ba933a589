// Package eventbus provides a small typed publish/subscribe bus used
// to relay notification click and action events to collaborators.
//
// Publishing is non-blocking: events are dropped for subscribers whose
// buffer is full, so a stalled consumer can never back-pressure the
// delivery engine.
package eventbus
