// Package settings manages the user-configurable notification
// preferences: sound, vibration, batching, quiet hours, and per-type
// priority overrides.
//
// The Store loads the persisted JSON document once at construction and
// writes the full document back on every mutation (write-through).
// A missing or corrupted document silently falls back to Defaults.
package settings
