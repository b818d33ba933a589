package scheduler

import "time"

// Cancel stops a scheduled callback. It reports whether the callback
// was prevented from running; false means it already fired or was
// canceled before.
type Cancel func() bool

// Scheduler abstracts the clock and one-shot timers so engine logic
// driven by batch windows, retry backoff, and periodic cleanup can be
// tested deterministically against a fake implementation.
type Scheduler interface {
	// Now returns the current time.
	Now() time.Time

	// After schedules fn to run once after d and returns a cancel handle.
	// The callback runs on its own goroutine in real implementations.
	After(d time.Duration, fn func()) Cancel
}

// Real is the production Scheduler backed by the runtime timers.
type Real struct{}

// NewReal creates a Scheduler backed by the wall clock.
func NewReal() *Real {
	return &Real{}
}

func (*Real) Now() time.Time {
	return time.Now()
}

func (*Real) After(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
