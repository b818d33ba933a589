package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Scheduler for tests. Callbacks fire
// synchronously inside Advance, in due-time order, with ties broken by
// scheduling order. Callbacks may schedule further timers; those fire
// within the same Advance call when they come due before its target.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers map[int]*fakeTimer
}

type fakeTimer struct {
	id  int
	due time.Time
	fn  func()
}

// NewFake creates a fake scheduler starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{
		now:    start,
		timers: make(map[int]*fakeTimer),
	}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) After(d time.Duration, fn func()) Cancel {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	id := f.seq
	f.timers[id] = &fakeTimer{id: id, due: f.now.Add(d), fn: fn}

	return func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.timers[id]; !ok {
			return false
		}
		delete(f.timers, id)
		return true
	}
}

// Advance moves the clock forward by d, firing every timer that comes
// due along the way.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)

	for {
		next := f.nextDueLocked(target)
		if next == nil {
			break
		}
		delete(f.timers, next.id)
		if next.due.After(f.now) {
			f.now = next.due
		}
		// Run without the lock so callbacks can schedule or cancel timers.
		f.mu.Unlock()
		next.fn()
		f.mu.Lock()
	}

	f.now = target
	f.mu.Unlock()
}

// Pending returns the number of timers that have not fired or been canceled.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// NextDelay returns the duration until the earliest pending timer.
// The second return value is false when nothing is scheduled.
func (f *Fake) NextDelay() (time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	timers := f.sortedLocked()
	if len(timers) == 0 {
		return 0, false
	}
	return timers[0].due.Sub(f.now), true
}

func (f *Fake) nextDueLocked(target time.Time) *fakeTimer {
	timers := f.sortedLocked()
	if len(timers) == 0 || timers[0].due.After(target) {
		return nil
	}
	return timers[0]
}

func (f *Fake) sortedLocked() []*fakeTimer {
	timers := make([]*fakeTimer, 0, len(f.timers))
	for _, t := range f.timers {
		timers = append(timers, t)
	}
	sort.Slice(timers, func(i, j int) bool {
		if timers[i].due.Equal(timers[j].due) {
			return timers[i].id < timers[j].id
		}
		return timers[i].due.Before(timers[j].due)
	})
	return timers
}
