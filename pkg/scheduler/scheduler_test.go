package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestFake_FiresInDueOrder(t *testing.T) {
	f := NewFake(epoch)

	var order []string
	f.After(3*time.Second, func() { order = append(order, "c") })
	f.After(1*time.Second, func() { order = append(order, "a") })
	f.After(2*time.Second, func() { order = append(order, "b") })

	f.Advance(5 * time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, f.Pending())
	assert.Equal(t, epoch.Add(5*time.Second), f.Now())
}

func TestFake_TiesFireInScheduleOrder(t *testing.T) {
	f := NewFake(epoch)

	var order []int
	f.After(time.Second, func() { order = append(order, 1) })
	f.After(time.Second, func() { order = append(order, 2) })

	f.Advance(time.Second)
	assert.Equal(t, []int{1, 2}, order)
}

func TestFake_DoesNotFireEarly(t *testing.T) {
	f := NewFake(epoch)

	var fired atomic.Bool
	f.After(5*time.Second, func() { fired.Store(true) })

	f.Advance(4999 * time.Millisecond)
	assert.False(t, fired.Load())
	assert.Equal(t, 1, f.Pending())

	f.Advance(time.Millisecond)
	assert.True(t, fired.Load())
}

func TestFake_Cancel(t *testing.T) {
	f := NewFake(epoch)

	var fired bool
	cancel := f.After(time.Second, func() { fired = true })

	assert.True(t, cancel())
	// Second cancel reports the timer was already gone.
	assert.False(t, cancel())

	f.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestFake_CallbackSchedulesFollowup(t *testing.T) {
	// A retry chain schedules its next attempt from within the previous
	// one; a single Advance must walk the whole chain.
	f := NewFake(epoch)

	var fires []time.Time
	var schedule func(d time.Duration)
	schedule = func(d time.Duration) {
		f.After(d, func() {
			fires = append(fires, f.Now())
			if len(fires) < 3 {
				schedule(d * 2)
			}
		})
	}
	schedule(time.Second)

	f.Advance(10 * time.Second)

	require.Len(t, fires, 3)
	assert.Equal(t, epoch.Add(1*time.Second), fires[0])
	assert.Equal(t, epoch.Add(3*time.Second), fires[1])
	assert.Equal(t, epoch.Add(7*time.Second), fires[2])
}

func TestFake_NextDelay(t *testing.T) {
	f := NewFake(epoch)

	_, ok := f.NextDelay()
	assert.False(t, ok)

	f.After(5*time.Second, func() {})
	f.After(2*time.Second, func() {})

	d, ok := f.NextDelay()
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, d)
}

func TestReal_AfterAndCancel(t *testing.T) {
	r := NewReal()

	done := make(chan struct{})
	r.After(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	var fired atomic.Bool
	cancel := r.After(time.Hour, func() { fired.Store(true) })
	assert.True(t, cancel())
	assert.False(t, fired.Load())

	assert.WithinDuration(t, time.Now(), r.Now(), time.Second)
}
