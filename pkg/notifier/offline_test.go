package notifier_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/connectivity"
	"github.com/dmitrymomot/notifykit/pkg/notifier"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

func waitOnline(t *testing.T, engine *notifier.Engine, want bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		return engine.Online() == want
	}, time.Second, 5*time.Millisecond)
}

func TestOfflineQueue(t *testing.T) {
	t.Parallel()

	t.Run("queues while offline and drains in order", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		monitor := connectivity.NewManual(true)
		engine, _ := newTestEngine(t, snk, notifier.WithMonitor(monitor))

		monitor.SetOnline(false)
		waitOnline(t, engine, false)

		// The transition itself announces "Connection Lost".
		require.Len(t, snk.Displayed(), 1)
		assert.Equal(t, "Connection Lost", snk.Displayed()[0].Payload.Title)

		first := engine.Show(context.Background(), notifier.SystemError("first while offline"))
		second := engine.Show(context.Background(), notifier.SystemError("second while offline"))
		require.True(t, first.Success)
		assert.True(t, first.Queued)
		require.True(t, second.Success)
		assert.True(t, second.Queued)
		assert.Equal(t, 2, engine.OfflineQueueLen())
		assert.Len(t, snk.Displayed(), 1)

		monitor.SetOnline(true)
		waitOnline(t, engine, true)

		require.Eventually(t, func() bool {
			return len(snk.Displayed()) == 4
		}, time.Second, 5*time.Millisecond)

		displayed := snk.Displayed()
		assert.Equal(t, "Connection Restored", displayed[1].Payload.Title)
		assert.Equal(t, first.ID, displayed[2].Payload.Data["id"])
		assert.Equal(t, second.ID, displayed[3].Payload.Data["id"])
		assert.Equal(t, 0, engine.OfflineQueueLen())
	})

	t.Run("permission holds drain on reconnect", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink(sink.WithPermission(sink.PermissionDenied))
		monitor := connectivity.NewManual(true)
		engine, _ := newTestEngine(t, snk, notifier.WithMonitor(monitor))

		res := engine.Show(context.Background(), notifier.SystemError("held for permission"))
		require.False(t, res.Success)
		assert.Equal(t, notifier.ReasonNoPermission, res.Reason)
		require.Equal(t, 1, engine.OfflineQueueLen())

		snk.SetPermission(sink.PermissionGranted)
		monitor.SetOnline(false)
		waitOnline(t, engine, false)
		monitor.SetOnline(true)
		waitOnline(t, engine, true)

		require.Eventually(t, func() bool {
			return engine.OfflineQueueLen() == 0
		}, time.Second, 5*time.Millisecond)

		displayed := snk.Displayed()
		require.NotEmpty(t, displayed)
		assert.Equal(t, res.ID, displayed[len(displayed)-1].Payload.Data["id"])
	})

	t.Run("offline start reports queued result", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		monitor := connectivity.NewManual(false)
		engine, _ := newTestEngine(t, snk, notifier.WithMonitor(monitor))
		require.False(t, engine.Online())

		res := engine.Show(context.Background(), notifier.DailyTaskReminder(2))
		require.True(t, res.Success)
		assert.True(t, res.Queued)
		assert.False(t, res.Batched)
		assert.Empty(t, snk.Displayed())
	})

	t.Run("repeated offline signals are ignored", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		monitor := connectivity.NewManual(true)
		engine, _ := newTestEngine(t, snk, notifier.WithMonitor(monitor))

		monitor.SetOnline(false)
		waitOnline(t, engine, false)
		monitor.SetOnline(false)
		monitor.SetOnline(false)

		assert.Len(t, snk.Displayed(), 1)
	})
}
