package notifier_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notifier"
	"github.com/dmitrymomot/notifykit/pkg/registry"
	"github.com/dmitrymomot/notifykit/pkg/settings"
	"github.com/dmitrymomot/notifykit/pkg/sink"
)

func TestBatching(t *testing.T) {
	t.Parallel()

	t.Run("singleton passes through unchanged", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		engine, fake := newTestEngine(t, snk)

		res := engine.Show(context.Background(), notifier.TaskCompleted("9", "Archive logs", "Sam"))
		require.True(t, res.Success)
		assert.True(t, res.Batched)
		assert.Empty(t, snk.Displayed())

		fake.Advance(5 * time.Second)

		displayed := snk.Displayed()
		require.Len(t, displayed, 1)
		assert.Equal(t, "Task Completed", displayed[0].Payload.Title)
		assert.Equal(t, res.ID, displayed[0].Payload.Data["id"])
	})

	t.Run("burst collapses into aggregate", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		engine, fake := newTestEngine(t, snk)

		var ids []string
		for _, title := range []string{"Report", "Invoice", "Review"} {
			res := engine.Show(context.Background(), notifier.DeadlineApproaching("1", title, "soon"))
			require.True(t, res.Batched)
			ids = append(ids, res.ID)
		}

		// deadline_approaching opts into the shorter window.
		fake.Advance(2 * time.Second)

		displayed := snk.Displayed()
		require.Len(t, displayed, 1)
		p := displayed[0].Payload
		assert.Equal(t, "3 Deadline Reminders", p.Title)
		assert.Equal(t, "3 tasks are approaching their deadlines", p.Body)
		assert.True(t, p.Silent)
		assert.Equal(t, 3, p.Data["count"])
		assert.Equal(t, true, p.Data["aggregate"])
		assert.Equal(t, ids, p.Data["ids"])

		assert.Equal(t, uint64(1), engine.Analytics().Snapshot().Sent)
	})

	t.Run("debounce resets on new member", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		engine, fake := newTestEngine(t, snk)

		engine.Show(context.Background(), notifier.DeadlineApproaching("1", "First", "soon"))
		fake.Advance(time.Second)
		engine.Show(context.Background(), notifier.DeadlineApproaching("2", "Second", "soon"))

		fake.Advance(1999 * time.Millisecond)
		assert.Empty(t, snk.Displayed())

		fake.Advance(time.Millisecond)
		displayed := snk.Displayed()
		require.Len(t, displayed, 1)
		assert.Equal(t, "2 Deadline Reminders", displayed[0].Payload.Title)
	})

	t.Run("types batch independently", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		engine, fake := newTestEngine(t, snk)

		engine.Show(context.Background(), notifier.TaskAssigned("1", "Plan", "Alex"))
		engine.Show(context.Background(), notifier.TaskCompleted("2", "Ship", "Sam"))

		fake.Advance(5 * time.Second)

		displayed := snk.Displayed()
		require.Len(t, displayed, 2)
		assert.Equal(t, "New Task Assigned", displayed[0].Payload.Title)
		assert.Equal(t, "Task Completed", displayed[1].Payload.Title)
	})

	t.Run("require interaction exempts", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		engine, _ := newTestEngine(t, snk)

		res := engine.Show(context.Background(), notifier.Request{
			Title:              "Approve now",
			Message:            "Expense report needs a decision",
			Type:               registry.TypeTaskAssigned,
			RequireInteraction: true,
		})
		require.True(t, res.Success)
		assert.False(t, res.Batched)
		assert.Len(t, snk.Displayed(), 1)
	})

	t.Run("high priority never batches", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		engine, _ := newTestEngine(t, snk)

		res := engine.Show(context.Background(), notifier.SystemError("disk full"))
		require.True(t, res.Success)
		assert.False(t, res.Batched)
		assert.Len(t, snk.Displayed(), 1)
	})

	t.Run("batching disabled delivers immediately", func(t *testing.T) {
		t.Parallel()

		snk := sink.NewMemorySink()
		engine, _ := newTestEngine(t, snk)

		err := engine.Settings().Update(context.Background(), func(s *settings.Settings) {
			s.BatchingEnabled = false
		})
		require.NoError(t, err)

		res := engine.Show(context.Background(), notifier.TaskCompleted("3", "Deploy", "Kim"))
		require.True(t, res.Success)
		assert.False(t, res.Batched)
		assert.Len(t, snk.Displayed(), 1)
	})
}
