package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Valid(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		want     bool
	}{
		{"low", PriorityLow, true},
		{"medium", PriorityMedium, true},
		{"high", PriorityHigh, true},
		{"critical", PriorityCritical, true},
		{"zero", Priority(0), false},
		{"above range", Priority(5), false},
		{"negative", Priority(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.Valid())
		})
	}
}

func TestPriority_Semantics(t *testing.T) {
	t.Run("only high and critical bypass quiet hours", func(t *testing.T) {
		assert.False(t, PriorityLow.BypassesQuietHours())
		assert.False(t, PriorityMedium.BypassesQuietHours())
		assert.True(t, PriorityHigh.BypassesQuietHours())
		assert.True(t, PriorityCritical.BypassesQuietHours())
	})

	t.Run("only low and medium are batchable", func(t *testing.T) {
		assert.True(t, PriorityLow.Batchable())
		assert.True(t, PriorityMedium.Batchable())
		assert.False(t, PriorityHigh.Batchable())
		assert.False(t, PriorityCritical.Batchable())
	})
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"medium", PriorityMedium, false},
		{"normal", PriorityMedium, false},
		{"HIGH", PriorityHigh, false},
		{"critical", PriorityCritical, false},
		{"urgent", PriorityCritical, false},
		{" high ", PriorityHigh, false},
		{"extreme", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPriority)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Defaults(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	t.Run("task assigned defaults to medium", func(t *testing.T) {
		profile := reg.Type(TypeTaskAssigned)
		assert.Equal(t, PriorityMedium, profile.Priority)
		assert.Equal(t, "%d New Tasks Assigned", profile.AggregateTitle)
	})

	t.Run("overdue deadlines are critical", func(t *testing.T) {
		assert.Equal(t, PriorityCritical, reg.Type(TypeDeadlineOverdue).Priority)
	})

	t.Run("deadline approaching aggregates fast", func(t *testing.T) {
		assert.True(t, reg.Type(TypeDeadlineApproaching).FastAggregate)
		assert.False(t, reg.Type(TypeTaskAssigned).FastAggregate)
	})

	t.Run("unknown type falls back to system update profile", func(t *testing.T) {
		assert.Equal(t, reg.Type(TypeSystemUpdate), reg.Type(Type("bogus")))
		assert.False(t, reg.Known(Type("bogus")))
	})

	t.Run("every registered type has a valid priority and aggregate copy", func(t *testing.T) {
		for _, typ := range reg.Types() {
			profile := reg.Type(typ)
			assert.True(t, profile.Priority.Valid(), "type %s", typ)
			assert.NotEmpty(t, profile.AggregateTitle, "type %s", typ)
			assert.NotEmpty(t, profile.AggregateBody, "type %s", typ)
		}
	})

	t.Run("priority profile lookup falls back to medium", func(t *testing.T) {
		assert.Equal(t, reg.Priority(PriorityMedium), reg.Priority(Priority(9)))
	})
}

func TestRegistry_Options(t *testing.T) {
	t.Run("priority override", func(t *testing.T) {
		reg, err := New(WithTypePriority(TypeTaskAssigned, PriorityHigh))
		require.NoError(t, err)
		assert.Equal(t, PriorityHigh, reg.Type(TypeTaskAssigned).Priority)
	})

	t.Run("invalid priority override rejected", func(t *testing.T) {
		_, err := New(WithTypePriority(TypeTaskAssigned, Priority(7)))
		assert.ErrorIs(t, err, ErrInvalidOverride)
	})

	t.Run("override for unknown type rejected", func(t *testing.T) {
		_, err := New(WithTypePriority(Type("bogus"), PriorityHigh))
		assert.ErrorIs(t, err, ErrUnknownType)
	})
}

func TestRegistry_OverrideYAML(t *testing.T) {
	t.Run("applies type and priority overrides", func(t *testing.T) {
		doc := []byte(`
types:
  task_assigned:
    priority: high
    icon: /custom/task.png
  deadline_approaching:
    fast_aggregate: false
priorities:
  critical:
    color: "#FF0000"
`)
		reg, err := New(WithOverrideYAML(doc))
		require.NoError(t, err)

		profile := reg.Type(TypeTaskAssigned)
		assert.Equal(t, PriorityHigh, profile.Priority)
		assert.Equal(t, "/custom/task.png", profile.Icon)
		// Untouched fields keep their defaults.
		assert.Equal(t, "/tasks", profile.URL)

		assert.False(t, reg.Type(TypeDeadlineApproaching).FastAggregate)
		assert.Equal(t, "#FF0000", reg.Priority(PriorityCritical).Color)
		assert.Equal(t, "urgent", reg.Priority(PriorityCritical).Sound)
	})

	t.Run("unknown type in document rejected", func(t *testing.T) {
		_, err := New(WithOverrideYAML([]byte("types:\n  nope:\n    priority: high\n")))
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("malformed document rejected", func(t *testing.T) {
		_, err := New(WithOverrideYAML([]byte("types: [not a map")))
		assert.ErrorIs(t, err, ErrInvalidOverride)
	})
}
