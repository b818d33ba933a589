package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/kvstore"
	"github.com/dmitrymomot/notifykit/pkg/quiethours"
	"github.com/dmitrymomot/notifykit/pkg/registry"
)

func TestStore_DefaultsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(ctx, kvstore.NewMemoryStore())
	require.NoError(t, err)

	got := store.Current()
	assert.Equal(t, Defaults(), got)
	assert.True(t, got.SoundEnabled)
	assert.True(t, got.BatchingEnabled)
	assert.False(t, got.QuietHours.Enabled)
}

func TestStore_NilStorage(t *testing.T) {
	_, err := NewStore(context.Background(), nil)
	assert.ErrorIs(t, err, ErrStorageNil)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := kvstore.NewMemoryStore()

	store, err := NewStore(ctx, blobs)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, func(s *Settings) {
		s.SoundEnabled = false
		s.QuietHours = quiethours.Window{Enabled: true, Start: "22:00", End: "08:00"}
		s.Priority = map[registry.Type]registry.Priority{
			registry.TypeTaskAssigned: registry.PriorityHigh,
		}
	}))

	// A fresh store over the same blob must observe a deep-equal document.
	reloaded, err := NewStore(ctx, blobs)
	require.NoError(t, err)
	assert.Equal(t, store.Current(), reloaded.Current())
	assert.False(t, reloaded.Current().SoundEnabled)
	assert.True(t, reloaded.Current().QuietHours.Enabled)
}

func TestStore_WriteThrough(t *testing.T) {
	ctx := context.Background()
	blobs := kvstore.NewMemoryStore()
	store, err := NewStore(ctx, blobs)
	require.NoError(t, err)

	// The document must not exist before the first mutation.
	_, err = blobs.Get(ctx, DefaultStorageKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, store.Update(ctx, func(s *Settings) { s.BatchingEnabled = false }))

	blob, err := blobs.Get(ctx, DefaultStorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"batching_enabled":false`)
}

func TestStore_CorruptedBlobFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	blobs := kvstore.NewMemoryStore()
	require.NoError(t, blobs.Set(ctx, DefaultStorageKey, []byte("{not json")))

	store, err := NewStore(ctx, blobs)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), store.Current())
}

func TestStore_UnknownFieldsIgnored(t *testing.T) {
	// Documents written by newer versions may carry extra fields; they
	// must load without error.
	ctx := context.Background()
	blobs := kvstore.NewMemoryStore()
	require.NoError(t, blobs.Set(ctx, DefaultStorageKey,
		[]byte(`{"sound_enabled":false,"future_field":{"x":1}}`)))

	store, err := NewStore(ctx, blobs)
	require.NoError(t, err)
	assert.False(t, store.Current().SoundEnabled)
	assert.True(t, store.Current().VibrationEnabled)
}

func TestStore_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(ctx, kvstore.NewMemoryStore())
	require.NoError(t, err)

	t.Run("rejects malformed quiet hours", func(t *testing.T) {
		err := store.Update(ctx, func(s *Settings) {
			s.QuietHours = quiethours.Window{Enabled: true, Start: "29:00", End: "08:00"}
		})
		assert.ErrorIs(t, err, ErrInvalidSettings)
		// The failed mutation must not stick.
		assert.False(t, store.Current().QuietHours.Enabled)
	})

	t.Run("rejects out-of-range priority override", func(t *testing.T) {
		err := store.Update(ctx, func(s *Settings) {
			s.Priority = map[registry.Type]registry.Priority{
				registry.TypeTaskAssigned: registry.Priority(9),
			}
		})
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})
}

func TestStore_PriorityOverrides(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(ctx, kvstore.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, store.SetPriorityOverride(ctx, registry.TypeTaskAssigned, registry.PriorityCritical))
	got := store.Current()
	assert.Equal(t, registry.PriorityCritical, got.PriorityFor(registry.TypeTaskAssigned, registry.PriorityMedium))
	// Types without an override resolve to the fallback.
	assert.Equal(t, registry.PriorityLow, got.PriorityFor(registry.TypeTaskCompleted, registry.PriorityLow))

	require.NoError(t, store.ClearPriorityOverride(ctx, registry.TypeTaskAssigned))
	assert.Equal(t, registry.PriorityMedium,
		store.Current().PriorityFor(registry.TypeTaskAssigned, registry.PriorityMedium))
}

func TestSettings_CloneIsDeep(t *testing.T) {
	s := Defaults()
	s.Priority = map[registry.Type]registry.Priority{registry.TypeTaskAssigned: registry.PriorityHigh}

	clone := s.Clone()
	clone.Priority[registry.TypeTaskAssigned] = registry.PriorityLow

	assert.Equal(t, registry.PriorityHigh, s.Priority[registry.TypeTaskAssigned])
}
