package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the behavior every Store implementation must share.
func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "settings", []byte(`{"sound":true}`)))
		blob, err := store.Get(ctx, "settings")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"sound":true}`), blob)
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "counter", []byte("1")))
		require.NoError(t, store.Set(ctx, "counter", []byte("2")))
		blob, err := store.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), blob)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", []byte("x")))
		require.NoError(t, store.Delete(ctx, "gone"))
		_, err := store.Get(ctx, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete of missing key is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed"))
	})

	t.Run("empty key rejected", func(t *testing.T) {
		_, err := store.Get(ctx, "")
		assert.ErrorIs(t, err, ErrKeyEmpty)
		assert.ErrorIs(t, store.Set(ctx, "", nil), ErrKeyEmpty)
		assert.ErrorIs(t, store.Delete(ctx, ""), ErrKeyEmpty)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte("immutable")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'X'

	blob, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), blob)

	// Mutating the returned slice must not affect stored data either.
	blob[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), again)
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "analytics", []byte(`{"sent":42}`)))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	blob, err := reopened.Get(ctx, "analytics")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"sent":42}`), blob)
}

func TestFileStore_KeysAreFilesystemSafe(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	key := "user/123:settings?v=2"
	require.NoError(t, store.Set(ctx, key, []byte("ok")))
	blob, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), blob)
}

func TestNewRedisStore_NilClient(t *testing.T) {
	_, err := NewRedisStore(nil, "notify:")
	assert.ErrorIs(t, err, ErrNilClient)
}
