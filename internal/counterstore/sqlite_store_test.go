package counterstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "counters", "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	store := newTestSQLiteStore(t)

	value, ok, err := store.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(0), value)
}

func TestSQLiteStore_PutAndGet(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "counter", 7, time.Minute))

	value, ok, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), value)
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "counter", 1, time.Minute))
	require.NoError(t, store.Put(ctx, "counter", 2, time.Minute))

	value, ok, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), value)
}

func TestSQLiteStore_Expiry(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "counter", 5, 20*time.Millisecond))
	time.Sleep(50 * time.Millisecond)

	_, ok, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.False(t, ok, "expired key must read back as absent")
}

func TestSQLiteStore_SharedAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "counter", 3, time.Minute))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get(ctx, "counter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), value)
}
