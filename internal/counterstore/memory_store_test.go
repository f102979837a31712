package counterstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "counter", 4, 20*time.Millisecond))

	value, ok, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), value)

	time.Sleep(50 * time.Millisecond)

	_, ok, err = store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.False(t, ok, "expired key must read back as absent")
}
