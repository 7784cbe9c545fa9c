package cache

import (
	"context"
	"testing"
	"time"

	domaincache "kinoauth/internal/domain/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreForTest(t *testing.T) (domaincache.TTLStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewTTLStore(client), server
}

func TestTTLStore_PutAndGet(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	err := store.Put(ctx, "token-abc", "revoked", time.Minute)
	require.NoError(t, err)

	value, err := store.Get(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "revoked", value)
}

func TestTTLStore_GetMissingKey(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "never-stored")

	assert.ErrorIs(t, err, domaincache.ErrCacheMiss)
}

func TestTTLStore_EntryExpires(t *testing.T) {
	store, server := newStoreForTest(t)
	ctx := context.Background()

	err := store.Put(ctx, "short-lived", "value", time.Second)
	require.NoError(t, err)

	server.FastForward(2 * time.Second)

	_, err = store.Get(ctx, "short-lived")
	assert.ErrorIs(t, err, domaincache.ErrCacheMiss)
}

func TestTTLStore_PutReplacesValueAndTTL(t *testing.T) {
	store, server := newStoreForTest(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "key", "first", time.Second))
	require.NoError(t, store.Put(ctx, "key", "second", time.Minute))

	server.FastForward(2 * time.Second)

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestTTLStore_Delete(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "key", "value", time.Minute))
	require.NoError(t, store.Delete(ctx, "key"))

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, domaincache.ErrCacheMiss)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "key"))
}
