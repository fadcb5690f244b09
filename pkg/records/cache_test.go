package records

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestCache creates a cache backed by a miniredis instance.
func setupTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := NewCache(&redis.Options{Addr: mr.Addr()}, ttl)
	t.Cleanup(func() { cache.Close() })

	return cache, mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := setupTestCache(t, time.Hour)
	ctx := context.Background()

	t.Run("empty cache is a miss", func(t *testing.T) {
		snap, hit, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Nil(t, snap)
	})

	t.Run("put then get returns an equivalent snapshot", func(t *testing.T) {
		original := testSnapshot(t)
		require.NoError(t, cache.Put(ctx, original))

		cached, hit, err := cache.Get(ctx)
		require.NoError(t, err)
		require.True(t, hit)

		assert.Equal(t, original.Models, cached.Models)
		assert.Equal(t, original.Tasks, cached.Tasks)
		assert.Equal(t, original.Runs, cached.Runs)
		assert.Equal(t, original.Scores, cached.Scores)

		// Lookup maps are rebuilt on the cached copy.
		model, ok := cached.ModelByID("m1")
		require.True(t, ok)
		require.NotNil(t, model.ReleaseDate)
	})

	t.Run("fetched_at is recorded", func(t *testing.T) {
		fetchedAt, ok, err := cache.FetchedAt(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.WithinDuration(t, time.Now(), fetchedAt, time.Minute)
	})
}

func TestCacheInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, testSnapshot(t)))
	require.NoError(t, cache.Invalidate(ctx))

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	_, ok, err := cache.FetchedAt(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCachePartialEviction(t *testing.T) {
	cache, mr := setupTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, testSnapshot(t)))

	// Simulate one collection key being evicted; the whole snapshot must
	// read as a miss, never as an inconsistent partial snapshot.
	mr.Del(SnapshotKey(CollectionScores))

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheTTLExpiry(t *testing.T) {
	cache, mr := setupTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, testSnapshot(t)))

	mr.FastForward(2 * time.Minute)

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}
