package records

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the explicit memoization layer for record store fetches, backed
// by Redis. A cached snapshot is a set of JSON-encoded collections under
// namespaced keys plus a fetched_at marker; all keys carry the same TTL.
//
// Invalidation is caller-controlled (the --refresh CLI flag). The analytics
// layer never sees the cache - it only receives materialized snapshots.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache creates a snapshot cache using the given Redis connection options.
// A ttl of zero means cached snapshots never expire on their own.
func NewCache(redisOpts *redis.Options, ttl time.Duration) *Cache {
	return &Cache{
		rdb: redis.NewClient(redisOpts),
		ttl: ttl,
	}
}

// Close closes the Redis connection. Implements io.Closer.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Get retrieves the cached snapshot. Returns (nil, false, nil) on a cache
// miss; any collection key missing makes the whole snapshot a miss, so a
// partially evicted cache never yields an inconsistent snapshot.
func (c *Cache) Get(ctx context.Context) (*Snapshot, bool, error) {
	keys := make([]string, len(allCollections))
	for i, collection := range allCollections {
		keys[i] = SnapshotKey(collection)
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached snapshot: %w", err)
	}

	payloads := make(map[string]string, len(allCollections))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// Key absent or expired - treat the whole snapshot as a miss.
			return nil, false, nil
		}
		payloads[allCollections[i]] = s
	}

	var (
		orgs   []Organization
		groups []ModelGroup
		models []Model
		tasks  []Task
		runs   []BenchmarkRun
		scores []Score
	)
	if err := decodeCached(payloads[CollectionOrganizations], &orgs); err != nil {
		return nil, false, err
	}
	if err := decodeCached(payloads[CollectionModelGroups], &groups); err != nil {
		return nil, false, err
	}
	if err := decodeCached(payloads[CollectionModels], &models); err != nil {
		return nil, false, err
	}
	if err := decodeCached(payloads[CollectionTasks], &tasks); err != nil {
		return nil, false, err
	}
	if err := decodeCached(payloads[CollectionRuns], &runs); err != nil {
		return nil, false, err
	}
	if err := decodeCached(payloads[CollectionScores], &scores); err != nil {
		return nil, false, err
	}

	return NewSnapshot(orgs, groups, models, tasks, runs, scores), true, nil
}

// Put stores a snapshot's collections in the cache, replacing any previous
// snapshot. All keys are written with the cache TTL.
func (c *Cache) Put(ctx context.Context, snap *Snapshot) error {
	entries := []struct {
		collection string
		value      any
	}{
		{CollectionOrganizations, snap.Organizations},
		{CollectionModelGroups, snap.Groups},
		{CollectionModels, snap.Models},
		{CollectionTasks, snap.Tasks},
		{CollectionRuns, snap.Runs},
		{CollectionScores, snap.Scores},
	}

	pipe := c.rdb.TxPipeline()
	for _, e := range entries {
		data, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("failed to encode %s for cache: %w", e.collection, err)
		}
		pipe.Set(ctx, SnapshotKey(e.collection), data, c.ttl)
	}
	pipe.Set(ctx, FetchedAtKey(), time.Now().UTC().Format(time.RFC3339), c.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write snapshot to cache: %w", err)
	}
	return nil
}

// Invalidate removes the cached snapshot, forcing the next Load to fetch
// from the store.
func (c *Cache) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, len(allCollections)+1)
	for _, collection := range allCollections {
		keys = append(keys, SnapshotKey(collection))
	}
	keys = append(keys, FetchedAtKey())

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot cache: %w", err)
	}
	return nil
}

// FetchedAt returns when the cached snapshot was fetched from the store.
// Returns (zero, false, nil) when no snapshot is cached.
func (c *Cache) FetchedAt(ctx context.Context) (time.Time, bool, error) {
	val, err := c.rdb.Get(ctx, FetchedAtKey()).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read snapshot fetch time: %w", err)
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid snapshot fetch time %q: %w", val, err)
	}
	return t, true, nil
}

func decodeCached(payload string, into any) error {
	if err := json.Unmarshal([]byte(payload), into); err != nil {
		return fmt.Errorf("failed to decode cached snapshot: %w", err)
	}
	return nil
}
