package records

import "fmt"

// Redis key schema for the snapshot cache.
//
// All cache keys follow the pattern: benchscope:snapshot:{collection}
// Each key holds one record collection as a JSON array. The collections of
// one snapshot are written together and expire together, so a partially
// present snapshot (some keys evicted) is treated as a cache miss.

// keyPrefix namespaces all benchscope cache keys on a shared Redis server.
const keyPrefix = "benchscope"

// Collection names, shared between the store client's URL paths and the
// cache's Redis keys.
const (
	CollectionOrganizations = "organizations"
	CollectionModelGroups   = "model_groups"
	CollectionModels        = "models"
	CollectionTasks         = "tasks"
	CollectionRuns          = "benchmark_runs"
	CollectionScores        = "scores"
)

// allCollections lists every collection a complete snapshot needs.
var allCollections = []string{
	CollectionOrganizations,
	CollectionModelGroups,
	CollectionModels,
	CollectionTasks,
	CollectionRuns,
	CollectionScores,
}

// SnapshotKey generates the Redis key for a cached record collection.
func SnapshotKey(collection string) string {
	return fmt.Sprintf("%s:snapshot:%s", keyPrefix, collection)
}

// FetchedAtKey generates the Redis key recording when the cached snapshot
// was fetched from the store.
func FetchedAtKey() string {
	return fmt.Sprintf("%s:snapshot:fetched_at", keyPrefix)
}
