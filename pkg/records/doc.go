// Package records defines the benchmark record model and the data-retrieval
// layer for the benchscope analytics tool.
//
// # Record Model
//
// Six flat record types mirror the remote record store: Organization,
// ModelGroup, Model, Task, BenchmarkRun and Score. Relationships are carried
// as natural keys (model_id, task path, run ID) rather than object pointers,
// exactly as the store serves them.
//
// # Snapshots
//
// Analysis never works against the store directly. A Snapshot is built once
// per invocation from the full record collections, resolving every
// relationship into lookup maps at construction time. All analyzer packages
// (internal/coverage, internal/timeline, internal/ranking, internal/matrix,
// internal/profile) consume snapshots and treat them as immutable.
//
// # Fetching and Caching
//
// Client fetches the record collections from the remote store over HTTP with
// offset-token pagination. Cache stores fetched collections in Redis under
// namespaced keys (benchscope:snapshot:{collection}) with a bounded TTL, so
// repeated CLI invocations don't re-download the full dataset. Load ties the
// two together: cache hit → snapshot, miss → fetch, populate, snapshot.
// Invalidation is caller-controlled; the analytics layer never assumes
// freshness and accepts any conforming snapshot.
package records
