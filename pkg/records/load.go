package records

import (
	"context"
	"fmt"
	"time"
)

// Fetcher retrieves complete record collections from the store.
// *Client is the production implementation; tests substitute fakes.
type Fetcher interface {
	FetchOrganizations(ctx context.Context) ([]Organization, error)
	FetchModelGroups(ctx context.Context) ([]ModelGroup, error)
	FetchModels(ctx context.Context) ([]Model, error)
	FetchTasks(ctx context.Context) ([]Task, error)
	FetchBenchmarkRuns(ctx context.Context) ([]BenchmarkRun, error)
	FetchScores(ctx context.Context) ([]Score, error)
}

// LoadResult is a materialized snapshot plus provenance for the CLI's
// "data fetched in Xs" message.
type LoadResult struct {
	Snapshot  *Snapshot
	FromCache bool
	Elapsed   time.Duration
}

// Load produces a snapshot, serving from the cache when possible and
// fetching every collection from the store otherwise. A nil cache disables
// memoization entirely. Cache write failures are returned, not swallowed.
func Load(ctx context.Context, fetcher Fetcher, cache *Cache) (*LoadResult, error) {
	start := time.Now()

	if cache != nil {
		snap, hit, err := cache.Get(ctx)
		if err != nil {
			return nil, err
		}
		if hit {
			return &LoadResult{Snapshot: snap, FromCache: true, Elapsed: time.Since(start)}, nil
		}
	}

	orgs, err := fetcher.FetchOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}
	groups, err := fetcher.FetchModelGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model groups: %w", err)
	}
	models, err := fetcher.FetchModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch models: %w", err)
	}
	tasks, err := fetcher.FetchTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	runs, err := fetcher.FetchBenchmarkRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch benchmark runs: %w", err)
	}
	scores, err := fetcher.FetchScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}

	snap := NewSnapshot(orgs, groups, models, tasks, runs, scores)

	if cache != nil {
		if err := cache.Put(ctx, snap); err != nil {
			return nil, err
		}
	}

	return &LoadResult{Snapshot: snap, FromCache: false, Elapsed: time.Since(start)}, nil
}
