package records

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	release := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	return NewSnapshot(
		[]Organization{{ID: "org-1", Name: "Epoch"}},
		[]ModelGroup{{ID: "grp-1", Name: "Family", OrganizationIDs: []string{"org-1", "org-gone"}}},
		[]Model{{ModelID: "m1", ReleaseDate: &release, GroupID: "grp-1"}},
		[]Task{{Path: "bench.task.math", Name: "MATH"}},
		[]BenchmarkRun{{ID: "run-1", ModelID: "m1", TaskPath: "bench.task.math", Status: RunStatusSuccess}},
		[]Score{
			{ID: "sc-1", RunID: "run-1", Scorer: "choice", Mean: 0.5, Stderr: 0.01},
			{ID: "sc-2", RunID: "run-gone", Scorer: "choice", Mean: 0.9, Stderr: 0.01},
		},
	)
}

func TestSnapshotLookups(t *testing.T) {
	snap := testSnapshot(t)

	t.Run("resolves models, tasks and runs by natural key", func(t *testing.T) {
		model, ok := snap.ModelByID("m1")
		require.True(t, ok)
		assert.Equal(t, "m1", model.ModelID)

		task, ok := snap.TaskByPath("bench.task.math")
		require.True(t, ok)
		assert.Equal(t, "MATH", task.Name)

		run, ok := snap.RunByID("run-1")
		require.True(t, ok)
		assert.Equal(t, RunStatusSuccess, run.Status)
	})

	t.Run("misses return ok=false", func(t *testing.T) {
		_, ok := snap.ModelByID("nope")
		assert.False(t, ok)
		_, ok = snap.TaskByPath("nope")
		assert.False(t, ok)
		_, ok = snap.RunByID("nope")
		assert.False(t, ok)
	})
}

func TestScoreContext(t *testing.T) {
	snap := testSnapshot(t)

	t.Run("resolves the full chain", func(t *testing.T) {
		run, model, task, ok := snap.ScoreContext(&snap.Scores[0])
		require.True(t, ok)
		assert.Equal(t, "run-1", run.ID)
		assert.Equal(t, "m1", model.ModelID)
		assert.Equal(t, "bench.task.math", task.Path)
	})

	t.Run("dangling run reference is not resolvable", func(t *testing.T) {
		_, _, _, ok := snap.ScoreContext(&snap.Scores[1])
		assert.False(t, ok)
	})
}

func TestModelOrganizations(t *testing.T) {
	snap := testSnapshot(t)

	t.Run("resolves via the model group, skipping dangling org IDs", func(t *testing.T) {
		model, ok := snap.ModelByID("m1")
		require.True(t, ok)

		orgs := snap.ModelOrganizations(model)
		require.Len(t, orgs, 1)
		assert.Equal(t, "Epoch", orgs[0].Name)
	})

	t.Run("unknown group yields nil", func(t *testing.T) {
		orphan := &Model{ModelID: "x", GroupID: "nope"}
		assert.Nil(t, snap.ModelOrganizations(orphan))
	})
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", &NotFoundError{Kind: "task", Key: "bench.gone"})

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "task not found: bench.gone")
	assert.False(t, IsNotFound(errors.New("something else")))
}
