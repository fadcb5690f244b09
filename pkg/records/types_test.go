package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStatusSucceeded(t *testing.T) {
	assert.True(t, RunStatusSuccess.Succeeded())

	// Every non-Success status counts as failed or incomplete.
	for _, status := range []RunStatus{RunStatusFailure, RunStatusRunning, RunStatusCancelled, RunStatus("Weird")} {
		assert.False(t, status.Succeeded(), "status %q must not count as success", status)
	}
}

func TestValidate(t *testing.T) {
	t.Run("model requires model_id", func(t *testing.T) {
		assert.Error(t, (&Model{}).Validate())
		assert.NoError(t, (&Model{ModelID: "m1"}).Validate())
	})

	t.Run("task requires path", func(t *testing.T) {
		assert.Error(t, (&Task{}).Validate())
		assert.NoError(t, (&Task{Path: "bench.task.math"}).Validate())
	})

	t.Run("run requires ID, model, task and status", func(t *testing.T) {
		valid := BenchmarkRun{ID: "r1", ModelID: "m1", TaskPath: "t1", Status: RunStatusSuccess}
		assert.NoError(t, valid.Validate())

		missingModel := valid
		missingModel.ModelID = ""
		assert.Error(t, missingModel.Validate())

		missingTask := valid
		missingTask.TaskPath = ""
		assert.Error(t, missingTask.Validate())

		missingStatus := valid
		missingStatus.Status = ""
		assert.Error(t, missingStatus.Validate())
	})

	t.Run("score rejects negative stderr", func(t *testing.T) {
		valid := Score{ID: "s1", RunID: "r1", Scorer: "choice", Mean: 0.5, Stderr: 0.0}
		assert.NoError(t, valid.Validate())

		negative := valid
		negative.Stderr = -0.1
		assert.Error(t, negative.Validate())

		noScorer := valid
		noScorer.Scorer = ""
		assert.Error(t, noScorer.Validate())
	})
}
