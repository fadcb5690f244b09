package records

import (
	"fmt"
	"time"
)

// Organization represents an institution that owns or attributes model groups.
type Organization struct {
	ID   string `json:"id"`   // Store-assigned record identifier
	Name string `json:"name"` // Display name (e.g., "OpenAI")
}

// ModelGroup is the ownership unit linking one or more models to one or more
// organizations. A model belongs to exactly one group; a group may be shared
// between organizations (joint releases).
type ModelGroup struct {
	ID              string   `json:"id"`               // Store-assigned record identifier
	Name            string   `json:"name"`             // Display name (e.g., "GPT-4 family")
	OrganizationIDs []string `json:"organization_ids"` // Owning organization record IDs
}

// Model represents a single evaluated model snapshot.
type Model struct {
	ModelID     string     `json:"model_id"`               // Globally unique identifier (e.g., "claude-3-5-sonnet-20240620")
	ReleaseDate *time.Time `json:"release_date,omitempty"` // Calendar release date; nil when the store has none
	Developer   string     `json:"developer,omitempty"`    // Optional developer attribution (e.g., Hugging Face org)
	GroupID     string     `json:"group_id"`               // Owning ModelGroup record ID
}

// Task represents a benchmark task identified by a dot-delimited path.
type Task struct {
	Path string `json:"path"`           // Globally unique hierarchical path (e.g., "bench.task.gpqa.gpqa_diamond")
	Name string `json:"name,omitempty"` // Optional human-readable name
}

// RunStatus is the lifecycle state of a benchmark run.
// Only Success counts as a completed evaluation; every other value is
// treated as failed or incomplete for coverage purposes.
type RunStatus string

const (
	// RunStatusSuccess indicates the run completed and its scores are usable
	RunStatusSuccess RunStatus = "Success"

	// RunStatusFailure indicates the run failed before producing usable scores
	RunStatusFailure RunStatus = "Failure"

	// RunStatusRunning indicates the run is still in progress
	RunStatusRunning RunStatus = "Running"

	// RunStatusCancelled indicates the run was aborted
	RunStatusCancelled RunStatus = "Cancelled"
)

// Succeeded reports whether the status counts as a completed evaluation.
func (s RunStatus) Succeeded() bool {
	return s == RunStatusSuccess
}

// BenchmarkRun represents one evaluation of one model on one task.
// A (model, task) pair may have any number of runs, successful or not.
type BenchmarkRun struct {
	ID        string    `json:"id"`                   // Store-assigned record identifier
	ModelID   string    `json:"model_id"`             // Evaluated model
	TaskPath  string    `json:"task_path"`            // Evaluated task
	Status    RunStatus `json:"status"`               // Lifecycle state
	LogViewer string    `json:"log_viewer,omitempty"` // Opaque link to the run's log viewer
}

// Score is a single scorer's result for one benchmark run. A run may carry
// scores from multiple distinct scorers, and a (model, task, scorer) triple
// may accumulate scores across multiple runs; each is an independent
// observation.
type Score struct {
	ID     string  `json:"id"`     // Store-assigned record identifier
	RunID  string  `json:"run_id"` // Owning benchmark run
	Scorer string  `json:"scorer"` // Scorer identifier (e.g., "choice", "model_graded_equiv")
	Mean   float64 `json:"mean"`   // Point estimate
	Stderr float64 `json:"stderr"` // Standard error, non-negative
}

// Validate checks if the Model has valid field values.
func (m *Model) Validate() error {
	if m.ModelID == "" {
		return fmt.Errorf("model_id cannot be empty")
	}
	return nil
}

// Validate checks if the Task has valid field values.
func (t *Task) Validate() error {
	if t.Path == "" {
		return fmt.Errorf("task path cannot be empty")
	}
	return nil
}

// Validate checks if the BenchmarkRun has valid field values.
func (r *BenchmarkRun) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("run ID cannot be empty")
	}
	if r.ModelID == "" {
		return fmt.Errorf("run %s: model_id cannot be empty", r.ID)
	}
	if r.TaskPath == "" {
		return fmt.Errorf("run %s: task_path cannot be empty", r.ID)
	}
	if r.Status == "" {
		return fmt.Errorf("run %s: status cannot be empty", r.ID)
	}
	return nil
}

// Validate checks if the Score has valid field values.
func (s *Score) Validate() error {
	if s.RunID == "" {
		return fmt.Errorf("score %s: run_id cannot be empty", s.ID)
	}
	if s.Scorer == "" {
		return fmt.Errorf("score %s: scorer cannot be empty", s.ID)
	}
	if s.Stderr < 0 {
		return fmt.Errorf("score %s: stderr must be >= 0, got %g", s.ID, s.Stderr)
	}
	return nil
}
