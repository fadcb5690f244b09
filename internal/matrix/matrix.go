// Package matrix builds side-by-side model comparison tables: one row per
// cohort model, one column per task, each cell holding that model's score
// under the task's configured scorer.
package matrix

import (
	"fmt"
	"time"

	"github.com/benchhub/benchscope/pkg/records"
)

// Cell is one matched score. A nil *Cell in a row means no data for that
// (model, task) pair.
type Cell struct {
	Mean   float64
	Stderr float64
}

// Row is one cohort model with a cell per task, in task order.
type Row struct {
	ModelID     string
	ReleaseDate *time.Time // nil renders as an "unknown" marker
	Cells       []*Cell
}

// Matrix is the dense comparison table. Rows follow the caller's cohort
// order; models with no matching score on any task are omitted entirely.
type Matrix struct {
	Tasks   []records.Task // column order as requested
	Scorers []string       // scorer per column, parallel to Tasks
	Rows    []Row
}

// ConfigurationError indicates a requested task has no entry in the
// task → scorer mapping. It aborts the build; the mapping is caller config,
// not data, so there is no sensible fallback.
type ConfigurationError struct {
	TaskPath string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no scorer configured for task %s", e.TaskPath)
}

// Build constructs the comparison matrix for the cohort and tasks.
//
// All scores are scanned once; for each (model, task) in the cohort/task
// set, only scores under the task's configured scorer qualify, and when
// several qualify the last one seen wins.
//
// Cohort order determines row order. Tasks absent from the scorers mapping
// cause a *ConfigurationError before any scanning happens.
func Build(snap *records.Snapshot, cohort []records.Model, tasks []records.Task, scorers map[string]string) (*Matrix, error) {
	m := &Matrix{Tasks: tasks}

	scorerFor := make(map[string]string, len(tasks))
	for _, task := range tasks {
		scorer, ok := scorers[task.Path]
		if !ok {
			return nil, &ConfigurationError{TaskPath: task.Path}
		}
		scorerFor[task.Path] = scorer
		m.Scorers = append(m.Scorers, scorer)
	}

	inCohort := make(map[string]struct{}, len(cohort))
	for _, model := range cohort {
		inCohort[model.ModelID] = struct{}{}
	}

	// model_id -> task_path -> matched score, last seen wins
	matched := make(map[string]map[string]*Cell)
	for i := range snap.Scores {
		score := &snap.Scores[i]
		_, model, task, ok := snap.ScoreContext(score)
		if !ok {
			continue
		}
		if _, ok := inCohort[model.ModelID]; !ok {
			continue
		}
		scorer, ok := scorerFor[task.Path]
		if !ok || score.Scorer != scorer {
			continue
		}

		cells := matched[model.ModelID]
		if cells == nil {
			cells = make(map[string]*Cell)
			matched[model.ModelID] = cells
		}
		cells[task.Path] = &Cell{Mean: score.Mean, Stderr: score.Stderr}
	}

	for _, model := range cohort {
		cells := matched[model.ModelID]
		if len(cells) == 0 {
			// Evaluated on none of the chosen tasks - no all-blank rows.
			continue
		}

		row := Row{
			ModelID:     model.ModelID,
			ReleaseDate: model.ReleaseDate,
			Cells:       make([]*Cell, len(tasks)),
		}
		for i, task := range tasks {
			row.Cells[i] = cells[task.Path]
		}
		m.Rows = append(m.Rows, row)
	}

	return m, nil
}
