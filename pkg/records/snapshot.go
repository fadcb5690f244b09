package records

import (
	"errors"
	"fmt"
)

// Snapshot is a fully materialized, read-only view of the record store at one
// point in time. All cross-record relationships are resolved into lookup maps
// when the snapshot is built, so traversals like Score → BenchmarkRun →
// Model/Task are O(1) and never touch the store again.
//
// Analyzers treat snapshots as immutable; nothing in this package mutates a
// snapshot after NewSnapshot returns.
type Snapshot struct {
	Organizations []Organization
	Groups        []ModelGroup
	Models        []Model
	Tasks         []Task
	Runs          []BenchmarkRun
	Scores        []Score

	modelsByID  map[string]*Model
	tasksByPath map[string]*Task
	runsByID    map[string]*BenchmarkRun
	groupsByID  map[string]*ModelGroup
	orgsByID    map[string]*Organization
}

// NewSnapshot builds a snapshot from the raw record collections and resolves
// all natural-key lookups. The input slices are retained, not copied.
func NewSnapshot(orgs []Organization, groups []ModelGroup, models []Model, tasks []Task, runs []BenchmarkRun, scores []Score) *Snapshot {
	s := &Snapshot{
		Organizations: orgs,
		Groups:        groups,
		Models:        models,
		Tasks:         tasks,
		Runs:          runs,
		Scores:        scores,
		modelsByID:    make(map[string]*Model, len(models)),
		tasksByPath:   make(map[string]*Task, len(tasks)),
		runsByID:      make(map[string]*BenchmarkRun, len(runs)),
		groupsByID:    make(map[string]*ModelGroup, len(groups)),
		orgsByID:      make(map[string]*Organization, len(orgs)),
	}

	for i := range models {
		s.modelsByID[models[i].ModelID] = &models[i]
	}
	for i := range tasks {
		s.tasksByPath[tasks[i].Path] = &tasks[i]
	}
	for i := range runs {
		s.runsByID[runs[i].ID] = &runs[i]
	}
	for i := range groups {
		s.groupsByID[groups[i].ID] = &groups[i]
	}
	for i := range orgs {
		s.orgsByID[orgs[i].ID] = &orgs[i]
	}

	return s
}

// ModelByID looks up a model by its model_id.
func (s *Snapshot) ModelByID(modelID string) (*Model, bool) {
	m, ok := s.modelsByID[modelID]
	return m, ok
}

// TaskByPath looks up a task by its path.
func (s *Snapshot) TaskByPath(path string) (*Task, bool) {
	t, ok := s.tasksByPath[path]
	return t, ok
}

// RunByID looks up a benchmark run by its record ID.
func (s *Snapshot) RunByID(runID string) (*BenchmarkRun, bool) {
	r, ok := s.runsByID[runID]
	return r, ok
}

// ScoreContext resolves a score's owning run and, through it, the evaluated
// model and task. Returns ok=false when any link in the chain is dangling
// (the score references a run, model or task absent from the snapshot).
func (s *Snapshot) ScoreContext(sc *Score) (run *BenchmarkRun, model *Model, task *Task, ok bool) {
	run, ok = s.runsByID[sc.RunID]
	if !ok {
		return nil, nil, nil, false
	}
	model, ok = s.modelsByID[run.ModelID]
	if !ok {
		return nil, nil, nil, false
	}
	task, ok = s.tasksByPath[run.TaskPath]
	if !ok {
		return nil, nil, nil, false
	}
	return run, model, task, true
}

// ModelOrganizations resolves the organizations that own a model, via its
// model group. Returns nil when the model's group or organizations are not in
// the snapshot.
func (s *Snapshot) ModelOrganizations(m *Model) []Organization {
	group, ok := s.groupsByID[m.GroupID]
	if !ok {
		return nil
	}

	var orgs []Organization
	for _, orgID := range group.OrganizationIDs {
		if org, ok := s.orgsByID[orgID]; ok {
			orgs = append(orgs, *org)
		}
	}
	return orgs
}

// NotFoundError indicates a referenced entity does not exist in the snapshot.
// The snapshot is a static view, so a not-found lookup is never retried.
type NotFoundError struct {
	Kind string // "model" or "task"
	Key  string // the natural key that missed
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
