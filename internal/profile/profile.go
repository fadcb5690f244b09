// Package profile assembles the full benchmark profile of one model: its
// attribution (organizations, developer) and every benchmark run with its
// per-scorer scores.
package profile

import (
	"sort"

	"github.com/benchhub/benchscope/pkg/records"
)

// RunDetail is one benchmark run of the profiled model with its scores.
type RunDetail struct {
	TaskPath  string
	TaskName  string // empty when the task has no display name
	Status    records.RunStatus
	LogViewer string
	Scores    []records.Score // scorer order as stored
}

// ModelProfile is the complete benchmark profile of one model.
type ModelProfile struct {
	Model         records.Model
	Organizations []string // owning organization names via the model group
	Runs          []RunDetail
}

// Build assembles the profile for modelID. Returns *records.NotFoundError
// when the model is not in the snapshot.
func Build(snap *records.Snapshot, modelID string) (*ModelProfile, error) {
	model, ok := snap.ModelByID(modelID)
	if !ok {
		return nil, &records.NotFoundError{Kind: "model", Key: modelID}
	}

	p := &ModelProfile{Model: *model}
	for _, org := range snap.ModelOrganizations(model) {
		p.Organizations = append(p.Organizations, org.Name)
	}

	scoresByRun := make(map[string][]records.Score)
	for i := range snap.Scores {
		score := snap.Scores[i]
		scoresByRun[score.RunID] = append(scoresByRun[score.RunID], score)
	}

	for i := range snap.Runs {
		run := &snap.Runs[i]
		if run.ModelID != modelID {
			continue
		}

		detail := RunDetail{
			TaskPath:  run.TaskPath,
			Status:    run.Status,
			LogViewer: run.LogViewer,
			Scores:    scoresByRun[run.ID],
		}
		if task, ok := snap.TaskByPath(run.TaskPath); ok {
			detail.TaskName = task.Name
		}
		p.Runs = append(p.Runs, detail)
	}

	// Stable ordering by task path, then status, for reproducible output
	// when a model has several runs of the same task.
	sort.SliceStable(p.Runs, func(i, j int) bool {
		if p.Runs[i].TaskPath != p.Runs[j].TaskPath {
			return p.Runs[i].TaskPath < p.Runs[j].TaskPath
		}
		return p.Runs[i].Status < p.Runs[j].Status
	})

	return p, nil
}
