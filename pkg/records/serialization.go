package records

import (
	"encoding/json"
	"fmt"
	"time"
)

// Serialization helpers for decoding the record store's wire format.
//
// The store serves each collection as a paginated JSON envelope of raw
// records. Dates arrive as plain "YYYY-MM-DD" strings and may be absent for
// models with no published release date; absent dates decode to nil, never to
// a zero date.

// releaseDateLayout is the calendar-date format used by the record store.
const releaseDateLayout = "2006-01-02"

type organizationRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type modelGroupRecord struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	OrganizationIDs []string `json:"organization_ids"`
}

type modelRecord struct {
	ModelID     string `json:"model_id"`
	ReleaseDate string `json:"release_date"`
	Developer   string `json:"hf_developer"`
	GroupID     string `json:"model_group_id"`
}

type taskRecord struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

type benchmarkRunRecord struct {
	ID        string `json:"id"`
	ModelID   string `json:"model_id"`
	TaskPath  string `json:"task_path"`
	Status    string `json:"status"`
	LogViewer string `json:"log_viewer"`
}

type scoreRecord struct {
	ID     string  `json:"id"`
	RunID  string  `json:"benchmark_run_id"`
	Scorer string  `json:"scorer"`
	Mean   float64 `json:"mean"`
	Stderr float64 `json:"stderr"`
}

func decodeOrganization(raw json.RawMessage) (Organization, error) {
	var rec organizationRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Organization{}, fmt.Errorf("failed to decode organization record: %w", err)
	}
	return Organization{ID: rec.ID, Name: rec.Name}, nil
}

func decodeModelGroup(raw json.RawMessage) (ModelGroup, error) {
	var rec modelGroupRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return ModelGroup{}, fmt.Errorf("failed to decode model group record: %w", err)
	}
	return ModelGroup{ID: rec.ID, Name: rec.Name, OrganizationIDs: rec.OrganizationIDs}, nil
}

func decodeModel(raw json.RawMessage) (Model, error) {
	var rec modelRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Model{}, fmt.Errorf("failed to decode model record: %w", err)
	}

	model := Model{
		ModelID:   rec.ModelID,
		Developer: rec.Developer,
		GroupID:   rec.GroupID,
	}

	// Absent release dates stay nil - undated models must never look like
	// they were released at some default date.
	if rec.ReleaseDate != "" {
		date, err := time.Parse(releaseDateLayout, rec.ReleaseDate)
		if err != nil {
			return Model{}, fmt.Errorf("model %s: invalid release_date %q: %w", rec.ModelID, rec.ReleaseDate, err)
		}
		model.ReleaseDate = &date
	}

	if err := model.Validate(); err != nil {
		return Model{}, err
	}
	return model, nil
}

func decodeTask(raw json.RawMessage) (Task, error) {
	var rec taskRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Task{}, fmt.Errorf("failed to decode task record: %w", err)
	}

	task := Task{Path: rec.Path, Name: rec.Name}
	if err := task.Validate(); err != nil {
		return Task{}, err
	}
	return task, nil
}

func decodeBenchmarkRun(raw json.RawMessage) (BenchmarkRun, error) {
	var rec benchmarkRunRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return BenchmarkRun{}, fmt.Errorf("failed to decode benchmark run record: %w", err)
	}

	run := BenchmarkRun{
		ID:        rec.ID,
		ModelID:   rec.ModelID,
		TaskPath:  rec.TaskPath,
		Status:    RunStatus(rec.Status),
		LogViewer: rec.LogViewer,
	}
	if err := run.Validate(); err != nil {
		return BenchmarkRun{}, err
	}
	return run, nil
}

func decodeScore(raw json.RawMessage) (Score, error) {
	var rec scoreRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Score{}, fmt.Errorf("failed to decode score record: %w", err)
	}

	score := Score{
		ID:     rec.ID,
		RunID:  rec.RunID,
		Scorer: rec.Scorer,
		Mean:   rec.Mean,
		Stderr: rec.Stderr,
	}
	if err := score.Validate(); err != nil {
		return Score{}, err
	}
	return score, nil
}
