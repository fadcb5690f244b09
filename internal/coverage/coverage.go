// Package coverage finds gaps in benchmark coverage: (model, task) pairs
// that have no successful benchmark run. Only models with at least one
// successful run anywhere are considered - a model that was never evaluated
// is not reported as missing every task.
package coverage

import (
	"sort"
	"strings"

	"github.com/benchhub/benchscope/pkg/records"
)

// Pair is one missing (model, task) combination.
type Pair struct {
	ModelID  string `json:"model_id"`
	TaskPath string `json:"task_path"`
}

// Report holds the missing combinations for one snapshot, sorted by
// (model_id, task_path). Reports are value views over the snapshot; Filter
// returns a new report and never mutates the receiver.
type Report struct {
	Missing []Pair
}

// Analyze computes the missing (model, task) combinations:
//
//  1. Restrict runs to status Success.
//  2. active models = models appearing in at least one successful run.
//  3. existing = (model, task) pairs among successful runs.
//  4. missing = (active models x all task paths) - existing.
//
// Scorers are irrelevant here; completion is decided purely at the
// (model_id, task_path) level.
func Analyze(snap *records.Snapshot) *Report {
	existing := make(map[Pair]struct{})
	activeModels := make(map[string]struct{})

	for i := range snap.Runs {
		run := &snap.Runs[i]
		if !run.Status.Succeeded() {
			continue
		}
		activeModels[run.ModelID] = struct{}{}
		existing[Pair{ModelID: run.ModelID, TaskPath: run.TaskPath}] = struct{}{}
	}

	var missing []Pair
	for modelID := range activeModels {
		for i := range snap.Tasks {
			pair := Pair{ModelID: modelID, TaskPath: snap.Tasks[i].Path}
			if _, exists := existing[pair]; !exists {
				missing = append(missing, pair)
			}
		}
	}

	sortPairs(missing)
	return &Report{Missing: missing}
}

// Filter returns a new report restricted to pairs matching both substring
// filters (case-insensitive, ANDed). An empty filter matches everything.
func (r *Report) Filter(modelFilter, taskFilter string) *Report {
	modelFilter = strings.ToLower(modelFilter)
	taskFilter = strings.ToLower(taskFilter)

	var filtered []Pair
	for _, pair := range r.Missing {
		if modelFilter != "" && !strings.Contains(strings.ToLower(pair.ModelID), modelFilter) {
			continue
		}
		if taskFilter != "" && !strings.Contains(strings.ToLower(pair.TaskPath), taskFilter) {
			continue
		}
		filtered = append(filtered, pair)
	}

	return &Report{Missing: filtered}
}

// Group is one grouping key with its sorted member list.
type Group struct {
	Key     string   // model_id or task_path depending on grouping
	Members []string // missing counterparts, sorted lexicographically
}

// ByModel groups the missing pairs by model, each model mapped to its sorted
// missing task paths. Groups are sorted by model_id.
func (r *Report) ByModel() []Group {
	return r.groupBy(
		func(p Pair) string { return p.ModelID },
		func(p Pair) string { return p.TaskPath },
	)
}

// ByTask groups the missing pairs by task, each task mapped to its sorted
// missing model IDs. Groups are sorted by task path.
func (r *Report) ByTask() []Group {
	return r.groupBy(
		func(p Pair) string { return p.TaskPath },
		func(p Pair) string { return p.ModelID },
	)
}

// groupBy builds an ordered grouping keyed by keyOf, collecting memberOf
// values. Key order and member order are both lexicographic so output is
// reproducible across runs.
func (r *Report) groupBy(keyOf, memberOf func(Pair) string) []Group {
	grouped := make(map[string][]string)
	for _, pair := range r.Missing {
		key := keyOf(pair)
		grouped[key] = append(grouped[key], memberOf(pair))
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		members := grouped[key]
		sort.Strings(members)
		groups = append(groups, Group{Key: key, Members: members})
	}
	return groups
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ModelID != pairs[j].ModelID {
			return pairs[i].ModelID < pairs[j].ModelID
		}
		return pairs[i].TaskPath < pairs[j].TaskPath
	})
}
