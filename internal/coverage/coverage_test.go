package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchhub/benchscope/pkg/records"
)

// buildSnapshot creates a snapshot from shorthand run tuples.
func buildSnapshot(t *testing.T, tasks []string, runs [][3]string) *records.Snapshot {
	t.Helper()

	modelSeen := make(map[string]bool)
	var models []records.Model
	var runRecords []records.BenchmarkRun
	for i, r := range runs {
		if !modelSeen[r[0]] {
			modelSeen[r[0]] = true
			models = append(models, records.Model{ModelID: r[0]})
		}
		runRecords = append(runRecords, records.BenchmarkRun{
			ID:       string(rune('a' + i)),
			ModelID:  r[0],
			TaskPath: r[1],
			Status:   records.RunStatus(r[2]),
		})
	}

	var taskRecords []records.Task
	for _, path := range tasks {
		taskRecords = append(taskRecords, records.Task{Path: path})
	}

	return records.NewSnapshot(nil, nil, models, taskRecords, runRecords, nil)
}

func TestAnalyze(t *testing.T) {
	t.Run("single successful run leaves other task missing", func(t *testing.T) {
		snap := buildSnapshot(t,
			[]string{"taskA", "taskB"},
			[][3]string{{"modelX", "taskA", "Success"}},
		)

		report := Analyze(snap)
		require.Len(t, report.Missing, 1)
		assert.Equal(t, Pair{ModelID: "modelX", TaskPath: "taskB"}, report.Missing[0])
	})

	t.Run("models with no successful runs are excluded entirely", func(t *testing.T) {
		snap := buildSnapshot(t,
			[]string{"taskA", "taskB"},
			[][3]string{
				{"modelX", "taskA", "Success"},
				{"modelY", "taskA", "Failure"},
				{"modelY", "taskB", "Running"},
			},
		)

		report := Analyze(snap)
		for _, pair := range report.Missing {
			assert.NotEqual(t, "modelY", pair.ModelID, "never-successful model must not appear")
		}
		assert.Equal(t, []Pair{{ModelID: "modelX", TaskPath: "taskB"}}, report.Missing)
	})

	t.Run("failed run does not count as coverage", func(t *testing.T) {
		snap := buildSnapshot(t,
			[]string{"taskA", "taskB"},
			[][3]string{
				{"modelX", "taskA", "Success"},
				{"modelX", "taskB", "Failure"},
			},
		)

		report := Analyze(snap)
		assert.Equal(t, []Pair{{ModelID: "modelX", TaskPath: "taskB"}}, report.Missing)
	})

	t.Run("empty run collection yields empty missing set", func(t *testing.T) {
		snap := buildSnapshot(t, []string{"taskA", "taskB"}, nil)

		report := Analyze(snap)
		assert.Empty(t, report.Missing)
	})

	t.Run("output is sorted by model then task", func(t *testing.T) {
		snap := buildSnapshot(t,
			[]string{"t3", "t1", "t2"},
			[][3]string{
				{"m2", "t1", "Success"},
				{"m1", "t2", "Success"},
			},
		)

		report := Analyze(snap)
		expected := []Pair{
			{ModelID: "m1", TaskPath: "t1"},
			{ModelID: "m1", TaskPath: "t3"},
			{ModelID: "m2", TaskPath: "t2"},
			{ModelID: "m2", TaskPath: "t3"},
		}
		assert.Equal(t, expected, report.Missing)
	})

	t.Run("is idempotent over an immutable snapshot", func(t *testing.T) {
		snap := buildSnapshot(t,
			[]string{"taskA", "taskB", "taskC"},
			[][3]string{
				{"m1", "taskA", "Success"},
				{"m2", "taskB", "Success"},
			},
		)

		first := Analyze(snap)
		second := Analyze(snap)
		assert.Equal(t, first.Missing, second.Missing)
	})

	t.Run("missing plus existing covers active universe", func(t *testing.T) {
		snap := buildSnapshot(t,
			[]string{"taskA", "taskB", "taskC"},
			[][3]string{
				{"m1", "taskA", "Success"},
				{"m1", "taskB", "Success"},
				{"m2", "taskC", "Success"},
				{"m3", "taskA", "Failure"},
			},
		)

		report := Analyze(snap)

		existing := make(map[Pair]struct{})
		active := make(map[string]struct{})
		for _, run := range snap.Runs {
			if run.Status.Succeeded() {
				active[run.ModelID] = struct{}{}
				existing[Pair{ModelID: run.ModelID, TaskPath: run.TaskPath}] = struct{}{}
			}
		}

		assert.Equal(t, len(active)*len(snap.Tasks), len(report.Missing)+len(existing))
	})
}

func TestReportFilter(t *testing.T) {
	report := &Report{Missing: []Pair{
		{ModelID: "claude-3-5-sonnet", TaskPath: "bench.task.math.lvl5"},
		{ModelID: "claude-3-opus", TaskPath: "bench.task.gpqa.diamond"},
		{ModelID: "gpt-4o", TaskPath: "bench.task.math.lvl5"},
	}}

	t.Run("model filter is case-insensitive substring", func(t *testing.T) {
		filtered := report.Filter("CLAUDE", "")
		require.Len(t, filtered.Missing, 2)
		for _, pair := range filtered.Missing {
			assert.Contains(t, pair.ModelID, "claude")
		}
	})

	t.Run("both filters AND together", func(t *testing.T) {
		filtered := report.Filter("claude", "math")
		require.Len(t, filtered.Missing, 1)
		assert.Equal(t, "claude-3-5-sonnet", filtered.Missing[0].ModelID)
	})

	t.Run("empty filters match everything", func(t *testing.T) {
		filtered := report.Filter("", "")
		assert.Equal(t, report.Missing, filtered.Missing)
	})

	t.Run("does not mutate the original report", func(t *testing.T) {
		before := len(report.Missing)
		report.Filter("claude", "math")
		assert.Len(t, report.Missing, before)
	})
}

func TestReportGrouping(t *testing.T) {
	report := &Report{Missing: []Pair{
		{ModelID: "m2", TaskPath: "t1"},
		{ModelID: "m1", TaskPath: "t2"},
		{ModelID: "m1", TaskPath: "t1"},
	}}

	t.Run("by model sorts keys and members", func(t *testing.T) {
		groups := report.ByModel()
		require.Len(t, groups, 2)
		assert.Equal(t, Group{Key: "m1", Members: []string{"t1", "t2"}}, groups[0])
		assert.Equal(t, Group{Key: "m2", Members: []string{"t1"}}, groups[1])
	})

	t.Run("by task sorts keys and members", func(t *testing.T) {
		groups := report.ByTask()
		require.Len(t, groups, 2)
		assert.Equal(t, Group{Key: "t1", Members: []string{"m1", "m2"}}, groups[0])
		assert.Equal(t, Group{Key: "t2", Members: []string{"m1"}}, groups[1])
	})

	t.Run("empty report groups to nothing", func(t *testing.T) {
		empty := &Report{}
		assert.Empty(t, empty.ByModel())
		assert.Empty(t, empty.ByTask())
	})
}
