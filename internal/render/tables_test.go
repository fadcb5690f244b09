package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchhub/benchscope/internal/coverage"
	"github.com/benchhub/benchscope/internal/matrix"
	"github.com/benchhub/benchscope/internal/ranking"
	"github.com/benchhub/benchscope/internal/timeline"
	"github.com/benchhub/benchscope/pkg/records"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.715 ±0.021", FormatScore(0.715, 0.021))
	assert.Equal(t, "0.000 ±0.000", FormatScore(0, 0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "N/A", FormatDate(nil))
	assert.Equal(t, "2024-06-20", FormatDate(date(t, "2024-06-20")))
}

func TestPairs(t *testing.T) {
	var buf bytes.Buffer
	Pairs(&buf, []coverage.Pair{
		{ModelID: "m1", TaskPath: "t1"},
		{ModelID: "m2", TaskPath: "t2"},
	})

	out := buf.String()
	assert.Contains(t, out, "MODEL")
	assert.Contains(t, out, "m1")
	assert.Contains(t, out, "t2")
	assert.Contains(t, out, "Total missing combinations: 2")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	s := coverage.Summary{
		TotalModels:          4,
		TotalTasks:           5,
		PossibleCombinations: 20,
		MissingCount:         3,
		CompletionPct:        85,
		TopModels:            []coverage.EntityGap{{ID: "m1", MissingCount: 2, CompletionPct: 60}},
		TopTasks:             []coverage.EntityGap{{ID: "t1", MissingCount: 3, CompletionPct: 25}},
	}

	Summary(&buf, s, func(taskPath string) string { return "Task One" })

	out := buf.String()
	assert.Contains(t, out, "Completion percentage: 85.00%")
	assert.Contains(t, out, "m1: missing 2/5 tasks (60.00% complete)")
	assert.Contains(t, out, "Task One (t1): missing 3/4 models (25.00% complete)")
}

func TestTimeline(t *testing.T) {
	var buf bytes.Buffer
	Timeline(&buf, []timeline.Entry{
		{Date: *date(t, "2020-01-01"), ModelID: "m1", Mean: 0.5, Stderr: 0.01},
	})

	out := buf.String()
	assert.Contains(t, out, "2020-01-01")
	assert.Contains(t, out, "0.500 ±0.010")
}

func TestTopScores(t *testing.T) {
	var buf bytes.Buffer
	TopScores(&buf, []ranking.Entry{
		{ModelID: "m1", ReleaseDate: date(t, "2024-05-13"), Mean: 0.95, Stderr: 0.02},
		{ModelID: "m2", Mean: 0.9, Stderr: 0.03},
	})

	out := buf.String()
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "2024-05-13")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "0.950 ±0.020")
}

func TestMatrix(t *testing.T) {
	var buf bytes.Buffer
	m := &matrix.Matrix{
		Tasks:   []records.Task{{Path: "bench.task.gpqa.gpqa_diamond", Name: "GPQA Diamond"}, {Path: "t2"}},
		Scorers: []string{"choice", "s2"},
		Rows: []matrix.Row{
			{
				ModelID:     "m1",
				ReleaseDate: date(t, "2025-01-20"),
				Cells:       []*matrix.Cell{{Mean: 0.7, Stderr: 0.02}, nil},
			},
		},
	}

	Matrix(&buf, m)

	out := buf.String()
	assert.Contains(t, out, "GPQA Diamond")
	assert.Contains(t, out, "(choice)")
	assert.Contains(t, out, "0.700 ±0.020")
	assert.Contains(t, out, "2025-01-20")
	assert.Contains(t, out, " - ", "no-data cells render as a dash")
}

func TestScores(t *testing.T) {
	var buf bytes.Buffer
	Scores(&buf, []records.Score{
		{Scorer: "choice", Mean: 0.69, Stderr: 0.03},
	})

	out := buf.String()
	assert.Contains(t, out, "SCORER")
	assert.Contains(t, out, "choice")
	assert.Contains(t, out, "0.690 ±0.030")
}
