// Package render formats analysis results as plain-text tables for the
// terminal. It owns all presentation decisions - column layout, score and
// date formatting, no-data markers - and contains no analytics logic. All
// functions write to an io.Writer so output is testable without a TTY.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/benchhub/benchscope/internal/coverage"
	"github.com/benchhub/benchscope/internal/matrix"
	"github.com/benchhub/benchscope/internal/ranking"
	"github.com/benchhub/benchscope/internal/timeline"
	"github.com/benchhub/benchscope/pkg/records"
)

// dateLayout is how release dates are shown in tables.
const dateLayout = "2006-01-02"

// noData marks an empty cell in a comparison matrix.
const noData = "-"

// FormatScore renders a score as "mean ±stderr" with three decimals.
func FormatScore(mean, stderr float64) string {
	return fmt.Sprintf("%.3f ±%.3f", mean, stderr)
}

// FormatDate renders an optional release date, "N/A" when absent.
func FormatDate(date *time.Time) string {
	if date == nil {
		return "N/A"
	}
	return date.Format(dateLayout)
}

// Pairs writes the flat missing-combinations table with a trailing count.
func Pairs(w io.Writer, pairs []coverage.Pair) {
	fmt.Fprintf(w, "%-45s %s\n", "MODEL", "TASK")
	fmt.Fprintf(w, "%-45s %s\n", "---------------------------------------------", "--------------------------------------------------")
	for _, pair := range pairs {
		fmt.Fprintf(w, "%-45s %s\n", pair.ModelID, pair.TaskPath)
	}
	fmt.Fprintf(w, "\nTotal missing combinations: %d\n", len(pairs))
}

// List writes a single-column table with the given header.
// Used for the per-group tables in grouped gap output.
func List(w io.Writer, header string, items []string) {
	fmt.Fprintf(w, "  %s\n", header)
	fmt.Fprintf(w, "  %s\n", "--------------------------------------------------")
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}

// Summary writes completeness summary statistics. nameOf maps a task path to
// its display name (falling back to the path itself).
func Summary(w io.Writer, s coverage.Summary, nameOf func(taskPath string) string) {
	fmt.Fprintf(w, "Total models: %d\n", s.TotalModels)
	fmt.Fprintf(w, "Total tasks: %d\n", s.TotalTasks)
	fmt.Fprintf(w, "Possible combinations: %d\n", s.PossibleCombinations)
	fmt.Fprintf(w, "Missing combinations: %d\n", s.MissingCount)
	fmt.Fprintf(w, "Completion percentage: %.2f%%\n", s.CompletionPct)

	if len(s.TopModels) > 0 {
		fmt.Fprintf(w, "\nTop %d models with most missing tasks:\n", len(s.TopModels))
		for _, gap := range s.TopModels {
			fmt.Fprintf(w, "  %s: missing %d/%d tasks (%.2f%% complete)\n",
				gap.ID, gap.MissingCount, s.TotalTasks, gap.CompletionPct)
		}
	}

	if len(s.TopTasks) > 0 {
		fmt.Fprintf(w, "\nTop %d tasks with most missing models:\n", len(s.TopTasks))
		for _, gap := range s.TopTasks {
			fmt.Fprintf(w, "  %s (%s): missing %d/%d models (%.2f%% complete)\n",
				nameOf(gap.ID), gap.ID, gap.MissingCount, s.TotalModels, gap.CompletionPct)
		}
	}
}

// Timeline writes the best-so-far progression table.
func Timeline(w io.Writer, entries []timeline.Entry) {
	fmt.Fprintf(w, "%-12s %-45s %s\n", "DATE", "MODEL", "SCORE")
	fmt.Fprintf(w, "%-12s %-45s %s\n", "------------", "---------------------------------------------", "---------------")
	for _, e := range entries {
		fmt.Fprintf(w, "%-12s %-45s %s\n", e.Date.Format(dateLayout), e.ModelID, FormatScore(e.Mean, e.Stderr))
	}
}

// TopScores writes the ranking table with 1-based ranks.
func TopScores(w io.Writer, entries []ranking.Entry) {
	fmt.Fprintf(w, "%-5s %-45s %-12s %s\n", "RANK", "MODEL", "RELEASED", "SCORE")
	fmt.Fprintf(w, "%-5s %-45s %-12s %s\n", "-----", "---------------------------------------------", "------------", "---------------")
	for i, e := range entries {
		fmt.Fprintf(w, "%-5d %-45s %-12s %s\n", i+1, e.ModelID, FormatDate(e.ReleaseDate), FormatScore(e.Mean, e.Stderr))
	}
}

// Matrix writes the model comparison table: one column block per task with
// its scorer on a second header line, "-" for cells with no data.
func Matrix(w io.Writer, m *matrix.Matrix) {
	fmt.Fprintf(w, "%-45s %-12s", "MODEL", "RELEASED")
	for _, task := range m.Tasks {
		fmt.Fprintf(w, " %-18s", taskLabel(task))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-45s %-12s", "", "")
	for _, scorer := range m.Scorers {
		fmt.Fprintf(w, " %-18s", "("+scorer+")")
	}
	fmt.Fprintln(w)

	for _, row := range m.Rows {
		fmt.Fprintf(w, "%-45s %-12s", row.ModelID, FormatDate(row.ReleaseDate))
		for _, cell := range row.Cells {
			if cell == nil {
				fmt.Fprintf(w, " %-18s", noData)
			} else {
				fmt.Fprintf(w, " %-18s", FormatScore(cell.Mean, cell.Stderr))
			}
		}
		fmt.Fprintln(w)
	}
}

// Scores writes a per-run score table for model profiles.
func Scores(w io.Writer, scores []records.Score) {
	fmt.Fprintf(w, "  %-25s %s\n", "SCORER", "SCORE")
	fmt.Fprintf(w, "  %-25s %s\n", "-------------------------", "---------------")
	for _, s := range scores {
		fmt.Fprintf(w, "  %-25s %s\n", s.Scorer, FormatScore(s.Mean, s.Stderr))
	}
}

// taskLabel prefers the task's display name, truncated to fit its column.
func taskLabel(task records.Task) string {
	label := task.Name
	if label == "" {
		label = task.Path
	}
	if len(label) > 18 {
		return label[:15] + "..."
	}
	return label
}
