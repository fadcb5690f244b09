package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benchhub/benchscope/internal/coverage"
	"github.com/benchhub/benchscope/internal/printer"
	"github.com/benchhub/benchscope/internal/render"
	"github.com/benchhub/benchscope/pkg/records"
)

var (
	gapsGroupBy     string
	gapsModelFilter string
	gapsTaskFilter  string
	gapsSummary     bool
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Find model/task combinations missing benchmark coverage",
	Long: `Find model/task combinations that have no successful benchmark run.

Only models with at least one successful run anywhere are considered -
a model that was never evaluated is not reported as missing every task.

Results can be filtered by case-insensitive substring match on model ID
and/or task path (both filters AND together), and grouped by model, by
task, or left as a flat list of pairs.

Examples:
  # All gaps grouped by task (default)
  benchscope gaps

  # Gaps for one model family, grouped by model
  benchscope gaps --group-by model --model-filter claude

  # Flat list of math-task gaps with summary statistics
  benchscope gaps --group-by none --task-filter math --summary`,
	RunE: runGaps,
}

func init() {
	gapsCmd.Flags().StringVar(&gapsGroupBy, "group-by", "task", "Group results by 'model', 'task', or 'none'")
	gapsCmd.Flags().StringVar(&gapsModelFilter, "model-filter", "", "Filter by model ID (case-insensitive substring match)")
	gapsCmd.Flags().StringVar(&gapsTaskFilter, "task-filter", "", "Filter by task path (case-insensitive substring match)")
	gapsCmd.Flags().BoolVar(&gapsSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(gapsCmd)
}

func runGaps(cmd *cobra.Command, args []string) error {
	if gapsGroupBy != "model" && gapsGroupBy != "task" && gapsGroupBy != "none" {
		return printer.Error(
			"invalid group-by mode",
			fmt.Sprintf("Unknown mode: %s", gapsGroupBy),
			[]string{"Valid modes: model, task, none"},
		)
	}

	ctx := context.Background()
	snap, _, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}

	report := coverage.Analyze(snap)
	printer.Info("Found %d models with at least one successful benchmark run.\n", activeModelCount(report, snap))

	if gapsSummary {
		summary := coverage.Summarize(report, len(snap.Models), len(snap.Tasks))
		printer.Println()
		printer.Info("Summary statistics\n")
		render.Summary(os.Stdout, summary, func(taskPath string) string {
			if task, ok := snap.TaskByPath(taskPath); ok && task.Name != "" {
				return task.Name
			}
			return taskPath
		})
	}

	filtered := report.Filter(gapsModelFilter, gapsTaskFilter)
	if len(filtered.Missing) == 0 {
		printer.Println()
		printer.Warning("No missing combinations found with the current filters.\n")
		return nil
	}

	switch gapsGroupBy {
	case "model":
		for _, group := range filtered.ByModel() {
			printer.Println()
			printer.ModelHeading("Model: %s%s\n", group.Key, orgAnnotation(snap, group.Key))
			render.List(os.Stdout, "Missing tasks", group.Members)
		}
	case "task":
		for _, group := range filtered.ByTask() {
			printer.Println()
			printer.TaskHeading("Task: %s (%s)\n", taskDisplayName(snap, group.Key), group.Key)
			render.List(os.Stdout, "Missing models", group.Members)
		}
	default:
		printer.Println()
		render.Pairs(os.Stdout, filtered.Missing)
	}

	return nil
}

// activeModelCount counts distinct models in the missing set plus models
// with full coverage; for the console message we only need models that
// appear in successful runs, which Analyze already restricted to.
func activeModelCount(report *coverage.Report, snap *records.Snapshot) int {
	active := make(map[string]struct{})
	for i := range snap.Runs {
		if snap.Runs[i].Status.Succeeded() {
			active[snap.Runs[i].ModelID] = struct{}{}
		}
	}
	return len(active)
}

// orgAnnotation renders " (Org A, Org B)" for a model's owning
// organizations, or "" when attribution is unknown.
func orgAnnotation(snap *records.Snapshot, modelID string) string {
	model, ok := snap.ModelByID(modelID)
	if !ok {
		return ""
	}

	orgs := snap.ModelOrganizations(model)
	if len(orgs) == 0 {
		return ""
	}

	names := make([]string, len(orgs))
	for i, org := range orgs {
		names[i] = org.Name
	}
	return " (" + strings.Join(names, ", ") + ")"
}

func taskDisplayName(snap *records.Snapshot, taskPath string) string {
	if task, ok := snap.TaskByPath(taskPath); ok && task.Name != "" {
		return task.Name
	}
	return taskPath
}
