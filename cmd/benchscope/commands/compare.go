package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchhub/benchscope/internal/cohort"
	"github.com/benchhub/benchscope/internal/matrix"
	"github.com/benchhub/benchscope/internal/printer"
	"github.com/benchhub/benchscope/internal/render"
	"github.com/benchhub/benchscope/pkg/records"
)

var compareCohort string

var compareCmd = &cobra.Command{
	Use:   "compare TASK_PATH...",
	Short: "Compare a cohort of models across tasks",
	Long: `Compare a configured cohort of models side-by-side on the given tasks.

The cohort is selected by name from the 'cohorts' section of the config
file and ordered by release date (undated models first). Each task column
uses the scorer configured for that task in the 'scorers' section; a task
without a configured scorer is a configuration error.

Models with no score on any of the chosen tasks are omitted - no
all-blank rows.

Examples:
  benchscope compare --cohort reasoning \
      bench.task.hendrycks_math.hendrycks_math_lvl_5 \
      bench.task.gpqa.gpqa_diamond`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareCohort, "cohort", "", "Named cohort from the config file (required)")
	compareCmd.MarkFlagRequired("cohort")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	snap, cfg, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}

	spec, ok := cfg.Cohorts[compareCohort]
	if !ok {
		return printer.Error(
			"unknown cohort",
			fmt.Sprintf("No cohort named '%s' in %s.", compareCohort, cfgPath),
			[]string{"Add a 'cohorts' entry with prefixes and/or models for it."},
		)
	}

	var tasks []records.Task
	for _, taskPath := range args {
		task, ok := snap.TaskByPath(taskPath)
		if !ok {
			return printer.Error(
				"task not found",
				fmt.Sprintf("No task with path '%s' exists in the record store.", taskPath),
				[]string{"Check the task path spelling."},
			)
		}
		tasks = append(tasks, *task)
	}

	models := cohort.Spec{
		Prefixes: spec.Prefixes,
		Models:   spec.Models,
		Exclude:  spec.Exclude,
	}.Select(snap.Models)

	if len(models) == 0 {
		printer.Warning("Cohort '%s' matched no models.\n", compareCohort)
		return nil
	}

	printer.Info("Cohort '%s' (%d models):\n", compareCohort, len(models))
	for _, model := range models {
		printer.ModelHeading("  • %s\n", model.ModelID)
	}
	printer.Println()

	table, err := matrix.Build(snap, models, tasks, cfg.Scorers)
	if err != nil {
		var confErr *matrix.ConfigurationError
		if errors.As(err, &confErr) {
			return printer.Error(
				"missing scorer configuration",
				fmt.Sprintf("Task '%s' has no entry in the 'scorers' section of %s.", confErr.TaskPath, cfgPath),
				[]string{fmt.Sprintf("Add 'scorers: {%s: <scorer>}' to the config file.", confErr.TaskPath)},
			)
		}
		return err
	}

	if len(table.Rows) == 0 {
		printer.Warning("No model in cohort '%s' has scores on the requested tasks.\n", compareCohort)
		return nil
	}

	printer.TaskHeading("Model performance comparison\n\n")
	render.Matrix(os.Stdout, table)
	return nil
}
