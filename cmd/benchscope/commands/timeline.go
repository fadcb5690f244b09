package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benchhub/benchscope/internal/printer"
	"github.com/benchhub/benchscope/internal/render"
	"github.com/benchhub/benchscope/internal/timeline"
)

var timelineScorer string

var timelineCmd = &cobra.Command{
	Use:   "timeline TASK_PATH",
	Short: "Show the best-score-so-far progression for a task",
	Long: `Show the chronological sequence of record-breaking scores for one task
and scorer, ordered by model release date.

Only strict improvements over the best mean seen so far appear. Models
without a release date cannot be placed on a chronology; they are listed
in a warning and excluded from the progression.

Examples:
  benchscope timeline bench.task.gpqa.gpqa_diamond --scorer choice`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVar(&timelineScorer, "scorer", "", "Scorer identifier to track (required)")
	timelineCmd.MarkFlagRequired("scorer")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	taskPath := args[0]

	ctx := context.Background()
	snap, _, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}

	if _, ok := snap.TaskByPath(taskPath); !ok {
		return printer.Error(
			"task not found",
			fmt.Sprintf("No task with path '%s' exists in the record store.", taskPath),
			[]string{"Check the task path spelling, or run 'benchscope gaps' to list known tasks."},
		)
	}

	result := timeline.Build(snap, taskPath, timelineScorer)

	if len(result.ExcludedModels) > 0 {
		printer.Warning("Excluding %d model(s) without a release date: %s\n\n",
			len(result.ExcludedModels), strings.Join(result.ExcludedModels, ", "))
	}

	if len(result.Entries) == 0 {
		if len(result.ExcludedModels) > 0 {
			printer.Warning("No models with release dates for %s with scorer %s.\n", taskPath, timelineScorer)
		} else {
			printer.Warning("No scores found for %s with scorer %s.\n", taskPath, timelineScorer)
		}
		return nil
	}

	printer.TaskHeading("Best-so-far timeline for %s (%s)\n\n", taskPath, timelineScorer)
	render.Timeline(os.Stdout, result.Entries)
	return nil
}
