package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchhub/benchscope/internal/printer"
	"github.com/benchhub/benchscope/internal/ranking"
	"github.com/benchhub/benchscope/internal/render"
)

var (
	topScorer string
	topLimit  int
)

var topCmd = &cobra.Command{
	Use:   "top TASK_PATH",
	Short: "Show the highest scores for a task",
	Long: `Show the top-N scores for one task and scorer, sorted by mean
descending.

Every score is an independent observation: a model evaluated several
times can occupy several ranks. Release dates are shown when known but
play no part in the ranking.

Examples:
  benchscope top bench.task.hendrycks_math.hendrycks_math_lvl_5 --scorer model_graded_equiv
  benchscope top bench.task.gpqa.gpqa_diamond --scorer choice --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: runTop,
}

func init() {
	topCmd.Flags().StringVar(&topScorer, "scorer", "", "Scorer identifier to rank by (required)")
	topCmd.Flags().IntVar(&topLimit, "limit", ranking.DefaultLimit, "Number of entries to show")
	topCmd.MarkFlagRequired("scorer")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
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

	entries := ranking.Top(snap, taskPath, topScorer, topLimit)
	if len(entries) == 0 {
		printer.Warning("No scores found for %s with scorer %s.\n", taskPath, topScorer)
		return nil
	}

	printer.TaskHeading("Top %d scores for %s (%s)\n\n", len(entries), taskPath, topScorer)
	render.TopScores(os.Stdout, entries)
	return nil
}
