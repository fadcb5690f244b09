package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benchhub/benchscope/internal/printer"
	"github.com/benchhub/benchscope/internal/profile"
	"github.com/benchhub/benchscope/internal/render"
	"github.com/benchhub/benchscope/pkg/records"
)

var modelCmd = &cobra.Command{
	Use:   "model MODEL_ID",
	Short: "Show the full benchmark profile of one model",
	Long: `Show everything known about one model: its owning organizations,
developer attribution, release date, and every benchmark run with its
per-scorer scores and log viewer link.

Examples:
  benchscope model claude-3-5-sonnet-20240620`,
	Args: cobra.ExactArgs(1),
	RunE: runModel,
}

func init() {
	rootCmd.AddCommand(modelCmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	modelID := args[0]

	ctx := context.Background()
	snap, _, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}

	p, err := profile.Build(snap, modelID)
	if err != nil {
		if records.IsNotFound(err) {
			return printer.Error(
				"model not found",
				fmt.Sprintf("No model with ID '%s' exists in the record store.", modelID),
				[]string{"Check the model ID spelling, or run 'benchscope gaps --group-by model' to list known models."},
			)
		}
		return err
	}

	printer.ModelHeading("Model: %s\n", p.Model.ModelID)
	printer.Info("Release date: %s\n", render.FormatDate(p.Model.ReleaseDate))
	if len(p.Organizations) > 0 {
		printer.Info("Organizations: %s\n", strings.Join(p.Organizations, ", "))
	}
	if p.Model.Developer != "" {
		printer.Info("Developer: %s\n", p.Model.Developer)
	}

	if len(p.Runs) == 0 {
		printer.Println()
		printer.Warning("No benchmark runs recorded for this model.\n")
		return nil
	}

	for _, run := range p.Runs {
		printer.Println()
		if run.TaskName != "" {
			printer.TaskHeading("Task: %s (%s)\n", run.TaskName, run.TaskPath)
		} else {
			printer.TaskHeading("Task: %s\n", run.TaskPath)
		}
		printer.Info("Status: %s\n", run.Status)
		if run.LogViewer != "" {
			printer.Info("Log viewer: %s\n", run.LogViewer)
		}
		if len(run.Scores) > 0 {
			render.Scores(os.Stdout, run.Scores)
		}
	}

	return nil
}
