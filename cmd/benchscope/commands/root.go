package commands

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/benchhub/benchscope/internal/config"
	"github.com/benchhub/benchscope/internal/printer"
	"github.com/benchhub/benchscope/pkg/records"
)

var (
	version string
	commit  string
	date    string
)

var (
	cfgPath      string
	refreshCache bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchscope",
	Short: "Benchscope - analytics over AI benchmark results",
	Long: `Benchscope derives analytical views over a benchmark results dataset:
which model was evaluated on which task, with what score, and when.

It answers questions like "which model/task pairs are missing evaluation
data?", "how has the best score on a task evolved over model release
dates?", and "how does a cohort of models compare across tasks?" - all
computed over a cached snapshot of the remote benchmark record store.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "benchscope.yml", "Path to the benchscope configuration file")
	rootCmd.PersistentFlags().BoolVar(&refreshCache, "refresh", false, "Invalidate the snapshot cache and fetch fresh data")
}

// loadSnapshot loads the config and materializes a record snapshot, serving
// from the Redis cache when enabled and honoring the global --refresh flag.
// Every analysis command starts here.
func loadSnapshot(ctx context.Context) (*records.Snapshot, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	client, err := records.NewClient(cfg.Store.BaseURL, cfg.Token())
	if err != nil {
		return nil, nil, err
	}

	var cache *records.Cache
	if cfg.Cache != nil && cfg.Cache.Enabled {
		cache = records.NewCache(&redis.Options{Addr: cfg.Cache.RedisAddr}, cfg.CacheTTL())
		defer cache.Close()

		if refreshCache {
			if err := cache.Invalidate(ctx); err != nil {
				return nil, nil, err
			}
		}
	}

	printer.Info("Fetching data from the record store...\n")
	result, err := records.Load(ctx, client, cache)
	if err != nil {
		return nil, nil, err
	}

	if result.FromCache {
		printer.Success("Data loaded from cache in %.2f seconds.\n\n", result.Elapsed.Seconds())
	} else {
		printer.Success("Data fetched in %.2f seconds.\n\n", result.Elapsed.Seconds())
	}

	return result.Snapshot, cfg, nil
}
