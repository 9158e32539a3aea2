package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the JSON data set from the CSV inputs",
	Long: `Build recomputes the full output set from the input directory.

The output directory is emptied and rewritten with:
  geographies.json    geographies with their bounding boxes
  results.json        per-geography score trees
  chart-meta.json     chart definitions with answer options
  results/<iso>.json  score tree and chart payloads of one geography

Examples:
  # Build the 2018 edition from ./input into ./output
  build

  # Build another edition, reporting single values for 2017
  build --input data --output public/data --year 2019 --target-year 2017`,
	RunE: runBuild,
}

func init() {
	addInputFlags(buildCmd)
	f := buildCmd.Flags()
	f.String("output", "", "output directory (overrides config)")
	f.Int("target-year", 0, "year reported by single-value and average charts (0=latest with data)")
	f.Int("concurrency", 0, "parallel per-geography writes (0=use config default)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	applyInputFlags(cmd)
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Paths.Output = v
	}
	if v, _ := cmd.Flags().GetInt("target-year"); v != 0 {
		cfg.Pipeline.TargetYear = v
	}
	if v, _ := cmd.Flags().GetInt("concurrency"); v != 0 {
		cfg.Pipeline.WriteConcurrency = v
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	summary, err := pipeline.New(pipeline.OptionsFromConfig(cfg)).Run(ctx)
	if err != nil {
		return err
	}

	zap.L().With(zap.String("command", "build")).Info("build finished",
		zap.String("run_id", summary.RunID),
		zap.Duration("duration", summary.Duration),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d geographies and %d charts to %s\n",
		summary.Geographies, summary.Charts, cfg.Paths.Output)
	return nil
}
