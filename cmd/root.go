package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "climatescope-data",
	Short: "Build-time data pipeline for the Climatescope site",
	Long:  "Reads the Climatescope CSV inputs, normalizes scores, sub-indicators and investments, derives per-geography charts and writes the JSON consumed by the front-end.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

// addInputFlags registers the flags shared by commands that read inputs.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("input", "", "input directory (overrides config)")
	f.String("bbox", "", "boundary file, .geojson or .shp, relative to the input directory (overrides config)")
	f.Int("year", 0, "edition year of scores, sub-indicators and investments (0=use config default)")
}

// applyInputFlags copies set input flags onto the loaded config.
func applyInputFlags(cmd *cobra.Command) {
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Paths.Input = v
	}
	if v, _ := cmd.Flags().GetString("bbox"); v != "" {
		cfg.Paths.BBox = v
	}
	if v, _ := cmd.Flags().GetInt("year"); v != 0 {
		cfg.Pipeline.Year = v
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
