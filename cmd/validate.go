package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/climatescope-data/internal/input"
	"github.com/sells-group/climatescope-data/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the CSV inputs for structural and reference errors",
	Long: `Validate runs every input check and prints one line per violation:
required files and headers, chart types and grid flags, group and average
references, answer options of answer charts, topic weights, region
references and bounding box coverage.

Exits non-zero when any check fails.`,
	RunE: runValidate,
}

func init() {
	addInputFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	applyInputFlags(cmd)

	layout := input.Layout{Dir: cfg.Paths.Input, Year: cfg.Pipeline.Year, BBox: cfg.Paths.BBox}
	report, err := validate.NewSuite(layout).Run(cmd.Context())
	if err != nil {
		return err
	}

	if _, err := report.WriteTo(cmd.OutOrStdout()); err != nil {
		return err
	}
	if report.OK() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: all checks passed\n", cfg.Paths.Input)
	}
	return report.Err()
}
