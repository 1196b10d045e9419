package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd lists the green metrics of an investment.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display green metrics scaled to an investment size",
	Long: `Show illustrative green metrics for an investment.

Carbon emissions and water consumption scale with --investment-size; energy
efficiency, waste recycling and renewable share are fixed reference values.

Examples:
  esgscore metrics --investment-size 120
  esgscore metrics --investment-size 120 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
