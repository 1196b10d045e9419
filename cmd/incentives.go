package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// incentivesCmd lists the green incentives.
var incentivesCmd = &cobra.Command{
	Use:     "incentives",
	Short:   "List green incentives available to investors",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteIncentives(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display incentives", err)
		}
	},
}
