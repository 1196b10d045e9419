package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// goalsCmd lists the sustainability goals.
var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List sustainability goals with progress and SDG mapping",
	Long: `List the sustainability goals tracked for investors, each mapped to a
UN Sustainable Development Goal. Use --detail to include descriptions.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGoals(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display goals", err)
		}
	},
}
