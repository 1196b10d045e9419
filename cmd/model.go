package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// modelCmd displays how scores are formed.
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Display pillar weights, rating bands and certification rules",
	Long: `Show how ESG scores are formed: pillar weights, the sub-scores of each pillar,
rating bands, certification bonuses and routing, and the fixed adjustments.

Custom sectors from .esgscore.yaml are listed with the seeded ones.
No investor data is needed - this is purely informational.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteModel(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display model", err)
		}
	},
}
