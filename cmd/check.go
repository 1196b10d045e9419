package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on portfolio policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Enforce a minimum ESG rating on a portfolio (fails on violations)",
	Long: `Evaluate every profile of a profiles file and enforce a minimum rating and
overall score. Exits with a non-zero code when any profile falls short, so it can
gate pipelines that onboard investors.

Default policy: rating BB and overall 55. Set check.min_rating and
check.min_overall in .esgscore.yaml or override them with flags.

Examples:
  esgscore check --profiles investors.yaml
  esgscore check --profiles investors.yaml --min-rating A --min-overall 75`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Policy check failed", err)
		}
	},
}
