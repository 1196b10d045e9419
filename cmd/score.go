package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores a single investor.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an investor on environmental, social and governance pillars",
	Long: `Compute the ESG score of one investor from declarative facts.

The sector baseline is adjusted by the facts you pass:
- Solar power, an effluent treatment plant and green cover raise environmental sub-scores
- Certifications add bonuses to the sub-score they route to
- Safety incidents move labor practices and compliance
- Female workforce share drives diversity and inclusion

Overall = 40% environmental + 35% social + 25% governance, mapped to AAA..C.

Examples:
  # Score a technology company with two certifications
  esgscore score --sector "Technology & IT" --certs "ISO 14001,B Corp" --etp --solar --green-cover 25 --female-workforce 45

  # Show the full sub-score breakdown as JSON
  esgscore score --sector Manufacturing --incidents 3 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot score investor", err)
		}
	},
}
