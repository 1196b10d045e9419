package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// peersCmd compares an investor with the average of its sector.
var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Compare an investor's ESG score with its sector average",
	Long: `Score an investor and place the result against the average of its sector.

The percentile rank is an estimate: 50 plus twice the distance to the sector's
average overall score, bounded to 5..95. Sectors without a published average are
compared against 60 on every pillar.

Examples:
  esgscore peers --sector "Textiles & Apparel" --certs "GOTS,ZDHC" --etp
  esgscore peers --sector Manufacturing --output csv --output-file peers.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePeers(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compare with peers", err)
		}
	},
}
