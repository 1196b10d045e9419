package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// carbonCmd estimates the annual carbon footprint of an investor.
var carbonCmd = &cobra.Command{
	Use:   "carbon",
	Short: "Estimate annual CO2e emissions and offset cost",
	Long: `Estimate annual emissions from electricity use and headcount.

Energy uses 0.75 kg CO2e/kWh from the grid or 0.05 kg CO2e/kWh when renewable.
Operations add 0.5 t and commuting 0.3 t per employee. Offsets cost 15 per ton.
Use --detail to see everyday equivalencies of the total.

Examples:
  esgscore carbon --employees 250 --energy-kwh 1200000
  esgscore carbon --employees 250 --energy-kwh 1200000 --renewable --detail`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCarbon(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot estimate carbon footprint", err)
		}
	},
}
