package cmd

import (
	"github.com/huangsam/esgscore/core"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/spf13/cobra"
)

// batchCmd evaluates and ranks many investors at once.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate and rank every investor in a profiles file",
	Long: `Evaluate every profile of a YAML profiles file and rank them by overall score.

Each profile is scored and compared with its sector. Profiles with an employee
count also get a carbon estimate, and profiles with an investment size get green
metrics. Results can be exported to Parquet for analytics.

Profiles file format:
  profiles:
    - name: Acme Tech
      sector: Technology & IT
      certifications: [ISO 14001, B Corp]
      has_etp: true
      has_solar_power: true
      green_cover_percent: 25
      female_workforce_percent: 45
      safety_incidents: 0
      employee_count: 250
      annual_energy_kwh: 1200000

Examples:
  esgscore batch --profiles investors.yaml --limit 10
  esgscore batch --profiles investors.yaml --output parquet --output-file ranking.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBatch(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot evaluate profiles", err)
		}
	},
}
