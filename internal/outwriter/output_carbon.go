package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/schema"
)

// WriteCarbonResult outputs a carbon estimate, dispatching based on the output format configured.
func WriteCarbonResult(result schema.CarbonFootprintResult, cfg *contract.Config) error {
	fmtFloat, fmtNumber := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCarbon(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCarbonTable(w, result, cfg, fmtNumber)
		}, "Wrote table")
	}
}

func writeCSVCarbon(w io.Writer, r schema.CarbonFootprintResult, fmtFloat func(float64) string) error {
	header := []string{
		"sector", "total_co2_tons", "per_employee_co2_tons",
		"energy_tons", "operations_tons", "transport_tons",
		"offset_tons_required", "offset_cost",
		"miles_driven", "tree_seedlings", "home_energy_days",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			r.Sector,
			fmtFloat(r.TotalCO2Tons),
			fmtFloat(r.PerEmployeeCO2Tons),
			fmtFloat(r.Breakdown.Energy),
			fmtFloat(r.Breakdown.Operations),
			fmtFloat(r.Breakdown.Transport),
			fmtFloat(r.OffsetTonsRequired),
			fmtFloat(r.OffsetCost),
			fmtFloat(r.Equivalencies.MilesDriven),
			fmtFloat(r.Equivalencies.TreeSeedlings),
			fmtFloat(r.Equivalencies.HomeEnergyDays),
		})
	})
}

func writeCarbonTable(w io.Writer, r schema.CarbonFootprintResult, cfg *contract.Config, fmtNumber func(float64) string) error {
	if _, err := fmt.Fprintf(w, "🏭 Carbon Footprint: %s\n", sectorLabel(r.Sector)); err != nil {
		return err
	}
	share := func(v float64) string {
		if r.TotalCO2Tons == 0 {
			return "0%"
		}
		return printer.Sprintf("%.0f%%", v/r.TotalCO2Tons*100)
	}
	rows := [][]string{
		{"Energy", fmtNumber(r.Breakdown.Energy), share(r.Breakdown.Energy)},
		{"Operations", fmtNumber(r.Breakdown.Operations), share(r.Breakdown.Operations)},
		{"Transport", fmtNumber(r.Breakdown.Transport), share(r.Breakdown.Transport)},
		{"Total", fmtNumber(r.TotalCO2Tons), "100%"},
	}
	if err := renderTable(w, []string{"Source", "tCO2e / year", "Share"}, rows); err != nil {
		return err
	}
	lines := []string{
		"Per employee: " + fmtNumber(r.PerEmployeeCO2Tons) + " tCO2e",
		"Offset required: " + fmtNumber(r.OffsetTonsRequired) + " t at a cost of " + fmtNumber(r.OffsetCost),
	}
	if cfg.Detail {
		lines = append(lines,
			"Equivalent to:",
			printer.Sprintf("  🚗 %.0f miles driven by an average car", r.Equivalencies.MilesDriven),
			printer.Sprintf("  🌳 %.0f tree seedlings grown for 10 years", r.Equivalencies.TreeSeedlings),
			printer.Sprintf("  🏠 %.0f days of average home electricity", r.Equivalencies.HomeEnergyDays),
		)
	}
	return writeLines(w, lines...)
}
