package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/schema"
)

// dateFormat is used for goal target dates.
const dateFormat = "2006-01-02"

// WriteGreenMetrics outputs green metrics, dispatching based on the output format configured.
func WriteGreenMetrics(metrics []schema.GreenMetric, cfg *contract.Config) error {
	fmtFloat, fmtNumber := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, metrics)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetrics(w, metrics, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(w, metrics, fmtNumber)
		}, "Wrote table")
	}
}

func writeCSVMetrics(w io.Writer, metrics []schema.GreenMetric, fmtFloat func(float64) string) error {
	header := []string{"metric", "value", "unit", "target", "trend", "last_updated"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range metrics {
			target := ""
			if m.Target != nil {
				target = fmtFloat(*m.Target)
			}
			rec := []string{m.Metric, fmtFloat(m.Value), m.Unit, target, string(m.Trend), m.LastUpdated.Format(contract.DateTimeFormat)}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeMetricsTable(w io.Writer, metrics []schema.GreenMetric, fmtNumber func(float64) string) error {
	if _, err := fmt.Fprintln(w, "📈 Green Metrics"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		target := "-"
		if m.Target != nil {
			target = fmtNumber(*m.Target)
		}
		rows = append(rows, []string{m.Metric, fmtNumber(m.Value), m.Unit, target, trendLabel(m.Trend)})
	}
	return renderTable(w, []string{"Metric", "Value", "Unit", "Target", "Trend"}, rows)
}

func trendLabel(t schema.Trend) string {
	switch t {
	case schema.TrendImproving:
		return "↑ improving"
	case schema.TrendDeclining:
		return "↓ declining"
	default:
		return "→ " + string(t)
	}
}

// WriteSustainabilityGoals outputs sustainability goals, dispatching based on the output format configured.
func WriteSustainabilityGoals(goals []schema.SustainabilityGoal, cfg *contract.Config) error {
	fmtFloat, fmtNumber := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, goals)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVGoals(w, goals, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGoalsTable(w, goals, cfg, fmtNumber)
		}, "Wrote table")
	}
}

func writeCSVGoals(w io.Writer, goals []schema.SustainabilityGoal, fmtFloat func(float64) string) error {
	header := []string{"id", "title", "description", "target_date", "progress", "status", "sdg"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, g := range goals {
			rec := []string{g.ID, g.Title, g.Description, g.TargetDate.Format(dateFormat), fmtFloat(g.Progress), string(g.Status), strconv.Itoa(g.SDG)}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeGoalsTable(w io.Writer, goals []schema.SustainabilityGoal, cfg *contract.Config, fmtNumber func(float64) string) error {
	if _, err := fmt.Fprintln(w, "🎯 Sustainability Goals"); err != nil {
		return err
	}
	headers := []string{"SDG", "Title", "Target", "Progress", "Status"}
	if cfg.Detail {
		headers = append(headers, "Description")
	}
	maxWidth := getMaxTextWidth(cfg, 85)
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		row := []string{
			strconv.Itoa(g.SDG),
			g.Title,
			g.TargetDate.Format(dateFormat),
			fmtNumber(g.Progress) + "%",
			string(g.Status),
		}
		if cfg.Detail {
			row = append(row, contract.TruncateText(g.Description, maxWidth))
		}
		rows = append(rows, row)
	}
	return renderTable(w, headers, rows)
}

// WriteGreenIncentives outputs green incentives, dispatching based on the output format configured.
func WriteGreenIncentives(incentives []schema.GreenIncentive, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, incentives)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVIncentives(w, incentives)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIncentivesTable(w, incentives, cfg)
		}, "Wrote table")
	}
}

func writeCSVIncentives(w io.Writer, incentives []schema.GreenIncentive) error {
	header := []string{"name", "description", "value", "eligibility"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, inc := range incentives {
			if err := cw.Write([]string{inc.Name, inc.Description, inc.Value, inc.Eligibility}); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeIncentivesTable(w io.Writer, incentives []schema.GreenIncentive, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, "💰 Green Incentives"); err != nil {
		return err
	}
	headers := []string{"Name", "Value", "Eligibility"}
	if cfg.Detail {
		headers = append(headers, "Description")
	}
	maxWidth := getMaxTextWidth(cfg, 70)
	rows := make([][]string, 0, len(incentives))
	for _, inc := range incentives {
		row := []string{inc.Name, inc.Value, contract.TruncateText(inc.Eligibility, maxWidth)}
		if cfg.Detail {
			row = append(row, contract.TruncateText(inc.Description, maxWidth))
		}
		rows = append(rows, row)
	}
	return renderTable(w, headers, rows)
}
