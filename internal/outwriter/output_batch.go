package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/internal/parquet"
	"github.com/huangsam/esgscore/schema"
)

// jsonEvaluation is the JSON shape of a ranked evaluation.
type jsonEvaluation struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	schema.Evaluation
}

// jsonBatchResult is the JSON shape of a batch run.
type jsonBatchResult struct {
	RunID       string           `json:"runId"`
	EvaluatedAt time.Time        `json:"evaluatedAt"`
	Total       int              `json:"total"`
	Evaluations []jsonEvaluation `json:"evaluations"`
}

// WriteBatchResult outputs ranked evaluations, dispatching based on the output format configured.
// total is the number of profiles evaluated before the result limit was applied.
func WriteBatchResult(result schema.BatchResult, total int, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtNumber := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONBatch(w, result, total)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVBatch(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		if err := parquet.WriteEvaluationsParquet(parquet.EvaluationRecords(result), cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(w, result, total, cfg, fmtNumber, duration)
		}, "Wrote table")
	}
}

func writeJSONBatch(w io.Writer, result schema.BatchResult, total int) error {
	out := jsonBatchResult{
		RunID:       result.RunID,
		EvaluatedAt: result.EvaluatedAt,
		Total:       total,
		Evaluations: make([]jsonEvaluation, len(result.Evaluations)),
	}
	for i, ev := range result.Evaluations {
		out.Evaluations[i] = jsonEvaluation{
			Rank:       i + 1,
			Label:      contract.GetPlainLabel(ev.Score.Rating),
			Evaluation: ev,
		}
	}
	return writeJSON(w, out)
}

func writeCSVBatch(w io.Writer, result schema.BatchResult, fmtFloat func(float64) string) error {
	header := append([]string{"rank"}, scoreCSVHeader()...)
	header = append(header, "percentile_rank", "total_co2_tons", "run_id")
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, ev := range result.Evaluations {
			rec := append([]string{strconv.Itoa(i + 1)}, scoreCSVRecord(ev.Profile, ev.Score)...)
			co2 := ""
			if ev.Carbon != nil {
				co2 = fmtFloat(ev.Carbon.TotalCO2Tons)
			}
			rec = append(rec, fmtFloat(ev.Peers.PercentileRank), co2, result.RunID)
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeBatchTable(w io.Writer, result schema.BatchResult, total int, cfg *contract.Config, fmtNumber func(float64) string, duration time.Duration) error {
	headers := []string{"Rank", "Name", "Sector", "Overall", "Rating", "Env", "Social", "Gov", "Percentile"}
	if cfg.Detail {
		headers = append(headers, "tCO2e", "Label")
	}
	maxWidth := getMaxTextWidth(cfg, 75)
	rows := make([][]string, 0, len(result.Evaluations))
	for i, ev := range result.Evaluations {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(ev.Profile.Name, maxWidth/2),
			contract.TruncateText(sectorLabel(ev.Profile.Sector), maxWidth/2),
			strconv.Itoa(ev.Score.Overall),
			contract.GetColorRating(ev.Score.Rating),
			strconv.Itoa(ev.Score.Environmental),
			strconv.Itoa(ev.Score.Social),
			strconv.Itoa(ev.Score.Governance),
			fmtNumber(ev.Peers.PercentileRank),
		}
		if cfg.Detail {
			co2 := "-"
			if ev.Carbon != nil {
				co2 = fmtNumber(ev.Carbon.TotalCO2Tons)
			}
			row = append(row, co2, contract.GetPlainLabel(ev.Score.Rating))
		}
		rows = append(rows, row)
	}
	if err := renderTable(w, headers, rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing top %d of %d profiles (run %s)\n", len(result.Evaluations), total, result.RunID); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Evaluation completed in %v\n", duration)
	return err
}

// WriteCheckResult outputs a policy check outcome, dispatching based on the output format configured.
func WriteCheckResult(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Passed bool `json:"passed"`
				schema.CheckResult
			}{Passed: result.Passed(), CheckResult: result})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCheck(w, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckText(w, result, cfg, duration)
		}, "Wrote text")
	}
}

func writeCSVCheck(w io.Writer, result schema.CheckResult) error {
	header := []string{"name", "overall", "rating", "reason"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range result.Failures {
			if err := cw.Write([]string{f.Name, strconv.Itoa(f.Overall), string(f.Rating), f.Reason}); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeCheckText(w io.Writer, result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "🔍 Checked %d profiles (min rating %s, min overall %d)\n", result.Checked, result.MinRating, result.MinOverall); err != nil {
		return err
	}
	if result.Passed() {
		_, err := fmt.Fprintf(w, "✅ All profiles passed in %v\n", duration)
		return err
	}
	maxWidth := getMaxTextWidth(cfg, 30)
	rows := make([][]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		rows = append(rows, []string{
			contract.TruncateText(f.Name, 30),
			strconv.Itoa(f.Overall),
			contract.GetColorRating(f.Rating),
			contract.TruncateText(f.Reason, maxWidth),
		})
	}
	if err := renderTable(w, []string{"Name", "Overall", "Rating", "Reason"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "❌ %d of %d profiles failed in %v\n", len(result.Failures), result.Checked, duration)
	return err
}
