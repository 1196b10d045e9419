package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/schema"
)

// jsonScoreResult is the JSON shape of a single score, with the investor and label added.
type jsonScoreResult struct {
	Name   string `json:"name"`
	Sector string `json:"sector"`
	Label  string `json:"label"`
	schema.ESGScore
}

// WriteScoreResult outputs an ESG score, dispatching based on the output format configured.
func WriteScoreResult(profile schema.InvestorProfile, score schema.ESGScore, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONScore(w, profile, score)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVScore(w, profile, score)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(w, profile, score, cfg)
		}, "Wrote table")
	}
}

func writeJSONScore(w io.Writer, profile schema.InvestorProfile, score schema.ESGScore) error {
	return writeJSON(w, jsonScoreResult{
		Name:     profile.Name,
		Sector:   profile.Sector,
		Label:    contract.GetPlainLabel(score.Rating),
		ESGScore: score,
	})
}

// scoreCSVHeader lists the pillar columns followed by every breakdown key.
func scoreCSVHeader() []string {
	header := []string{"name", "sector", "overall", "environmental", "social", "governance", "rating", "label"}
	var keys schema.Breakdown
	for _, k := range keys.Keys() {
		header = append(header, string(k))
	}
	return append(header, "certifications")
}

func scoreCSVRecord(profile schema.InvestorProfile, score schema.ESGScore) []string {
	rec := []string{
		profile.Name,
		profile.Sector,
		strconv.Itoa(score.Overall),
		strconv.Itoa(score.Environmental),
		strconv.Itoa(score.Social),
		strconv.Itoa(score.Governance),
		string(score.Rating),
		contract.GetPlainLabel(score.Rating),
	}
	for _, k := range score.Breakdown.Keys() {
		rec = append(rec, strconv.Itoa(score.Breakdown.Get(k)))
	}
	return append(rec, strings.Join(score.Certifications, "|"))
}

func writeCSVScore(w io.Writer, profile schema.InvestorProfile, score schema.ESGScore) error {
	return writeCSVWithHeader(w, scoreCSVHeader(), func(cw *csv.Writer) error {
		return cw.Write(scoreCSVRecord(profile, score))
	})
}

// writeScoreTable writes the pillar table, then the breakdown when detail is on.
func writeScoreTable(w io.Writer, profile schema.InvestorProfile, score schema.ESGScore, cfg *contract.Config) error {
	sector := profile.Sector
	if sector == "" {
		sector = "unspecified sector"
	}
	if _, err := fmt.Fprintf(w, "🌱 ESG Score: %s (%s)\n", profile.Name, sector); err != nil {
		return err
	}

	rows := [][]string{
		{"Environmental", strconv.Itoa(score.Environmental), "40%"},
		{"Social", strconv.Itoa(score.Social), "35%"},
		{"Governance", strconv.Itoa(score.Governance), "25%"},
		{"Overall", strconv.Itoa(score.Overall), "100%"},
	}
	if err := renderTable(w, []string{"Pillar", "Score", "Weight"}, rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rating: %s (%s)\n", contract.GetColorRating(score.Rating), contract.GetPlainLabel(score.Rating)); err != nil {
		return err
	}

	if cfg.Detail {
		var breakdown [][]string
		for _, k := range score.Breakdown.Keys() {
			breakdown = append(breakdown, []string{string(k), strconv.Itoa(score.Breakdown.Get(k))})
		}
		if err := renderTable(w, []string{"Sub-score", "Value"}, breakdown); err != nil {
			return err
		}
	}

	if len(score.Certifications) > 0 {
		if _, err := fmt.Fprintf(w, "Certifications: %s\n", strings.Join(score.Certifications, ", ")); err != nil {
			return err
		}
	}
	if err := writeBulletList(w, "Strengths", score.Strengths); err != nil {
		return err
	}
	return writeBulletList(w, "Improvements", score.Improvements)
}

// jsonPeerResult is the JSON shape of a peer comparison, with the investor's own figures added.
type jsonPeerResult struct {
	Name    string        `json:"name"`
	Overall int           `json:"overall"`
	Rating  schema.Rating `json:"rating"`
	schema.PeerComparisonResult
}

// WritePeerResult outputs a peer comparison, dispatching based on the output format configured.
func WritePeerResult(profile schema.InvestorProfile, score schema.ESGScore, result schema.PeerComparisonResult, cfg *contract.Config) error {
	fmtFloat, fmtNumber := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, jsonPeerResult{Name: profile.Name, Overall: score.Overall, Rating: score.Rating, PeerComparisonResult: result})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPeers(w, profile, score, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePeersTable(w, profile, score, result, fmtNumber)
		}, "Wrote table")
	}
}

func writeCSVPeers(w io.Writer, profile schema.InvestorProfile, score schema.ESGScore, result schema.PeerComparisonResult, fmtFloat func(float64) string) error {
	header := []string{
		"name", "sector", "overall", "rating", "percentile_rank", "better_than",
		"gap_environmental", "gap_social", "gap_governance",
		"avg_overall", "avg_environmental", "avg_social", "avg_governance",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			profile.Name,
			result.Sector,
			strconv.Itoa(score.Overall),
			string(score.Rating),
			fmtFloat(result.PercentileRank),
			strconv.Itoa(result.BetterThan),
			fmtFloat(result.Gap.Environmental),
			fmtFloat(result.Gap.Social),
			fmtFloat(result.Gap.Governance),
			fmtFloat(result.SectorAverage.Overall),
			fmtFloat(result.SectorAverage.Environmental),
			fmtFloat(result.SectorAverage.Social),
			fmtFloat(result.SectorAverage.Governance),
		})
	})
}

func writePeersTable(w io.Writer, profile schema.InvestorProfile, score schema.ESGScore, result schema.PeerComparisonResult, fmtNumber func(float64) string) error {
	if _, err := fmt.Fprintf(w, "📊 Peer Comparison: %s vs %s\n", profile.Name, sectorLabel(result.Sector)); err != nil {
		return err
	}
	signed := func(v float64) string {
		if v > 0 {
			return "+" + fmtNumber(v)
		}
		return fmtNumber(v)
	}
	rows := [][]string{
		{"Overall", strconv.Itoa(score.Overall), fmtNumber(result.SectorAverage.Overall), signed(float64(score.Overall) - result.SectorAverage.Overall)},
		{"Environmental", strconv.Itoa(score.Environmental), fmtNumber(result.SectorAverage.Environmental), signed(result.Gap.Environmental)},
		{"Social", strconv.Itoa(score.Social), fmtNumber(result.SectorAverage.Social), signed(result.Gap.Social)},
		{"Governance", strconv.Itoa(score.Governance), fmtNumber(result.SectorAverage.Governance), signed(result.Gap.Governance)},
	}
	if err := renderTable(w, []string{"Pillar", "Investor", "Sector Avg", "Gap"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Percentile rank: %s (better than %d%% of peers)\n", fmtNumber(result.PercentileRank), result.BetterThan)
	return err
}

func sectorLabel(sector string) string {
	if sector == "" {
		return "all sectors"
	}
	return sector
}
