// Package parquet provides data structures and functions for exporting batch
// evaluations to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/esgscore/schema"
	"github.com/parquet-go/parquet-go"
)

// EvaluationRecord is one flattened evaluation of a batch run.
type EvaluationRecord struct {
	// EvaluationID is a unique identifier for this row
	EvaluationID string `parquet:"evaluation_id,snappy"`

	// RunID groups all rows written by the same batch run
	RunID string `parquet:"run_id,snappy"`

	// EvaluatedAt is when the batch was evaluated (stored as TIMESTAMP with nanosecond precision)
	EvaluatedAt time.Time `parquet:"evaluated_at,snappy"`

	// Rank is the 1-based position after ranking by overall score
	Rank int32 `parquet:"rank,snappy"`

	Name   string `parquet:"name,snappy"`
	Sector string `parquet:"sector,snappy"`

	Overall       int32  `parquet:"overall,snappy"`
	Environmental int32  `parquet:"environmental,snappy"`
	Social        int32  `parquet:"social,snappy"`
	Governance    int32  `parquet:"governance,snappy"`
	Rating        string `parquet:"rating,snappy"`

	CarbonFootprint    int32 `parquet:"carbon_footprint,snappy"`
	EnergyEfficiency   int32 `parquet:"energy_efficiency,snappy"`
	WasteManagement    int32 `parquet:"waste_management,snappy"`
	WaterUsage         int32 `parquet:"water_usage,snappy"`
	LaborPractices     int32 `parquet:"labor_practices,snappy"`
	CommunityImpact    int32 `parquet:"community_impact,snappy"`
	DiversityInclusion int32 `parquet:"diversity_inclusion,snappy"`
	Transparency       int32 `parquet:"transparency,snappy"`
	EthicalGovernance  int32 `parquet:"ethical_governance,snappy"`
	ComplianceRecord   int32 `parquet:"compliance_record,snappy"`

	// Certifications is the pipe-separated certification list
	Certifications string `parquet:"certifications,snappy"`

	PercentileRank float64 `parquet:"percentile_rank,snappy"`

	// TotalCO2Tons is null when the profile had no employee count
	TotalCO2Tons *float64 `parquet:"total_co2_tons,optional,snappy"`
}

// EvaluationRecords flattens a batch result into rows in ranked order.
func EvaluationRecords(result schema.BatchResult) []EvaluationRecord {
	records := make([]EvaluationRecord, 0, len(result.Evaluations))
	for i, ev := range result.Evaluations {
		b := ev.Score.Breakdown
		rec := EvaluationRecord{
			EvaluationID:       uuid.NewString(),
			RunID:              result.RunID,
			EvaluatedAt:        result.EvaluatedAt,
			Rank:               int32(i + 1),
			Name:               ev.Profile.Name,
			Sector:             ev.Profile.Sector,
			Overall:            int32(ev.Score.Overall),
			Environmental:      int32(ev.Score.Environmental),
			Social:             int32(ev.Score.Social),
			Governance:         int32(ev.Score.Governance),
			Rating:             string(ev.Score.Rating),
			CarbonFootprint:    int32(b.CarbonFootprint),
			EnergyEfficiency:   int32(b.EnergyEfficiency),
			WasteManagement:    int32(b.WasteManagement),
			WaterUsage:         int32(b.WaterUsage),
			LaborPractices:     int32(b.LaborPractices),
			CommunityImpact:    int32(b.CommunityImpact),
			DiversityInclusion: int32(b.DiversityInclusion),
			Transparency:       int32(b.Transparency),
			EthicalGovernance:  int32(b.EthicalGovernance),
			ComplianceRecord:   int32(b.ComplianceRecord),
			Certifications:     strings.Join(ev.Score.Certifications, "|"),
			PercentileRank:     ev.Peers.PercentileRank,
		}
		if ev.Carbon != nil {
			total := ev.Carbon.TotalCO2Tons
			rec.TotalCO2Tons = &total
		}
		records = append(records, rec)
	}
	return records
}

// WriteEvaluationsParquet writes a slice of EvaluationRecord structs to a Parquet file.
func WriteEvaluationsParquet(data []EvaluationRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the EvaluationRecord struct tags
	writer := parquet.NewGenericWriter[EvaluationRecord](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
