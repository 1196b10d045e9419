package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/esgscore/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBatch() schema.BatchResult {
	carbon := schema.CarbonFootprintResult{TotalCO2Tons: 420.5}
	return schema.BatchResult{
		RunID:       "3f1c7a52-9d7e-4b5e-8a43-2f0c1b6d9e11",
		EvaluatedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Evaluations: []schema.Evaluation{
			{
				Profile: schema.InvestorProfile{Name: "Acme Tech", Sector: "Technology & IT"},
				Score: schema.ESGScore{
					Overall: 85, Environmental: 92, Social: 83, Governance: 78, Rating: schema.RatingAA,
					Breakdown:      schema.Breakdown{CarbonFootprint: 97, ComplianceRecord: 90},
					Certifications: []string{"ISO 14001", "B Corp"},
				},
				Peers:  schema.PeerComparisonResult{PercentileRank: 75},
				Carbon: &carbon,
			},
			{
				Profile: schema.InvestorProfile{Name: "Loom Works", Sector: "Textiles & Apparel"},
				Score:   schema.ESGScore{Overall: 52, Rating: schema.RatingB, Certifications: []string{}},
				Peers:   schema.PeerComparisonResult{PercentileRank: 44},
			},
		},
	}
}

func TestEvaluationRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(EvaluationRecord))
	require.NotNil(t, s)

	expectedColumns := []string{
		"evaluation_id",
		"run_id",
		"evaluated_at",
		"rank",
		"name",
		"sector",
		"overall",
		"environmental",
		"social",
		"governance",
		"rating",
		"carbon_footprint",
		"compliance_record",
		"certifications",
		"percentile_rank",
		"total_co2_tons",
	}

	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestEvaluationRecords(t *testing.T) {
	batch := sampleBatch()
	records := EvaluationRecords(batch)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, int32(1), first.Rank)
	assert.Equal(t, batch.RunID, first.RunID)
	assert.Equal(t, "Acme Tech", first.Name)
	assert.Equal(t, int32(85), first.Overall)
	assert.Equal(t, "AA", first.Rating)
	assert.Equal(t, int32(97), first.CarbonFootprint)
	assert.Equal(t, "ISO 14001|B Corp", first.Certifications)
	require.NotNil(t, first.TotalCO2Tons)
	assert.InDelta(t, 420.5, *first.TotalCO2Tons, 0.001)

	second := records[1]
	assert.Equal(t, int32(2), second.Rank)
	assert.Nil(t, second.TotalCO2Tons, "profiles without a carbon estimate have a null total")
	assert.NotEqual(t, first.EvaluationID, second.EvaluationID)
}

func TestWriteEvaluationsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "evaluations.parquet")

	data := EvaluationRecords(sampleBatch())
	require.NoError(t, WriteEvaluationsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[EvaluationRecord](file)
	defer reader.Close()

	readData := make([]EvaluationRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].EvaluationID, readData[i].EvaluationID)
		assert.Equal(t, data[i].Name, readData[i].Name)
		assert.Equal(t, data[i].Overall, readData[i].Overall)
		assert.InDelta(t, data[i].PercentileRank, readData[i].PercentileRank, 0.001)
		assert.WithinDuration(t, data[i].EvaluatedAt, readData[i].EvaluatedAt, time.Nanosecond)
		if data[i].TotalCO2Tons == nil {
			assert.Nil(t, readData[i].TotalCO2Tons)
		} else {
			require.NotNil(t, readData[i].TotalCO2Tons)
			assert.InDelta(t, *data[i].TotalCO2Tons, *readData[i].TotalCO2Tons, 0.001)
		}
	}
}

func TestWriteEvaluationsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")

	require.NoError(t, WriteEvaluationsParquet([]EvaluationRecord{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Parquet file should have metadata even with no rows")
}

func TestWriteEvaluationsParquet_BadPath(t *testing.T) {
	err := WriteEvaluationsParquet(nil, filepath.Join(t.TempDir(), "missing", "dir", "out.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
