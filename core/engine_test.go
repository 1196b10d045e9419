package core

import (
	"sync"
	"testing"

	"github.com/huangsam/esgscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineWithCustomSector(t *testing.T) {
	tables := schema.DefaultTables().WithSectors(schema.SectorDefinition{
		Name:        "Cement",
		Baseline:    schema.SectorBaseline{schema.BreakdownCarbon: 30, schema.BreakdownWater: 40},
		PeerAverage: &schema.PillarScores{Overall: 50, Environmental: 40, Social: 55, Governance: 60},
	})
	e := NewEngine(WithTables(tables))

	score := e.CalculateESGScore("Cement", nil, false, false, 0, 0, 1)
	assert.Equal(t, 30, score.Breakdown.CarbonFootprint)
	assert.Equal(t, 40, score.Breakdown.WaterUsage)
	assert.Equal(t, 50, score.Breakdown.EnergyEfficiency, "missing baseline fields default to 50")

	peers := e.CompareESGWithPeers(score, "Cement")
	assert.InDelta(t, 50.0, peers.SectorAverage.Overall, 0.001)

	// The package-level functions keep using the seeded tables.
	assert.Equal(t, 50, CalculateESGScore("Cement", nil, false, false, 0, 0, 1).Breakdown.CarbonFootprint)
}

func TestEngineOverrideSeededSector(t *testing.T) {
	tables := schema.DefaultTables().WithSectors(schema.SectorDefinition{
		Name:     "Manufacturing",
		Baseline: schema.SectorBaseline{schema.BreakdownLabor: 90},
	})
	e := NewEngine(WithTables(tables))

	score := e.CalculateESGScore("Manufacturing", nil, false, false, 0, 0, 1)
	assert.Equal(t, 90, score.Breakdown.LaborPractices)
	assert.Equal(t, 50, score.Breakdown.CarbonFootprint)

	// The peer average of a replaced sector survives when none is given.
	assert.InDelta(t, 58.0, e.CompareESGWithPeers(score, "Manufacturing").SectorAverage.Overall, 0.001)
	assert.Equal(t, schema.DefaultTables().Sectors(), e.Tables().Sectors())
}

func TestEngineZeroTables(t *testing.T) {
	e := NewEngine(WithTables(schema.Tables{}))
	score := e.CalculateESGScore("Technology & IT", []string{"ISO 14001"}, false, false, 0, 0, 1)

	assert.Equal(t, 55, score.Breakdown.CarbonFootprint) // 50 + default bonus 5
	assert.Empty(t, e.Tables().Sectors())
}

func TestEngineConcurrentUse(t *testing.T) {
	e := NewEngine()
	want := e.CalculateESGScore("Textiles & Apparel", []string{"GOTS", "ZDHC"}, true, false, 10, 55, 3)

	var wg sync.WaitGroup
	results := make([]schema.ESGScore, 16)
	for i := range results {
		wg.Go(func() {
			results[i] = e.CalculateESGScore("Textiles & Apparel", []string{"GOTS", "ZDHC"}, true, false, 10, 55, 3)
		})
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
