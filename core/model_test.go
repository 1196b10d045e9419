package core

import (
	"testing"

	"github.com/huangsam/esgscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestDescribeModel(t *testing.T) {
	model := NewEngine().DescribeModel()

	assert.Equal(t, "ESG Scoring Model", model.Title)
	var sum float64
	for _, w := range model.PillarWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 0.0001)
	assert.Equal(t, []string{"transparency", "ethicalGovernance", "complianceRecord"}, model.PillarKeys[schema.GovernancePillar])
	assert.Len(t, model.RatingBands, 9)
	assert.Len(t, model.Routes, 3)
	assert.Len(t, model.Bonuses, 10)
	assert.Len(t, model.Adjustments, 6)
	assert.Contains(t, model.Adjustments[0], "+15 energyEfficiency")
	assert.Contains(t, model.Sectors, "Automotive")
}

func TestDescribeModelCustomSectors(t *testing.T) {
	tables := schema.DefaultTables().WithSectors(schema.SectorDefinition{Name: "Cement"})
	model := NewEngine(WithTables(tables)).DescribeModel()

	assert.Equal(t, "Cement", model.Sectors[len(model.Sectors)-1])
}
