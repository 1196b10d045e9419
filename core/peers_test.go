package core

import (
	"testing"

	"github.com/huangsam/esgscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestCompareESGWithPeers(t *testing.T) {
	score := CalculateESGScore("Technology & IT", []string{"ISO 14001", "B Corp"}, true, true, 25, 45, 0)
	result := CompareESGWithPeers(score, "Technology & IT")

	assert.Equal(t, "Technology & IT", result.Sector)
	assert.InDelta(t, 76.0, result.PercentileRank, 0.001) // 50 + (85 - 72) * 2
	assert.Equal(t, 76, result.BetterThan)
	assert.Equal(t, schema.PillarGap{Environmental: 17, Social: 13, Governance: 8}, result.Gap)
	assert.Equal(t, schema.PillarScores{Overall: 72, Environmental: 75, Social: 70, Governance: 70}, result.SectorAverage)
}

func TestCompareESGWithPeersBounds(t *testing.T) {
	tests := []struct {
		name     string
		score    schema.ESGScore
		sector   string
		expected float64
	}{
		{name: "capped high", score: schema.ESGScore{Overall: 100}, sector: "Textiles & Apparel", expected: 95},
		{name: "capped low", score: schema.ESGScore{Overall: 0}, sector: "Manufacturing", expected: 5},
		{name: "exactly average", score: schema.ESGScore{Overall: 58}, sector: "Manufacturing", expected: 50},
		{name: "unknown sector uses 60", score: schema.ESGScore{Overall: 60}, sector: "Automotive", expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareESGWithPeers(tt.score, tt.sector)
			assert.InDelta(t, tt.expected, result.PercentileRank, 0.001)
		})
	}
}

func TestCompareESGWithPeersNegativeGap(t *testing.T) {
	score := schema.ESGScore{Overall: 50, Environmental: 40, Social: 55, Governance: 62}
	result := CompareESGWithPeers(score, "Pharmaceuticals")

	assert.Equal(t, schema.PillarGap{Environmental: -20, Social: -5, Governance: 2}, result.Gap)
	assert.InDelta(t, 30.0, result.PercentileRank, 0.001)
	assert.Equal(t, 30, result.BetterThan)
}
