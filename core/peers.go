package core

import (
	"math"

	"github.com/huangsam/esgscore/schema"
)

// Percentile bounds. The model never claims a 0th or 100th percentile.
const (
	minPercentile      = 5.0
	maxPercentile      = 95.0
	medianPercentile   = 50.0
	percentilePerPoint = 2.0
)

// CompareESGWithPeers places a score against the average of its sector.
// Unknown sectors are compared against a uniform average of 60.
func (e *Engine) CompareESGWithPeers(score schema.ESGScore, sector string) schema.PeerComparisonResult {
	avg := e.tables.PeerAverage(sector)
	percentile := clamp(medianPercentile+(float64(score.Overall)-avg.Overall)*percentilePerPoint, minPercentile, maxPercentile)

	return schema.PeerComparisonResult{
		Sector:         sector,
		PercentileRank: percentile,
		BetterThan:     int(math.Round(percentile)),
		Gap: schema.PillarGap{
			Environmental: float64(score.Environmental) - avg.Environmental,
			Social:        float64(score.Social) - avg.Social,
			Governance:    float64(score.Governance) - avg.Governance,
		},
		SectorAverage: avg,
	}
}
