package core

import (
	"math"

	"github.com/huangsam/esgscore/schema"
)

// Green metric scaling. Only emissions and water follow the investment size.
const (
	emissionsPerUnit       = 0.5
	emissionsTargetPerUnit = 0.4
	waterPerUnit           = 10.0
	waterTargetPerUnit     = 8.0

	energyEfficiencyPct = 78.0
	energyTargetPct     = 85.0
	recyclingRatePct    = 65.0
	renewableSharePct   = 35.0
	renewableTargetPct  = 50.0
)

// GetGreenMetrics returns five illustrative metrics for an investment.
// Carbon emissions and water consumption scale with investmentSize; the other
// three are constant. Negative or non-finite sizes are treated as zero.
func (e *Engine) GetGreenMetrics(_ string, investmentSize float64) []schema.GreenMetric {
	size := investmentSize
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 {
		size = 0
	}
	now := e.now()

	return []schema.GreenMetric{
		{
			Metric:      "Carbon Emissions",
			Value:       round2(size * emissionsPerUnit),
			Unit:        "tCO2e/year",
			Target:      ptr(round2(size * emissionsTargetPerUnit)),
			Trend:       schema.TrendImproving,
			LastUpdated: now,
		},
		{
			Metric:      "Energy Efficiency",
			Value:       energyEfficiencyPct,
			Unit:        "%",
			Target:      ptr(energyTargetPct),
			Trend:       schema.TrendImproving,
			LastUpdated: now,
		},
		{
			Metric:      "Water Consumption",
			Value:       round2(size * waterPerUnit),
			Unit:        "KL/year",
			Target:      ptr(round2(size * waterTargetPerUnit)),
			Trend:       schema.TrendStable,
			LastUpdated: now,
		},
		{
			Metric:      "Waste Recycling Rate",
			Value:       recyclingRatePct,
			Unit:        "%",
			Trend:       schema.TrendImproving,
			LastUpdated: now,
		},
		{
			Metric:      "Renewable Energy Share",
			Value:       renewableSharePct,
			Unit:        "%",
			Target:      ptr(renewableTargetPct),
			Trend:       schema.TrendImproving,
			LastUpdated: now,
		},
	}
}

// GetSustainabilityGoals returns the goal catalog. The catalog is the same for every sector.
func (e *Engine) GetSustainabilityGoals(_ string) []schema.SustainabilityGoal {
	return schema.SustainabilityGoalCatalog()
}

// GetGreenIncentives returns the incentive catalog.
func (e *Engine) GetGreenIncentives() []schema.GreenIncentive {
	return schema.GreenIncentiveCatalog()
}

func ptr[T any](v T) *T {
	return &v
}
