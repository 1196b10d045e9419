package core

import (
	"sync"
	"time"

	"github.com/huangsam/esgscore/schema"
)

// Engine computes ESG scores, peer comparisons, carbon estimates and catalogs
// from an immutable set of lookup tables. It holds no mutable state, so a single
// Engine can be shared by concurrent callers.
type Engine struct {
	tables schema.Tables
	now    func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithTables replaces the seeded lookup tables.
func WithTables(t schema.Tables) Option {
	return func(e *Engine) {
		e.tables = t
	}
}

// WithClock sets the clock used for lastUpdated timestamps of green metrics.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine builds an Engine over the seeded tables unless overridden by options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tables: schema.DefaultTables(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tables returns the lookup tables used by the engine.
func (e *Engine) Tables() schema.Tables {
	return e.tables
}

// defaultEngine is built once on first use and shared by the package-level functions.
var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine() })

// CalculateESGScore scores an investor using the seeded tables.
func CalculateESGScore(sector string, certifications []string, hasETP, hasSolarPower bool, greenCoverPercent, femaleWorkforcePercent float64, safetyIncidents int) schema.ESGScore {
	return defaultEngine().CalculateESGScore(sector, certifications, hasETP, hasSolarPower, greenCoverPercent, femaleWorkforcePercent, safetyIncidents)
}

// CompareESGWithPeers compares a score against the seeded sector averages.
func CompareESGWithPeers(score schema.ESGScore, sector string) schema.PeerComparisonResult {
	return defaultEngine().CompareESGWithPeers(score, sector)
}

// CalculateCarbonFootprint estimates annual emissions using the fixed factors.
func CalculateCarbonFootprint(sector string, employeeCount int, annualEnergyKWh float64, hasRenewableEnergy bool) (schema.CarbonFootprintResult, error) {
	return defaultEngine().CalculateCarbonFootprint(sector, employeeCount, annualEnergyKWh, hasRenewableEnergy)
}

// GetGreenMetrics returns the illustrative green metrics for an investment.
func GetGreenMetrics(sector string, investmentSize float64) []schema.GreenMetric {
	return defaultEngine().GetGreenMetrics(sector, investmentSize)
}

// GetSustainabilityGoals returns the sustainability goal catalog.
func GetSustainabilityGoals(sector string) []schema.SustainabilityGoal {
	return defaultEngine().GetSustainabilityGoals(sector)
}

// GetGreenIncentives returns the green incentive catalog.
func GetGreenIncentives() []schema.GreenIncentive {
	return defaultEngine().GetGreenIncentives()
}
