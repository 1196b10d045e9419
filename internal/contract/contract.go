// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/esgscore/schema"

// ScoringEngine defines the operations the tool server needs from the engine.
// This allows handlers to be tested against the real engine or a stub.
type ScoringEngine interface {
	CalculateESGScore(sector string, certifications []string, hasETP, hasSolarPower bool, greenCoverPercent, femaleWorkforcePercent float64, safetyIncidents int) schema.ESGScore
	CompareESGWithPeers(score schema.ESGScore, sector string) schema.PeerComparisonResult
	CalculateCarbonFootprint(sector string, employeeCount int, annualEnergyKWh float64, hasRenewableEnergy bool) (schema.CarbonFootprintResult, error)
	GetGreenMetrics(sector string, investmentSize float64) []schema.GreenMetric
	GetSustainabilityGoals(sector string) []schema.SustainabilityGoal
	GetGreenIncentives() []schema.GreenIncentive
}
