// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints an ESG score using the configured output format.
func (ow *OutWriter) WriteScore(profile schema.InvestorProfile, score schema.ESGScore, cfg *contract.Config) error {
	return WriteScoreResult(profile, score, cfg)
}

// WritePeers prints a peer comparison using the configured output format.
func (ow *OutWriter) WritePeers(profile schema.InvestorProfile, score schema.ESGScore, result schema.PeerComparisonResult, cfg *contract.Config) error {
	return WritePeerResult(profile, score, result, cfg)
}

// WriteCarbon prints a carbon estimate using the configured output format.
func (ow *OutWriter) WriteCarbon(result schema.CarbonFootprintResult, cfg *contract.Config) error {
	return WriteCarbonResult(result, cfg)
}

// WriteMetrics prints green metrics using the configured output format.
func (ow *OutWriter) WriteMetrics(metrics []schema.GreenMetric, cfg *contract.Config) error {
	return WriteGreenMetrics(metrics, cfg)
}

// WriteGoals prints sustainability goals using the configured output format.
func (ow *OutWriter) WriteGoals(goals []schema.SustainabilityGoal, cfg *contract.Config) error {
	return WriteSustainabilityGoals(goals, cfg)
}

// WriteIncentives prints green incentives using the configured output format.
func (ow *OutWriter) WriteIncentives(incentives []schema.GreenIncentive, cfg *contract.Config) error {
	return WriteGreenIncentives(incentives, cfg)
}

// WriteBatch prints ranked batch evaluations using the configured output format.
func (ow *OutWriter) WriteBatch(result schema.BatchResult, total int, cfg *contract.Config, duration time.Duration) error {
	return WriteBatchResult(result, total, cfg, duration)
}

// WriteCheck prints a policy check outcome using the configured output format.
func (ow *OutWriter) WriteCheck(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	return WriteCheckResult(result, cfg, duration)
}

// WriteModel prints the scoring model description using the configured output format.
func (ow *OutWriter) WriteModel(model schema.ModelDescription, cfg *contract.Config) error {
	return WriteModelDescription(model, cfg)
}
