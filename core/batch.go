package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/huangsam/esgscore/schema"
)

// Evaluate runs every engine operation that applies to a profile.
// The carbon estimate is skipped when the employee count is zero and the
// green metrics are skipped when no investment size is given.
func (e *Engine) Evaluate(p schema.InvestorProfile) schema.Evaluation {
	score := e.CalculateESGScore(p.Sector, p.Certifications, p.HasETP, p.HasSolarPower, p.GreenCoverPercent, p.FemaleWorkforcePercent, p.SafetyIncidents)
	eval := schema.Evaluation{
		Profile: p,
		Score:   score,
		Peers:   e.CompareESGWithPeers(score, p.Sector),
	}
	if p.EmployeeCount > 0 {
		if carbon, err := e.CalculateCarbonFootprint(p.Sector, p.EmployeeCount, p.AnnualEnergyKWh, p.HasRenewableEnergy); err == nil {
			eval.Carbon = &carbon
		}
	}
	if p.InvestmentSize > 0 {
		eval.Metrics = e.GetGreenMetrics(p.Sector, p.InvestmentSize)
	}
	return eval
}

// EvaluateProfiles evaluates profiles in input order under a fresh run ID.
// It stops early with the context error when ctx is cancelled.
func (e *Engine) EvaluateProfiles(ctx context.Context, profiles []schema.InvestorProfile) (schema.BatchResult, error) {
	result := schema.BatchResult{
		RunID:       uuid.NewString(),
		EvaluatedAt: e.now(),
		Evaluations: make([]schema.Evaluation, 0, len(profiles)),
	}
	for _, p := range profiles {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Evaluations = append(result.Evaluations, e.Evaluate(p))
	}
	return result, nil
}
