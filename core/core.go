// Package core has core logic for scoring, peer comparison, carbon estimation and ranking.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/esgscore/core/algo"
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/internal/outwriter"
	"github.com/huangsam/esgscore/schema"
	"github.com/rs/zerolog/log"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// EngineFor builds an engine over the tables of a validated config.
// A config without tables gets the seeded ones.
func EngineFor(cfg *contract.Config) *Engine {
	if len(cfg.Tables.Sectors()) == 0 {
		return NewEngine()
	}
	return NewEngine(WithTables(cfg.Tables))
}

// warnUnknownSector notes that a sector falls back to the default tables.
func warnUnknownSector(e *Engine, sector string) {
	if sector != "" && !e.tables.HasSector(sector) {
		log.Warn().Str("sector", sector).Msg("unknown sector, using default baseline")
	}
}

// ExecuteScore scores the investor described by the command-line facts.
func ExecuteScore(_ context.Context, cfg *contract.Config) error {
	e := EngineFor(cfg)
	p := cfg.Investor
	warnUnknownSector(e, p.Sector)

	score := e.CalculateESGScore(p.Sector, p.Certifications, p.HasETP, p.HasSolarPower, p.GreenCoverPercent, p.FemaleWorkforcePercent, p.SafetyIncidents)
	log.Debug().Str("sector", p.Sector).Int("overall", score.Overall).Str("rating", string(score.Rating)).Msg("scored investor")
	return outwriter.NewOutWriter().WriteScore(p, score, cfg)
}

// ExecutePeers scores the investor and places the score against its sector average.
func ExecutePeers(_ context.Context, cfg *contract.Config) error {
	e := EngineFor(cfg)
	p := cfg.Investor
	warnUnknownSector(e, p.Sector)

	score := e.CalculateESGScore(p.Sector, p.Certifications, p.HasETP, p.HasSolarPower, p.GreenCoverPercent, p.FemaleWorkforcePercent, p.SafetyIncidents)
	result := e.CompareESGWithPeers(score, p.Sector)
	log.Debug().Str("sector", p.Sector).Int("overall", score.Overall).Float64("percentile", result.PercentileRank).Msg("compared with peers")
	return outwriter.NewOutWriter().WritePeers(p, score, result, cfg)
}

// ExecuteCarbon estimates the annual carbon footprint of the investor.
func ExecuteCarbon(_ context.Context, cfg *contract.Config) error {
	e := EngineFor(cfg)
	p := cfg.Investor

	result, err := e.CalculateCarbonFootprint(p.Sector, p.EmployeeCount, p.AnnualEnergyKWh, p.HasRenewableEnergy)
	if err != nil {
		return fmt.Errorf("cannot estimate carbon footprint: %w", err)
	}
	log.Debug().Str("sector", p.Sector).Float64("total_co2_tons", result.TotalCO2Tons).Msg("estimated carbon footprint")
	return outwriter.NewOutWriter().WriteCarbon(result, cfg)
}

// ExecuteMetrics lists the green metrics for the investment size.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	p := cfg.Investor
	if p.InvestmentSize <= 0 {
		log.Warn().Float64("investment_size", p.InvestmentSize).Msg("investment size is not positive, size based metrics will be zero")
	}
	metrics := EngineFor(cfg).GetGreenMetrics(p.Sector, p.InvestmentSize)
	return outwriter.NewOutWriter().WriteMetrics(metrics, cfg)
}

// ExecuteGoals lists the sustainability goal catalog.
func ExecuteGoals(_ context.Context, cfg *contract.Config) error {
	goals := EngineFor(cfg).GetSustainabilityGoals(cfg.Investor.Sector)
	return outwriter.NewOutWriter().WriteGoals(goals, cfg)
}

// ExecuteIncentives lists the green incentive catalog.
func ExecuteIncentives(_ context.Context, cfg *contract.Config) error {
	incentives := EngineFor(cfg).GetGreenIncentives()
	return outwriter.NewOutWriter().WriteIncentives(incentives, cfg)
}

// ExecuteBatch evaluates every profile of the profiles file and prints them ranked.
func ExecuteBatch(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := evaluateConfiguredProfiles(ctx, cfg)
	if err != nil {
		return err
	}
	total := len(result.Evaluations)
	result.Evaluations = algo.RankEvaluations(result.Evaluations, cfg.ResultLimit)
	return outwriter.NewOutWriter().WriteBatch(result, total, cfg, time.Since(start))
}

// ExecuteCheck enforces the minimum rating and overall score on every profile.
// It returns an error when at least one profile fails, so the caller can exit non-zero.
func ExecuteCheck(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := evaluateConfiguredProfiles(ctx, cfg)
	if err != nil {
		return err
	}
	check := CheckEvaluations(result.Evaluations, cfg.MinRating, cfg.MinOverall)
	if err := outwriter.NewOutWriter().WriteCheck(check, cfg, time.Since(start)); err != nil {
		return err
	}
	if !check.Passed() {
		return fmt.Errorf("%d of %d profiles are below rating %s or overall %d", len(check.Failures), check.Checked, check.MinRating, check.MinOverall)
	}
	return nil
}

// ExecuteModel displays how scores are formed.
// This is a static display that does not require investor data.
func ExecuteModel(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteModel(EngineFor(cfg).DescribeModel(), cfg)
}

func evaluateConfiguredProfiles(ctx context.Context, cfg *contract.Config) (schema.BatchResult, error) {
	if len(cfg.Profiles) == 0 {
		return schema.BatchResult{}, errors.New("--profiles is required and must list at least one profile")
	}
	e := EngineFor(cfg)
	for _, p := range cfg.Profiles {
		warnUnknownSector(e, p.Sector)
	}
	result, err := e.EvaluateProfiles(ctx, cfg.Profiles)
	if err != nil {
		return schema.BatchResult{}, fmt.Errorf("evaluation interrupted: %w", err)
	}
	log.Debug().Str("run_id", result.RunID).Int("profiles", len(result.Evaluations)).Msg("evaluated profiles")
	return result, nil
}
