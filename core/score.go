package core

import (
	"math"
	"slices"
	"strings"

	"github.com/huangsam/esgscore/schema"
)

// Pillar weights of the overall score. Environment weighs most, governance least.
const (
	wEnvironmental = 0.40
	wSocial        = 0.35
	wGovernance    = 0.25
)

// Step adjustments applied on top of the sector baseline. Only the cutoffs
// matter: values between them have no graduated effect.
const (
	solarEnergyBonus     = 15.0 // energyEfficiency with solar power
	etpWasteBonus        = 20.0 // wasteManagement with an effluent treatment plant
	greenCoverThreshold  = 20.0 // percent, exclusive
	greenCoverBonus      = 10.0 // carbonFootprint above the threshold
	femaleWorkforceLimit = 40.0 // percent, exclusive
	diversityBonus       = 20.0 // diversityInclusion above the limit
	zeroIncidentBonus    = 15.0 // laborPractices with no safety incidents
	highIncidentLimit    = 5    // incidents, exclusive
	highIncidentPenalty  = 20.0 // laborPractices above the limit

	communityBase         = 60.0
	communityETPBonus     = 10.0
	communityGreenBonus   = 10.0
	diversityBase         = 50.0
	transparencyScore     = 70.0
	ethicalGovernance     = 75.0
	complianceBase        = 90.0
	compliancePerIncident = 5.0
	complianceFloor       = 50.0
)

// Thresholds for strengths and improvements.
const (
	envStrength       = 70.0
	envImprovement    = 50.0
	socialStrength    = 70.0
	socialImprovement = 50.0
	govStrength       = 75.0
	govImprovement    = 60.0
	certStrengthCount = 3
)

// Every sub-score and pillar lives in [minScore, maxScore].
const (
	minScore = 0.0
	maxScore = 100.0
)

// certificationRoutes decides which sub-score a certification feeds, by substring.
// A certification can match more than one route and then counts once per route.
var certificationRoutes = []schema.CertificationRoute{
	{Keywords: []string{"ISO 14001", "Carbon"}, Target: schema.BreakdownCarbon},
	{Keywords: []string{"ZDHC"}, Target: schema.BreakdownWaste},
	{Keywords: []string{"SA8000", "Fair Trade"}, Target: schema.BreakdownLabor},
}

// CertificationRoutes returns the certification routing rules.
func CertificationRoutes() []schema.CertificationRoute {
	out := make([]schema.CertificationRoute, len(certificationRoutes))
	for i, r := range certificationRoutes {
		out[i] = schema.CertificationRoute{Keywords: slices.Clone(r.Keywords), Target: r.Target}
	}
	return out
}

// CalculateESGScore maps investor facts to a full ESG score.
// Unknown sectors use the uniform baseline. Percentages are clamped to [0,100]
// and negative incident counts are treated as zero.
func (e *Engine) CalculateESGScore(sector string, certifications []string, hasETP, hasSolarPower bool, greenCoverPercent, femaleWorkforcePercent float64, safetyIncidents int) schema.ESGScore {
	greenCover := clamp(greenCoverPercent, minScore, maxScore)
	female := clamp(femaleWorkforcePercent, minScore, maxScore)
	incidents := max(safetyIncidents, 0)

	sub := e.tables.Baseline(sector)

	// --- Environmental ---
	if hasSolarPower {
		sub[schema.BreakdownEnergy] += solarEnergyBonus
	}
	if hasETP {
		sub[schema.BreakdownWaste] += etpWasteBonus
	}
	if greenCover > greenCoverThreshold {
		sub[schema.BreakdownCarbon] += greenCoverBonus
	}
	e.applyCertifications(sub, certifications)

	// --- Social ---
	switch {
	case incidents == 0:
		sub[schema.BreakdownLabor] += zeroIncidentBonus
	case incidents > highIncidentLimit:
		sub[schema.BreakdownLabor] -= highIncidentPenalty
	}
	sub[schema.BreakdownCommunity] = communityBase
	if hasETP {
		sub[schema.BreakdownCommunity] += communityETPBonus
	}
	if greenCover > greenCoverThreshold {
		sub[schema.BreakdownCommunity] += communityGreenBonus
	}
	sub[schema.BreakdownDiversity] = diversityBase
	if female > femaleWorkforceLimit {
		sub[schema.BreakdownDiversity] += diversityBonus
	}

	// --- Governance ---
	sub[schema.BreakdownTransp] = transparencyScore
	sub[schema.BreakdownEthics] = ethicalGovernance
	sub[schema.BreakdownCompliance] = math.Max(complianceBase-compliancePerIncident*float64(incidents), complianceFloor)

	for k, v := range sub {
		sub[k] = clamp(v, minScore, maxScore)
	}

	env := mean(sub, schema.EnvironmentalKeys)
	social := mean(sub, schema.SocialKeys)
	gov := mean(sub, schema.GovernanceKeys)
	overall := clamp(wEnvironmental*env+wSocial*social+wGovernance*gov, minScore, maxScore)

	score := schema.ESGScore{
		Overall:        roundScore(overall),
		Environmental:  roundScore(env),
		Social:         roundScore(social),
		Governance:     roundScore(gov),
		Breakdown:      toBreakdown(sub),
		Certifications: append([]string{}, certifications...),
	}
	score.Rating = RatingFor(float64(score.Overall))
	score.Strengths, score.Improvements = assess(env, social, gov, len(certifications))
	return score
}

// applyCertifications adds certification bonuses to the sub-scores they route to.
func (e *Engine) applyCertifications(sub map[schema.BreakdownKey]float64, certifications []string) {
	for _, cert := range certifications {
		bonus := e.tables.CertificationBonus(cert)
		for _, route := range certificationRoutes {
			if containsAny(cert, route.Keywords) {
				sub[route.Target] += bonus
			}
		}
	}
}

// assess runs the independent threshold checks that produce the observation lists.
func assess(env, social, gov float64, certCount int) (strengths, improvements []string) {
	strengths = []string{}
	improvements = []string{}

	if env > envStrength {
		strengths = append(strengths, "Strong environmental performance")
	}
	if env < envImprovement {
		improvements = append(improvements, "Improve environmental practices such as energy efficiency and waste treatment")
	}
	if social > socialStrength {
		strengths = append(strengths, "Strong social responsibility and labor practices")
	}
	if social < socialImprovement {
		improvements = append(improvements, "Strengthen workforce safety and diversity programs")
	}
	if gov > govStrength {
		strengths = append(strengths, "Excellent governance and compliance record")
	}
	if gov < govImprovement {
		improvements = append(improvements, "Improve governance transparency and compliance")
	}
	if certCount > certStrengthCount {
		strengths = append(strengths, "Multiple recognized sustainability certifications")
	}
	if certCount == 0 {
		improvements = append(improvements, "Obtain relevant certifications such as ISO 14001 or SA8000")
	}
	return strengths, improvements
}

func toBreakdown(sub map[schema.BreakdownKey]float64) schema.Breakdown {
	return schema.Breakdown{
		CarbonFootprint:    roundScore(sub[schema.BreakdownCarbon]),
		EnergyEfficiency:   roundScore(sub[schema.BreakdownEnergy]),
		WasteManagement:    roundScore(sub[schema.BreakdownWaste]),
		WaterUsage:         roundScore(sub[schema.BreakdownWater]),
		LaborPractices:     roundScore(sub[schema.BreakdownLabor]),
		CommunityImpact:    roundScore(sub[schema.BreakdownCommunity]),
		DiversityInclusion: roundScore(sub[schema.BreakdownDiversity]),
		Transparency:       roundScore(sub[schema.BreakdownTransp]),
		EthicalGovernance:  roundScore(sub[schema.BreakdownEthics]),
		ComplianceRecord:   roundScore(sub[schema.BreakdownCompliance]),
	}
}

func mean(sub map[schema.BreakdownKey]float64, keys []schema.BreakdownKey) float64 {
	if len(keys) == 0 {
		return 0
	}
	var sum float64
	for _, k := range keys {
		sum += sub[k]
	}
	return sum / float64(len(keys))
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// clamp bounds v to [lo,hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundScore rounds an already clamped score to the nearest integer.
func roundScore(v float64) int {
	return int(math.Round(v))
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
