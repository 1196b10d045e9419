package core

import (
	"fmt"

	"github.com/huangsam/esgscore/schema"
)

// DescribeModel returns a static description of how the engine forms scores.
// No investor data is needed.
func (e *Engine) DescribeModel() schema.ModelDescription {
	pillarKeys := map[schema.Pillar][]string{
		schema.EnvironmentalPillar: keyNames(schema.EnvironmentalKeys),
		schema.SocialPillar:        keyNames(schema.SocialKeys),
		schema.GovernancePillar:    keyNames(schema.GovernanceKeys),
	}

	return schema.ModelDescription{
		Title:       "ESG Scoring Model",
		Description: "Overall = weighted mean of pillar scores; each pillar = mean of its sub-scores clamped to [0,100]",
		PillarWeights: map[schema.Pillar]float64{
			schema.EnvironmentalPillar: wEnvironmental,
			schema.SocialPillar:        wSocial,
			schema.GovernancePillar:    wGovernance,
		},
		PillarKeys:  pillarKeys,
		RatingBands: RatingBands(),
		Routes:      CertificationRoutes(),
		Bonuses:     e.tables.Bonuses(),
		Adjustments: []string{
			fmt.Sprintf("solar power: +%.0f %s", solarEnergyBonus, schema.BreakdownEnergy),
			fmt.Sprintf("effluent treatment plant: +%.0f %s, +%.0f %s", etpWasteBonus, schema.BreakdownWaste, communityETPBonus, schema.BreakdownCommunity),
			fmt.Sprintf("green cover > %.0f%%: +%.0f %s, +%.0f %s", greenCoverThreshold, greenCoverBonus, schema.BreakdownCarbon, communityGreenBonus, schema.BreakdownCommunity),
			fmt.Sprintf("female workforce > %.0f%%: +%.0f %s", femaleWorkforceLimit, diversityBonus, schema.BreakdownDiversity),
			fmt.Sprintf("0 safety incidents: +%.0f %s; more than %d: -%.0f %s; 1-%d: no change", zeroIncidentBonus, schema.BreakdownLabor, highIncidentLimit, highIncidentPenalty, schema.BreakdownLabor, highIncidentLimit),
			fmt.Sprintf("%s = max(%.0f - %.0f x incidents, %.0f)", schema.BreakdownCompliance, complianceBase, compliancePerIncident, complianceFloor),
		},
		Sectors: e.tables.Sectors(),
	}
}

func keyNames(keys []schema.BreakdownKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
