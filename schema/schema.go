// Package schema has models, constants and static lookup tables for all parts of esgscore.
package schema

import "time"

// Breakdown holds the ten named sub-scores of an evaluation, each an integer in [0,100].
type Breakdown struct {
	CarbonFootprint    int `json:"carbonFootprint"`
	EnergyEfficiency   int `json:"energyEfficiency"`
	WasteManagement    int `json:"wasteManagement"`
	WaterUsage         int `json:"waterUsage"`
	LaborPractices     int `json:"laborPractices"`
	CommunityImpact    int `json:"communityImpact"`
	DiversityInclusion int `json:"diversityInclusion"`
	Transparency       int `json:"transparency"`
	EthicalGovernance  int `json:"ethicalGovernance"`
	ComplianceRecord   int `json:"complianceRecord"`
}

// Get returns the sub-score stored under the given key, or 0 for unknown keys.
func (b Breakdown) Get(key BreakdownKey) int {
	switch key {
	case BreakdownCarbon:
		return b.CarbonFootprint
	case BreakdownEnergy:
		return b.EnergyEfficiency
	case BreakdownWaste:
		return b.WasteManagement
	case BreakdownWater:
		return b.WaterUsage
	case BreakdownLabor:
		return b.LaborPractices
	case BreakdownCommunity:
		return b.CommunityImpact
	case BreakdownDiversity:
		return b.DiversityInclusion
	case BreakdownTransp:
		return b.Transparency
	case BreakdownEthics:
		return b.EthicalGovernance
	case BreakdownCompliance:
		return b.ComplianceRecord
	default:
		return 0
	}
}

// Keys returns the breakdown keys in display order.
func (b Breakdown) Keys() []BreakdownKey {
	keys := make([]BreakdownKey, 0, len(EnvironmentalKeys)+len(SocialKeys)+len(GovernanceKeys))
	keys = append(keys, EnvironmentalKeys...)
	keys = append(keys, SocialKeys...)
	keys = append(keys, GovernanceKeys...)
	return keys
}

// ESGScore is the computed output of one evaluation.
// It is built fresh on every call and never mutated afterwards.
type ESGScore struct {
	Overall        int       `json:"overall"`
	Environmental  int       `json:"environmental"`
	Social         int       `json:"social"`
	Governance     int       `json:"governance"`
	Breakdown      Breakdown `json:"breakdown"`
	Rating         Rating    `json:"rating"`
	Certifications []string  `json:"certifications"`
	Strengths      []string  `json:"strengths"`
	Improvements   []string  `json:"improvements"`
}

// PillarScores holds one value per ESG pillar, plus the weighted overall figure.
type PillarScores struct {
	Overall       float64 `json:"overall" yaml:"overall" mapstructure:"overall"`
	Environmental float64 `json:"environmental" yaml:"environmental" mapstructure:"environmental"`
	Social        float64 `json:"social" yaml:"social" mapstructure:"social"`
	Governance    float64 `json:"governance" yaml:"governance" mapstructure:"governance"`
}

// PillarGap is the signed difference between an investor and the sector average.
// Positive values mean the investor outperforms its peers.
type PillarGap struct {
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
}

// PeerComparisonResult places an ESGScore against the average of its sector.
type PeerComparisonResult struct {
	Sector         string       `json:"sector"`
	PercentileRank float64      `json:"percentileRank"`
	BetterThan     int          `json:"betterThan"`
	Gap            PillarGap    `json:"gap"`
	SectorAverage  PillarScores `json:"sectorAverage"`
}

// CarbonBreakdown splits annual emissions into their three sources, in tons CO2e.
type CarbonBreakdown struct {
	Energy     float64 `json:"energy"`
	Operations float64 `json:"operations"`
	Transport  float64 `json:"transport"`
}

// CarbonEquivalencies expresses the annual total in relatable terms.
type CarbonEquivalencies struct {
	MilesDriven    float64 `json:"milesDriven"`
	TreeSeedlings  float64 `json:"treeSeedlings"`
	HomeEnergyDays float64 `json:"homeEnergyDays"`
}

// CarbonFootprintResult is the annual carbon estimate for an investor.
type CarbonFootprintResult struct {
	Sector             string              `json:"sector"`
	TotalCO2Tons       float64             `json:"totalCO2Tons"`
	PerEmployeeCO2Tons float64             `json:"perEmployeeCO2Tons"`
	Breakdown          CarbonBreakdown     `json:"breakdown"`
	OffsetTonsRequired float64             `json:"offsetTonsRequired"`
	OffsetCost         float64             `json:"offsetCost"`
	Equivalencies      CarbonEquivalencies `json:"equivalencies"`
}

// GreenMetric is a named sustainability measurement.
type GreenMetric struct {
	Metric      string    `json:"metric"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	Target      *float64  `json:"target,omitempty"`
	Trend       Trend     `json:"trend"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// SustainabilityGoal is an entry in the static goal catalog.
type SustainabilityGoal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  time.Time  `json:"targetDate"`
	Progress    float64    `json:"progress"`
	Status      GoalStatus `json:"status"`
	SDG         int        `json:"sdg"`
}

// GreenIncentive is an entry in the static incentive catalog.
type GreenIncentive struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       string `json:"value"`
	Eligibility string `json:"eligibility"`
}

// InvestorProfile is the full set of declarative facts about one investor.
type InvestorProfile struct {
	Name                   string   `json:"name" yaml:"name" validate:"required"`
	Sector                 string   `json:"sector" yaml:"sector"`
	Certifications         []string `json:"certifications" yaml:"certifications"`
	HasETP                 bool     `json:"hasETP" yaml:"has_etp"`
	HasSolarPower          bool     `json:"hasSolarPower" yaml:"has_solar_power"`
	GreenCoverPercent      float64  `json:"greenCoverPercent" yaml:"green_cover_percent"`
	FemaleWorkforcePercent float64  `json:"femaleWorkforcePercent" yaml:"female_workforce_percent"`
	SafetyIncidents        int      `json:"safetyIncidents" yaml:"safety_incidents" validate:"gte=0"`
	EmployeeCount          int      `json:"employeeCount" yaml:"employee_count" validate:"gte=0"`
	AnnualEnergyKWh        float64  `json:"annualEnergyKWh" yaml:"annual_energy_kwh" validate:"gte=0"`
	HasRenewableEnergy     bool     `json:"hasRenewableEnergy" yaml:"has_renewable_energy"`
	InvestmentSize         float64  `json:"investmentSize" yaml:"investment_size" validate:"gte=0"`
}

// Evaluation bundles every engine output for one investor profile.
type Evaluation struct {
	Profile InvestorProfile        `json:"profile"`
	Score   ESGScore               `json:"score"`
	Peers   PeerComparisonResult   `json:"peers"`
	Carbon  *CarbonFootprintResult `json:"carbon,omitempty"`
	Metrics []GreenMetric          `json:"metrics,omitempty"`
}

// BatchResult is the outcome of evaluating a set of profiles in one run.
type BatchResult struct {
	RunID       string       `json:"runId"`
	EvaluatedAt time.Time    `json:"evaluatedAt"`
	Evaluations []Evaluation `json:"evaluations"`
}

// CheckFailure describes why a profile did not meet the configured policy.
type CheckFailure struct {
	Name    string `json:"name"`
	Overall int    `json:"overall"`
	Rating  Rating `json:"rating"`
	Reason  string `json:"reason"`
}

// CheckResult is the outcome of enforcing a minimum rating and score policy.
type CheckResult struct {
	MinRating  Rating         `json:"minRating"`
	MinOverall int            `json:"minOverall"`
	Checked    int            `json:"checked"`
	Failures   []CheckFailure `json:"failures"`
}

// Passed reports whether every checked profile met the policy.
func (c CheckResult) Passed() bool {
	return len(c.Failures) == 0
}

// RatingBand is one row of the overall → rating mapping.
type RatingBand struct {
	Rating   Rating `json:"rating"`
	MinScore int    `json:"minScore"`
}

// CertificationRoute describes which sub-score a certification keyword feeds.
type CertificationRoute struct {
	Keywords []string     `json:"keywords"`
	Target   BreakdownKey `json:"target"`
}

// ModelDescription is a static description of how scores are formed.
type ModelDescription struct {
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	PillarWeights map[Pillar]float64   `json:"pillarWeights"`
	PillarKeys    map[Pillar][]string  `json:"pillarKeys"`
	RatingBands   []RatingBand         `json:"ratingBands"`
	Routes        []CertificationRoute `json:"certificationRoutes"`
	Bonuses       []CertificationBonus `json:"certificationBonuses"`
	Adjustments   []string             `json:"adjustments"`
	Sectors       []string             `json:"sectors"`
}
