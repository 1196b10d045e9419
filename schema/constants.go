package schema

// Custom string types for type safety.
type (
	// BreakdownKey represents keys used in scoring breakdowns.
	BreakdownKey string

	// Pillar represents one of the three ESG dimensions.
	Pillar string

	// Rating represents the letter rating derived from the overall score.
	Rating string

	// Trend represents the direction a green metric is moving in.
	Trend string

	// GoalStatus represents the delivery status of a sustainability goal.
	GoalStatus string

	// OutputMode represents the format of the output.
	OutputMode string
)

// Breakdown keys used in the scoring logic.
const (
	BreakdownCarbon     BreakdownKey = "carbonFootprint"
	BreakdownEnergy     BreakdownKey = "energyEfficiency"
	BreakdownWaste      BreakdownKey = "wasteManagement"
	BreakdownWater      BreakdownKey = "waterUsage"
	BreakdownLabor      BreakdownKey = "laborPractices"
	BreakdownCommunity  BreakdownKey = "communityImpact"
	BreakdownDiversity  BreakdownKey = "diversityInclusion"
	BreakdownTransp     BreakdownKey = "transparency"
	BreakdownEthics     BreakdownKey = "ethicalGovernance"
	BreakdownCompliance BreakdownKey = "complianceRecord"
)

// All pillars supported.
const (
	EnvironmentalPillar Pillar = "environmental"
	SocialPillar        Pillar = "social"
	GovernancePillar    Pillar = "governance"
)

// All ratings supported, best first.
const (
	RatingAAA Rating = "AAA"
	RatingAA  Rating = "AA"
	RatingA   Rating = "A"
	RatingBBB Rating = "BBB"
	RatingBB  Rating = "BB"
	RatingB   Rating = "B"
	RatingCCC Rating = "CCC"
	RatingCC  Rating = "CC"
	RatingC   Rating = "C"
)

// All trends supported.
const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// All goal statuses supported.
const (
	GoalOnTrack  GoalStatus = "on-track"
	GoalAtRisk   GoalStatus = "at-risk"
	GoalAchieved GoalStatus = "achieved"
	GoalDelayed  GoalStatus = "delayed"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// EnvironmentalKeys lists the sub-scores averaged into the environmental pillar.
var EnvironmentalKeys = []BreakdownKey{BreakdownCarbon, BreakdownEnergy, BreakdownWaste, BreakdownWater}

// SocialKeys lists the sub-scores averaged into the social pillar.
var SocialKeys = []BreakdownKey{BreakdownLabor, BreakdownCommunity, BreakdownDiversity}

// GovernanceKeys lists the sub-scores averaged into the governance pillar.
var GovernanceKeys = []BreakdownKey{BreakdownTransp, BreakdownEthics, BreakdownCompliance}

// BaselineKeys lists the sub-scores a sector baseline may define.
var BaselineKeys = []BreakdownKey{BreakdownCarbon, BreakdownEnergy, BreakdownWaste, BreakdownWater, BreakdownLabor}

// AllRatings lists every rating from best to worst.
var AllRatings = []Rating{RatingAAA, RatingAA, RatingA, RatingBBB, RatingBB, RatingB, RatingCCC, RatingCC, RatingC}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidRatings lists all valid ratings.
var ValidRatings = map[Rating]struct{}{
	RatingAAA: {},
	RatingAA:  {},
	RatingA:   {},
	RatingBBB: {},
	RatingBB:  {},
	RatingB:   {},
	RatingCCC: {},
	RatingCC:  {},
	RatingC:   {},
}

// Rank returns the position of the rating in AllRatings (0 is best).
// Unknown ratings rank after C.
func (r Rating) Rank() int {
	for i, v := range AllRatings {
		if v == r {
			return i
		}
	}
	return len(AllRatings)
}

// AtLeast reports whether r is the same as or better than other.
func (r Rating) AtLeast(other Rating) bool {
	return r.Rank() <= other.Rank()
}
