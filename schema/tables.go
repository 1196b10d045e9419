package schema

import (
	"maps"
	"slices"
	"strings"
)

// Fallback values used when a lookup misses.
const (
	DefaultBaselineScore      = 50.0 // any sub-score a sector baseline does not define
	DefaultCertificationBonus = 5.0  // certification not named in the bonus table
	DefaultPeerScore          = 60.0 // every pillar of an unknown sector's peer average
)

// SectorBaseline holds the partial baseline sub-scores of a sector.
type SectorBaseline map[BreakdownKey]float64

// CertificationBonus is one row of the certification bonus table.
type CertificationBonus struct {
	Name  string  `json:"name"`
	Bonus float64 `json:"bonus"`
}

// SectorDefinition adds or replaces a sector in a table set.
// A nil PeerAverage leaves the peer average of the sector untouched.
type SectorDefinition struct {
	Name        string
	Baseline    SectorBaseline
	PeerAverage *PillarScores
}

// Tables is the immutable set of lookup tables used by the scoring engine.
// The zero value behaves like a table set with no sectors and no certifications.
type Tables struct {
	sectors   []string
	baselines map[string]SectorBaseline
	bonuses   []CertificationBonus
	peers     map[string]PillarScores
}

// DefaultTables returns the seeded table set.
func DefaultTables() Tables {
	t := Tables{
		baselines: make(map[string]SectorBaseline),
		peers: map[string]PillarScores{
			"Technology & IT":    {Overall: 72, Environmental: 75, Social: 70, Governance: 70},
			"Manufacturing":      {Overall: 58, Environmental: 52, Social: 60, Governance: 65},
			"Textiles & Apparel": {Overall: 55, Environmental: 50, Social: 58, Governance: 60},
		},
		bonuses: []CertificationBonus{
			{Name: "LEED", Bonus: 15},
			{Name: "ISO 14001", Bonus: 12},
			{Name: "ISO 45001", Bonus: 10},
			{Name: "ISO 50001", Bonus: 10},
			{Name: "B Corp", Bonus: 15},
			{Name: "Fair Trade", Bonus: 10},
			{Name: "SA8000", Bonus: 12},
			{Name: "ZDHC", Bonus: 10},
			{Name: "Carbon Trust", Bonus: 12},
			{Name: "GOTS", Bonus: 8},
		},
	}

	seed := []SectorDefinition{
		{Name: "Technology & IT", Baseline: SectorBaseline{BreakdownCarbon: 75, BreakdownEnergy: 80, BreakdownWaste: 70, BreakdownWater: 85, BreakdownLabor: 85}},
		{Name: "Manufacturing", Baseline: SectorBaseline{BreakdownCarbon: 45, BreakdownEnergy: 50, BreakdownWaste: 55, BreakdownWater: 50, BreakdownLabor: 60}},
		{Name: "Textiles & Apparel", Baseline: SectorBaseline{BreakdownCarbon: 50, BreakdownEnergy: 55, BreakdownWaste: 40, BreakdownWater: 35, BreakdownLabor: 55}},
		{Name: "Pharmaceuticals", Baseline: SectorBaseline{BreakdownCarbon: 55, BreakdownEnergy: 60, BreakdownWaste: 50, BreakdownWater: 45, BreakdownLabor: 70}},
		{Name: "Renewable Energy", Baseline: SectorBaseline{BreakdownCarbon: 90, BreakdownEnergy: 85, BreakdownWater: 70}},
		{Name: "Food Processing", Baseline: SectorBaseline{BreakdownCarbon: 55, BreakdownWaste: 45, BreakdownWater: 40, BreakdownLabor: 60}},
		{Name: "Automotive", Baseline: SectorBaseline{BreakdownCarbon: 40, BreakdownEnergy: 55, BreakdownWaste: 55, BreakdownWater: 55, BreakdownLabor: 65}},
	}
	for _, def := range seed {
		t.sectors = append(t.sectors, def.Name)
		t.baselines[def.Name] = def.Baseline
	}
	return t
}

// WithSectors returns a copy of the table set with the given sectors added or replaced.
// The receiver is left unchanged.
func (t Tables) WithSectors(defs ...SectorDefinition) Tables {
	clone := Tables{
		sectors:   slices.Clone(t.sectors),
		baselines: make(map[string]SectorBaseline, len(t.baselines)+len(defs)),
		bonuses:   slices.Clone(t.bonuses),
		peers:     make(map[string]PillarScores, len(t.peers)+len(defs)),
	}
	for name, b := range t.baselines {
		clone.baselines[name] = maps.Clone(b)
	}
	maps.Copy(clone.peers, t.peers)

	for _, def := range defs {
		if def.Name == "" {
			continue
		}
		if _, ok := clone.baselines[def.Name]; !ok {
			clone.sectors = append(clone.sectors, def.Name)
		}
		clone.baselines[def.Name] = maps.Clone(def.Baseline)
		if def.PeerAverage != nil {
			clone.peers[def.Name] = *def.PeerAverage
		}
	}
	return clone
}

// Baseline returns the full baseline of a sector with every missing field
// filled with DefaultBaselineScore. Sector names match exactly.
func (t Tables) Baseline(sector string) map[BreakdownKey]float64 {
	out := make(map[BreakdownKey]float64, len(BaselineKeys))
	partial := t.baselines[sector]
	for _, key := range BaselineKeys {
		if v, ok := partial[key]; ok {
			out[key] = v
			continue
		}
		out[key] = DefaultBaselineScore
	}
	return out
}

// HasSector reports whether the sector has a baseline entry.
func (t Tables) HasSector(sector string) bool {
	_, ok := t.baselines[sector]
	return ok
}

// Sectors returns the known sector names in insertion order.
func (t Tables) Sectors() []string {
	return slices.Clone(t.sectors)
}

// Bonuses returns the certification bonus table in lookup order.
func (t Tables) Bonuses() []CertificationBonus {
	return slices.Clone(t.bonuses)
}

// CertificationBonus returns the additive bonus for a free-text certification.
// An exact name wins; otherwise the first table entry contained in the string
// is used; otherwise DefaultCertificationBonus.
func (t Tables) CertificationBonus(cert string) float64 {
	for _, b := range t.bonuses {
		if b.Name == cert {
			return b.Bonus
		}
	}
	for _, b := range t.bonuses {
		if strings.Contains(cert, b.Name) {
			return b.Bonus
		}
	}
	return DefaultCertificationBonus
}

// PeerAverage returns the average pillar scores of a sector.
// Unknown sectors get DefaultPeerScore for every pillar.
func (t Tables) PeerAverage(sector string) PillarScores {
	if avg, ok := t.peers[sector]; ok {
		return avg
	}
	return PillarScores{
		Overall:       DefaultPeerScore,
		Environmental: DefaultPeerScore,
		Social:        DefaultPeerScore,
		Governance:    DefaultPeerScore,
	}
}
