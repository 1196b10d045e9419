package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfiles(t *testing.T) {
	doc := `profiles:
  - name: " Acme Tech "
    sector: Technology & IT
    certifications: [ISO 14001, B Corp]
    has_etp: true
    has_solar_power: true
    green_cover_percent: 25
    female_workforce_percent: 45
    safety_incidents: 0
    employee_count: 250
    annual_energy_kwh: 1200000
    has_renewable_energy: false
    investment_size: 120
  - name: Loom Works
    sector: Textiles & Apparel
`
	profiles, err := ParseProfiles(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	p := profiles[0]
	assert.Equal(t, "Acme Tech", p.Name)
	assert.Equal(t, []string{"ISO 14001", "B Corp"}, p.Certifications)
	assert.True(t, p.HasETP)
	assert.True(t, p.HasSolarPower)
	assert.InDelta(t, 25.0, p.GreenCoverPercent, 0.001)
	assert.Equal(t, 250, p.EmployeeCount)
	assert.InDelta(t, 1_200_000.0, p.AnnualEnergyKWh, 0.001)
	assert.InDelta(t, 120.0, p.InvestmentSize, 0.001)

	assert.NotNil(t, profiles[1].Certifications)
	assert.Empty(t, profiles[1].Certifications)
}

func TestParseProfilesErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{name: "empty document", doc: "", expected: "profiles file is empty"},
		{name: "no profiles", doc: "profiles: []\n", expected: "invalid profiles: Profiles "},
		{name: "missing name", doc: "profiles:\n  - sector: Manufacturing\n", expected: "Profiles[0].Name is required"},
		{name: "negative incidents", doc: "profiles:\n  - name: a\n    safety_incidents: -1\n", expected: "Profiles[0].SafetyIncidents must satisfy gte=0"},
		{name: "negative employees", doc: "profiles:\n  - name: a\n    employee_count: -5\n", expected: "EmployeeCount"},
		{name: "unknown field", doc: "profiles:\n  - name: a\n    has_solar: true\n", expected: "invalid profiles YAML"},
		{name: "malformed yaml", doc: "profiles: [\n", expected: "invalid profiles YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfiles(strings.NewReader(tt.doc))
			assert.ErrorContains(t, err, tt.expected)
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: a\n"), 0o600))

	profiles, err := LoadProfiles(path)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("profiles:\n  - sector: x\n"), 0o600))
	_, err = LoadProfiles(bad)
	assert.ErrorContains(t, err, bad)
}
