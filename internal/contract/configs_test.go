package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/esgscore/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns raw inputs as they look after flag defaults are applied.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:             "text",
		Precision:          DefaultPrecision,
		Limit:              DefaultResultLimit,
		Color:              "no",
		LogLevel:           "warn",
		MinOverallOverride: -1,
	}
}

func intPtr(v int) *int { return &v }

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: "invalid output format"},
		{name: "output is case insensitive", mutate: func(in *ConfigRawInput) { in.Output = "JSON" }},
		{name: "zero limit", mutate: func(in *ConfigRawInput) { in.Limit = 0 }, expectError: "limit must be greater than 0"},
		{name: "limit too large", mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, expectError: "cannot exceed"},
		{name: "precision too low", mutate: func(in *ConfigRawInput) { in.Precision = 0 }, expectError: "precision must be 1 or 2"},
		{name: "precision too high", mutate: func(in *ConfigRawInput) { in.Precision = 3 }, expectError: "precision must be 1 or 2"},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: "invalid --color value"},
		{name: "invalid log level", mutate: func(in *ConfigRawInput) { in.LogLevel = "loud" }, expectError: "invalid log level"},
		{name: "invalid min rating", mutate: func(in *ConfigRawInput) { in.MinRatingOverride = "Z" }, expectError: "invalid --min-rating"},
		{name: "min overall too high", mutate: func(in *ConfigRawInput) { in.MinOverallOverride = 101 }, expectError: "minimum overall score"},
		{name: "invalid config rating", mutate: func(in *ConfigRawInput) { in.Check.MinRating = "D" }, expectError: "invalid check.min_rating"},
		{name: "missing profiles file", mutate: func(in *ConfigRawInput) { in.Profiles = "/does/not/exist.yaml" }, expectError: "cannot open profiles file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProcessAndValidateInvestor(t *testing.T) {
	input := validInput()
	input.Output = "json"
	input.Sector = "  Manufacturing "
	input.Certs = "ISO 14001, SA8000,,"
	input.ETP = true
	input.GreenCover = 25
	input.Incidents = 2
	input.Employees = 80

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, DefaultInvestorName, cfg.Investor.Name)
	assert.Equal(t, "Manufacturing", cfg.Investor.Sector)
	assert.Equal(t, []string{"ISO 14001", "SA8000"}, cfg.Investor.Certifications)
	assert.True(t, cfg.Investor.HasETP)
	assert.Equal(t, 2, cfg.Investor.SafetyIncidents)
	assert.Equal(t, 80, cfg.Investor.EmployeeCount)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, schema.DefaultTables().Sectors(), cfg.Tables.Sectors())
}

func TestProcessCheckThresholds(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, DefaultMinRating, cfg.MinRating)
		assert.Equal(t, DefaultMinOverall, cfg.MinOverall)
	})

	t.Run("config file", func(t *testing.T) {
		input := validInput()
		input.Check = CheckRawInput{MinRating: "a", MinOverall: intPtr(70)}
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.RatingA, cfg.MinRating)
		assert.Equal(t, 70, cfg.MinOverall)
	})

	t.Run("flags win over config file", func(t *testing.T) {
		input := validInput()
		input.Check = CheckRawInput{MinRating: "A", MinOverall: intPtr(70)}
		input.MinRatingOverride = "bbb"
		input.MinOverallOverride = 0
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.RatingBBB, cfg.MinRating)
		assert.Equal(t, 0, cfg.MinOverall)
	})
}

func TestProcessSectors(t *testing.T) {
	t.Run("custom sector", func(t *testing.T) {
		input := validInput()
		input.Sectors = []SectorRawInput{{
			Name:        "Cement",
			Baseline:    map[string]float64{"carbon_footprint": 30, "Water_Usage": 40},
			PeerAverage: &schema.PillarScores{Overall: 50, Environmental: 40, Social: 55, Governance: 60},
		}}
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))

		require.Len(t, cfg.Sectors, 1)
		assert.True(t, cfg.Tables.HasSector("Cement"))
		baseline := cfg.Tables.Baseline("Cement")
		assert.InDelta(t, 30.0, baseline[schema.BreakdownCarbon], 0.001)
		assert.InDelta(t, 40.0, baseline[schema.BreakdownWater], 0.001)
		assert.InDelta(t, 50.0, cfg.Tables.PeerAverage("Cement").Overall, 0.001)
	})

	errorCases := []struct {
		name     string
		sectors  []SectorRawInput
		expected string
	}{
		{name: "missing name", sectors: []SectorRawInput{{Name: " "}}, expected: "name is required"},
		{name: "duplicate", sectors: []SectorRawInput{{Name: "X"}, {Name: "X"}}, expected: "duplicate sector"},
		{name: "unknown key", sectors: []SectorRawInput{{Name: "X", Baseline: map[string]float64{"community_impact": 10}}}, expected: "unknown baseline key"},
		{name: "baseline out of range", sectors: []SectorRawInput{{Name: "X", Baseline: map[string]float64{"water_usage": 120}}}, expected: "must be within [0,100]"},
		{name: "peer average out of range", sectors: []SectorRawInput{{Name: "X", PeerAverage: &schema.PillarScores{Overall: -1}}}, expected: "peer_average overall"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Sectors = tt.sectors
			assert.ErrorContains(t, ProcessAndValidate(&Config{}, input), tt.expected)
		})
	}
}

func TestProcessProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`profiles:
  - name: Acme Tech
    sector: Technology & IT
    certifications: [ISO 14001]
`), 0o600))

	input := validInput()
	input.Profiles = path
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, path, cfg.ProfilesFile)
	require.Len(t, cfg.Profiles, 1)
	assert.Equal(t, "Acme Tech", cfg.Profiles[0].Name)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		Investor: schema.InvestorProfile{Certifications: []string{"LEED"}},
		Profiles: []schema.InvestorProfile{{Name: "a"}},
		Sectors:  []schema.SectorDefinition{{Name: "Cement", Baseline: schema.SectorBaseline{schema.BreakdownCarbon: 30}}},
	}
	clone := cfg.Clone()
	clone.Investor.Certifications[0] = "changed"
	clone.Profiles[0].Name = "changed"
	clone.Sectors[0].Baseline[schema.BreakdownCarbon] = 99

	assert.Equal(t, "LEED", cfg.Investor.Certifications[0])
	assert.Equal(t, "a", cfg.Profiles[0].Name)
	assert.InDelta(t, 30.0, cfg.Sectors[0].Baseline[schema.BreakdownCarbon], 0.001)
}

func TestParseRating(t *testing.T) {
	r, err := ParseRating(" aa ")
	require.NoError(t, err)
	assert.Equal(t, schema.RatingAA, r)

	_, err = ParseRating("AAAA")
	assert.ErrorContains(t, err, "unknown rating")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a ,, b c ,"))
}

func TestProcessProfilingConfig(t *testing.T) {
	var p ProfileConfig
	require.NoError(t, ProcessProfilingConfig(&p, ""))
	assert.False(t, p.Enabled)

	require.NoError(t, ProcessProfilingConfig(&p, " run1 "))
	assert.True(t, p.Enabled)
	assert.Equal(t, "run1", p.Prefix)

	assert.Error(t, ProcessProfilingConfig(&ProfileConfig{}, "profiles/"))
}
