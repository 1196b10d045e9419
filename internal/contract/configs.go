package contract

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/esgscore/schema"
	"github.com/rs/zerolog"
)

// Default values for configuration.
const (
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 2
	DefaultLogLevel     = "warn"
	DefaultInvestorName = "Investor"
	DefaultMinRating    = schema.RatingBB
	DefaultMinOverall   = 55
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// baselineConfigKeys maps the snake_case keys of the config file to breakdown keys.
var baselineConfigKeys = map[string]schema.BreakdownKey{
	"carbon_footprint":  schema.BreakdownCarbon,
	"energy_efficiency": schema.BreakdownEnergy,
	"waste_management":  schema.BreakdownWaste,
	"water_usage":       schema.BreakdownWater,
	"labor_practices":   schema.BreakdownLabor,
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// SectorRawInput is a custom sector definition from the YAML config file.
type SectorRawInput struct {
	Name        string               `mapstructure:"name"`
	Baseline    map[string]float64   `mapstructure:"baseline"`
	PeerAverage *schema.PillarScores `mapstructure:"peer_average"`
}

// CheckRawInput holds policy thresholds from the YAML config file.
type CheckRawInput struct {
	MinRating  string `mapstructure:"min_rating"`
	MinOverall *int   `mapstructure:"min_overall"`
}

// Config holds the runtime configuration of every command.
// This struct remains the "final, validated" config.
type Config struct {
	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	ResultLimit int
	Width       int // Terminal width override (0 = auto-detect)
	Detail      bool
	UseColors   bool
	LogLevel    zerolog.Level

	// Investor holds the facts passed on the command line for single-investor commands.
	Investor schema.InvestorProfile

	ProfilesFile string
	Profiles     []schema.InvestorProfile

	// Sectors are the custom sectors merged on top of the seeded tables.
	Sectors []schema.SectorDefinition
	Tables  schema.Tables

	MinRating  schema.Rating
	MinOverall int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Limit      int    `mapstructure:"limit"`
	Width      int    `mapstructure:"width"`
	Detail     bool   `mapstructure:"detail"`
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log-level"`

	// --- Investor facts, shared by the single-investor commands ---
	Name            string  `mapstructure:"name"`
	Sector          string  `mapstructure:"sector"`
	Certs           string  `mapstructure:"certs"`
	ETP             bool    `mapstructure:"etp"`
	Solar           bool    `mapstructure:"solar"`
	GreenCover      float64 `mapstructure:"green-cover"`
	FemaleWorkforce float64 `mapstructure:"female-workforce"`
	Incidents       int     `mapstructure:"incidents"`
	Employees       int     `mapstructure:"employees"`
	EnergyKWh       float64 `mapstructure:"energy-kwh"`
	Renewable       bool    `mapstructure:"renewable"`
	InvestmentSize  float64 `mapstructure:"investment-size"`

	// --- Fields from batchCmd.Flags() and checkCmd.Flags() ---
	Profiles string `mapstructure:"profiles"`

	// --- Fields from checkCmd.Flags() ---
	MinRatingOverride  string `mapstructure:"min-rating"`
	MinOverallOverride int    `mapstructure:"min-overall"`

	// --- Custom sectors from config file ---
	Sectors []SectorRawInput `mapstructure:"sectors"`

	// --- Policy thresholds from config file ---
	Check CheckRawInput `mapstructure:"check"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Investor.Certifications = slices.Clone(c.Investor.Certifications)
	clone.Profiles = slices.Clone(c.Profiles)
	if c.Sectors != nil {
		clone.Sectors = make([]schema.SectorDefinition, len(c.Sectors))
		for i, s := range c.Sectors {
			clone.Sectors[i] = schema.SectorDefinition{Name: s.Name, Baseline: maps.Clone(s.Baseline), PeerAverage: s.PeerAverage}
		}
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	processInvestor(cfg, input)
	if err := processSectors(cfg, input); err != nil {
		return err
	}
	if err := processCheckThresholds(cfg, input); err != nil {
		return err
	}
	if err := processProfiles(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	levelStr := input.LogLevel
	if levelStr == "" {
		levelStr = DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", input.LogLevel, err)
	}
	cfg.LogLevel = level
	return nil
}

// processInvestor copies the investor facts from flags.
// Out-of-range values are left to the engine, which clamps them.
func processInvestor(cfg *Config, input *ConfigRawInput) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultInvestorName
	}
	cfg.Investor = schema.InvestorProfile{
		Name:                   name,
		Sector:                 strings.TrimSpace(input.Sector),
		Certifications:         SplitList(input.Certs),
		HasETP:                 input.ETP,
		HasSolarPower:          input.Solar,
		GreenCoverPercent:      input.GreenCover,
		FemaleWorkforcePercent: input.FemaleWorkforce,
		SafetyIncidents:        input.Incidents,
		EmployeeCount:          input.Employees,
		AnnualEnergyKWh:        input.EnergyKWh,
		HasRenewableEnergy:     input.Renewable,
		InvestmentSize:         input.InvestmentSize,
	}
}

// processSectors validates the custom sectors and builds the final tables.
func processSectors(cfg *Config, input *ConfigRawInput) error {
	cfg.Sectors = nil
	seen := make(map[string]struct{}, len(input.Sectors))
	for i, raw := range input.Sectors {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return fmt.Errorf("sectors[%d]: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("sectors[%d]: duplicate sector '%s'", i, name)
		}
		seen[name] = struct{}{}

		baseline := make(schema.SectorBaseline, len(raw.Baseline))
		for k, v := range raw.Baseline {
			key, ok := baselineConfigKeys[strings.ToLower(k)]
			if !ok {
				return fmt.Errorf("sectors[%d] (%s): unknown baseline key '%s'", i, name, k)
			}
			if v < 0 || v > 100 {
				return fmt.Errorf("sectors[%d] (%s): baseline %s must be within [0,100] (received %v)", i, name, k, v)
			}
			baseline[key] = v
		}

		if p := raw.PeerAverage; p != nil {
			for label, v := range map[string]float64{"overall": p.Overall, "environmental": p.Environmental, "social": p.Social, "governance": p.Governance} {
				if v < 0 || v > 100 {
					return fmt.Errorf("sectors[%d] (%s): peer_average %s must be within [0,100] (received %v)", i, name, label, v)
				}
			}
		}
		cfg.Sectors = append(cfg.Sectors, schema.SectorDefinition{Name: name, Baseline: baseline, PeerAverage: raw.PeerAverage})
	}
	cfg.Tables = schema.DefaultTables().WithSectors(cfg.Sectors...)
	return nil
}

// processCheckThresholds resolves the policy thresholds.
// Command-line overrides win over the config file, which wins over the defaults.
func processCheckThresholds(cfg *Config, input *ConfigRawInput) error {
	cfg.MinRating = DefaultMinRating
	cfg.MinOverall = DefaultMinOverall

	if input.Check.MinRating != "" {
		r, err := ParseRating(input.Check.MinRating)
		if err != nil {
			return fmt.Errorf("invalid check.min_rating: %w", err)
		}
		cfg.MinRating = r
	}
	if input.Check.MinOverall != nil {
		cfg.MinOverall = *input.Check.MinOverall
	}

	if input.MinRatingOverride != "" {
		r, err := ParseRating(input.MinRatingOverride)
		if err != nil {
			return fmt.Errorf("invalid --min-rating: %w", err)
		}
		cfg.MinRating = r
	}
	if input.MinOverallOverride >= 0 {
		cfg.MinOverall = input.MinOverallOverride
	}

	if cfg.MinOverall < 0 || cfg.MinOverall > 100 {
		return fmt.Errorf("minimum overall score must be within [0,100] (received %d)", cfg.MinOverall)
	}
	return nil
}

// processProfiles loads the profiles file when one is configured.
func processProfiles(cfg *Config, input *ConfigRawInput) error {
	cfg.ProfilesFile = strings.TrimSpace(input.Profiles)
	cfg.Profiles = nil
	if cfg.ProfilesFile == "" {
		return nil
	}
	profiles, err := LoadProfiles(cfg.ProfilesFile)
	if err != nil {
		return err
	}
	cfg.Profiles = profiles
	return nil
}

// ParseRating parses a letter rating case-insensitively.
func ParseRating(s string) (schema.Rating, error) {
	r := schema.Rating(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := schema.ValidRatings[r]; !ok {
		return "", fmt.Errorf("unknown rating '%s' (expected one of AAA, AA, A, BBB, BB, B, CCC, CC, C)", s)
	}
	return r, nil
}

// SplitList splits a comma-separated list and drops blank entries.
func SplitList(s string) []string {
	out := []string{}
	for p := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	profilePrefix = strings.TrimSpace(profilePrefix)
	if profilePrefix == "" {
		return nil
	}
	if strings.HasSuffix(profilePrefix, "/") {
		return fmt.Errorf("profile prefix must name a file, not a directory (received %q)", profilePrefix)
	}
	profile.Enabled = true
	profile.Prefix = profilePrefix
	return nil
}
