// Package cmd defines the command-line interface for esgscore.
package cmd

import (
	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(peersCmd)
	rootCmd.AddCommand(carbonCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(incentivesCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print extra columns (sub-score breakdown, descriptions, equivalencies)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of ranked results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	// Investor facts shared by the single-investor commands
	rootCmd.PersistentFlags().String("name", contract.DefaultInvestorName, "Investor name used in output headers")
	rootCmd.PersistentFlags().StringP("sector", "s", "", "Industry sector, e.g. 'Technology & IT'")
	rootCmd.PersistentFlags().String("certs", "", "Comma-separated list of certifications, e.g. 'ISO 14001,SA8000'")
	rootCmd.PersistentFlags().Bool("etp", false, "An effluent treatment plant is present")
	rootCmd.PersistentFlags().Bool("solar", false, "The site runs on solar power")
	rootCmd.PersistentFlags().Float64("green-cover", 0, "Green cover percent of the site (0-100)")
	rootCmd.PersistentFlags().Float64("female-workforce", 0, "Percent of women in the workforce (0-100)")
	rootCmd.PersistentFlags().Int("incidents", 0, "Safety incidents in the last year")
	rootCmd.PersistentFlags().Int("employees", 0, "Number of employees")
	rootCmd.PersistentFlags().Float64("energy-kwh", 0, "Annual electricity consumption in kWh")
	rootCmd.PersistentFlags().Bool("renewable", false, "Electricity comes from renewable sources")
	rootCmd.PersistentFlags().Float64("investment-size", 0, "Investment size in crore")
	rootCmd.PersistentFlags().String("profiles", "", "YAML file listing investor profiles (batch and check)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("min-rating", "", "Minimum rating every profile must reach (overrides check.min_rating)")
	checkCmd.Flags().Int("min-overall", -1, "Minimum overall score every profile must reach (overrides check.min_overall)")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}
}
