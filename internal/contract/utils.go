package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/esgscore/schema"
	"github.com/rs/zerolog/log"
)

// Rating label constants.
const (
	LeaderValue  = "Leader"  // AAA, AA
	AverageValue = "Average" // A, BBB, BB
	LaggardValue = "Laggard" // B, CCC
	SevereValue  = "Severe"  // CC, C
)

// Color variables for console output.
var (
	LeaderColor  = color.New(color.FgGreen, color.Bold) // LeaderColor marks best-in-class ratings.
	AverageColor = color.New(color.FgCyan)              // AverageColor is informational.
	LaggardColor = color.New(color.FgYellow)            // LaggardColor is standard caution.
	SevereColor  = color.New(color.FgRed, color.Bold)   // SevereColor is standard danger.
)

// GetPlainLabel returns the plain text band of a rating.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(r schema.Rating) string {
	switch r {
	case schema.RatingAAA, schema.RatingAA:
		return LeaderValue
	case schema.RatingA, schema.RatingBBB, schema.RatingBB:
		return AverageValue
	case schema.RatingB, schema.RatingCCC:
		return LaggardValue
	default:
		return SevereValue
	}
}

// GetColorRating returns the rating colored by its band, for console output (table).
func GetColorRating(r schema.Rating) string {
	switch GetPlainLabel(r) {
	case LeaderValue:
		return LeaderColor.Sprint(r)
	case AverageValue:
		return AverageColor.Sprint(r)
	case LaggardValue:
		return LaggardColor.Sprint(r)
	default:
		return SevereColor.Sprint(r)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	log.Fatal().Err(err).Msg(msg)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	log.Warn().Err(err).Msg(msg)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave space for the "..." suffix and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
