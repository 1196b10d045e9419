package outwriter

import (
	"os"

	"github.com/huangsam/esgscore/internal/contract"
	"golang.org/x/term"
)

// getMaxTextWidth calculates the maximum width of the free-text column of a table
// based on terminal width and the width taken by the fixed columns.
func getMaxTextWidth(cfg *contract.Config, fixedWidth int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for table borders, separators, and padding
	available := termWidth - fixedWidth - 10
	if available < 20 {
		return 20
	}
	if available > 90 {
		return 90
	}
	return available
}
