package contract

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global zerolog logger with a console writer on stderr.
// Stdout stays reserved for command output and the MCP stdio transport.
func InitLogger(level zerolog.Level, useColors bool) {
	initLogger(os.Stderr, level, useColors)
}

func initLogger(w io.Writer, level zerolog.Level, useColors bool) {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !useColors,
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
	color.NoColor = !useColors
}
