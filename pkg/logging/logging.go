// Package logging configures the process-wide zerolog logger and hands
// out component-scoped loggers. The properties and extension packages
// log through it; nothing in this module ever fails loudly, so the log
// stream is where degraded loads surface.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level.
func SetupLogger(verbosity int) {
	SetupLoggerTo(verbosity, os.Stderr)
}

// SetupLoggerTo is SetupLogger with an explicit output, used by tests
// to capture the stream.
func SetupLoggerTo(verbosity int, out io.Writer) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}

	log.Logger = zerolog.New(console).With().Timestamp().Logger()

	// Caller information is only worth the overhead when debugging
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
