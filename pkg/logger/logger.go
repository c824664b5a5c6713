// Package logger builds the zerolog logger the whole service shares.
// Call New once in main and inject the result; nothing in this package
// holds global state.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout at the given level. In
// development mode output switches to the human-readable console writer.
func New(level string, development bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out = zerolog.New(os.Stdout)
	if development {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return out.Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
