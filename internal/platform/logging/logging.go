// Package logging builds the process logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to w. Development mode uses the
// human-readable console writer; an unknown level falls back to info.
func New(env, level string, w io.Writer) zerolog.Logger {
	var logger zerolog.Logger
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(w).With().Timestamp().Logger()
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}
