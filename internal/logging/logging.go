// Package logging provides structured logging for sleephdr using zerolog.
package logging

import (
	"fmt"
	"github.com/rs/zerolog"
	"io"
	"os"
	"strings"
	"time"
)

var logger = newLogger(os.Stderr, zerolog.InfoLevel)

func newLogger(w io.Writer, lvl zerolog.Level) *zerolog.Logger {
	l := zerolog.New(w).With().Timestamp().Logger().Level(lvl)

	return &l
}

// Init configures the process logger.
// level is one of zerolog's level names (debug, info, warn, error).
// If human is true, uses a human-friendly console writer instead of JSON.
func Init(w io.Writer, level string, human bool) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if w == nil {
		w = os.Stderr
	}

	if human {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	logger = newLogger(w, lvl)

	return nil
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}
