// Package logger holds the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter(os.Stderr)
}

// Log returns the shared logger.
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter logs human readable lines to w.
func SetConsoleWriter(w io.Writer) {
	log = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetJSONWriter logs one JSON object per line to w.
func SetJSONWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel sets the global level from a name like "debug" or "warn".
func SetLevel(level string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(l)
	return nil
}
