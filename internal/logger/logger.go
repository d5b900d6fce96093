package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func New(environment string) zerolog.Logger {
	return NewWithWriter(environment, os.Stdout)
}

// NewWithWriter uses a human readable console writer in development and
// plain JSON lines everywhere else.
func NewWithWriter(environment string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	if isDevelopment(environment) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		if level > zerolog.DebugLevel && os.Getenv("LOG_LEVEL") == "" {
			level = zerolog.DebugLevel
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "journey-report").
		Logger()
}

func isDevelopment(environment string) bool {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "", "dev", "development", "local":
		return true
	default:
		return false
	}
}
