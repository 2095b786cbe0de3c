package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level   string
	Format  string // "json" or "console"
	Service string
	// Out defaults to os.Stdout. The CLI sends logs to stderr so stdout stays
	// reserved for events.
	Out io.Writer
}

// NewLogger creates a new zerolog logger with the specified configuration
func NewLogger(config LoggerConfig) zerolog.Logger {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	if config.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	service := config.Service
	if service == "" {
		service = "outbound"
	}

	return zerolog.New(out).
		Level(parseLogLevel(config.Level)).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
