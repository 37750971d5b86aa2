// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// Format is the output format (json, console).
	Format string

	// ServiceName tags every entry with the emitting service.
	ServiceName string
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "flight-fare-service",
	}
}

// Logger wraps zerolog.Logger with additional context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with a custom output writer.
// This is useful for testing.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	l := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()

	return &Logger{Logger: l}
}

// WithContext returns a new logger with an additional context field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID returns a logger with request ID context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithProvider returns a logger with fare-provider context.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// WithAgent returns a logger with agent context.
func (l *Logger) WithAgent(agentID string) *Logger {
	return l.WithContext("agent_id", agentID)
}

// Nop returns a disabled logger that produces no output.
// Useful for tests that do not assert on logs.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
