package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		Output:     os.Stderr,
	}
}

// New creates a new zerolog logger with the given configuration.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a logger based on environment variables
// COLORPREF_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// COLORPREF_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("COLORPREF_LOG_LEVEL"), os.Getenv("COLORPREF_LOG_FORMAT"))
}

// NewFromConfigValues creates a logger from the string values found in the
// config file. Unknown values keep the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level, cfg.Level)

	switch strings.ToLower(format) {
	case "json", "console":
		cfg.Format = strings.ToLower(format)
	}

	return New(cfg)
}

// ParseLevel maps a level name to a zerolog level, returning fallback for
// empty or unknown names.
func ParseLevel(level string, fallback zerolog.Level) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return fallback
	}
}

// FileConfig configures the rotating log file.
type FileConfig struct {
	Enabled    bool
	Dir        string
	Name       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultLogFileName is the name of the active log file.
const DefaultLogFileName = "colorpref.log"

// NewWithFile creates a logger that writes to cfg.Output and, when file is
// enabled, mirrors every event as JSON into a rotating file. The returned
// cleanup closes the file.
func NewWithFile(cfg Config, file FileConfig) (zerolog.Logger, func(), error) {
	if !file.Enabled {
		return New(cfg), func() {}, nil
	}

	name := file.Name
	if name == "" {
		name = DefaultLogFileName
	}
	rotator, err := NewLogRotator(file.Dir, name, file.MaxSizeMB, file.MaxBackups, file.MaxAgeDays, file.Compress)
	if err != nil {
		return New(cfg), func() {}, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	var console io.Writer = out
	if cfg.Format == "console" {
		console = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}
