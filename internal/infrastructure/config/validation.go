package config

import (
	"fmt"
	"net"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json", "console"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateDisplay(config)...)
	validationErrors = append(validationErrors, validateDetection(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: %s (got: %s)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: %s (got: %s)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	file := config.Logging.File
	if file.Enabled && file.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.file.max_size_mb must be at least 1 (got: %d)", file.MaxSizeMB))
	}
	if file.MaxBackups < 0 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.file.max_backups must be non-negative (got: %d)", file.MaxBackups))
	}
	if file.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.file.max_age_days must be non-negative (got: %d)", file.MaxAgeDays))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageBackendFile, StorageBackendSQLite:
		if config.Storage.Path == "" {
			return []string{fmt.Sprintf("storage.path is required for the %s backend", config.Storage.Backend)}
		}
	case StorageBackendMemory:
	default:
		return []string{fmt.Sprintf("storage.backend must be one of: file, sqlite, memory (got: %s)", config.Storage.Backend)}
	}
	return nil
}

func validateDisplay(config *Config) []string {
	switch config.Display.Mode {
	case DisplayModeAuto, DisplayModeAlways, DisplayModeNever:
		return nil
	default:
		return []string{fmt.Sprintf("display.mode must be one of: auto, always, never (got: %s)", config.Display.Mode)}
	}
}

func validateDetection(config *Config) []string {
	if config.Detection.PollIntervalSec < 0 {
		return []string{"detection.poll_interval_sec must be non-negative"}
	}
	return nil
}

func validateServer(config *Config) []string {
	if config.Server.Listen == "" {
		return []string{"server.listen cannot be empty"}
	}
	if _, port, err := net.SplitHostPort(config.Server.Listen); err != nil || port == "" {
		return []string{fmt.Sprintf("server.listen must be host:port (got: %s)", config.Server.Listen)}
	}
	return nil
}
