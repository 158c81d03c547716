package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults with path", mutate: func(*Config) {}},
		{name: "memory needs no path", mutate: func(c *Config) {
			c.Storage.Backend = StorageBackendMemory
			c.Storage.Path = ""
		}},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: "storage.backend"},
		{name: "file without path", mutate: func(c *Config) { c.Storage.Path = "" }, wantErr: "storage.path"},
		{name: "bad display mode", mutate: func(c *Config) { c.Display.Mode = "maybe" }, wantErr: "display.mode"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "log file too small", mutate: func(c *Config) {
			c.Logging.File.Enabled = true
			c.Logging.File.MaxSizeMB = 0
		}, wantErr: "logging.file.max_size_mb"},
		{name: "negative log backups", mutate: func(c *Config) { c.Logging.File.MaxBackups = -1 }, wantErr: "logging.file.max_backups"},
		{name: "negative poll", mutate: func(c *Config) { c.Detection.PollIntervalSec = -1 }, wantErr: "detection.poll_interval_sec"},
		{name: "listen without port", mutate: func(c *Config) { c.Server.Listen = "localhost" }, wantErr: "server.listen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Storage.Path = "/tmp/state.toml"
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Backend = "SQLITE"
	cfg.Display.Mode = ""
	cfg.Logging.Level = " WARN "
	cfg.Detection.Disabled = []string{"", " gsettings "}

	normalizeConfig(cfg)

	assert.Equal(t, StorageBackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, DisplayModeAuto, cfg.Display.Mode)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, []string{"gsettings"}, cfg.Detection.Disabled)
}

func TestValidate_Nil(t *testing.T) {
	require.Error(t, Validate(nil))
}
