// Package config loads colorpref settings with Viper from a TOML file,
// environment variables and built-in defaults.
package config

// Config represents the complete configuration for colorpref.
type Config struct {
	// Logging controls the level and output format of diagnostics.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Storage selects where the theme option is persisted.
	Storage StorageConfig `mapstructure:"storage" yaml:"storage" toml:"storage"`
	// Display controls display environment detection.
	Display DisplayConfig `mapstructure:"display" yaml:"display" toml:"display"`
	// Detection tunes how the OS color scheme is detected and watched.
	Detection DetectionConfig `mapstructure:"detection" yaml:"detection" toml:"detection"`
	// Server configures the preview server started by `colorpref serve`.
	Server ServerConfig `mapstructure:"server" yaml:"server" toml:"server"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=text,enum=json,enum=console"`

	// File mirrors logs as JSON into a size-rotated file.
	File LogFileConfig `mapstructure:"file" yaml:"file" toml:"file"`
}

// LogFileConfig holds rotating log file settings.
type LogFileConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	// Dir defaults to $XDG_STATE_HOME/colorpref/logs.
	Dir        string `mapstructure:"dir" yaml:"dir" toml:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

// StorageBackend selects the persisted slot implementation.
type StorageBackend string

const (
	StorageBackendFile   StorageBackend = "file"
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendMemory StorageBackend = "memory"
)

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" jsonschema:"enum=file,enum=sqlite,enum=memory"`
	// Path of the state file or database. Empty selects the XDG default
	// for the backend.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// DisplayMode forces or auto-detects the display environment.
type DisplayMode string

const (
	DisplayModeAuto   DisplayMode = "auto"
	DisplayModeAlways DisplayMode = "always"
	DisplayModeNever  DisplayMode = "never"
)

// DisplayConfig holds display detection configuration.
type DisplayConfig struct {
	Mode DisplayMode `mapstructure:"mode" yaml:"mode" toml:"mode" jsonschema:"enum=auto,enum=always,enum=never"`
}

// DetectionConfig holds OS color scheme detection configuration.
type DetectionConfig struct {
	// PollIntervalSec re-queries detectors periodically. 0 disables polling.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec" toml:"poll_interval_sec" jsonschema:"minimum=0"`
	// GsettingsMonitor follows `gsettings monitor` for instant updates on GNOME.
	GsettingsMonitor bool `mapstructure:"gsettings_monitor" yaml:"gsettings_monitor" toml:"gsettings_monitor"`
	// WatchGTKSettings watches GTK settings.ini files for changes.
	WatchGTKSettings bool `mapstructure:"watch_gtk_settings" yaml:"watch_gtk_settings" toml:"watch_gtk_settings"`
	// Disabled lists detector names to skip (see `colorpref doctor`).
	Disabled []string `mapstructure:"disabled" yaml:"disabled" toml:"disabled"`
}

// ServerConfig holds preview server configuration.
type ServerConfig struct {
	Listen string `mapstructure:"listen" yaml:"listen" toml:"listen"`
}
