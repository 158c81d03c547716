package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	created   bool
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigDir reads config.toml from dir instead of the XDG config
// directory.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.configDir = dir
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
	}

	v := m.viper
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(m.configDir)

	// COLORPREF_STORAGE_BACKEND, COLORPREF_DISPLAY_MODE, ...
	v.SetEnvPrefix("COLORPREF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "COLORPREF_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind COLORPREF_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "COLORPREF_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind COLORPREF_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.ConfigFilePath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// build unmarshals, normalizes and validates the current viper state.
func (m *Manager) build() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)
	if err := ensureStoragePath(config); err != nil {
		return nil, err
	}
	if err := ensureLogDir(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		return nil
	}
	path, err := DefaultStoragePath(config.Storage.Backend)
	if err != nil {
		return fmt.Errorf("failed to get storage path: %w", err)
	}
	config.Storage.Path = path
	return nil
}

func ensureLogDir(config *Config) error {
	if config.Logging.File.Dir != "" {
		return nil
	}
	dir, err := GetLogDir()
	if err != nil {
		return fmt.Errorf("failed to get log directory: %w", err)
	}
	config.Logging.File.Dir = dir
	return nil
}

func normalizeConfig(config *Config) {
	switch StorageBackend(strings.ToLower(string(config.Storage.Backend))) {
	case "", StorageBackendFile:
		config.Storage.Backend = StorageBackendFile
	case StorageBackendSQLite:
		config.Storage.Backend = StorageBackendSQLite
	case StorageBackendMemory:
		config.Storage.Backend = StorageBackendMemory
	}

	switch DisplayMode(strings.ToLower(string(config.Display.Mode))) {
	case "", DisplayModeAuto:
		config.Display.Mode = DisplayModeAuto
	case DisplayModeAlways:
		config.Display.Mode = DisplayModeAlways
	case DisplayModeNever:
		config.Display.Mode = DisplayModeNever
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Server.Listen = strings.TrimSpace(config.Server.Listen)
	config.Storage.Path = strings.TrimSpace(config.Storage.Path)
	config.Logging.File.Dir = strings.TrimSpace(config.Logging.File.Dir)

	disabled := config.Detection.Disabled[:0]
	for _, name := range config.Detection.Disabled {
		if name = strings.TrimSpace(name); name != "" {
			disabled = append(disabled, name)
		}
	}
	config.Detection.Disabled = disabled
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Detection.Disabled = append([]string(nil), m.config.Detection.Disabled...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.ConfigFilePath()
}

// ConfigFilePath returns where config.toml is expected.
func (m *Manager) ConfigFilePath() string {
	return filepath.Join(m.configDir, configName)
}

// Created reports whether Load wrote a fresh default config file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// createDefaultConfig writes the defaults as an ordered TOML file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.ConfigFilePath()); err != nil {
		return err
	}
	m.created = true
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file.enabled", defaults.Logging.File.Enabled)
	m.viper.SetDefault("logging.file.dir", defaults.Logging.File.Dir)
	m.viper.SetDefault("logging.file.max_size_mb", defaults.Logging.File.MaxSizeMB)
	m.viper.SetDefault("logging.file.max_backups", defaults.Logging.File.MaxBackups)
	m.viper.SetDefault("logging.file.max_age_days", defaults.Logging.File.MaxAgeDays)
	m.viper.SetDefault("logging.file.compress", defaults.Logging.File.Compress)

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.viper.SetDefault("display.mode", string(defaults.Display.Mode))

	m.viper.SetDefault("detection.poll_interval_sec", defaults.Detection.PollIntervalSec)
	m.viper.SetDefault("detection.gsettings_monitor", defaults.Detection.GsettingsMonitor)
	m.viper.SetDefault("detection.watch_gtk_settings", defaults.Detection.WatchGTKSettings)
	m.viper.SetDefault("detection.disabled", defaults.Detection.Disabled)

	m.viper.SetDefault("server.listen", defaults.Server.Listen)
}

// Global configuration manager instance
var (
	globalManager     *Manager
	globalManagerOnce sync.Once
	globalManagerErr  error
)

// Init initializes the global configuration manager from the XDG location.
// Later calls return the first result.
func Init() error {
	globalManagerOnce.Do(func() {
		mgr, err := NewManager()
		if err != nil {
			globalManagerErr = err
			return
		}
		if err := mgr.Load(); err != nil {
			globalManagerErr = err
			return
		}
		globalManager = mgr
	})
	return globalManagerErr
}

// Get returns the global configuration, or the defaults before Init.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager, nil before Init.
func GetManager() *Manager {
	return globalManager
}
