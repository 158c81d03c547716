package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "colorpref"
	configName   = "config.toml"
	stateName    = "state.toml"
	databaseName = "colorpref.sqlite"
	logsDirName  = "logs"
)

// File permission constants
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for colorpref:
// - $XDG_CONFIG_HOME/colorpref (default: ~/.config/colorpref)
// - $XDG_DATA_HOME/colorpref (default: ~/.local/share/colorpref)
// - $XDG_STATE_HOME/colorpref (default: ~/.local/state/colorpref)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		StateHome:  xdgDir("XDG_STATE_HOME", homeDir, ".local", "state"),
	}, nil
}

func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory for colorpref.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configName), nil
}

// GetStateFile returns the path to the TOML state file used by the file
// storage backend. The theme option is user state, not configuration.
func GetStateFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, stateName), nil
}

// GetDatabaseFile returns the path to the SQLite database in the data directory.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// GetLogDir returns the default directory of the rotating log file.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, logsDirName), nil
}

// DefaultStoragePath returns the XDG default path for backend.
// The memory backend has no path.
func DefaultStoragePath(backend StorageBackend) (string, error) {
	switch backend {
	case StorageBackendSQLite:
		return GetDatabaseFile()
	case StorageBackendFile:
		return GetStateFile()
	default:
		return "", nil
	}
}
