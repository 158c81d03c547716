package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", filepath.Join(t.TempDir(), "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "data"))

	dir := t.TempDir()
	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	return mgr, dir
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "file", mgr.viper.GetString("storage.backend"))
	assert.Equal(t, "auto", mgr.viper.GetString("display.mode"))
	assert.Equal(t, defaultPollIntervalSec, mgr.viper.GetInt("detection.poll_interval_sec"))
	assert.True(t, mgr.viper.GetBool("detection.gsettings_monitor"))
	assert.Equal(t, defaultListenAddr, mgr.viper.GetString("server.listen"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	mgr, dir := newTestManager(t)

	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Created())
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	cfg := mgr.Get()
	assert.Equal(t, StorageBackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_STATE_HOME"), "colorpref", "state.toml"), cfg.Storage.Path)
	assert.Equal(t, DisplayModeAuto, cfg.Display.Mode)
	assert.False(t, cfg.Logging.File.Enabled)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_STATE_HOME"), "colorpref", "logs"), cfg.Logging.File.Dir)
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	mgr, dir := newTestManager(t)
	content := `[storage]
backend = 'SQLite'

[display]
mode = 'never'

[detection]
disabled = ['gsettings', ' ']
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.False(t, mgr.Created())
	assert.Equal(t, StorageBackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_DATA_HOME"), "colorpref", "colorpref.sqlite"), cfg.Storage.Path)
	assert.Equal(t, DisplayModeNever, cfg.Display.Mode)
	assert.Equal(t, []string{"gsettings"}, cfg.Detection.Disabled)
	// Unset keys keep their defaults.
	assert.Equal(t, defaultListenAddr, cfg.Server.Listen)
}

func TestLoad_EnvOverrides(t *testing.T) {
	mgr, _ := newTestManager(t)
	t.Setenv("COLORPREF_DISPLAY_MODE", "always")
	t.Setenv("COLORPREF_STORAGE_BACKEND", "memory")
	t.Setenv("COLORPREF_LOG_LEVEL", "debug")

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, DisplayModeAlways, cfg.Display.Mode)
	assert.Equal(t, StorageBackendMemory, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	mgr, dir := newTestManager(t)
	content := `[display]
mode = 'sometimes'

[server]
listen = 'nope'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.mode")
	assert.Contains(t, err.Error(), "server.listen")
}

func TestLoad_MalformedTOML(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[storage\nbackend="), 0o600))

	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(cfg *Config) { got = cfg })

	content := "[display]\nmode = 'never'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, DisplayModeNever, got.Display.Mode)
	assert.Equal(t, DisplayModeNever, mgr.Get().Display.Mode)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Display.Mode = DisplayModeNever
	cfg.Detection.Disabled = append(cfg.Detection.Disabled, "GTK_THEME")

	fresh := mgr.Get()
	assert.Equal(t, DisplayModeAuto, fresh.Display.Mode)
	assert.Empty(t, fresh.Detection.Disabled)
}
