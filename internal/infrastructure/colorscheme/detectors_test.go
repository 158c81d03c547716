package colorscheme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDetector(t *testing.T) {
	tests := []struct {
		name      string
		gtkTheme  string
		available bool
		wantDark  bool
	}{
		{name: "unset", gtkTheme: "", available: false},
		{name: "adwaita dark variant", gtkTheme: "Adwaita:dark", available: true, wantDark: true},
		{name: "arc dark", gtkTheme: "Arc-Dark", available: true, wantDark: true},
		{name: "light theme", gtkTheme: "Adwaita", available: true, wantDark: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &EnvDetector{getenv: func(string) string { return tt.gtkTheme }}

			assert.Equal(t, tt.available, d.Available())
			dark, ok := d.Detect()
			assert.Equal(t, tt.available, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func fakeGsettings(values map[string]string) commandRunner {
	return func(name string, args ...string) ([]byte, error) {
		if name != "gsettings" || len(args) != 3 || args[0] != "get" {
			return nil, errors.New("unexpected command")
		}
		value, ok := values[args[2]]
		if !ok {
			return nil, errors.New("No such key")
		}
		return []byte(value + "\n"), nil
	}
}

func TestGsettingsDetector(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		wantDark bool
		wantOk   bool
	}{
		{
			name:     "prefer-dark",
			values:   map[string]string{"color-scheme": "'prefer-dark'"},
			wantDark: true,
			wantOk:   true,
		},
		{
			name:   "prefer-light",
			values: map[string]string{"color-scheme": "'prefer-light'", "gtk-theme": "'Adwaita-dark'"},
			wantOk: true,
		},
		{
			name:     "default falls back to dark theme name",
			values:   map[string]string{"color-scheme": "'default'", "gtk-theme": "'Adwaita-dark'"},
			wantDark: true,
			wantOk:   true,
		},
		{
			name:   "old desktop with light theme",
			values: map[string]string{"gtk-theme": "'Adwaita'"},
			wantOk: true,
		},
		{
			name:   "nothing readable",
			values: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &GsettingsDetector{
				run:  fakeGsettings(tt.values),
				look: func(string) (string, error) { return "/usr/bin/gsettings", nil },
			}

			assert.True(t, d.Available())
			dark, ok := d.Detect()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func TestGsettingsDetector_Unavailable(t *testing.T) {
	d := &GsettingsDetector{
		run:  fakeGsettings(nil),
		look: func(string) (string, error) { return "", errors.New("not found") },
	}
	assert.False(t, d.Available())
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGTKSettingsDetector(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDark bool
		wantOk   bool
	}{
		{
			name:     "prefer dark flag",
			content:  "[Settings]\ngtk-application-prefer-dark-theme=1\n",
			wantDark: true,
			wantOk:   true,
		},
		{
			name:     "prefer dark true with spaces",
			content:  "[Settings]\ngtk-application-prefer-dark-theme = true\n",
			wantDark: true,
			wantOk:   true,
		},
		{
			name:     "dark theme name",
			content:  "[Settings]\ngtk-application-prefer-dark-theme=0\ngtk-theme-name=Adwaita-dark\n",
			wantDark: true,
			wantOk:   true,
		},
		{
			name:    "explicit light",
			content: "[Settings]\n# comment\ngtk-application-prefer-dark-theme=false\n",
			wantOk:  true,
		},
		{
			name:    "keys outside settings group are ignored",
			content: "[Other]\ngtk-application-prefer-dark-theme=1\n",
		},
		{
			name:    "no relevant keys",
			content: "[Settings]\ngtk-font-name=Cantarell 11\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, t.TempDir(), tt.content)
			d := NewGTKSettingsDetector(path)

			assert.True(t, d.Available())
			dark, ok := d.Detect()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func TestGTKSettingsDetector_FirstAnsweringFileWins(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gtk-4.0", "settings.ini")
	gtk3 := writeSettings(t, t.TempDir(), "[Settings]\ngtk-application-prefer-dark-theme=1\n")

	d := NewGTKSettingsDetector(missing, gtk3)
	assert.True(t, d.Available())

	dark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, dark)
	assert.Equal(t, []string{missing, gtk3}, d.Paths())
}

func TestGTKSettingsDetector_NoFiles(t *testing.T) {
	d := NewGTKSettingsDetector(filepath.Join(t.TempDir(), "settings.ini"))
	assert.False(t, d.Available())
	_, ok := d.Detect()
	assert.False(t, ok)
}

func TestDefaultGTKSettingsPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, []string{
		"/tmp/xdg/gtk-4.0/settings.ini",
		"/tmp/xdg/gtk-3.0/settings.ini",
	}, DefaultGTKSettingsPaths())
}

func TestDarwinDetector(t *testing.T) {
	dark := &DarwinDetector{goos: "darwin", run: func(string, ...string) ([]byte, error) {
		return []byte("Dark\n"), nil
	}}
	prefersDark, ok := dark.Detect()
	assert.True(t, ok)
	assert.True(t, prefersDark)

	light := &DarwinDetector{goos: "darwin", run: func(string, ...string) ([]byte, error) {
		return nil, errors.New("The domain/default pair does not exist")
	}}
	prefersDark, ok = light.Detect()
	assert.True(t, ok)
	assert.False(t, prefersDark)

	linux := &DarwinDetector{goos: "linux", run: runCommand}
	assert.False(t, linux.Available())
	_, ok = linux.Detect()
	assert.False(t, ok)
}

func TestWithoutDetectors(t *testing.T) {
	detectors := DefaultDetectors()
	require.Len(t, detectors, 5)

	kept := WithoutDetectors(detectors, []string{"gsettings", " gtk_theme "})
	names := make([]string, 0, len(kept))
	for _, d := range kept {
		names = append(names, strings.ToLower(d.Name()))
	}

	assert.NotContains(t, names, "gsettings")
	assert.NotContains(t, names, "gtk_theme")
	assert.Len(t, kept, 3)
	assert.Equal(t, detectors, WithoutDetectors(detectors, nil))
}
