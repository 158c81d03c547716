package colorscheme

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	detectorNameGTKSettings = "gtk-settings.ini"
	priorityGTKSettings     = 5

	keyPreferDark = "gtk-application-prefer-dark-theme"
	keyThemeName  = "gtk-theme-name"
)

// GTKSettingsDetector reads GTK's settings.ini files.
// Tiling WMs without a settings daemon usually configure dark mode here.
type GTKSettingsDetector struct {
	paths []string
}

// NewGTKSettingsDetector creates a detector reading the given settings.ini
// paths in order; the first file that answers wins.
func NewGTKSettingsDetector(paths ...string) *GTKSettingsDetector {
	return &GTKSettingsDetector{paths: paths}
}

// DefaultGTKSettingsPaths returns the GTK 4 and GTK 3 settings.ini locations
// under $XDG_CONFIG_HOME (default ~/.config).
func DefaultGTKSettingsPaths() []string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		configHome = filepath.Join(home, ".config")
	}
	return []string{
		filepath.Join(configHome, "gtk-4.0", "settings.ini"),
		filepath.Join(configHome, "gtk-3.0", "settings.ini"),
	}
}

// Paths returns the settings files this detector reads.
func (d *GTKSettingsDetector) Paths() []string {
	return d.paths
}

// Name implements port.ColorSchemeDetector.
func (*GTKSettingsDetector) Name() string {
	return detectorNameGTKSettings
}

// Priority implements port.ColorSchemeDetector.
func (*GTKSettingsDetector) Priority() int {
	return priorityGTKSettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if at least one settings file exists.
func (d *GTKSettingsDetector) Available() bool {
	for _, path := range d.paths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

// Detect implements port.ColorSchemeDetector.
func (d *GTKSettingsDetector) Detect() (prefersDark, ok bool) {
	for _, path := range d.paths {
		if prefersDark, ok := detectFromSettingsFile(path); ok {
			return prefersDark, true
		}
	}
	return false, false
}

// detectFromSettingsFile parses the [Settings] group of one settings.ini.
// Either an explicit prefer-dark flag or a dark theme name selects dark mode.
func detectFromSettingsFile(path string) (prefersDark, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return false, false
	}
	defer f.Close()

	var (
		inSettings     bool
		preferDark     string
		themeName      string
		haveThemeName  bool
		havePreferDark bool
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inSettings = strings.EqualFold(strings.Trim(line, "[]"), "Settings")
			continue
		}
		if !inSettings {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), "\"'")

		switch key {
		case keyPreferDark:
			preferDark, havePreferDark = value, true
		case keyThemeName:
			themeName, haveThemeName = value, true
		}
	}
	if scanner.Err() != nil {
		return false, false
	}

	if havePreferDark && isTruthy(preferDark) {
		return true, true
	}
	if haveThemeName && strings.Contains(strings.ToLower(themeName), "dark") {
		return true, true
	}
	if havePreferDark || haveThemeName {
		return false, true
	}
	return false, false
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
