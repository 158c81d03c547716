package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10

	gsettingsSchema = "org.gnome.desktop.interface"
)

// GsettingsDetector detects color scheme from GNOME gsettings.
// color-scheme (GNOME 42+) is authoritative; older desktops only expose the
// gtk-theme name, which is checked for a "dark" variant.
type GsettingsDetector struct {
	run  commandRunner
	look lookPath
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: runCommand, look: exec.LookPath}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if gsettings command is available.
func (d *GsettingsDetector) Available() bool {
	_, err := d.look("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	if value, err := d.get("color-scheme"); err == nil {
		switch value {
		case "prefer-dark":
			return true, true
		case "prefer-light":
			return false, true
		}
		// "default" leaves the decision to the theme name below.
	}

	themeName, err := d.get("gtk-theme")
	if err != nil || themeName == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(themeName), "dark"), true
}

// get reads one key of the desktop interface schema.
// Output is like "'prefer-dark'\n"; quotes and whitespace are stripped.
func (d *GsettingsDetector) get(key string) (string, error) {
	output, err := d.run("gsettings", "get", gsettingsSchema, key)
	if err != nil {
		return "", err
	}
	return parseGsettingsValue(string(output)), nil
}

func parseGsettingsValue(output string) string {
	result := strings.TrimSpace(output)
	return strings.Trim(result, "'\"")
}
