package colorscheme

import (
	"runtime"
	"strings"
)

const (
	detectorNameDarwin = "AppleInterfaceStyle"
	priorityDarwin     = 40
)

// DarwinDetector reads the macOS global AppleInterfaceStyle default.
type DarwinDetector struct {
	goos string
	run  commandRunner
}

// NewDarwinDetector creates a detector backed by `defaults read -g`.
func NewDarwinDetector() *DarwinDetector {
	return &DarwinDetector{goos: runtime.GOOS, run: runCommand}
}

// Name implements port.ColorSchemeDetector.
func (*DarwinDetector) Name() string {
	return detectorNameDarwin
}

// Priority implements port.ColorSchemeDetector.
func (*DarwinDetector) Priority() int {
	return priorityDarwin
}

// Available implements port.ColorSchemeDetector.
func (d *DarwinDetector) Available() bool {
	return d.goos == "darwin"
}

// Detect implements port.ColorSchemeDetector.
// The key only exists while dark mode is on, so a read failure means light.
func (d *DarwinDetector) Detect() (prefersDark, ok bool) {
	if !d.Available() {
		return false, false
	}

	output, err := d.run("defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		return false, true
	}
	return strings.EqualFold(strings.TrimSpace(string(output)), "dark"), true
}
