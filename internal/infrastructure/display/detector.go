// Package display decides whether an interactive display is attached.
package display

import (
	"os"
	"runtime"
	"strings"

	"github.com/bnema/colorpref/internal/application/port"
)

// Mode forces or auto-detects the display environment.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// Detector implements port.DisplayEnvironment.
type Detector struct {
	mode   Mode
	goos   string
	getenv func(string) string
}

// NewDetector creates a detector for the given mode. Unknown modes behave
// like ModeAuto.
func NewDetector(mode Mode) *Detector {
	return &Detector{
		mode:   Mode(strings.ToLower(string(mode))),
		goos:   runtime.GOOS,
		getenv: os.Getenv,
	}
}

// Available implements port.DisplayEnvironment.
func (d *Detector) Available() bool {
	switch d.mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	switch d.goos {
	case "darwin", "windows":
		// A logged-in desktop session is always present for user processes.
		return true
	case "js", "wasip1", "android", "ios":
		return false
	}

	return d.getenv("WAYLAND_DISPLAY") != "" || d.getenv("DISPLAY") != ""
}

// Reason describes why Available answered as it did, for diagnostics.
func (d *Detector) Reason() string {
	switch d.mode {
	case ModeAlways:
		return "forced on by display.mode"
	case ModeNever:
		return "forced off by display.mode"
	}

	switch d.goos {
	case "darwin", "windows":
		return "desktop platform " + d.goos
	}

	if wl := d.getenv("WAYLAND_DISPLAY"); wl != "" {
		return "WAYLAND_DISPLAY=" + wl
	}
	if x := d.getenv("DISPLAY"); x != "" {
		return "DISPLAY=" + x
	}
	return "no WAYLAND_DISPLAY or DISPLAY"
}

var _ port.DisplayDiagnostics = (*Detector)(nil)
