package colorscheme

import (
	"strings"

	"github.com/bnema/colorpref/internal/application/port"
)

// DefaultDetectors returns every built-in detector. Platform detectors report
// themselves unavailable on foreign platforms, so the full set is safe to
// register everywhere.
func DefaultDetectors() []port.ColorSchemeDetector {
	return []port.ColorSchemeDetector{
		NewDarwinDetector(),
		NewRegistryDetector(),
		NewEnvDetector(),
		NewGsettingsDetector(),
		NewGTKSettingsDetector(DefaultGTKSettingsPaths()...),
	}
}

// WithoutDetectors drops detectors whose name matches one of disabled
// (case-insensitive).
func WithoutDetectors(detectors []port.ColorSchemeDetector, disabled []string) []port.ColorSchemeDetector {
	if len(disabled) == 0 {
		return detectors
	}

	kept := make([]port.ColorSchemeDetector, 0, len(detectors))
	for _, detector := range detectors {
		if !containsFold(disabled, detector.Name()) {
			kept = append(kept, detector)
		}
	}
	return kept
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

// UnknownDetectorNames returns the entries of names that match no built-in
// detector.
func UnknownDetectorNames(names []string) []string {
	var unknown []string
	for _, name := range names {
		found := false
		for _, detector := range DefaultDetectors() {
			if strings.EqualFold(strings.TrimSpace(name), detector.Name()) {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
