//go:build !windows

package colorscheme

// Available implements port.ColorSchemeDetector.
func (*RegistryDetector) Available() bool {
	return false
}

// Detect implements port.ColorSchemeDetector.
func (*RegistryDetector) Detect() (prefersDark, ok bool) {
	return false, false
}
