package colorscheme

const (
	detectorNameRegistry = "AppsUseLightTheme"
	priorityRegistry     = 40
)

// RegistryDetector reads the Windows personalization registry key.
// It is never available on other platforms.
type RegistryDetector struct{}

// NewRegistryDetector creates a new registry-based detector.
func NewRegistryDetector() *RegistryDetector {
	return &RegistryDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*RegistryDetector) Name() string {
	return detectorNameRegistry
}

// Priority implements port.ColorSchemeDetector.
func (*RegistryDetector) Priority() int {
	return priorityRegistry
}
