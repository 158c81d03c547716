package port

// ColorSchemePreference represents the resolved OS color scheme preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	// "fallback" means no detector could answer.
	Source string
}

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 40+: Native platform settings (macOS defaults, Windows registry)
	//   - 20+: Explicit user overrides (GTK_THEME)
	//   - 10+: Desktop settings (gsettings)
	//   -  0+: Static files (GTK settings.ini)
	Priority() int

	// Available returns true if this detector can be used on this host.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	// Returns (preference, true) on success, (_, false) if detection failed.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver resolves the OS color scheme signal.
// It is the "is dark mode preferred?" query plus change notifications.
type ColorSchemeResolver interface {
	// Resolve queries detectors by priority and returns the current preference.
	// If all detectors fail, it reports light mode.
	Resolve() ColorSchemePreference

	// RegisterDetector adds a detector to the resolver.
	// Safe to call at any time; the resolver re-evaluates on next Resolve().
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh forces re-evaluation of the color scheme.
	// Call this when system preferences may have changed.
	// Returns the new preference.
	Refresh() ColorSchemePreference

	// OnChange registers a callback for color scheme changes.
	// The callback is invoked when Refresh() results in a different preference.
	// Returns a function to unregister the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}

// DetectorStatus is a snapshot of one detector, used for diagnostics.
type DetectorStatus struct {
	Name        string
	Priority    int
	Available   bool
	Detected    bool
	PrefersDark bool
}

// ColorSchemeInspector exposes per-detector results for diagnostics.
type ColorSchemeInspector interface {
	// Statuses queries every detector, in priority order.
	Statuses() []DetectorStatus
}
