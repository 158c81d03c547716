// Package colorscheme answers "does the OS prefer dark mode?" and reports
// when that answer changes.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/colorpref/internal/application/port"
)

// sourceFallback indicates no detector provided the preference.
const sourceFallback = "fallback"

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// It queries registered detectors by priority and remembers the last
// refreshed answer so OnChange callbacks fire only on real transitions.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

// NewResolver creates a resolver with the given detectors.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{
		detectors: make([]port.ColorSchemeDetector, 0, len(detectors)),
		current: port.ColorSchemePreference{
			PrefersDark: false, // Light until first Refresh()
			Source:      sourceFallback,
		},
	}
	r.detectors = append(r.detectors, detectors...)
	return r
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// Current returns the preference recorded by the last Refresh without
// querying detectors.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// resolveInternal performs the actual resolution without locking.
// Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() port.ColorSchemePreference {
	for _, detector := range r.sortedDetectors() {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	// No answer means the platform does not express a dark preference.
	return port.ColorSchemePreference{
		PrefersDark: false,
		Source:      sourceFallback,
	}
}

// sortedDetectors returns detectors by priority, highest first.
// Caller must hold at least a read lock.
func (r *Resolver) sortedDetectors() []port.ColorSchemeDetector {
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}

// Statuses implements port.ColorSchemeInspector. It queries every detector,
// available or not, in priority order.
func (r *Resolver) Statuses() []port.DetectorStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := r.sortedDetectors()
	statuses := make([]port.DetectorStatus, 0, len(sorted))
	for _, detector := range sorted {
		status := port.DetectorStatus{
			Name:      detector.Name(),
			Priority:  detector.Priority(),
			Available: detector.Available(),
		}
		if status.Available {
			status.PrefersDark, status.Detected = detector.Detect()
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()

	newPref := r.resolveInternal()
	changed := newPref.PrefersDark != r.current.PrefersDark
	r.current = newPref

	if !changed {
		r.mu.Unlock()
		return newPref
	}

	// Copy callbacks to avoid holding lock during callback invocation
	callbacks := make([]*callbackWrapper, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref)
	}

	return newPref
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

var (
	_ port.ColorSchemeResolver  = (*Resolver)(nil)
	_ port.ColorSchemeInspector = (*Resolver)(nil)
)
