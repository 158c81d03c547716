package colorscheme

import (
	"sync"
	"testing"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDetector implements port.ColorSchemeDetector for testing.
type mockDetector struct {
	mu          sync.Mutex
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (m *mockDetector) Name() string  { return m.name }
func (m *mockDetector) Priority() int { return m.priority }
func (m *mockDetector) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

func (m *mockDetector) Detect() (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefersDark, m.detectOk
}

func (m *mockDetector) setDark(dark bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefersDark = dark
}

func TestResolver_DetectorPriority(t *testing.T) {
	// Low priority detector returns dark
	lowPriority := &mockDetector{
		name:        "low",
		priority:    10,
		available:   true,
		prefersDark: true,
		detectOk:    true,
	}
	// High priority detector returns light
	highPriority := &mockDetector{
		name:        "high",
		priority:    100,
		available:   true,
		prefersDark: false,
		detectOk:    true,
	}

	// Register low first, high second (order shouldn't matter)
	resolver := NewResolver(lowPriority)
	resolver.RegisterDetector(highPriority)

	pref := resolver.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "high", pref.Source)
}

func TestResolver_SkipsUnavailableDetector(t *testing.T) {
	unavailable := &mockDetector{
		name:      "unavailable",
		priority:  100,
		available: false,
		detectOk:  true,
	}
	available := &mockDetector{
		name:        "available",
		priority:    10,
		available:   true,
		prefersDark: true,
		detectOk:    true,
	}

	resolver := NewResolver(unavailable, available)
	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "available", pref.Source)
}

func TestResolver_SkipsFailedDetection(t *testing.T) {
	failing := &mockDetector{
		name:      "failing",
		priority:  100,
		available: true,
		detectOk:  false,
	}
	succeeding := &mockDetector{
		name:        "succeeding",
		priority:    10,
		available:   true,
		prefersDark: true,
		detectOk:    true,
	}

	resolver := NewResolver(failing, succeeding)
	pref := resolver.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "succeeding", pref.Source)
}

func TestResolver_FallbackIsLight(t *testing.T) {
	resolver := NewResolver()

	pref := resolver.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "fallback", pref.Source)

	resolver.RegisterDetector(&mockDetector{name: "fail1", priority: 100, available: true})
	resolver.RegisterDetector(&mockDetector{name: "fail2", priority: 50})

	pref = resolver.Resolve()
	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "fallback", pref.Source)
}

func TestResolver_Refresh(t *testing.T) {
	detector := &mockDetector{
		name:      "test",
		priority:  50,
		available: true,
		detectOk:  true,
	}
	resolver := NewResolver(detector)

	pref1 := resolver.Refresh()
	assert.False(t, pref1.PrefersDark)
	assert.Equal(t, pref1, resolver.Current())

	detector.setDark(true)

	pref2 := resolver.Refresh()
	assert.True(t, pref2.PrefersDark)
	assert.True(t, resolver.Current().PrefersDark)
}

func TestResolver_OnChange(t *testing.T) {
	detector := &mockDetector{
		name:        "test",
		priority:    50,
		available:   true,
		prefersDark: true,
		detectOk:    true,
	}
	resolver := NewResolver(detector)

	var callbackPref port.ColorSchemePreference
	var callbackCount int
	resolver.OnChange(func(pref port.ColorSchemePreference) {
		callbackPref = pref
		callbackCount++
	})

	// Initial refresh - callback fires (initial state was light, now dark)
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)
	assert.True(t, callbackPref.PrefersDark)

	// Same preference - callback should NOT be called
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)

	// Change preference - callback should be called
	detector.setDark(false)
	resolver.Refresh()
	assert.Equal(t, 2, callbackCount)
	assert.False(t, callbackPref.PrefersDark)
}

func TestResolver_OnChangeUnregister(t *testing.T) {
	detector := &mockDetector{
		name:        "test",
		priority:    50,
		available:   true,
		prefersDark: true,
		detectOk:    true,
	}
	resolver := NewResolver(detector)

	var callbackCount int
	unregister := resolver.OnChange(func(_ port.ColorSchemePreference) {
		callbackCount++
	})

	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)

	unregister()

	detector.setDark(false)
	resolver.Refresh()
	assert.Equal(t, 1, callbackCount)
}

func TestResolver_Statuses(t *testing.T) {
	resolver := NewResolver(
		&mockDetector{name: "low", priority: 1, available: true, prefersDark: true, detectOk: true},
		&mockDetector{name: "off", priority: 99},
	)

	statuses := resolver.Statuses()
	require.Len(t, statuses, 2)

	assert.Equal(t, port.DetectorStatus{Name: "off", Priority: 99}, statuses[0])
	assert.Equal(t, port.DetectorStatus{
		Name:        "low",
		Priority:    1,
		Available:   true,
		Detected:    true,
		PrefersDark: true,
	}, statuses[1])
}

func TestResolver_ConcurrentAccess(_ *testing.T) {
	detector := &mockDetector{
		name:      "test",
		priority:  50,
		available: true,
		detectOk:  true,
	}
	resolver := NewResolver(detector)

	var wg sync.WaitGroup
	const goroutines = 10

	for i := 0; i < goroutines; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Resolve()
			}
		}()
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				detector.setDark((id+j)%2 == 0)
				resolver.Refresh()
			}
		}(i)
	}

	wg.Wait()
	// Test passes if no race conditions detected
}

func TestResolver_ImplementsInterface(t *testing.T) {
	var resolver port.ColorSchemeResolver = NewResolver()
	require.NotNil(t, resolver)
}
