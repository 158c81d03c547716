package colorscheme

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingResolver counts Refresh calls.
type countingResolver struct {
	refreshes atomic.Int32
}

func (r *countingResolver) Resolve() port.ColorSchemePreference { return port.ColorSchemePreference{} }
func (r *countingResolver) RegisterDetector(port.ColorSchemeDetector) {}
func (r *countingResolver) OnChange(func(port.ColorSchemePreference)) func() {
	return func() {}
}

func (r *countingResolver) Refresh() port.ColorSchemePreference {
	r.refreshes.Add(1)
	return port.ColorSchemePreference{}
}

func runWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})
}

func TestWatcher_RefreshesOnSettingsFileWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Settings]\n"), 0o600))

	resolver := &countingResolver{}
	runWatcher(t, NewWatcher(resolver, WatcherOptions{SettingsFiles: []string{path}}))

	// Give fsnotify a moment to register the directory.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[Settings]\ngtk-application-prefer-dark-theme=1\n"), 0o600))

	assert.Eventually(t, func() bool {
		return resolver.refreshes.Load() > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")

	resolver := &countingResolver{}
	runWatcher(t, NewWatcher(resolver, WatcherOptions{SettingsFiles: []string{path}}))

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookmarks"), []byte("x"), 0o600))
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), resolver.refreshes.Load())
}

func TestWatcher_Polls(t *testing.T) {
	resolver := &countingResolver{}
	runWatcher(t, NewWatcher(resolver, WatcherOptions{PollInterval: 5 * time.Millisecond}))

	assert.Eventually(t, func() bool {
		return resolver.refreshes.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestWatcher_MissingSourcesReturnImmediately(t *testing.T) {
	w := NewWatcher(&countingResolver{}, WatcherOptions{
		SettingsFiles:    []string{filepath.Join(t.TempDir(), "missing", "settings.ini")},
		GsettingsMonitor: true,
	})
	w.look = func(string) (string, error) { return "", os.ErrNotExist }

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher with no usable source should return")
	}
}
