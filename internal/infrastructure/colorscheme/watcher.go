package colorscheme

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/bnema/colorpref/internal/logging"
)

// WatcherOptions selects which change sources a Watcher listens to.
type WatcherOptions struct {
	// SettingsFiles are watched with fsnotify; a write triggers a refresh.
	SettingsFiles []string

	// GsettingsMonitor runs `gsettings monitor` on the desktop interface
	// schema and refreshes on every reported change.
	GsettingsMonitor bool

	// PollInterval refreshes periodically. Zero disables polling.
	PollInterval time.Duration
}

// Watcher turns OS notifications into Resolver.Refresh calls, which in turn
// fire the resolver's OnChange callbacks when the answer flips.
type Watcher struct {
	resolver port.ColorSchemeResolver
	opts     WatcherOptions
	look     lookPath
}

// NewWatcher creates a watcher that refreshes resolver.
func NewWatcher(resolver port.ColorSchemeResolver, opts WatcherOptions) *Watcher {
	return &Watcher{
		resolver: resolver,
		opts:     opts,
		look:     exec.LookPath,
	}
}

// Run blocks until ctx is cancelled. Sources that cannot start (missing
// gsettings, no watchable directory) are skipped with a debug log.
func (w *Watcher) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "colorscheme-watcher")
	g, ctx := errgroup.WithContext(ctx)

	if len(w.opts.SettingsFiles) > 0 {
		g.Go(func() error { return w.watchFiles(ctx) })
	}
	if w.opts.GsettingsMonitor {
		g.Go(func() error { return w.monitorGsettings(ctx) })
	}
	if w.opts.PollInterval > 0 {
		g.Go(func() error { return w.poll(ctx) })
	}

	return g.Wait()
}

func (w *Watcher) refresh(ctx context.Context, reason string) {
	pref := w.resolver.Refresh()
	logging.FromContext(ctx).Trace().
		Str("reason", reason).
		Bool("prefers_dark", pref.PrefersDark).
		Str("source", pref.Source).
		Msg("color scheme refreshed")
}

// watchFiles watches the parent directories of the settings files, since
// editors and config tools usually replace the file instead of writing it.
func (w *Watcher) watchFiles(ctx context.Context) error {
	log := logging.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("file watcher unavailable")
		return nil
	}
	defer fw.Close()

	targets := make(map[string]struct{}, len(w.opts.SettingsFiles))
	watchedDirs := 0
	for _, path := range w.opts.SettingsFiles {
		targets[filepath.Clean(path)] = struct{}{}

		dir := filepath.Dir(path)
		if _, statErr := os.Stat(dir); statErr != nil {
			continue
		}
		if addErr := fw.Add(dir); addErr != nil {
			log.Debug().Err(addErr).Str("path", dir).Msg("cannot watch directory")
			continue
		}
		watchedDirs++
	}
	if watchedDirs == 0 {
		log.Debug().Msg("no settings directory to watch")
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if _, tracked := targets[filepath.Clean(event.Name)]; !tracked {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				w.refresh(ctx, "settings file "+event.Op.String())
			}
		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Msg("file watcher error")
		}
	}
}

// monitorGsettings streams `gsettings monitor` output. Each line is one
// change notification; the content is ignored because Refresh re-queries
// every detector anyway.
func (w *Watcher) monitorGsettings(ctx context.Context) error {
	log := logging.FromContext(ctx)

	bin, err := w.look("gsettings")
	if err != nil {
		log.Debug().Msg("gsettings not found, monitor disabled")
		return nil
	}

	cmd := exec.CommandContext(ctx, bin, "monitor", gsettingsSchema)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Warn().Err(err).Msg("gsettings monitor unavailable")
		return nil
	}
	if err := cmd.Start(); err != nil {
		log.Warn().Err(err).Msg("failed to start gsettings monitor")
		return nil
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		w.refresh(ctx, "gsettings monitor")
	}

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return nil
	}
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		log.Warn().Err(waitErr).Msg("gsettings monitor stopped")
	} else {
		log.Debug().Msg("gsettings monitor exited")
	}
	return nil
}

func (w *Watcher) poll(ctx context.Context) error {
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.refresh(ctx, "poll")
		}
	}
}
