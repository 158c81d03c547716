// Package bootstrap wires the theme preference to its storage, OS color
// scheme detection and display environment according to configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/bnema/colorpref/internal/domain/repository"
	"github.com/bnema/colorpref/internal/infrastructure/colorscheme"
	"github.com/bnema/colorpref/internal/infrastructure/config"
	"github.com/bnema/colorpref/internal/infrastructure/display"
	"github.com/bnema/colorpref/internal/infrastructure/persistence/filestore"
	"github.com/bnema/colorpref/internal/infrastructure/persistence/memory"
	"github.com/bnema/colorpref/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/colorpref/internal/logging"
	"github.com/bnema/colorpref/internal/ui/theme"
)

// ThemeStack is a fully wired theme preference and the infrastructure
// behind it.
type ThemeStack struct {
	Config     *config.Config
	Store      repository.PreferenceRepository
	Resolver   *colorscheme.Resolver
	Watcher    *colorscheme.Watcher
	Display    *display.Detector
	Preference *theme.Preference

	// StateWatcher follows the state file for changes made by other
	// processes. Nil unless the file backend is used.
	StateWatcher *filestore.Watcher

	mu          sync.Mutex
	closers     []func() error
	stopWatcher context.CancelFunc
	watcherDone chan struct{}
}

// BuildThemeStack builds the stack described by cfg. Extra options are
// passed to theme.NewPreference after the configured display detector, so
// callers can override the display or the side effect.
func BuildThemeStack(ctx context.Context, cfg *config.Config, opts ...theme.PreferenceOption) (*ThemeStack, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := logging.FromContext(ctx)

	stack := &ThemeStack{Config: cfg}

	store, closeStore, err := buildStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	stack.Store = store
	if closeStore != nil {
		stack.closers = append(stack.closers, closeStore)
	}

	if unknown := colorscheme.UnknownDetectorNames(cfg.Detection.Disabled); len(unknown) > 0 {
		log.Warn().Strs("names", unknown).Msg("unknown detectors in detection.disabled")
	}
	detectors := colorscheme.WithoutDetectors(colorscheme.DefaultDetectors(), cfg.Detection.Disabled)
	stack.Resolver = colorscheme.NewResolver(detectors...)
	stack.Watcher = colorscheme.NewWatcher(stack.Resolver, watcherOptions(cfg.Detection, detectors))

	stack.Display = display.NewDetector(display.Mode(cfg.Display.Mode))

	prefOpts := append([]theme.PreferenceOption{theme.WithDisplay(stack.Display)}, opts...)
	pref, err := theme.NewPreference(ctx, stack.Store, stack.Resolver, prefOpts...)
	if err != nil {
		_ = stack.Close()
		return nil, fmt.Errorf("initialize theme preference: %w", err)
	}
	stack.Preference = pref

	if cfg.Storage.Backend == config.StorageBackendFile || cfg.Storage.Backend == "" {
		stack.StateWatcher = filestore.NewWatcher(cfg.Storage.Path, stack.reloadOption)
	}

	log.Debug().
		Str("backend", string(cfg.Storage.Backend)).
		Str("path", cfg.Storage.Path).
		Bool("attached", pref.Attached()).
		Str("option", string(pref.Option())).
		Str("effective", string(pref.Get())).
		Msg("theme stack ready")

	return stack, nil
}

func buildStore(cfg config.StorageConfig) (repository.PreferenceRepository, func() error, error) {
	switch cfg.Backend {
	case config.StorageBackendMemory:
		return memory.NewPreferenceRepository(), nil, nil
	case config.StorageBackendSQLite:
		lazy := sqlite.NewLazyDB(cfg.Path)
		return sqlite.NewPreferenceRepository(lazy), lazy.Close, nil
	case config.StorageBackendFile, "":
		repo, err := filestore.NewPreferenceRepository(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open state file: %w", err)
		}
		return repo, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}

// watcherOptions enables only the change sources whose detector is in use.
func watcherOptions(cfg config.DetectionConfig, detectors []port.ColorSchemeDetector) colorscheme.WatcherOptions {
	opts := colorscheme.WatcherOptions{
		PollInterval: time.Duration(cfg.PollIntervalSec) * time.Second,
	}
	for _, detector := range detectors {
		switch d := detector.(type) {
		case *colorscheme.GTKSettingsDetector:
			if cfg.WatchGTKSettings {
				opts.SettingsFiles = append(opts.SettingsFiles, d.Paths()...)
			}
		case *colorscheme.GsettingsDetector:
			opts.GsettingsMonitor = cfg.GsettingsMonitor && d.Available()
		}
	}
	return opts
}

// StartWatching runs the OS change watcher and, for the file backend, the
// state file watcher in the background until ctx is cancelled or the stack
// is closed. Headless stacks do not watch.
func (s *ThemeStack) StartWatching(ctx context.Context) {
	if !s.Preference.Attached() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopWatcher != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.stopWatcher = cancel
	s.watcherDone = done

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Watcher.Run(gctx) })
	if s.StateWatcher != nil {
		g.Go(func() error { return s.StateWatcher.Run(gctx) })
	}

	go func() {
		defer close(done)
		if err := g.Wait(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("theme watchers stopped")
		}
	}()
}

func (s *ThemeStack) reloadOption(ctx context.Context) {
	if _, err := s.Preference.Reload(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to reload theme option")
	}
}

// Close stops the watcher, detaches the preference and releases storage.
func (s *ThemeStack) Close() error {
	s.mu.Lock()
	cancel, done := s.stopWatcher, s.watcherDone
	s.stopWatcher, s.watcherDone = nil, nil
	closers := s.closers
	s.closers = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	if s.Preference != nil {
		s.Preference.Close()
	}

	var errs []error
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
