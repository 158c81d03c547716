// Package theme holds the light/dark theme preference: the user's tri-state
// choice, its persisted slot, and the effective value derived from it and
// from the OS color scheme.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/domain/repository"
	"github.com/bnema/colorpref/internal/infrastructure/display"
	"github.com/bnema/colorpref/internal/logging"
	"github.com/bnema/colorpref/internal/reactive"
	"github.com/bnema/colorpref/internal/ui/document"
)

// EffectiveChangeFunc is called whenever the effective theme changes.
type EffectiveChangeFunc func(entity.Effective)

// PreferenceOption configures a Preference.
type PreferenceOption func(*Preference)

// WithDisplay sets the display environment check. Without a display the
// preference never touches storage or the OS signal.
func WithDisplay(env port.DisplayEnvironment) PreferenceOption {
	return func(p *Preference) {
		if env != nil {
			p.display = env
		}
	}
}

// WithOnEffectiveChange replaces the default side effect (toggling the dark
// class on the document root).
func WithOnEffectiveChange(fn EffectiveChangeFunc) PreferenceOption {
	return func(p *Preference) {
		p.onChange = fn
	}
}

// WithDocument sets the root targeted by the default side effect.
func WithDocument(root *document.Root) PreferenceOption {
	return func(p *Preference) {
		if root != nil {
			p.root = root
		}
	}
}

// Preference is the reactive theme preference.
//
// The option is what the user picked (system, light or dark). The effective
// value is what is shown: the option itself, or the OS color scheme when the
// option is system. Observers subscribe to the effective value.
type Preference struct {
	store    repository.PreferenceRepository
	scheme   port.ColorSchemeResolver
	display  port.DisplayEnvironment
	onChange EffectiveChangeFunc
	root     *document.Root
	logger   zerolog.Logger

	option    *reactive.Cell[entity.ThemeOption]
	effective *reactive.Cell[entity.Effective]

	// serial runs recomputations one at a time, whether they come from
	// SetOption or from an OS notification goroutine.
	serial reactive.Serial

	mu       sync.RWMutex
	value    entity.ThemeOption // mirrors option once attached
	attached bool
	unsubs   []func()
}

// NewPreference creates an independent preference backed by store and
// scheme. When a display environment is present the persisted option is
// loaded and listeners are registered before NewPreference returns.
func NewPreference(
	ctx context.Context,
	store repository.PreferenceRepository,
	scheme port.ColorSchemeResolver,
	opts ...PreferenceOption,
) (*Preference, error) {
	p := &Preference{
		store:     store,
		scheme:    scheme,
		display:   display.NewDetector(display.ModeAuto),
		root:      document.Default(),
		logger:    logging.Component(ctx, "theme"),
		option:    reactive.NewCell(entity.DefaultThemeOption),
		effective: reactive.NewCell(entity.HeadlessEffective),
		value:     entity.ThemeLight,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.onChange == nil {
		p.onChange = ApplyToDocument(p.root)
	}

	if !p.display.Available() {
		p.logger.Debug().Msg("no display environment, theme preference stays in memory")
		return p, nil
	}

	if err := p.initialize(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Preference) initialize(ctx context.Context) error {
	stored, err := p.loadOption(ctx)
	if err != nil {
		return err
	}

	p.option.Set(stored)
	p.setValue(stored)

	signal := p.scheme.Refresh()
	p.effective.Set(p.Effective())

	p.logger.Debug().
		Str("option", string(stored)).
		Str("effective", string(p.effective.Get())).
		Str("source", signal.Source).
		Msg("theme preference initialized")

	unsubScheme := p.scheme.OnChange(func(pref port.ColorSchemePreference) {
		p.logger.Trace().
			Bool("prefers_dark", pref.PrefersDark).
			Str("source", pref.Source).
			Msg("os color scheme changed")
		p.recompute()
	})
	unsubOption := p.option.Subscribe(func(o entity.ThemeOption) {
		p.setValue(o)
		p.recompute()
	}, nil)
	unsubEffect := p.effective.Subscribe(func(e entity.Effective) {
		p.onChange(e)
	}, nil)

	p.mu.Lock()
	p.attached = true
	p.unsubs = append(p.unsubs, unsubScheme, unsubOption, unsubEffect)
	p.mu.Unlock()
	return nil
}

// loadOption reads the persisted option. A missing slot is initialized to
// the default; an unrecognized value is replaced by the default.
func (p *Preference) loadOption(ctx context.Context) (entity.ThemeOption, error) {
	raw, err := p.store.Get(ctx, entity.ThemeStorageKey)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if err := p.store.Set(ctx, entity.ThemeStorageKey, string(entity.DefaultThemeOption)); err != nil {
			return "", fmt.Errorf("write default theme option: %w", err)
		}
		return entity.DefaultThemeOption, nil
	case err != nil:
		return "", fmt.Errorf("read theme option: %w", err)
	}

	opt, err := entity.ParseThemeOption(raw)
	if err != nil {
		p.logger.Warn().
			Str("stored", raw).
			Str("fallback", string(entity.DefaultThemeOption)).
			Msg("ignoring invalid stored theme option")
		if err := p.store.Set(ctx, entity.ThemeStorageKey, string(entity.DefaultThemeOption)); err != nil {
			return "", fmt.Errorf("rewrite theme option: %w", err)
		}
		return entity.DefaultThemeOption, nil
	}
	return opt, nil
}

func (p *Preference) setValue(o entity.ThemeOption) {
	p.mu.Lock()
	p.value = o
	p.mu.Unlock()
}

func (p *Preference) recompute() {
	p.serial.Do(func() {
		p.effective.Set(p.Effective())
	})
}

// Effective computes the effective theme now. For the system option it
// queries the OS signal synchronously.
func (p *Preference) Effective() entity.Effective {
	p.mu.RLock()
	value := p.value
	p.mu.RUnlock()

	if value.FollowsSystem() {
		return entity.EffectiveFromDark(p.scheme.Resolve().PrefersDark)
	}
	return value.Resolve(false)
}

// Get returns the cached effective value last delivered to subscribers.
func (p *Preference) Get() entity.Effective {
	return p.effective.Get()
}

// Option returns the current tri-state option.
func (p *Preference) Option() entity.ThemeOption {
	return p.option.Get()
}

// Attached reports whether the preference was initialized against a
// display environment.
func (p *Preference) Attached() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.attached
}

// Snapshot is a point-in-time view of the preference.
type Snapshot struct {
	Option    entity.ThemeOption `json:"option"`
	Effective entity.Effective   `json:"effective"`
	Attached  bool               `json:"attached"`

	// Source names the OS detector behind the effective value when the
	// option is system.
	Source string `json:"source,omitempty"`
}

// Snapshot returns the current option and effective value.
func (p *Preference) Snapshot() Snapshot {
	snap := Snapshot{
		Option:    p.Option(),
		Effective: p.Get(),
		Attached:  p.Attached(),
	}
	if snap.Attached && snap.Option.FollowsSystem() {
		snap.Source = p.scheme.Resolve().Source
	}
	return snap
}

// SetOption validates, persists and applies a new option. If persisting
// fails the in-memory state is left unchanged.
//
// When a recomputation is already running, for instance an OS change being
// delivered on the watcher goroutine, the new effective value is delivered
// after it and may not be visible through Get when SetOption returns.
// Effective reports it immediately.
func (p *Preference) SetOption(ctx context.Context, o entity.ThemeOption) error {
	if !o.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidThemeOption, string(o))
	}

	if p.Attached() {
		if err := p.store.Set(ctx, entity.ThemeStorageKey, string(o)); err != nil {
			return fmt.Errorf("persist theme option: %w", err)
		}
	}

	previous := p.option.Get()
	p.option.Set(o)

	logging.FromContext(ctx).Debug().
		Str("from", string(previous)).
		Str("to", string(o)).
		Str("effective", string(p.effective.Get())).
		Msg("theme option set")
	return nil
}

// Reload re-reads the persisted option and applies it when another process
// changed it. It reports whether the option changed. Missing or invalid
// stored values are left for the next start to repair.
func (p *Preference) Reload(ctx context.Context) (bool, error) {
	if !p.Attached() {
		return false, nil
	}

	raw, err := p.store.Get(ctx, entity.ThemeStorageKey)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("read theme option: %w", err)
	}

	opt, err := entity.ParseThemeOption(raw)
	if err != nil {
		p.logger.Warn().Str("stored", raw).Msg("ignoring invalid stored theme option")
		return false, nil
	}

	previous := p.option.Get()
	if opt == previous {
		return false, nil
	}
	p.option.Set(opt)

	p.logger.Debug().
		Str("from", string(previous)).
		Str("to", string(opt)).
		Msg("theme option changed in storage")
	return true, nil
}

// Subscribe observes the effective value. run is called immediately with
// the current value and again on every change; invalidate, if non-nil, is
// called right before each new value is delivered.
func (p *Preference) Subscribe(run reactive.Subscriber[entity.Effective], invalidate func()) reactive.Unsubscriber {
	return p.effective.Subscribe(run, invalidate)
}

// SubscribeOption observes the tri-state option with the same contract as
// Subscribe.
func (p *Preference) SubscribeOption(run reactive.Subscriber[entity.ThemeOption], invalidate func()) reactive.Unsubscriber {
	return p.option.Subscribe(run, invalidate)
}

// Close detaches the preference from the OS signal and stops driving the
// side effect. Subscribers registered by callers are left in place.
func (p *Preference) Close() {
	p.mu.Lock()
	unsubs := p.unsubs
	p.unsubs = nil
	p.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
}

var (
	_ reactive.Readable[entity.Effective] = (*Preference)(nil)
	_ port.ThemePreference                = (*Preference)(nil)
)
