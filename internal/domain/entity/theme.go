package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ThemeOption is the user-chosen theme preference.
type ThemeOption string

const (
	ThemeSystem ThemeOption = "system"
	ThemeLight  ThemeOption = "light"
	ThemeDark   ThemeOption = "dark"
)

// Effective is the resolved display mode actually applied.
type Effective string

const (
	EffectiveLight Effective = "light"
	EffectiveDark  Effective = "dark"
)

const (
	// ThemeStorageKey is the key of the persisted slot holding the option.
	ThemeStorageKey = "theme"

	// DefaultThemeOption is used when nothing has been persisted yet.
	DefaultThemeOption = ThemeSystem

	// HeadlessEffective is reported when no display environment is attached.
	HeadlessEffective = EffectiveLight
)

// ErrInvalidThemeOption is returned for values outside system|light|dark.
var ErrInvalidThemeOption = errors.New("invalid theme option")

// ThemeOptions lists every valid option in display order.
func ThemeOptions() []ThemeOption {
	return []ThemeOption{ThemeSystem, ThemeLight, ThemeDark}
}

// ParseThemeOption converts user or storage input into a ThemeOption.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseThemeOption(s string) (ThemeOption, error) {
	switch opt := ThemeOption(strings.ToLower(strings.TrimSpace(s))); opt {
	case ThemeSystem, ThemeLight, ThemeDark:
		return opt, nil
	default:
		return "", fmt.Errorf("%w: %q (want system, light or dark)", ErrInvalidThemeOption, s)
	}
}

// Valid reports whether o is one of the three known options.
func (o ThemeOption) Valid() bool {
	switch o {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// FollowsSystem reports whether the effective value tracks the OS signal.
func (o ThemeOption) FollowsSystem() bool {
	return o == ThemeSystem
}

// Resolve maps the option to an effective value.
// prefersDark is only consulted for ThemeSystem.
func (o ThemeOption) Resolve(prefersDark bool) Effective {
	switch o {
	case ThemeLight:
		return EffectiveLight
	case ThemeDark:
		return EffectiveDark
	default:
		return EffectiveFromDark(prefersDark)
	}
}

func (o ThemeOption) String() string {
	return string(o)
}

// EffectiveFromDark converts an OS dark-mode flag into an Effective value.
func EffectiveFromDark(prefersDark bool) Effective {
	if prefersDark {
		return EffectiveDark
	}
	return EffectiveLight
}

// IsDark reports whether the effective value is dark.
func (e Effective) IsDark() bool {
	return e == EffectiveDark
}

func (e Effective) String() string {
	return string(e)
}
