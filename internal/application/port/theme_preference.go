package port

import (
	"context"

	"github.com/bnema/colorpref/internal/domain/entity"
)

// ThemePreference is the read/write surface of the theme preference used by
// commands and the HTTP API.
type ThemePreference interface {
	// Option returns the tri-state option the user picked.
	Option() entity.ThemeOption

	// Get returns the effective theme last delivered to observers.
	Get() entity.Effective

	// Effective computes the effective theme from the current option and OS
	// signal, without waiting for queued deliveries.
	Effective() entity.Effective

	// Attached reports whether changes are persisted.
	Attached() bool

	// SetOption validates, persists and applies a new option.
	SetOption(ctx context.Context, option entity.ThemeOption) error
}
