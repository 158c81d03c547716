// Package usecase contains application business logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/logging"
)

// ChangeThemeUseCase applies a theme option picked by the user.
type ChangeThemeUseCase struct {
	preference port.ThemePreference
}

// NewChangeThemeUseCase creates a new ChangeThemeUseCase.
func NewChangeThemeUseCase(preference port.ThemePreference) *ChangeThemeUseCase {
	return &ChangeThemeUseCase{preference: preference}
}

// ChangeThemeInput contains the raw option, as typed on the command line or
// sent over HTTP.
type ChangeThemeInput struct {
	Option string
}

// ChangeThemeOutput describes the result of a change.
type ChangeThemeOutput struct {
	Previous  entity.ThemeOption
	Current   entity.ThemeOption
	Effective entity.Effective

	// Persisted is false when no display environment is attached; the
	// change then only lives for the current process.
	Persisted bool

	// Changed is false when the option was already selected.
	Changed bool
}

// Execute parses and applies the option.
func (uc *ChangeThemeUseCase) Execute(ctx context.Context, input ChangeThemeInput) (*ChangeThemeOutput, error) {
	log := logging.Component(ctx, "change-theme")

	option, err := entity.ParseThemeOption(input.Option)
	if err != nil {
		return nil, err
	}

	previous := uc.preference.Option()
	if err := uc.preference.SetOption(ctx, option); err != nil {
		return nil, fmt.Errorf("set theme option: %w", err)
	}

	out := &ChangeThemeOutput{
		Previous:  previous,
		Current:   uc.preference.Option(),
		Effective: uc.preference.Effective(),
		Persisted: uc.preference.Attached(),
		Changed:   previous != option,
	}

	log.Debug().
		Str("previous", string(out.Previous)).
		Str("current", string(out.Current)).
		Str("effective", string(out.Effective)).
		Bool("persisted", out.Persisted).
		Msg("theme changed")

	return out, nil
}
