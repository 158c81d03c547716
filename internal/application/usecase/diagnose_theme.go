package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/domain/repository"
	"github.com/bnema/colorpref/internal/logging"
)

// sourceFallback matches the source reported when no detector answered.
const sourceFallback = "fallback"

// DiagnoseThemeUseCase inspects every input of the theme preference without
// changing any of them.
type DiagnoseThemeUseCase struct {
	inspector port.ColorSchemeInspector
	display   port.DisplayDiagnostics
	store     repository.PreferenceRepository
}

// NewDiagnoseThemeUseCase creates a new DiagnoseThemeUseCase.
func NewDiagnoseThemeUseCase(
	inspector port.ColorSchemeInspector,
	display port.DisplayDiagnostics,
	store repository.PreferenceRepository,
) *DiagnoseThemeUseCase {
	return &DiagnoseThemeUseCase{
		inspector: inspector,
		display:   display,
		store:     store,
	}
}

// DiagnoseThemeInput contains options for the diagnosis.
type DiagnoseThemeInput struct{}

// DiagnoseThemeOutput is the diagnosis result.
type DiagnoseThemeOutput struct {
	OK bool

	DisplayAvailable bool
	DisplayReason    string

	// Stored is the raw persisted value; empty when the slot is missing.
	Stored      string
	StoredFound bool
	StoredValid bool
	StorageErr  error

	Detectors []port.DetectorStatus

	// Source is the detector that decides the OS signal, or "fallback".
	Source      string
	PrefersDark bool

	Warnings []string
}

// Execute runs the diagnosis. Storage errors are reported in the output,
// not returned.
func (uc *DiagnoseThemeUseCase) Execute(ctx context.Context, _ DiagnoseThemeInput) (*DiagnoseThemeOutput, error) {
	log := logging.Component(ctx, "diagnose-theme")

	out := &DiagnoseThemeOutput{
		DisplayAvailable: uc.display.Available(),
		DisplayReason:    uc.display.Reason(),
		Detectors:        uc.inspector.Statuses(),
		Source:           sourceFallback,
	}

	if !out.DisplayAvailable {
		out.Warnings = append(out.Warnings, "no display environment: theme changes are not persisted")
	}

	raw, err := uc.store.Get(ctx, entity.ThemeStorageKey)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		out.Warnings = append(out.Warnings, "no stored theme option yet: defaults to "+string(entity.DefaultThemeOption))
	case err != nil:
		out.StorageErr = err
		out.Warnings = append(out.Warnings, fmt.Sprintf("storage unreadable: %v", err))
	default:
		out.Stored = raw
		out.StoredFound = true
		if _, parseErr := entity.ParseThemeOption(raw); parseErr == nil {
			out.StoredValid = true
		} else {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("stored theme option %q is invalid: it will be reset to %s", raw, entity.DefaultThemeOption))
		}
	}

	for _, status := range out.Detectors {
		if status.Available && status.Detected {
			out.Source = status.Name
			out.PrefersDark = status.PrefersDark
			break
		}
	}
	if out.Source == sourceFallback {
		out.Warnings = append(out.Warnings, "no detector answered: the system option resolves to light")
	}

	out.OK = out.DisplayAvailable && out.StorageErr == nil && (!out.StoredFound || out.StoredValid)

	log.Debug().
		Bool("ok", out.OK).
		Str("source", out.Source).
		Int("warnings", len(out.Warnings)).
		Msg("theme diagnosis complete")

	return out, nil
}
