package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/bnema/colorpref/internal/application/port/mocks"
	"github.com/bnema/colorpref/internal/application/usecase"
	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/domain/repository"
	repomocks "github.com/bnema/colorpref/internal/domain/repository/mocks"
)

func newDiagnoseMocks(t *testing.T, displayOK bool) (*mocks.MockColorSchemeInspector, *mocks.MockDisplayDiagnostics, *repomocks.MockPreferenceRepository) {
	t.Helper()
	inspector := mocks.NewMockColorSchemeInspector(t)
	display := mocks.NewMockDisplayDiagnostics(t)
	store := repomocks.NewMockPreferenceRepository(t)

	display.EXPECT().Available().Return(displayOK)
	if displayOK {
		display.EXPECT().Reason().Return("WAYLAND_DISPLAY=wayland-1")
	} else {
		display.EXPECT().Reason().Return("no WAYLAND_DISPLAY or DISPLAY")
	}
	return inspector, display, store
}

func TestDiagnoseThemeUseCase_Execute(t *testing.T) {
	t.Run("healthy setup picks the first answering detector", func(t *testing.T) {
		// Arrange
		inspector, display, store := newDiagnoseMocks(t, true)
		inspector.EXPECT().Statuses().Return([]port.DetectorStatus{
			{Name: "GTK_THEME", Priority: 20},
			{Name: "gsettings", Priority: 10, Available: true, Detected: true, PrefersDark: true},
			{Name: "gtk-settings.ini", Priority: 5, Available: true, Detected: true},
		})
		store.EXPECT().Get(mock.Anything, entity.ThemeStorageKey).Return("dark", nil)

		uc := usecase.NewDiagnoseThemeUseCase(inspector, display, store)

		// Act
		out, err := uc.Execute(context.Background(), usecase.DiagnoseThemeInput{})

		// Assert
		require.NoError(t, err)
		assert.True(t, out.OK)
		assert.Equal(t, "gsettings", out.Source)
		assert.True(t, out.PrefersDark)
		assert.Equal(t, "dark", out.Stored)
		assert.True(t, out.StoredFound)
		assert.True(t, out.StoredValid)
		assert.Empty(t, out.Warnings)
		assert.Len(t, out.Detectors, 3)
	})

	t.Run("missing slot is not an error", func(t *testing.T) {
		inspector, display, store := newDiagnoseMocks(t, true)
		inspector.EXPECT().Statuses().Return(nil)
		store.EXPECT().Get(mock.Anything, entity.ThemeStorageKey).Return("", repository.ErrNotFound)

		uc := usecase.NewDiagnoseThemeUseCase(inspector, display, store)

		out, err := uc.Execute(context.Background(), usecase.DiagnoseThemeInput{})

		require.NoError(t, err)
		assert.True(t, out.OK)
		assert.False(t, out.StoredFound)
		assert.Equal(t, "fallback", out.Source)
		assert.False(t, out.PrefersDark)
		assert.Len(t, out.Warnings, 2)
	})

	t.Run("invalid stored value fails the check", func(t *testing.T) {
		inspector, display, store := newDiagnoseMocks(t, true)
		inspector.EXPECT().Statuses().Return(nil)
		store.EXPECT().Get(mock.Anything, entity.ThemeStorageKey).Return("purple", nil)

		uc := usecase.NewDiagnoseThemeUseCase(inspector, display, store)

		out, err := uc.Execute(context.Background(), usecase.DiagnoseThemeInput{})

		require.NoError(t, err)
		assert.False(t, out.OK)
		assert.True(t, out.StoredFound)
		assert.False(t, out.StoredValid)
		assert.Equal(t, "purple", out.Stored)
	})

	t.Run("storage errors are reported, not returned", func(t *testing.T) {
		readErr := errors.New("permission denied")
		inspector, display, store := newDiagnoseMocks(t, true)
		inspector.EXPECT().Statuses().Return(nil)
		store.EXPECT().Get(mock.Anything, entity.ThemeStorageKey).Return("", readErr)

		uc := usecase.NewDiagnoseThemeUseCase(inspector, display, store)

		out, err := uc.Execute(context.Background(), usecase.DiagnoseThemeInput{})

		require.NoError(t, err)
		assert.False(t, out.OK)
		assert.ErrorIs(t, out.StorageErr, readErr)
	})

	t.Run("headless environment fails the check", func(t *testing.T) {
		inspector, display, store := newDiagnoseMocks(t, false)
		inspector.EXPECT().Statuses().Return([]port.DetectorStatus{
			{Name: "GTK_THEME", Priority: 20, Available: true, Detected: true, PrefersDark: true},
		})
		store.EXPECT().Get(mock.Anything, entity.ThemeStorageKey).Return("system", nil)

		uc := usecase.NewDiagnoseThemeUseCase(inspector, display, store)

		out, err := uc.Execute(context.Background(), usecase.DiagnoseThemeInput{})

		require.NoError(t, err)
		assert.False(t, out.OK)
		assert.False(t, out.DisplayAvailable)
		assert.Equal(t, "no WAYLAND_DISPLAY or DISPLAY", out.DisplayReason)
		assert.Equal(t, "GTK_THEME", out.Source)
		assert.Len(t, out.Warnings, 1)
	})
}
