package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/colorpref/internal/domain/entity"
)

func TestNewTheme_FollowsEffective(t *testing.T) {
	dark := NewTheme(entity.EffectiveDark)
	light := NewTheme(entity.EffectiveLight)

	assert.Equal(t, DefaultDarkPalette().Background, string(dark.Background))
	assert.Equal(t, DefaultLightPalette().Background, string(light.Background))
}

func TestOptionIcon(t *testing.T) {
	assert.Equal(t, IconSun, OptionIcon(entity.ThemeLight))
	assert.Equal(t, IconMoon, OptionIcon(entity.ThemeDark))
	assert.Equal(t, IconSystem, OptionIcon(entity.ThemeSystem))
	assert.Equal(t, IconMoon, EffectiveIcon(entity.EffectiveDark))
}

func TestStatusLine(t *testing.T) {
	th := NewTheme(entity.EffectiveLight)

	line := th.StatusLine(entity.ThemeSystem, entity.EffectiveDark, "gsettings")
	assert.Contains(t, line, "system")
	assert.Contains(t, line, "dark")
	assert.Contains(t, line, "gsettings")

	line = th.StatusLine(entity.ThemeLight, entity.EffectiveLight, "gsettings")
	assert.NotContains(t, line, "gsettings")
}

func TestChangeLine(t *testing.T) {
	th := NewTheme(entity.EffectiveDark)
	at := time.Date(2024, 3, 1, 9, 30, 5, 0, time.UTC)

	line := th.ChangeLine(at, entity.EffectiveDark)
	assert.Contains(t, line, "09:30:05")
	assert.Contains(t, line, "dark")
}

func TestDoctorRenderer(t *testing.T) {
	r := NewDoctorRenderer(NewTheme(entity.EffectiveDark))

	out := r.Render(DoctorReport{
		OverallOK: false,
		Display:   DoctorDisplayReport{Available: false, Mode: "auto", Reason: "no WAYLAND_DISPLAY or DISPLAY"},
		Storage:   DoctorStorageReport{Backend: "file", Path: "/tmp/state.toml", Stored: "dark"},
		Detectors: []DoctorDetector{
			{Name: "GTK_THEME", Priority: 20, Available: true, Detected: true, PrefersDark: true, Selected: true},
			{Name: "gsettings", Priority: 10},
		},
		Source:    "GTK_THEME",
		Option:    "dark",
		Effective: "dark",
		Warnings:  []string{"display unavailable"},
	})

	for _, want := range []string{"Doctor", "Needs attention", "GTK_THEME", "gsettings", "unavailable", "/tmp/state.toml", "display unavailable"} {
		assert.Contains(t, out, want)
	}
}
