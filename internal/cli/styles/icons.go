package styles

import "github.com/bnema/colorpref/internal/domain/entity"

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconSun     = "\uf185" // sun
	IconMoon    = "\uf186" // moon
	IconSystem  = "\uf108" // desktop
	IconArrow   = "\uf061" // arrow right
	IconCursor  = "\uf054" // chevron-right
	IconConfig  = "\ue615" // config
	IconStorage = "\uf1c0" // database

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
)

// OptionIcon returns the icon for a theme option.
func OptionIcon(o entity.ThemeOption) string {
	switch o {
	case entity.ThemeLight:
		return IconSun
	case entity.ThemeDark:
		return IconMoon
	default:
		return IconSystem
	}
}

// EffectiveIcon returns the icon for an effective theme.
func EffectiveIcon(e entity.Effective) string {
	if e.IsDark() {
		return IconMoon
	}
	return IconSun
}
