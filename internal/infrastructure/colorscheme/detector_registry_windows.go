//go:build windows

package colorscheme

import (
	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// Available implements port.ColorSchemeDetector.
func (*RegistryDetector) Available() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil { // older versions of Windows do not have this key
		return false
	}
	_ = k.Close()
	return true
}

// Detect implements port.ColorSchemeDetector.
// AppsUseLightTheme is 0 when apps should render dark.
func (*RegistryDetector) Detect() (prefersDark, ok bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false, false
	}
	defer k.Close()

	useLight, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false, false
	}
	return useLight == 0, true
}
