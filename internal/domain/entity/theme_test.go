package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeOption(t *testing.T) {
	tests := []struct {
		input   string
		want    ThemeOption
		wantErr bool
	}{
		{input: "system", want: ThemeSystem},
		{input: "light", want: ThemeLight},
		{input: "dark", want: ThemeDark},
		{input: "  Dark\n", want: ThemeDark},
		{input: "LIGHT", want: ThemeLight},
		{input: "", wantErr: true},
		{input: "prefer-dark", wantErr: true},
		{input: "auto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseThemeOption(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidThemeOption)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeOption_Resolve(t *testing.T) {
	for _, prefersDark := range []bool{true, false} {
		assert.Equal(t, EffectiveLight, ThemeLight.Resolve(prefersDark))
		assert.Equal(t, EffectiveDark, ThemeDark.Resolve(prefersDark))
	}

	assert.Equal(t, EffectiveDark, ThemeSystem.Resolve(true))
	assert.Equal(t, EffectiveLight, ThemeSystem.Resolve(false))
}

func TestThemeOption_Valid(t *testing.T) {
	for _, opt := range ThemeOptions() {
		assert.True(t, opt.Valid(), opt)
	}
	assert.False(t, ThemeOption("sepia").Valid())
	assert.False(t, ThemeOption("").Valid())
}

func TestEffective(t *testing.T) {
	assert.True(t, EffectiveFromDark(true).IsDark())
	assert.False(t, EffectiveFromDark(false).IsDark())
	assert.Equal(t, EffectiveLight, HeadlessEffective)
	assert.Equal(t, "theme", ThemeStorageKey)
	assert.Equal(t, ThemeSystem, DefaultThemeOption)
}
