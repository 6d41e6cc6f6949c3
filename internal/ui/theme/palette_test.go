package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/internal/infrastructure/config"
)

func TestPaletteFromConfig_FillsMissingColors(t *testing.T) {
	p := PaletteFromConfig(&config.ColorPalette{Accent: "#ff0000"}, true)

	assert.Equal(t, "#ff0000", p.Accent)
	assert.Equal(t, DefaultDarkPalette().Background, p.Background)
	assert.Equal(t, DefaultDarkPalette().Destructive, p.Destructive)
}

func TestPaletteFromConfig_NilUsesDefaults(t *testing.T) {
	assert.Equal(t, DefaultLightPalette(), PaletteFromConfig(nil, false))
}

func TestPaletteForAppearance(t *testing.T) {
	a := &config.AppearanceConfig{
		ColorScheme:  config.ColorSchemeLight,
		LightPalette: config.ColorPalette{Accent: "#123456"},
	}
	p := PaletteForAppearance(a)
	assert.Equal(t, "#123456", p.Accent)
	assert.Equal(t, DefaultLightPalette().Background, p.Background)

	a.ColorScheme = config.ColorSchemeDark
	assert.Equal(t, DefaultDarkPalette(), PaletteForAppearance(a))
	assert.Equal(t, DefaultDarkPalette(), PaletteForAppearance(nil))
}

func TestPaletteValidate(t *testing.T) {
	require.NoError(t, DefaultDarkPalette().Validate())
	require.NoError(t, Palette{}.Validate())

	err := Palette{Accent: "green"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}

func TestValidateHexColor(t *testing.T) {
	for _, ok := range []string{"", "#fff", "#a1b2c3", "#a1b2c3d4"} {
		assert.NoError(t, ValidateHexColor(ok), ok)
	}
	for _, bad := range []string{"fff", "#ffff", "#zzzzzz"} {
		assert.Error(t, ValidateHexColor(bad), bad)
	}
}

func TestNewStyles_UsesPalette(t *testing.T) {
	p := DefaultDarkPalette()
	s := NewStyles(p)

	assert.Equal(t, lipgloss.Color(p.Accent), s.Focused.GetForeground())
	assert.True(t, s.ActiveTab.GetBold())
}
