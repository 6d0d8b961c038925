package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeResolve_PresetWins(t *testing.T) {
	theme := DefaultTheme()
	theme.ColorPreset = PresetOcean
	theme.AccentPrimary = "#000000"

	r := theme.Resolve()
	assert.Equal(t, "#3b82f6", r.AccentPrimary)
	assert.Equal(t, "#0c1222", r.Background)
	assert.Equal(t, "'Inter', sans-serif", r.FontBody)
	require.NotNil(t, r.Design)
	assert.Equal(t, "blur(20px)", r.Design.BackdropBlur)
}

func TestThemeResolve_CustomUsesAccents(t *testing.T) {
	theme := DefaultTheme()
	theme.ColorPreset = PresetCustom
	theme.AccentPrimary = "#123456"

	r := theme.Resolve()
	assert.Equal(t, "#123456", r.AccentPrimary)
	assert.Empty(t, r.Background)
}

func TestThemeResolve_Radii(t *testing.T) {
	cases := map[string][4]string{
		"none":   {"0px", "2px", "0px", "0px"},
		"medium": {"8px", "4px", "12px", "16px"},
		"large":  {"16px", "8px", "24px", "32px"},
		"full":   {"9999px", "4999px", "24px", "32px"},
	}
	for radius, want := range cases {
		theme := DefaultTheme()
		theme.BorderRadius = radius
		r := theme.Resolve()
		assert.Equal(t, want, [4]string{r.RadiusBase, r.RadiusSmall, r.RadiusLarge, r.RadiusXL}, radius)
	}

	theme := DefaultTheme()
	theme.BorderRadius = "bogus"
	assert.Empty(t, theme.Resolve().RadiusBase)
}
