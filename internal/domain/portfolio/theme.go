package portfolio

import (
	"fmt"
	"strconv"
	"strings"
)

type ColorPreset string

const (
	PresetCyberpunk  ColorPreset = "cyberpunk"
	PresetOcean      ColorPreset = "ocean"
	PresetForest     ColorPreset = "forest"
	PresetSunset     ColorPreset = "sunset"
	PresetMonochrome ColorPreset = "monochrome"
	PresetCustom     ColorPreset = "custom"
)

type ThemeSettings struct {
	AccentPrimary     string      `json:"accentPrimary"`
	AccentSecondary   string      `json:"accentSecondary"`
	AccentTertiary    string      `json:"accentTertiary"`
	ColorPreset       ColorPreset `json:"colorPreset"`
	FontFamily        string      `json:"fontFamily"`
	HeadingFont       string      `json:"headingFont"`
	LayoutTemplate    string      `json:"layoutTemplate"`
	DesignStyle       string      `json:"designStyle"`
	BorderRadius      string      `json:"borderRadius"`
	AnimationsEnabled bool        `json:"animationsEnabled"`
}

func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		AccentPrimary:     "#8b5cf6",
		AccentSecondary:   "#06b6d4",
		AccentTertiary:    "#ec4899",
		ColorPreset:       PresetCyberpunk,
		FontFamily:        "inter",
		HeadingFont:       "inter",
		LayoutTemplate:    "classic",
		DesignStyle:       "glassmorphism",
		BorderRadius:      "large",
		AnimationsEnabled: true,
	}
}

type palette struct {
	Primary, Secondary, Tertiary, Background, Foreground string
}

var colorPresets = map[ColorPreset]palette{
	PresetCyberpunk:  {"#8b5cf6", "#ec4899", "#06b6d4", "#030014", "#ffffff"},
	PresetOcean:      {"#3b82f6", "#06b6d4", "#0ea5e9", "#0c1222", "#ffffff"},
	PresetForest:     {"#22c55e", "#10b981", "#84cc16", "#0a1810", "#ffffff"},
	PresetSunset:     {"#f97316", "#ef4444", "#eab308", "#1a0a05", "#ffffff"},
	PresetMonochrome: {"#ffffff", "#a1a1aa", "#71717a", "#09090b", "#ffffff"},
	PresetCustom:     {"#8b5cf6", "#06b6d4", "#ec4899", "#030014", "#ffffff"},
}

var fontFamilies = map[string]string{
	"inter":         "'Inter', sans-serif",
	"poppins":       "'Poppins', sans-serif",
	"roboto":        "'Roboto', sans-serif",
	"space-grotesk": "'Space Grotesk', sans-serif",
	"outfit":        "'Outfit', sans-serif",
	"playfair":      "'Playfair Display', serif",
}

var borderRadii = map[string]string{
	"none":   "0px",
	"small":  "4px",
	"medium": "8px",
	"large":  "16px",
	"full":   "9999px",
}

type designTokens struct {
	CardBackground string `json:"cardBackground"`
	CardBorder     string `json:"cardBorder"`
	CardShadow     string `json:"cardShadow"`
	BackdropBlur   string `json:"backdropBlur"`
}

var designStyles = map[string]designTokens{
	"glassmorphism": {"rgba(255, 255, 255, 0.05)", "1px solid rgba(255, 255, 255, 0.1)", "0 8px 32px rgba(0, 0, 0, 0.3)", "blur(20px)"},
	"neomorphism":   {"var(--background)", "none", "8px 8px 16px rgba(0,0,0,0.5), -8px -8px 16px rgba(255,255,255,0.05)", "none"},
	"flat":          {"rgba(255, 255, 255, 0.03)", "1px solid rgba(255, 255, 255, 0.08)", "none", "none"},
	"gradient":      {"linear-gradient(135deg, rgba(139, 92, 246, 0.1), rgba(6, 182, 212, 0.1))", "1px solid rgba(255, 255, 255, 0.1)", "0 4px 20px rgba(139, 92, 246, 0.2)", "blur(10px)"},
}

// ResolvedTheme is the set of CSS variable values a style applier needs.
// Empty strings mean "leave the stylesheet default".
type ResolvedTheme struct {
	AccentPrimary     string        `json:"accentPrimary"`
	AccentSecondary   string        `json:"accentSecondary"`
	AccentTertiary    string        `json:"accentTertiary"`
	Background        string        `json:"background"`
	Foreground        string        `json:"foreground"`
	FontBody          string        `json:"fontBody"`
	FontHeading       string        `json:"fontHeading"`
	RadiusBase        string        `json:"radiusBase"`
	RadiusSmall       string        `json:"radiusSm"`
	RadiusLarge       string        `json:"radiusLg"`
	RadiusXL          string        `json:"radiusXl"`
	Design            *designTokens `json:"design,omitempty"`
	LayoutTemplate    string        `json:"layoutTemplate"`
	AnimationsEnabled bool          `json:"animationsEnabled"`
}

// Resolve applies preset colors unless the preset is custom, in which case
// the explicit accent colors win.
func (t ThemeSettings) Resolve() ResolvedTheme {
	r := ResolvedTheme{
		LayoutTemplate:    t.LayoutTemplate,
		AnimationsEnabled: t.AnimationsEnabled,
		FontBody:          fontFamilies[t.FontFamily],
		FontHeading:       fontFamilies[t.HeadingFont],
	}

	if p, ok := colorPresets[t.ColorPreset]; ok && t.ColorPreset != PresetCustom {
		r.AccentPrimary, r.AccentSecondary, r.AccentTertiary = p.Primary, p.Secondary, p.Tertiary
		r.Background, r.Foreground = p.Background, p.Foreground
	} else {
		r.AccentPrimary, r.AccentSecondary, r.AccentTertiary = t.AccentPrimary, t.AccentSecondary, t.AccentTertiary
	}

	if base, ok := borderRadii[t.BorderRadius]; ok {
		px, _ := strconv.Atoi(strings.TrimSuffix(base, "px"))
		r.RadiusBase = base
		r.RadiusSmall = fmt.Sprintf("%dpx", max(px/2, 2))
		r.RadiusLarge = fmt.Sprintf("%dpx", min(px*3/2, 24))
		r.RadiusXL = fmt.Sprintf("%dpx", min(px*2, 32))
	}

	if d, ok := designStyles[t.DesignStyle]; ok {
		r.Design = &d
	}
	return r
}
