// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI. Health Chat ships
// a small set chosen for legibility, including a high-contrast palette.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (header, focus, highlights)
	Primary string
	// Secondary is used for keys in the footer and assistant accents
	Secondary string

	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	User      string // User bubble border and label
	Assistant string // Assistant bubble border and label
	Warning   string // Emergency banner
	Error     string // Error messages
	Info      string // Live region announcements
	Success   string // Copy confirmation

	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

const (
	ThemeClinic       ThemeName = "clinic"
	ThemeNight        ThemeName = "night"
	ThemeHighContrast ThemeName = "high-contrast"
	ThemeLight        ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeClinic

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeClinic: {
		Name:        "Clinic",
		Primary:     "#0E7490",
		Secondary:   "#14B8A6",
		Bg:          "#0F172A",
		Text:        "#F8FAFC",
		TextMuted:   "#A3B1C2",
		TextInverse: "#0F172A",
		User:        "#38BDF8",
		Assistant:   "#2DD4BF",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#5EEAD4",
		Success:     "#22C55E",
		Border:      "#334155",
	},
	ThemeNight: {
		Name:        "Night",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#B0B8C4",
		TextInverse: "#1F2937",
		User:        "#A78BFA",
		Assistant:   "#22D3EE",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
	},
	ThemeHighContrast: {
		Name:        "High Contrast",
		Primary:     "#FFFF00",
		Secondary:   "#00FFFF",
		Bg:          "#000000",
		BgSelected:  "#FFFFFF",
		Text:        "#FFFFFF",
		TextMuted:   "#E5E5E5",
		TextInverse: "#000000",
		User:        "#00FFFF",
		Assistant:   "#FFFF00",
		Warning:     "#FF8000",
		Error:       "#FF4040",
		Info:        "#FFFFFF",
		Success:     "#00FF00",
		Border:      "#FFFFFF",
		BorderFocus: "#FFFF00",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#0369A1",
		Secondary:   "#0F766E",
		Bg:          "#F8FAFC",
		BgSelected:  "#BAE6FD",
		Text:        "#0F172A",
		TextMuted:   "#475569",
		TextInverse: "#F8FAFC",
		User:        "#0369A1",
		Assistant:   "#0F766E",
		Warning:     "#B45309",
		Error:       "#B91C1C",
		Info:        "#0F766E",
		Success:     "#15803D",
		Border:      "#CBD5E1",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeClinic,
		ThemeNight,
		ThemeHighContrast,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to Clinic if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	buildStyles(t)
}
