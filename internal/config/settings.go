package config

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemePreference is the persisted light/dark choice
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyTheme = "theme"
)

// Toggle returns the opposite preference
func (p ThemePreference) Toggle() ThemePreference {
	if p == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Variant maps the preference to a Fyne theme variant
func (p ThemePreference) Variant() fyne.ThemeVariant {
	if p == ThemeDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// IsValid reports whether p is a known preference
func (p ThemePreference) IsValid() bool {
	return p == ThemeLight || p == ThemeDark
}

// Settings manages persisted application preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTheme returns the persisted theme, or the platform's ambient
// light/dark variant when nothing valid has been stored yet
func (s *Settings) GetTheme() ThemePreference {
	pref := ThemePreference(s.app.Preferences().String(KeyTheme))
	if pref.IsValid() {
		return pref
	}
	return s.AmbientTheme()
}

// AmbientTheme returns the preference matching the platform variant
func (s *Settings) AmbientTheme() ThemePreference {
	if s.app.Settings().ThemeVariant() == theme.VariantDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme persists the theme preference. Unknown values are ignored.
func (s *Settings) SetTheme(pref ThemePreference) {
	if !pref.IsValid() {
		return
	}
	s.app.Preferences().SetString(KeyTheme, string(pref))
}

// ToggleTheme flips and persists the theme, returning the new value
func (s *Settings) ToggleTheme() ThemePreference {
	next := s.GetTheme().Toggle()
	s.SetTheme(next)
	return next
}
