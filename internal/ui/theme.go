package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/digit-span/internal/model"
)

// Custom color names used by the game card
const (
	ColorNameCard          fyne.ThemeColorName = "digitSpanCard"
	ColorNameAccentPressed fyne.ThemeColorName = "digitSpanAccentPressed"
	ColorNameGradientStart fyne.ThemeColorName = "digitSpanGradientStart"
	ColorNameGradientEnd   fyne.ThemeColorName = "digitSpanGradientEnd"
)

// palette holds the colors of one variant
type palette struct {
	gradientStart color.Color
	gradientEnd   color.Color
	background    color.Color
	card          color.Color
	accent        color.Color
	accentPressed color.Color
	text          color.Color
	correct       color.Color
	incorrect     color.Color
}

var lightPalette = palette{
	gradientStart: color.NRGBA{R: 0xE3, G: 0xF2, B: 0xFD, A: 0xFF}, // sky blue tint
	gradientEnd:   color.NRGBA{R: 0xBB, G: 0xDE, B: 0xFB, A: 0xFF},
	background:    color.NRGBA{R: 0xF5, G: 0xF9, B: 0xFF, A: 0xFF},
	card:          color.NRGBA{R: 0xE8, G: 0xF0, B: 0xFE, A: 0xFF},
	accent:        color.NRGBA{R: 0x15, G: 0x65, B: 0xC0, A: 0xFF}, // navy
	accentPressed: color.NRGBA{R: 0x0D, G: 0x47, B: 0xA1, A: 0xFF},
	text:          color.NRGBA{R: 0x0A, G: 0x3D, B: 0x62, A: 0xFF},
	correct:       color.NRGBA{R: 0xFF, G: 0x8F, B: 0x00, A: 0xFF}, // orange
	incorrect:     color.NRGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF},
}

var darkPalette = palette{
	gradientStart: color.NRGBA{R: 0x1A, G: 0x20, B: 0x2C, A: 0xFF}, // charcoal
	gradientEnd:   color.NRGBA{R: 0x2D, G: 0x37, B: 0x48, A: 0xFF},
	background:    color.NRGBA{R: 0x23, G: 0x2A, B: 0x36, A: 0xFF},
	card:          color.NRGBA{R: 0x2D, G: 0x37, B: 0x48, A: 0xFF},
	accent:        color.NRGBA{R: 0xA0, G: 0xE0, B: 0x70, A: 0xFF}, // lime
	accentPressed: color.NRGBA{R: 0x80, G: 0xC0, B: 0x50, A: 0xFF},
	text:          color.NRGBA{R: 0xF7, G: 0xFA, B: 0xFC, A: 0xFF},
	correct:       color.NRGBA{R: 0x68, G: 0xD3, B: 0x91, A: 0xFF},
	incorrect:     color.NRGBA{R: 0xFC, G: 0x81, B: 0x81, A: 0xFF},
}

// DigitSpanTheme renders the app in one fixed variant regardless of the
// variant Fyne asks for, so the persisted preference wins over the system
type DigitSpanTheme struct {
	variant fyne.ThemeVariant
}

// NewDigitSpanTheme creates a theme locked to the given variant
func NewDigitSpanTheme(variant fyne.ThemeVariant) *DigitSpanTheme {
	return &DigitSpanTheme{variant: variant}
}

// Variant returns the variant the theme is locked to
func (t *DigitSpanTheme) Variant() fyne.ThemeVariant {
	return t.variant
}

func (t *DigitSpanTheme) palette() palette {
	if t.variant == theme.VariantDark {
		return darkPalette
	}
	return lightPalette
}

// Color returns theme colors
func (t *DigitSpanTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.palette()
	switch name {
	case ColorNameCard, theme.ColorNameButton:
		return p.card
	case ColorNameAccentPressed:
		return p.accentPressed
	case ColorNameGradientStart:
		return p.gradientStart
	case ColorNameGradientEnd:
		return p.gradientEnd
	case theme.ColorNameBackground, theme.ColorNameInputBackground, theme.ColorNameMenuBackground,
		theme.ColorNameOverlayBackground:
		return p.background
	case theme.ColorNameForeground:
		return p.text
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return p.accent
	case theme.ColorNameForegroundOnPrimary:
		return p.card
	case theme.ColorNameSuccess:
		return p.correct
	case theme.ColorNameError:
		return p.incorrect
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, t.variant)
}

// CueColor returns the card color for a success/failure cue
func (t *DigitSpanTheme) CueColor(cue model.Cue) color.Color {
	switch cue {
	case model.CueSuccess:
		return t.Color(theme.ColorNameSuccess, t.variant)
	case model.CueFailure:
		return t.Color(theme.ColorNameError, t.variant)
	default:
		return t.Color(ColorNameCard, t.variant)
	}
}

// Font returns theme fonts
func (t *DigitSpanTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DigitSpanTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with roomier adjustments for a single-card layout
func (t *DigitSpanTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Increased from default 4
	case theme.SizeNameInnerPadding:
		return 12 // Increased from default 8
	case theme.SizeNameText:
		return 18 // Increased from default 14
	case theme.SizeNameHeadingText:
		return 28 // Increased from default 24
	case theme.SizeNameSubHeadingText:
		return 22 // Increased from default 18
	case theme.SizeNameInputRadius:
		return 12 // Increased from default 5
	case theme.SizeNameSelectionRadius:
		return 8 // Increased from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
