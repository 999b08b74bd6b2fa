// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// CurrentTheme holds the name of the active theme.
var CurrentTheme string

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	SuccessStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style

	// Page layout.
	HeadingStyle lipgloss.Style
	FooterStyle  lipgloss.Style

	// Item rows.
	RowStyle           lipgloss.Style
	RowSelectedStyle   lipgloss.Style
	RowCompleteStyle   lipgloss.Style
	RowCursorStyle     lipgloss.Style
	RowDeleteIconStyle lipgloss.Style
	RowEditIconStyle   lipgloss.Style

	// Forms.
	FormTitleStyle         lipgloss.Style
	FormFieldStyle         lipgloss.Style
	FormFieldFocusedStyle  lipgloss.Style
	FormButtonStyle        lipgloss.Style
	FormButtonFocusedStyle lipgloss.Style

	// Help overlay.
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(name string, p Palette) {
	CurrentTheme = name
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	InfoStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)

	HeadingStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	RowStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingLeft(2)
	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Bold(true)
	RowCompleteStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)
	RowCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	RowDeleteIconStyle = lipgloss.NewStyle().Foreground(ColorError)
	RowEditIconStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	FormButtonFocusedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
}

// UseTheme activates a built-in theme by name. It reports false, leaving the
// current theme in place, when the name is unknown.
func UseTheme(name string) bool {
	p, ok := GetPalette(name)
	if !ok {
		return false
	}
	SetTheme(name, p)
	return true
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(DefaultTheme, themes[DefaultTheme])
}
