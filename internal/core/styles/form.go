package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns the huh theme used by interactive prompts, tinted with
// the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipglossv1.Color(hexOr(ColorPrimary, "#7aa2f7"))
	muted := lipglossv1.Color(hexOr(ColorMuted, "#565f89"))
	errc := lipglossv1.Color(hexOr(ColorError, "#f7768e"))

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errc)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errc)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(muted)

	return t
}

func hexOr(c color.Color, fallback string) string {
	if p := colorHexPtr(c); p != nil {
		return *p
	}
	return fallback
}
