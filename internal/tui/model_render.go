package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/tui/components"
)

// View renders the heading, the add form, the rows and the footer.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.HeadingStyle.Render(m.heading),
		m.create.View(),
		"",
		m.rows.View(),
		styles.FooterStyle.Render(m.footer()),
	)
	content = lipgloss.NewStyle().Padding(1, 2).Render(content)

	if m.showHelp {
		w, h := m.width, m.height
		if w == 0 || h == 0 {
			w, h = lipgloss.Width(content), lipgloss.Height(content)
		}
		content = components.NewHelpDialog(m.build.title(), m.keys.helpSections()...).Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) footer() string {
	var hints []string
	switch m.Focus() {
	case FocusEditing:
		hints = []string{"enter update", "esc cancel"}
	case FocusCreating:
		hints = []string{"enter add", "tab list", "ctrl+c quit"}
	default:
		hints = []string{"↑/↓ move", "enter toggle", "e edit", "d delete", "n new", "? help", "q quit"}
	}
	return strings.Join(hints, "  ")
}
