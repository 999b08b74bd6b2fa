// Package rows renders the item list and owns the inline edit cursor.
package rows

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/core/todo"
	"github.com/colonyops/dayplan/internal/tui/components/editor"
)

// Actions are the list capabilities the rows invoke. Items is read on every
// render so the rows never hold a stale copy.
type Actions interface {
	Items() []todo.Item
	Update(id todo.ID, item todo.Item) bool
	Remove(id todo.ID) bool
	ToggleComplete(id todo.ID) bool
}

// KeyMap defines the row list bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Edit   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default row bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("enter/space", "toggle done")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "delete")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
	}
}

// Model is the row list.
type Model struct {
	actions  Actions
	keys     KeyMap
	selected int
	cursor   Cursor
	editor   *editor.Model
	focused  bool
	width    int
}

// New creates a row list over actions.
func New(actions Actions) *Model {
	return &Model{
		actions: actions,
		keys:    DefaultKeyMap(),
	}
}

// Update handles key events. While an edit is in progress every message goes
// to the editor except the cancel key.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.cursor.IsEditing() {
		return m.updateEditing(msg)
	}

	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	items := m.actions.Items()
	m.clamp(len(items))

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(items)-1 {
			m.selected++
		}
	case len(items) == 0:
		return m, nil
	case key.Matches(keyMsg, m.keys.Toggle):
		m.actions.ToggleComplete(items[m.selected].ID)
	case key.Matches(keyMsg, m.keys.Delete):
		m.actions.Remove(items[m.selected].ID)
		m.clamp(len(items) - 1)
	case key.Matches(keyMsg, m.keys.Edit):
		return m, m.StartEdit(items[m.selected])
	}

	return m, nil
}

func (m *Model) updateEditing(msg tea.Msg) (*Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.CancelEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// StartEdit moves the cursor to item and mounts a focused editor bound to it.
func (m *Model) StartEdit(item todo.Item) tea.Cmd {
	m.cursor = EditCursor(item.ID)
	m.editor = editor.NewEdit(item, m.submitEdit)
	if m.width > 0 {
		m.editor.SetWidth(m.width - 12)
	}
	return m.editor.Focus()
}

// CancelEdit drops the edit in progress without updating the list.
func (m *Model) CancelEdit() {
	m.cursor = IdleCursor()
	m.editor = nil
}

func (m *Model) submitEdit(item todo.Item) {
	m.actions.Update(m.cursor.ID(), item)
	m.CancelEdit()
}

func (m *Model) clamp(n int) {
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// View renders either the rows or, during an edit, the bound editor.
func (m *Model) View() string {
	if m.cursor.IsEditing() && m.editor != nil {
		return m.editor.View()
	}

	items := m.actions.Items()
	if len(items) == 0 {
		return styles.TextMutedStyle.Render("  Nothing planned yet")
	}

	m.clamp(len(items))

	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, m.renderRow(item, m.focused && i == m.selected))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(item todo.Item, selected bool) string {
	check := styles.TextMutedStyle.Render(styles.IconUnchecked)
	text := styles.TextForegroundStyle.Render(item.Text)
	if item.IsComplete {
		check = styles.SuccessStyle.Render(styles.IconChecked)
		text = styles.RowCompleteStyle.Render(item.Text)
	}

	icons := styles.RowDeleteIconStyle.Render(styles.IconDelete) + " " +
		styles.RowEditIconStyle.Render(styles.IconEdit)

	body := check + " " + text
	if m.width > 0 {
		gap := m.width - lipgloss.Width(body) - lipgloss.Width(icons) - 2
		if gap > 0 {
			body += strings.Repeat(" ", gap)
		} else {
			body += " "
		}
	} else {
		body += "  "
	}

	if selected {
		return styles.RowCursorStyle.Render(styles.IconCursor) + " " + body + icons
	}
	return "  " + body + icons
}

// Focus gives the row list keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// SetWidth sets the render width.
func (m *Model) SetWidth(w int) {
	m.width = w
	if m.editor != nil {
		m.editor.SetWidth(w - 12)
	}
}

// KeyMap returns the active bindings.
func (m *Model) KeyMap() KeyMap { return m.keys }

func (m *Model) Focused() bool  { return m.focused }
func (m *Model) Cursor() Cursor { return m.cursor }
func (m *Model) Selected() int  { return m.selected }
