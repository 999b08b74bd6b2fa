// Package editor provides the single-field form used to create and edit items.
package editor

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dayplan/internal/core/styles"
	"github.com/colonyops/dayplan/internal/core/todo"
)

// Mode selects whether the editor creates a new item or edits a bound one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

const defaultWidth = 40

var submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))

// Model is a controlled single-line text form. On submit it hands the caller
// an Item carrying the bound id and completion flag with the current input as
// text, then clears the input. It never rejects input itself.
type Model struct {
	input    textinput.Model
	mode     Mode
	bound    todo.Item
	onSubmit func(todo.Item)
	focused  bool
}

// NewCreate returns an empty editor for new items. The submitted Item has a
// zero id; the list assigns the real one.
func NewCreate(onSubmit func(todo.Item)) *Model {
	return newModel(ModeCreate, todo.Item{}, "Add a todo", onSubmit)
}

// NewEdit returns an editor pre-filled with item's text.
func NewEdit(item todo.Item, onSubmit func(todo.Item)) *Model {
	m := newModel(ModeEdit, item, "Update todo", onSubmit)
	m.input.SetValue(item.Text)
	m.input.CursorEnd()
	return m
}

func newModel(mode Mode, bound todo.Item, placeholder string, onSubmit func(todo.Item)) *Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(defaultWidth)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	if onSubmit == nil {
		onSubmit = func(todo.Item) {}
	}

	return &Model{
		input:    ti,
		mode:     mode,
		bound:    bound,
		onSubmit: onSubmit,
	}
}

// Update handles key events while focused.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, submitKey) {
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() {
	m.onSubmit(todo.Item{
		ID:         m.bound.ID,
		Text:       m.input.Value(),
		IsComplete: m.bound.IsComplete,
	})
	m.input.SetValue("")
}

// View renders the field and its button.
func (m *Model) View() string {
	titleStyle := styles.TextMutedStyle
	fieldStyle := styles.FormFieldStyle
	buttonStyle := styles.FormButtonStyle
	if m.focused {
		titleStyle = styles.FormTitleStyle
		fieldStyle = styles.FormFieldFocusedStyle
		buttonStyle = styles.FormButtonFocusedStyle
	}

	field := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title()),
		m.input.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		fieldStyle.Render(field),
		" ",
		buttonStyle.Render(m.buttonLabel()),
	)
}

func (m *Model) title() string {
	if m.mode == ModeEdit {
		return "Edit"
	}
	return "New"
}

func (m *Model) buttonLabel() string {
	if m.mode == ModeEdit {
		return "Update"
	}
	return "Add Todo"
}

// Focus focuses the input and returns its cursor command.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus from the input.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// SetWidth sets the visible input width.
func (m *Model) SetWidth(w int) {
	m.input.SetWidth(max(w, 10))
}

func (m *Model) Focused() bool    { return m.focused }
func (m *Model) Value() string    { return m.input.Value() }
func (m *Model) Mode() Mode       { return m.mode }
func (m *Model) Bound() todo.Item { return m.bound }
