// Package tui implements the interactive to-do list.
package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/dayplan/internal/core/config"
	"github.com/colonyops/dayplan/internal/core/logging"
	"github.com/colonyops/dayplan/internal/core/todo"
	"github.com/colonyops/dayplan/internal/tui/components/editor"
	"github.com/colonyops/dayplan/internal/tui/components/rows"
)

// Deps contains the dependencies required to create a TUI Model.
type Deps struct {
	Config *config.Config
	List   *todo.List
	Build  BuildInfo
}

// Model is the root model. It owns the list and composes the add form with
// the row list.
type Model struct {
	heading string
	build   BuildInfo
	list    *todo.List
	create  *editor.Model
	rows    *rows.Model
	keys    keyMap
	log     zerolog.Logger

	formFocused bool
	showHelp    bool
	width       int
	height      int
	quitting    bool
}

// New creates a new TUI model. The add form starts focused.
func New(deps Deps) Model {
	heading := config.DefaultHeading
	if deps.Config != nil && deps.Config.Heading != "" {
		heading = deps.Config.Heading
	}

	list := deps.List
	if list == nil {
		list = todo.NewList()
	}

	m := Model{
		heading:     heading,
		build:       deps.Build,
		list:        list,
		rows:        rows.New(list),
		keys:        defaultKeyMap(),
		log:         logging.Component("tui"),
		formFocused: true,
	}
	m.create = editor.NewCreate(m.add)
	return m
}

func (m Model) add(item todo.Item) {
	if added, ok := m.list.Add(item.Text); ok {
		m.log.Info().Stringer("id", added.ID).Msg("todo added")
	}
}

// Init focuses the add form.
func (m Model) Init() tea.Cmd {
	return m.create.Focus()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.create.SetWidth(msg.Width - 16)
		m.rows.SetWidth(msg.Width - 4)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and similar messages go to whichever editor is live.
	if m.rows.Cursor().IsEditing() {
		var cmd tea.Cmd
		m.rows, cmd = m.rows.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.create, cmd = m.create.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.LeaveForm) {
			m.showHelp = false
		}
		return m, nil
	}

	switch m.Focus() {
	case FocusEditing:
		var cmd tea.Cmd
		m.rows, cmd = m.rows.Update(msg)
		return m, cmd

	case FocusCreating:
		if key.Matches(msg, m.keys.SwitchFocus, m.keys.LeaveForm) {
			return m.focusList()
		}
		var cmd tea.Cmd
		m.create, cmd = m.create.Update(msg)
		return m, cmd

	default:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.SwitchFocus, m.keys.NewItem):
			return m.focusForm()
		}
		var cmd tea.Cmd
		m.rows, cmd = m.rows.Update(msg)
		return m, cmd
	}
}

func (m Model) focusList() (tea.Model, tea.Cmd) {
	m.formFocused = false
	m.create.Blur()
	m.rows.Focus()
	return m, nil
}

func (m Model) focusForm() (tea.Model, tea.Cmd) {
	m.formFocused = true
	m.rows.Blur()
	return m, m.create.Focus()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.log.Debug().Int("items", m.list.Len()).Msg("tui stopping")
	return m, tea.Quit
}

// Focus reports which of the three UI states is active.
func (m Model) Focus() Focus {
	switch {
	case m.rows.Cursor().IsEditing():
		return FocusEditing
	case m.formFocused:
		return FocusCreating
	default:
		return FocusBrowsing
	}
}

// Items returns the current list contents.
func (m Model) Items() []todo.Item {
	return m.list.Items()
}

// HelpVisible reports whether the help overlay is open.
func (m Model) HelpVisible() bool {
	return m.showHelp
}
