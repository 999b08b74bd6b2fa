package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/dayplan/internal/tui/components"
	"github.com/colonyops/dayplan/internal/tui/components/rows"
)

type keyMap struct {
	SwitchFocus key.Binding
	NewItem     key.Binding
	LeaveForm   key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	Rows        rows.KeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch form/list")),
		NewItem:     key.NewBinding(key.WithKeys("n", "a", "i"), key.WithHelp("n", "new todo")),
		LeaveForm:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Rows:        rows.DefaultKeyMap(),
	}
}

func (k keyMap) helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{
			Title:    "Add form",
			Bindings: []key.Binding{submitHelp, k.SwitchFocus, k.LeaveForm},
		},
		{
			Title:    "List",
			Bindings: []key.Binding{k.Rows.Up, k.Rows.Down, k.Rows.Toggle, k.Rows.Delete, k.Rows.Edit, k.Rows.Cancel, k.NewItem},
		},
		{
			Title:    "General",
			Bindings: []key.Binding{k.Help, k.Quit, k.ForceQuit},
		},
	}
}

// submitHelp documents enter in forms; the editor owns the actual binding.
var submitHelp = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
