package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rammon/internal/action"
)

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Quit           key.Binding
	Up             key.Binding
	Down           key.Binding
	Confirm        key.Binding
	Hotkey         key.Binding
	CycleAction    key.Binding
	CycleThreshold key.Binding
	Help           key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run selected"),
		),
		Hotkey: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "run action"),
		),
		CycleAction: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "auto action"),
		),
		CycleThreshold: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "auto threshold"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Hotkey, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Confirm, k.Hotkey},
		{k.CycleAction, k.CycleThreshold, k.Help, k.Quit},
	}
}

// hotkeyAction resolves a key message to the action bound to its digit.
func hotkeyAction(msg tea.KeyMsg) (action.Action, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	return action.FromKey(msg.Runes[0])
}
