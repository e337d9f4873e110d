package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"multiselect/internal/ui/input/types"
)

// keyMap holds the host's own bindings next to the engine's
type keyMap struct {
	engine types.Keymap

	Quit    key.Binding
	Help    key.Binding
	Log     key.Binding
	Pager   key.Binding
	Tab     key.Binding
	Open    key.Binding
	Confirm key.Binding
	Close   key.Binding
}

func newKeyMap(engine types.Keymap) keyMap {
	return keyMap{
		engine:  engine,
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Help:    key.NewBinding(key.WithKeys("ctrl+g", "f1"), key.WithHelp("ctrl+g", "toggle help")),
		Log:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "event log")),
		Pager:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "help and log in pager")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "back to input")),
		Open:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "open dropdown")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add highlighted")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close dropdown")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.engine.ShortHelp(), k.Help, k.Quit)
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.engine.FullHelp(),
		[]key.Binding{k.Open, k.Confirm, k.Close, k.Tab},
		[]key.Binding{k.Help, k.Log, k.Pager, k.Quit},
	)
}
