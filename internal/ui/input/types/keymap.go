package types

import "github.com/charmbracelet/bubbles/key"

// Keymap holds the keys the engine claims. A disabled binding never matches.
type Keymap struct {
	Prev       key.Binding // focus the previous token
	Next       key.Binding // focus the next token, then the trigger
	Remove     key.Binding // remove the focused token
	RemoveLast key.Binding // remove the last token from the trigger
}

// DefaultKeymap returns the standard bindings
func DefaultKeymap() Keymap {
	return Keymap{
		Prev:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous item")),
		Next:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next item")),
		Remove:     key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "remove item")),
		RemoveLast: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "remove last item")),
	}
}

// NewKeymap builds a keymap from key names, falling back to the defaults for
// empty lists.
func NewKeymap(prev, next, remove, removeLast []string) Keymap {
	km := DefaultKeymap()
	if len(prev) > 0 {
		km.Prev.SetKeys(prev...)
	}
	if len(next) > 0 {
		km.Next.SetKeys(next...)
	}
	if len(remove) > 0 {
		km.Remove.SetKeys(remove...)
	}
	if len(removeLast) > 0 {
		km.RemoveLast.SetKeys(removeLast...)
	}
	return km
}

// ShortHelp implements help.KeyMap
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Remove, k.RemoveLast}
}

// FullHelp implements help.KeyMap
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Remove, k.RemoveLast}}
}
