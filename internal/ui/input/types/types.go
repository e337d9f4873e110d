package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/domain"
)

// Action represents a decision the controller should apply
type Action interface {
	Type() string
}

// KeyInput is everything the key policy looks at for one key press
type KeyInput struct {
	Msg     tea.KeyMsg
	Focus   domain.FocusTarget // focus context the key originated from
	Trigger domain.TriggerKind
	// CaretAtStart is true when the input trigger has no text before the
	// caret and no text selected. Ignored for button triggers.
	CaretAtStart bool
	// PreventKeyAction makes the engine inert for this key, typically while
	// the dropdown is open.
	PreventKeyAction bool
}

// Policy maps a key press to an Action
type Policy interface {
	Resolve(in KeyInput) Action
}
