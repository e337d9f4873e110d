package types

import "multiselect/internal/domain"

// Navigation actions
type NavigateAction struct {
	Command domain.Command
}

func (a NavigateAction) Type() string { return "navigate:" + string(a.Command) }

// Removal actions

// RemoveActiveAction removes the focused selected item. Only emitted while
// focus is on a selected item.
type RemoveActiveAction struct{}

func (a RemoveActiveAction) Type() string { return "remove_active" }

// RemoveLastAction removes the final selected item
type RemoveLastAction struct{}

func (a RemoveLastAction) Type() string { return "remove_last" }

// NoOpAction intentionally does nothing
type NoOpAction struct {
	Reason string
}

func (a NoOpAction) Type() string { return "noop" }

// IsNoOp reports whether a is a NoOpAction
func IsNoOp(a Action) bool {
	_, ok := a.(NoOpAction)
	return ok
}
