package coordinator

import (
	"multiselect/internal/domain"
)

// Snapshot is a read-only view of the selection and focus
type Snapshot[T any] struct {
	Items []T
	Focus domain.FocusTarget
	// TabStops is true only at the focused item, so a single token sits in
	// the host's tab order at a time.
	TabStops []bool
	Session  string
}

// Len returns the number of selected items
func (s Snapshot[T]) Len() int {
	return len(s.Items)
}

// ChangeType names what caused a change notification
type ChangeType string

const (
	ChangeNone            ChangeType = ""
	ChangeItemAdded       ChangeType = "item_added"
	ChangeItemRemoved     ChangeType = "item_removed"
	ChangeKeyRemoveActive ChangeType = "key_remove_active"
	ChangeKeyRemoveLast   ChangeType = "key_remove_last"
	ChangeFocus           ChangeType = "focus_changed"
	ChangeItemClick       ChangeType = "item_click"
	ChangeReset           ChangeType = "reset"
)

// ChangeEvent is passed to the WithOnChange callback after every interaction
// that changed state.
type ChangeEvent[T any] struct {
	Type  ChangeType
	Items []T
	Focus domain.FocusTarget
}
