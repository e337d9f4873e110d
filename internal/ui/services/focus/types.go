package focus

import "multiselect/internal/domain"

// State holds the focus target and the focus command waiting to be issued
type State struct {
	Target     domain.FocusTarget
	Pending    domain.FocusTarget
	HasPending bool
}

// Focuser issues an imperative focus request for a target.
// It returns false when no element is bound to the target.
type Focuser interface {
	Focus(target domain.FocusTarget) bool
}
