package input

import (
	"multiselect/internal/ui/input/modes"
	"multiselect/internal/ui/input/types"
)

// ModeHandler resolves keys for one focus context
type ModeHandler interface {
	// HandleKey returns the action for a key and whether the key is recognized
	HandleKey(in types.KeyInput) (types.Action, bool)

	// Name returns the mode name for logging
	Name() string
}

// Resolver is the key policy: it picks the mode handler for the focus
// context and turns unrecognized or prevented keys into a NoOpAction.
type Resolver struct {
	keys    *types.Keymap
	token   ModeHandler
	trigger ModeHandler
}

// NewResolver creates a resolver over keys
func NewResolver(keys types.Keymap) *Resolver {
	km := keys
	return &Resolver{
		keys:    &km,
		token:   modes.NewTokenMode(&km),
		trigger: modes.NewTriggerMode(&km),
	}
}

// Keymap returns the bindings in use
func (r *Resolver) Keymap() types.Keymap {
	return *r.keys
}

// Resolve maps a key press to an action
func (r *Resolver) Resolve(in types.KeyInput) types.Action {
	if in.PreventKeyAction {
		return types.NoOpAction{Reason: "prevented"}
	}

	var handler ModeHandler
	switch {
	case in.Focus.IsItem():
		handler = r.token
	case in.Focus.IsTrigger():
		handler = r.trigger
	default:
		return types.NoOpAction{Reason: "no focus"}
	}

	action, ok := handler.HandleKey(in)
	if !ok {
		return types.NoOpAction{Reason: "unrecognized key in " + handler.Name() + " mode"}
	}
	return action
}

var _ types.Policy = (*Resolver)(nil)
