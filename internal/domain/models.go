package domain

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// EqualFunc reports whether two items denote the same selection
type EqualFunc[T any] func(a, b T) bool

// DefaultEqual compares with == when the dynamic type allows it and falls back
// to reflect.DeepEqual otherwise (slices, maps, funcs).
func DefaultEqual[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	// Value.Comparable looks through interface fields, so a struct holding a
	// slice behind an interface is never compared with ==
	va, vb := reflect.ValueOf(av), reflect.ValueOf(bv)
	if va.Type() == vb.Type() && va.Comparable() && vb.Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

// TriggerKind is the kind of control that opens the dropdown
type TriggerKind int

const (
	// TriggerInput is a text input (combobox)
	TriggerInput TriggerKind = iota
	// TriggerButton is a toggle button (select)
	TriggerButton
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerInput:
		return "input"
	case TriggerButton:
		return "button"
	default:
		return "unknown"
	}
}

// ParseTriggerKind maps "input"/"combobox" and "button"/"select" to a TriggerKind
func ParseTriggerKind(s string) (TriggerKind, error) {
	switch s {
	case "input", "combobox", "":
		return TriggerInput, nil
	case "button", "select":
		return TriggerButton, nil
	default:
		return TriggerInput, fmt.Errorf("unknown trigger kind %q", s)
	}
}

// FocusKind tags a FocusTarget
type FocusKind int

const (
	FocusNone FocusKind = iota
	FocusTrigger
	FocusItem
)

// FocusTarget is the logical element owning keyboard focus.
// Index is only meaningful when Kind is FocusItem.
type FocusTarget struct {
	Kind  FocusKind
	Index int
}

// NoFocus is the initial target
var NoFocus = FocusTarget{Kind: FocusNone, Index: -1}

// TriggerFocus targets the dropdown trigger
func TriggerFocus() FocusTarget {
	return FocusTarget{Kind: FocusTrigger, Index: -1}
}

// ItemFocus targets the selected item at index
func ItemFocus(index int) FocusTarget {
	return FocusTarget{Kind: FocusItem, Index: index}
}

func (f FocusTarget) IsNone() bool    { return f.Kind == FocusNone }
func (f FocusTarget) IsTrigger() bool { return f.Kind == FocusTrigger }
func (f FocusTarget) IsItem() bool    { return f.Kind == FocusItem }

// ValidFor reports whether the target can exist for a list of the given length
func (f FocusTarget) ValidFor(length int) bool {
	if f.Kind != FocusItem {
		return true
	}
	return f.Index >= 0 && f.Index < length
}

// Role returns the element role bound to this target. None has no role.
func (f FocusTarget) Role() (Role, bool) {
	switch f.Kind {
	case FocusTrigger:
		return TriggerRole(), true
	case FocusItem:
		return ItemRole(f.Index), true
	default:
		return Role{}, false
	}
}

func (f FocusTarget) String() string {
	switch f.Kind {
	case FocusTrigger:
		return "trigger"
	case FocusItem:
		return fmt.Sprintf("item[%d]", f.Index)
	default:
		return "none"
	}
}

type roleKind int

const (
	roleNone roleKind = iota
	roleTrigger
	roleItem
)

// Role identifies a host element that can receive focus. The zero value
// names no element.
type Role struct {
	kind  roleKind
	index int
}

// TriggerRole is the dropdown trigger's role
func TriggerRole() Role {
	return Role{kind: roleTrigger, index: -1}
}

// ItemRole is the role of the selected-item token at index
func ItemRole(index int) Role {
	return Role{kind: roleItem, index: index}
}

func (r Role) IsNone() bool    { return r.kind == roleNone }
func (r Role) IsTrigger() bool { return r.kind == roleTrigger }
func (r Role) IsItem() bool    { return r.kind == roleItem }

// Index returns the token index, -1 for the trigger and for no role
func (r Role) Index() int {
	if r.kind != roleItem {
		return -1
	}
	return r.index
}

// Target is the focus target addressed by this role
func (r Role) Target() FocusTarget {
	switch r.kind {
	case roleTrigger:
		return TriggerFocus()
	case roleItem:
		return ItemFocus(r.index)
	default:
		return NoFocus
	}
}

func (r Role) String() string {
	switch r.kind {
	case roleTrigger:
		return "trigger"
	case roleItem:
		return fmt.Sprintf("selected-item[%d]", r.index)
	default:
		return "none"
	}
}

// ParseRole accepts "trigger" (or empty) and "item:N" with N >= 0
func ParseRole(s string) (Role, error) {
	if s == "trigger" || s == "" {
		return TriggerRole(), nil
	}
	rest, ok := strings.CutPrefix(s, "item:")
	if !ok {
		return Role{}, fmt.Errorf("invalid role %q: want trigger or item:N", s)
	}
	i, err := strconv.Atoi(rest)
	if err != nil {
		return Role{}, fmt.Errorf("invalid role %q: %w", s, err)
	}
	if i < 0 {
		return Role{}, fmt.Errorf("invalid role %q: negative index", s)
	}
	return ItemRole(i), nil
}

// Command is a focus navigation command
type Command string

const (
	CommandPrev    Command = "prev"
	CommandNext    Command = "next"
	CommandFirst   Command = "first"
	CommandLast    Command = "last"
	CommandTrigger Command = "trigger"
)
