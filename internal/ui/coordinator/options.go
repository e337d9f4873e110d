package coordinator

import (
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/input/types"
)

type options[T any] struct {
	equal    domain.EqualFunc[T]
	initial  []T
	bus      eventbus.EventBus
	keymap   types.Keymap
	allowDup bool
	trigger  domain.TriggerKind
	onChange func(ChangeEvent[T])
	debug    bool
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		equal:    domain.DefaultEqual[T],
		bus:      eventbus.Nop(),
		keymap:   types.DefaultKeymap(),
		allowDup: true,
		trigger:  domain.TriggerInput,
	}
}

// Option configures a Coordinator
type Option[T any] func(*options[T])

// WithEqual sets the equality used by RemoveSelectedItem and the duplicate
// guard.
func WithEqual[T any](equal domain.EqualFunc[T]) Option[T] {
	return func(o *options[T]) {
		if equal != nil {
			o.equal = equal
		}
	}
}

// WithInitialItems seeds the selection
func WithInitialItems[T any](items []T) Option[T] {
	return func(o *options[T]) {
		o.initial = items
	}
}

// WithBus publishes engine events on bus
func WithBus[T any](bus eventbus.EventBus) Option[T] {
	return func(o *options[T]) {
		if bus != nil {
			o.bus = bus
		}
	}
}

// WithKeymap replaces the default key bindings
func WithKeymap[T any](keymap types.Keymap) Option[T] {
	return func(o *options[T]) {
		o.keymap = keymap
	}
}

// WithAllowDuplicates controls whether AddSelectedItem accepts an item that
// is already selected. Duplicates are allowed by default.
func WithAllowDuplicates[T any](allow bool) Option[T] {
	return func(o *options[T]) {
		o.allowDup = allow
	}
}

// WithTriggerKind sets the kind of trigger the dropdown uses
func WithTriggerKind[T any](kind domain.TriggerKind) Option[T] {
	return func(o *options[T]) {
		o.trigger = kind
	}
}

// WithOnChange registers a callback run after each state change
func WithOnChange[T any](fn func(ChangeEvent[T])) Option[T] {
	return func(o *options[T]) {
		o.onChange = fn
	}
}

// WithDebug enables debug logging and ref registration events
func WithDebug[T any](debug bool) Option[T] {
	return func(o *options[T]) {
		o.debug = debug
	}
}
