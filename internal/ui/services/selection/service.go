package selection

import (
	"fmt"
	"slices"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// Service is the ordered store of selected items. It knows nothing about
// focus; callers re-clamp focus after every mutation.
type Service[T any] struct {
	state *State[T]
	bus   eventbus.EventBus
	equal domain.EqualFunc[T]
}

// NewService creates a store seeded with a copy of initial
func NewService[T any](bus eventbus.EventBus, equal domain.EqualFunc[T], initial []T) *Service[T] {
	if bus == nil {
		bus = eventbus.Nop()
	}
	if equal == nil {
		equal = domain.DefaultEqual[T]
	}
	return &Service[T]{
		state: &State[T]{Items: slices.Clone(initial)},
		bus:   bus,
		equal: equal,
	}
}

// Add appends item and returns its index. Duplicates are permitted.
func (s *Service[T]) Add(item T) int {
	s.state.Items = append(s.state.Items, item)
	index := len(s.state.Items) - 1

	s.bus.Publish(domain.ItemsChangedEvent{
		Op:    domain.ItemsAdded,
		Index: index,
		Total: len(s.state.Items),
	})
	return index
}

// RemoveAt removes the item at index
func (s *Service[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(s.state.Items) {
		return zero, fmt.Errorf("remove selected item %d of %d: %w", index, len(s.state.Items), domain.ErrOutOfRange)
	}

	removed := s.state.Items[index]
	s.state.Items = slices.Delete(s.state.Items, index, index+1)

	s.bus.Publish(domain.ItemsChangedEvent{
		Op:    domain.ItemsRemoved,
		Index: index,
		Total: len(s.state.Items),
	})
	return removed, nil
}

// RemoveValue removes the first item equal to item and returns the index it
// occupied. Returns -1, false when absent.
func (s *Service[T]) RemoveValue(item T) (int, bool) {
	index := s.IndexOf(item)
	if index < 0 {
		return -1, false
	}
	if _, err := s.RemoveAt(index); err != nil {
		return -1, false
	}
	return index, true
}

// Reset replaces the whole list
func (s *Service[T]) Reset(items []T) {
	s.state.Items = slices.Clone(items)

	s.bus.Publish(domain.ItemsChangedEvent{
		Op:    domain.ItemsReset,
		Index: -1,
		Total: len(s.state.Items),
	})
}

// All returns a copy of the selected items in order
func (s *Service[T]) All() []T {
	return slices.Clone(s.state.Items)
}

// Len returns the number of selected items
func (s *Service[T]) Len() int {
	return len(s.state.Items)
}

// At returns the item at index
func (s *Service[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(s.state.Items) {
		return zero, fmt.Errorf("selected item %d of %d: %w", index, len(s.state.Items), domain.ErrOutOfRange)
	}
	return s.state.Items[index], nil
}

// IndexOf returns the index of the first item equal to item, or -1
func (s *Service[T]) IndexOf(item T) int {
	return slices.IndexFunc(s.state.Items, func(existing T) bool {
		return s.equal(existing, item)
	})
}

// Contains reports whether item is selected
func (s *Service[T]) Contains(item T) bool {
	return s.IndexOf(item) >= 0
}
