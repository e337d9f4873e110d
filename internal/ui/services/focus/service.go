package focus

import (
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// Service tracks which element owns keyboard focus among the selected-item
// tokens and the dropdown trigger. Every change of target queues a focus
// command; Flush issues it against the element registry.
type Service struct {
	state     *State
	bus       eventbus.EventBus
	triggerFn func() bool // reports whether a trigger element is registered
}

// NewService creates a tracker with no focus
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Service{
		state: &State{Target: domain.NoFocus},
		bus:   bus,
	}
}

// SetTriggerFunction sets the function reporting trigger registration
func (s *Service) SetTriggerFunction(fn func() bool) {
	s.triggerFn = fn
}

// Current returns the current focus target
func (s *Service) Current() domain.FocusTarget {
	return s.state.Target
}

// Pending returns the focus command waiting to be flushed
func (s *Service) Pending() (domain.FocusTarget, bool) {
	return s.state.Pending, s.state.HasPending
}

// Navigate moves focus according to cmd for a list of the given length and
// returns the new target.
func (s *Service) Navigate(cmd domain.Command, length int) domain.FocusTarget {
	current := s.state.Target
	next := current

	switch cmd {
	case domain.CommandPrev:
		switch {
		case current.IsItem() && current.Index > 0:
			next = domain.ItemFocus(current.Index - 1)
		case current.IsItem():
			next = domain.ItemFocus(0)
		case length > 0:
			next = domain.ItemFocus(length - 1)
		}
	case domain.CommandNext:
		if current.IsItem() {
			if current.Index+1 < length {
				next = domain.ItemFocus(current.Index + 1)
			} else {
				next = domain.TriggerFocus()
			}
		}
	case domain.CommandFirst:
		if length > 0 {
			next = domain.ItemFocus(0)
		}
	case domain.CommandLast:
		if length > 0 {
			next = domain.ItemFocus(length - 1)
		}
	case domain.CommandTrigger:
		next = domain.TriggerFocus()
	}

	s.move(next, false)
	return s.state.Target
}

// Set moves focus to target and queues a focus command. Callers validate the
// index.
func (s *Service) Set(target domain.FocusTarget) {
	s.move(target, false)
}

// Sync records that target already has focus on the host side (the event
// originated there). No focus command is queued.
func (s *Service) Sync(target domain.FocusTarget) {
	if s.state.Target == target {
		return
	}
	from := s.state.Target
	s.state.Target = target
	s.bus.Publish(domain.FocusMovedEvent{From: from, To: target})
}

// AfterRemoval recomputes the target after the item at removed was taken out
// of the list, length being the new list length.
func (s *Service) AfterRemoval(removed, length int) {
	current := s.state.Target

	if length == 0 {
		s.move(s.emptyTarget(), current.IsItem())
		return
	}
	if !current.IsItem() {
		return
	}

	switch {
	case current.Index == removed:
		// The slot now holds the next item, or fell off the end
		index := removed
		if index >= length {
			index = length - 1
		}
		s.move(domain.ItemFocus(index), true)
	case current.Index > removed:
		s.move(domain.ItemFocus(current.Index-1), true)
	}
}

// Clamp re-validates an item target against length
func (s *Service) Clamp(length int) {
	current := s.state.Target
	if !current.IsItem() || current.ValidFor(length) {
		return
	}
	if length == 0 {
		s.move(s.emptyTarget(), true)
		return
	}
	s.move(domain.ItemFocus(length-1), true)
}

// Reset clears focus and drops any pending command
func (s *Service) Reset() {
	from := s.state.Target
	s.state.Target = domain.NoFocus
	s.state.HasPending = false
	if from != domain.NoFocus {
		s.bus.Publish(domain.FocusMovedEvent{From: from, To: domain.NoFocus})
	}
}

// Flush issues the pending focus command, if any, and clears it. It returns
// whether a command was pending.
func (s *Service) Flush(f Focuser) bool {
	if !s.state.HasPending {
		return false
	}
	target := s.state.Pending
	s.state.HasPending = false

	delivered := false
	if f != nil {
		delivered = f.Focus(target)
	}
	s.bus.Publish(domain.FocusRequestedEvent{Target: target, Delivered: delivered})
	return true
}

// move changes the target. A command is queued when the target changes, or
// when force is set because the element behind the same target was replaced.
func (s *Service) move(target domain.FocusTarget, force bool) {
	from := s.state.Target
	if from == target && !force {
		return
	}
	s.state.Target = target
	if !target.IsNone() {
		s.state.Pending = target
		s.state.HasPending = true
	} else {
		s.state.HasPending = false
	}
	if from != target {
		s.bus.Publish(domain.FocusMovedEvent{From: from, To: target})
	}
}

func (s *Service) emptyTarget() domain.FocusTarget {
	if s.triggerFn != nil && s.triggerFn() {
		return domain.TriggerFocus()
	}
	return domain.NoFocus
}
