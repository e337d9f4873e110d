package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

type recordingFocuser struct {
	known   map[domain.FocusTarget]bool
	focused []domain.FocusTarget
}

func (r *recordingFocuser) Focus(target domain.FocusTarget) bool {
	if !r.known[target] {
		return false
	}
	r.focused = append(r.focused, target)
	return true
}

func newTracker(withTrigger bool) *Service {
	s := NewService(nil)
	s.SetTriggerFunction(func() bool { return withTrigger })
	return s
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.FocusTarget
		cmd    domain.Command
		length int
		want   domain.FocusTarget
	}{
		{"prev from trigger goes to last item", domain.TriggerFocus(), domain.CommandPrev, 3, domain.ItemFocus(2)},
		{"prev from trigger with empty list stays", domain.TriggerFocus(), domain.CommandPrev, 0, domain.TriggerFocus()},
		{"prev from item moves left", domain.ItemFocus(2), domain.CommandPrev, 3, domain.ItemFocus(1)},
		{"prev from first item clamps", domain.ItemFocus(0), domain.CommandPrev, 3, domain.ItemFocus(0)},
		{"next from item moves right", domain.ItemFocus(1), domain.CommandNext, 3, domain.ItemFocus(2)},
		{"next from last item goes to trigger", domain.ItemFocus(2), domain.CommandNext, 3, domain.TriggerFocus()},
		{"next from trigger stays", domain.TriggerFocus(), domain.CommandNext, 3, domain.TriggerFocus()},
		{"first", domain.TriggerFocus(), domain.CommandFirst, 3, domain.ItemFocus(0)},
		{"first on empty list stays", domain.TriggerFocus(), domain.CommandFirst, 0, domain.TriggerFocus()},
		{"last", domain.ItemFocus(0), domain.CommandLast, 3, domain.ItemFocus(2)},
		{"trigger", domain.ItemFocus(1), domain.CommandTrigger, 3, domain.TriggerFocus()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTracker(true)
			s.Sync(tt.from)

			got := s.Navigate(tt.cmd, tt.length)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestNavigateQueuesFocusOnlyOnChange(t *testing.T) {
	s := newTracker(true)
	s.Sync(domain.ItemFocus(0))

	s.Navigate(domain.CommandPrev, 3)
	_, pending := s.Pending()
	assert.False(t, pending, "clamped prev should not request focus again")

	s.Navigate(domain.CommandNext, 3)
	target, pending := s.Pending()
	require.True(t, pending)
	assert.Equal(t, domain.ItemFocus(1), target)
}

func TestSetSameTargetIsIdempotent(t *testing.T) {
	s := newTracker(true)
	f := &recordingFocuser{known: map[domain.FocusTarget]bool{domain.ItemFocus(1): true}}

	s.Set(domain.ItemFocus(1))
	s.Flush(f)
	s.Set(domain.ItemFocus(1))

	assert.False(t, s.Flush(f))
	assert.Equal(t, []domain.FocusTarget{domain.ItemFocus(1)}, f.focused)
}

func TestAfterRemovalOfFocusedItem(t *testing.T) {
	tests := []struct {
		name    string
		focused int
		removed int
		length  int
		want    domain.FocusTarget
	}{
		{"middle keeps slot", 1, 1, 2, domain.ItemFocus(1)},
		{"last falls back to new last", 2, 2, 2, domain.ItemFocus(1)},
		{"only item goes to trigger", 0, 0, 0, domain.TriggerFocus()},
		{"earlier removal follows item", 2, 0, 2, domain.ItemFocus(1)},
		{"later removal keeps target", 0, 2, 2, domain.ItemFocus(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTracker(true)
			s.Sync(domain.ItemFocus(tt.focused))

			s.AfterRemoval(tt.removed, tt.length)

			assert.Equal(t, tt.want, s.Current())
			assert.True(t, s.Current().ValidFor(tt.length))
		})
	}
}

func TestAfterRemovalOfFocusedSlotReissuesFocus(t *testing.T) {
	s := newTracker(true)
	s.Sync(domain.ItemFocus(1))

	s.AfterRemoval(1, 2)

	target, pending := s.Pending()
	require.True(t, pending)
	assert.Equal(t, domain.ItemFocus(1), target)
}

func TestAfterRemovalEmptyingListWithoutTrigger(t *testing.T) {
	s := newTracker(false)
	s.Sync(domain.ItemFocus(0))

	s.AfterRemoval(0, 0)

	assert.Equal(t, domain.NoFocus, s.Current())
	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestAfterRemovalLeavesTriggerAlone(t *testing.T) {
	s := newTracker(true)
	s.Sync(domain.TriggerFocus())

	s.AfterRemoval(2, 2)

	assert.Equal(t, domain.TriggerFocus(), s.Current())
	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestClamp(t *testing.T) {
	s := newTracker(true)
	s.Sync(domain.ItemFocus(4))

	s.Clamp(2)
	assert.Equal(t, domain.ItemFocus(1), s.Current())

	s.Clamp(0)
	assert.Equal(t, domain.TriggerFocus(), s.Current())
}

func TestResetClearsTargetAndPending(t *testing.T) {
	s := newTracker(true)
	s.Set(domain.ItemFocus(0))

	s.Reset()

	assert.Equal(t, domain.NoFocus, s.Current())
	assert.False(t, s.Flush(&recordingFocuser{}))
}

func TestFlushToMissingRefIsSilent(t *testing.T) {
	bus := eventbus.New()
	var requested []domain.FocusRequestedEvent
	bus.Subscribe(eventbus.EventFocusRequested, func(e eventbus.DomainEvent) {
		requested = append(requested, e.(domain.FocusRequestedEvent))
	})
	s := NewService(bus)
	s.Set(domain.ItemFocus(3))

	assert.True(t, s.Flush(&recordingFocuser{}))
	assert.False(t, s.Flush(&recordingFocuser{}))
	require.Len(t, requested, 1)
	assert.False(t, requested[0].Delivered)
}

func TestMovesPublishFocusMoved(t *testing.T) {
	bus := eventbus.New()
	var moves []domain.FocusMovedEvent
	bus.Subscribe(eventbus.EventFocusMoved, func(e eventbus.DomainEvent) {
		moves = append(moves, e.(domain.FocusMovedEvent))
	})
	s := NewService(bus)

	s.Sync(domain.TriggerFocus())
	s.Navigate(domain.CommandPrev, 2)
	s.Navigate(domain.CommandPrev, 2)
	s.Navigate(domain.CommandPrev, 2)

	assert.Equal(t, []domain.FocusMovedEvent{
		{From: domain.NoFocus, To: domain.TriggerFocus()},
		{From: domain.TriggerFocus(), To: domain.ItemFocus(1)},
		{From: domain.ItemFocus(1), To: domain.ItemFocus(0)},
	}, moves)
}
