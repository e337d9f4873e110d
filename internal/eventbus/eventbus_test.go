package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
)

func TestPublishDeliversSynchronouslyInOrder(t *testing.T) {
	b := New()
	var got []int
	b.Subscribe(EventItemsChanged, func(e DomainEvent) {
		got = append(got, e.(domain.ItemsChangedEvent).Index)
	})

	b.Publish(domain.ItemsChangedEvent{Op: domain.ItemsAdded, Index: 0, Total: 1})
	b.Publish(domain.ItemsChangedEvent{Op: domain.ItemsAdded, Index: 1, Total: 2})

	require.Equal(t, []int{0, 1}, got)
}

func TestNestedPublishIsQueuedAfterCurrentEvent(t *testing.T) {
	b := New()
	var order []string
	b.Subscribe(EventItemsChanged, func(e DomainEvent) {
		order = append(order, "items")
		b.Publish(domain.FocusMovedEvent{From: domain.NoFocus, To: domain.TriggerFocus()})
	})
	b.Subscribe(EventItemsChanged, func(e DomainEvent) {
		order = append(order, "items-2")
	})
	b.Subscribe(EventFocusMoved, func(e DomainEvent) {
		order = append(order, "focus")
	})

	b.Publish(domain.ItemsChangedEvent{Op: domain.ItemsReset, Index: -1})

	assert.Equal(t, []string{"items", "items-2", "focus"}, order)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	unsub := b.Subscribe(EventFocusMoved, func(DomainEvent) { calls++ })

	b.Publish(domain.FocusMovedEvent{})
	unsub()
	b.Publish(domain.FocusMovedEvent{})

	assert.Equal(t, 1, calls)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New()
	delivered := false
	b.Subscribe(EventFocusMoved, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventFocusMoved, func(DomainEvent) { delivered = true })

	require.NotPanics(t, func() { b.Publish(domain.FocusMovedEvent{}) })
	assert.True(t, delivered)
}

func TestSubscribeAll(t *testing.T) {
	b := New()
	var types []EventType
	unsub := SubscribeAll(b, func(e DomainEvent) { types = append(types, e.Type()) })

	b.Publish(domain.KeyResolvedEvent{Key: "left"})
	b.Publish(domain.SnapshotChangedEvent{})
	unsub()
	b.Publish(domain.SnapshotChangedEvent{})

	assert.Equal(t, []EventType{EventKeyResolved, EventSnapshotChanged}, types)
}
