package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

func TestEventHandlerRecordsBusEvents(t *testing.T) {
	bus := eventbus.New()
	h := NewEventHandler(10, false)
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	detach := h.Attach(bus)
	defer detach()

	bus.Publish(domain.ItemsChangedEvent{Op: domain.ItemsRemoved, Index: 1, Total: 2})
	bus.Publish(domain.FocusMovedEvent{From: domain.ItemFocus(1), To: domain.TriggerFocus()})
	bus.Publish(domain.FocusRequestedEvent{Target: domain.TriggerFocus()})

	lines := h.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "03:04:05.000  item remove at 1 (2 selected)", lines[0])
	assert.Equal(t, "focus item[1] -> trigger", h.Last())
}

func TestEventHandlerVerboseIncludesFocusRequests(t *testing.T) {
	h := NewEventHandler(10, true)

	line := h.HandleEvent(domain.FocusRequestedEvent{Target: domain.ItemFocus(0)})

	assert.Equal(t, "focus request item[0] dropped (no element)", line)
	assert.Len(t, h.Lines(), 1)
}

func TestEventHandlerIsBounded(t *testing.T) {
	h := NewEventHandler(3, false)
	for i := 0; i < 5; i++ {
		h.HandleEvent(domain.ItemsChangedEvent{Op: domain.ItemsAdded, Index: i, Total: i + 1})
	}

	lines := h.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "item add at 2")
	assert.Equal(t, "item add at 4 (5 selected)", h.Last())
}

func TestKeyResolvedLine(t *testing.T) {
	h := NewEventHandler(0, false)

	line := h.HandleEvent(domain.KeyResolvedEvent{Key: "x", Origin: domain.ItemRole(0), Action: "noop"})

	assert.Equal(t, `key "x" on selected-item[0] -> noop (passed through)`, line)
}
