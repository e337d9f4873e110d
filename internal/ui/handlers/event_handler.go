package handlers

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// EventHandler turns domain events into a bounded, human readable log. The
// terminal host shows the latest line in its status bar and the whole log in
// the pager.
type EventHandler struct {
	mu      sync.Mutex
	lines   []string
	limit   int
	now     func() time.Time
	verbose bool
}

// NewEventHandler creates a handler keeping at most limit lines
func NewEventHandler(limit int, verbose bool) *EventHandler {
	if limit <= 0 {
		limit = 500
	}
	return &EventHandler{limit: limit, now: time.Now, verbose: verbose}
}

// Attach subscribes the handler to every event on bus
func (h *EventHandler) Attach(bus eventbus.EventBus) func() {
	return eventbus.SubscribeAll(bus, func(e eventbus.DomainEvent) {
		h.HandleEvent(e)
	})
}

// HandleEvent records an event and returns its log line. Focus requests and
// ref registrations are only recorded when verbose.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) string {
	var line string
	switch e := event.(type) {
	case eventbus.ItemsChangedEvent:
		if e.Op == domain.ItemsReset {
			line = fmt.Sprintf("items reset (%d selected)", e.Total)
		} else {
			line = fmt.Sprintf("item %s at %d (%d selected)", e.Op, e.Index, e.Total)
		}

	case eventbus.FocusMovedEvent:
		line = fmt.Sprintf("focus %s -> %s", e.From, e.To)

	case eventbus.FocusRequestedEvent:
		if !h.verbose {
			return ""
		}
		if e.Delivered {
			line = fmt.Sprintf("focus request %s delivered", e.Target)
		} else {
			line = fmt.Sprintf("focus request %s dropped (no element)", e.Target)
		}

	case eventbus.KeyResolvedEvent:
		line = fmt.Sprintf("key %q on %s -> %s", e.Key, e.Origin, e.Action)
		if !e.Handled {
			line += " (passed through)"
		}

	case eventbus.SnapshotChangedEvent:
		if !h.verbose {
			return ""
		}
		line = fmt.Sprintf("snapshot %s: %d selected, focus %s", shortID(e.Session), e.Total, e.Focus)

	case eventbus.RefRegisteredEvent:
		if !h.verbose {
			return ""
		}
		line = fmt.Sprintf("ref registered for %s", e.Role)

	case eventbus.ItemConfirmedEvent:
		line = fmt.Sprintf("dropdown confirmed %q", e.Label)

	case eventbus.ConfigLoadedEvent:
		line = fmt.Sprintf("config loaded from %s", e.Path)

	case eventbus.ConfigSavedEvent:
		line = fmt.Sprintf("config saved to %s", e.Path)

	default:
		line = string(event.Type())
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	stamped := fmt.Sprintf("%s  %s", h.now().Format("15:04:05.000"), line)
	h.lines = append(h.lines, stamped)
	if len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
	return line
}

// Last returns the most recent line without timestamp, or ""
func (h *EventHandler) Last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.lines) == 0 {
		return ""
	}
	last := h.lines[len(h.lines)-1]
	if _, msg, ok := strings.Cut(last, "  "); ok {
		return msg
	}
	return last
}

// Lines returns a copy of the recorded lines, oldest first
func (h *EventHandler) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// String renders the log for the pager
func (h *EventHandler) String() string {
	return strings.Join(h.Lines(), "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
