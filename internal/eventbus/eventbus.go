package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"multiselect/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventItemsChanged    = domain.EventItemsChanged
	EventFocusMoved      = domain.EventFocusMoved
	EventFocusRequested  = domain.EventFocusRequested
	EventKeyResolved     = domain.EventKeyResolved
	EventSnapshotChanged = domain.EventSnapshotChanged
	EventRefRegistered   = domain.EventRefRegistered
	EventItemConfirmed   = domain.EventItemConfirmed
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
)

// Re-export domain event types
type ItemsChangedEvent = domain.ItemsChangedEvent
type FocusMovedEvent = domain.FocusMovedEvent
type FocusRequestedEvent = domain.FocusRequestedEvent
type KeyResolvedEvent = domain.KeyResolvedEvent
type SnapshotChangedEvent = domain.SnapshotChangedEvent
type RefRegisteredEvent = domain.RefRegisteredEvent
type ItemConfirmedEvent = domain.ItemConfirmedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// AllEventTypes lists every event type the engine and host publish
var AllEventTypes = []EventType{
	EventItemsChanged,
	EventFocusMoved,
	EventFocusRequested,
	EventKeyResolved,
	EventSnapshotChanged,
	EventRefRegistered,
	EventItemConfirmed,
	EventConfigLoaded,
	EventConfigSaved,
}

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously on the publishing goroutine, in publish
// order. Handlers may publish; nested events are queued and delivered after
// the current one so ordering stays FIFO.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64

	queueMu    sync.Mutex
	queue      []DomainEvent
	delivering bool

	verbose bool
}

// New creates a new event bus
func New() EventBus {
	return &bus{handlers: make(map[EventType][]subscription)}
}

// NewVerbose creates an event bus that logs every published event
func NewVerbose() EventBus {
	b := New().(*bus)
	b.verbose = true
	return b
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	if b.verbose {
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.queueMu.Lock()
	b.queue = append(b.queue, event)
	if b.delivering {
		// An outer Publish is draining the queue
		b.queueMu.Unlock()
		return
	}
	b.delivering = true
	b.queueMu.Unlock()

	for {
		b.queueMu.Lock()
		if len(b.queue) == 0 {
			b.delivering = false
			b.queueMu.Unlock()
			return
		}
		next := b.queue[0]
		b.queue = b.queue[1:]
		b.queueMu.Unlock()

		b.dispatch(next)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

func (b *bus) dispatch(event DomainEvent) {
	// Copy so handlers can subscribe/unsubscribe while we iterate
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			s.handler(event)
		}()
	}
}

// SubscribeAll subscribes one handler to every known event type
func SubscribeAll(b EventBus, handler EventHandler) func() {
	unsubs := make([]func(), 0, len(AllEventTypes))
	for _, t := range AllEventTypes {
		unsubs = append(unsubs, b.Subscribe(t, handler))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// nopBus drops everything
type nopBus struct{}

// Nop returns a bus that discards events
func Nop() EventBus { return nopBus{} }

func (nopBus) Publish(DomainEvent) {}

func (nopBus) Subscribe(EventType, EventHandler) func() { return func() {} }
