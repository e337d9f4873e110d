package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsChanged    EventType = "ItemsChanged"
	EventFocusMoved      EventType = "FocusMoved"
	EventFocusRequested  EventType = "FocusRequested"
	EventKeyResolved     EventType = "KeyResolved"
	EventSnapshotChanged EventType = "SnapshotChanged"
	EventRefRegistered   EventType = "RefRegistered"
	EventItemConfirmed   EventType = "ItemConfirmed"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsOp names a selection store mutation
type ItemsOp string

const (
	ItemsAdded   ItemsOp = "add"
	ItemsRemoved ItemsOp = "remove"
	ItemsReset   ItemsOp = "reset"
)

// ItemsChangedEvent is emitted after every selection store mutation
type ItemsChangedEvent struct {
	Op    ItemsOp
	Index int // index added or removed, -1 for reset
	Total int
}

func (e ItemsChangedEvent) Type() EventType { return EventItemsChanged }

// FocusMovedEvent is emitted when the logical focus target changes
type FocusMovedEvent struct {
	From FocusTarget
	To   FocusTarget
}

func (e FocusMovedEvent) Type() EventType { return EventFocusMoved }

// FocusRequestedEvent is emitted when a pending focus command is drained.
// Delivered is false when no element was registered for the target.
type FocusRequestedEvent struct {
	Target    FocusTarget
	Delivered bool
}

func (e FocusRequestedEvent) Type() EventType { return EventFocusRequested }

// KeyResolvedEvent records the action chosen for a key press
type KeyResolvedEvent struct {
	Key     string
	Origin  Role
	Action  string
	Handled bool
}

func (e KeyResolvedEvent) Type() EventType { return EventKeyResolved }

// SnapshotChangedEvent is emitted once per interaction that changed state
type SnapshotChangedEvent struct {
	Session string
	Total   int
	Focus   FocusTarget
}

func (e SnapshotChangedEvent) Type() EventType { return EventSnapshotChanged }

// RefRegisteredEvent is emitted when the host (re)binds an element reference
type RefRegisteredEvent struct {
	Role Role
}

func (e RefRegisteredEvent) Type() EventType { return EventRefRegistered }

// ItemConfirmedEvent is emitted by the host dropdown when it commits a choice
type ItemConfirmedEvent struct {
	Label string
}

func (e ItemConfirmedEvent) Type() EventType { return EventItemConfirmed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
