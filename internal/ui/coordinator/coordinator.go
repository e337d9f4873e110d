package coordinator

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/handlers"
	"multiselect/internal/ui/input"
	"multiselect/internal/ui/input/types"
	"multiselect/internal/ui/services/focus"
	"multiselect/internal/ui/services/refs"
	"multiselect/internal/ui/services/selection"
)

// KeyContext describes where a key press came from
type KeyContext struct {
	// Origin is the element that received the key
	Origin domain.Role
	// PreventKeyAction keeps the engine inert for this key. Hosts usually
	// pass their dropdown's open flag.
	PreventKeyAction bool
	// CaretAtStart is true when an input trigger has no text before the
	// caret and no text selected.
	CaretAtStart bool
}

// KeyEvent is the unit passed through composed key handlers
type KeyEvent struct {
	Msg tea.KeyMsg
	Ctx KeyContext
}

// Coordinator is the multiple-selection interaction controller. It owns the
// selection store and the focus tracker, applies key policy decisions and
// issues focus commands to host elements once per interaction.
//
// A Coordinator is not safe for concurrent use; hosts deliver events one at
// a time.
type Coordinator[T any] struct {
	Selection *selection.Service[T]
	Focus     *focus.Service

	refs     *refs.Registry
	policy   types.Policy
	bus      eventbus.EventBus
	session  string
	trigger  domain.TriggerKind
	allowDup bool
	onChange func(ChangeEvent[T])
	debug    bool
}

// New creates a coordinator; it is the engine's initialize operation.
// Focus starts at none.
func New[T any](opts ...Option[T]) *Coordinator[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Coordinator[T]{
		Selection: selection.NewService(o.bus, o.equal, o.initial),
		Focus:     focus.NewService(o.bus),
		refs:      refs.New(),
		policy:    input.NewResolver(o.keymap),
		bus:       o.bus,
		session:   uuid.NewString(),
		trigger:   o.trigger,
		allowDup:  o.allowDup,
		onChange:  o.onChange,
		debug:     o.debug,
	}

	c.wireServices()
	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator[T]) wireServices() {
	// Removal emptying the list lands on the trigger only if one is mounted
	c.Focus.SetTriggerFunction(c.refs.HasTrigger)
}

// Session identifies this coordinator in published events
func (c *Coordinator[T]) Session() string {
	return c.session
}

// FocusTarget returns the element that currently owns focus
func (c *Coordinator[T]) FocusTarget() domain.FocusTarget {
	return c.Focus.Current()
}

// TriggerKind returns the kind of dropdown trigger this engine serves
func (c *Coordinator[T]) TriggerKind() domain.TriggerKind {
	return c.trigger
}

// HandleKeyDown runs the key policy for msg and applies the result. It
// returns true when the key was consumed and the host should suppress its
// default behaviour.
func (c *Coordinator[T]) HandleKeyDown(msg tea.KeyMsg, ctx KeyContext) bool {
	origin := ctx.Origin.Target()
	if !origin.ValidFor(c.Selection.Len()) {
		// Stale token from a previous render
		c.publishKey(msg, ctx, types.NoOpAction{Reason: "stale origin"}, false)
		return false
	}

	action := c.policy.Resolve(types.KeyInput{
		Msg:              msg,
		Focus:            origin,
		Trigger:          c.trigger,
		CaretAtStart:     ctx.CaretAtStart,
		PreventKeyAction: ctx.PreventKeyAction,
	})
	if types.IsNoOp(action) {
		c.publishKey(msg, ctx, action, false)
		return false
	}

	before := c.Focus.Current()
	c.Focus.Sync(origin)
	handled, change := c.apply(action, origin)
	c.publishKey(msg, ctx, action, handled)
	if !handled && before != c.Focus.Current() {
		change = ChangeFocus
	}
	c.commit(change)
	return handled
}

// apply performs an action resolved for a key originating at origin
func (c *Coordinator[T]) apply(action types.Action, origin domain.FocusTarget) (bool, ChangeType) {
	switch a := action.(type) {
	case types.NavigateAction:
		if c.Selection.Len() == 0 {
			return false, ChangeNone
		}
		c.Focus.Navigate(a.Command, c.Selection.Len())
		return true, ChangeFocus

	case types.RemoveActiveAction:
		if !origin.IsItem() {
			// Policy never emits this outside a token
			return false, ChangeNone
		}
		if _, err := c.Selection.RemoveAt(origin.Index); err != nil {
			log.Printf("coordinator: remove active item: %v", err)
			return false, ChangeNone
		}
		c.Focus.AfterRemoval(origin.Index, c.Selection.Len())
		return true, ChangeKeyRemoveActive

	case types.RemoveLastAction:
		n := c.Selection.Len()
		if n == 0 {
			return false, ChangeNone
		}
		if _, err := c.Selection.RemoveAt(n - 1); err != nil {
			log.Printf("coordinator: remove last item: %v", err)
			return false, ChangeNone
		}
		c.Focus.AfterRemoval(n-1, c.Selection.Len())
		return true, ChangeKeyRemoveLast
	}
	return false, ChangeNone
}

// HandleItemClick moves focus to the token at index
func (c *Coordinator[T]) HandleItemClick(index int) error {
	if index < 0 || index >= c.Selection.Len() {
		return fmt.Errorf("click selected item %d of %d: %w", index, c.Selection.Len(), domain.ErrOutOfRange)
	}
	target := domain.ItemFocus(index)
	if c.Focus.Current() == target {
		return nil
	}
	c.Focus.Set(target)
	c.commit(ChangeItemClick)
	return nil
}

// HandleTriggerClick records that the trigger took focus from a pointer
func (c *Coordinator[T]) HandleTriggerClick() {
	before := c.Focus.Current()
	c.Focus.Sync(domain.TriggerFocus())
	if before != c.Focus.Current() {
		c.commit(ChangeFocus)
	}
}

// AddSelectedItem appends item, typically from the dropdown's confirm
// event. Returns false when duplicates are disallowed and item is present.
func (c *Coordinator[T]) AddSelectedItem(item T) bool {
	if !c.allowDup && c.Selection.Contains(item) {
		if c.debug {
			log.Printf("coordinator: duplicate item ignored")
		}
		return false
	}
	c.Selection.Add(item)
	c.commit(ChangeItemAdded)
	return true
}

// RemoveSelectedItem removes the first item equal to item, keeping focus on
// a valid target. Returns false when item is not selected.
func (c *Coordinator[T]) RemoveSelectedItem(item T) bool {
	index, ok := c.Selection.RemoveValue(item)
	if !ok {
		return false
	}
	c.Focus.AfterRemoval(index, c.Selection.Len())
	c.commit(ChangeItemRemoved)
	return true
}

// RemoveSelectedItemAt removes the token at index
func (c *Coordinator[T]) RemoveSelectedItemAt(index int) error {
	if _, err := c.Selection.RemoveAt(index); err != nil {
		return err
	}
	c.Focus.AfterRemoval(index, c.Selection.Len())
	c.commit(ChangeItemRemoved)
	return nil
}

// Reset replaces the selection and clears focus
func (c *Coordinator[T]) Reset(items []T) {
	c.Selection.Reset(items)
	c.Focus.Reset()
	c.commit(ChangeReset)
}

// RegisterElementRef installs or replaces the element bound to role. Hosts
// call it on every render.
func (c *Coordinator[T]) RegisterElementRef(role domain.Role, ref refs.Ref) {
	c.refs.Register(role, ref)
	if c.debug {
		c.bus.Publish(domain.RefRegisteredEvent{Role: role})
	}
}

// GetSnapshot returns the current selection and focus
func (c *Coordinator[T]) GetSnapshot() Snapshot[T] {
	items := c.Selection.All()
	target := c.Focus.Current()
	tabStops := make([]bool, len(items))
	if target.IsItem() && target.ValidFor(len(items)) {
		tabStops[target.Index] = true
	}
	return Snapshot[T]{
		Items:    items,
		Focus:    target,
		TabStops: tabStops,
		Session:  c.session,
	}
}

// ComposeKeyHandlers places host handlers ahead of the engine's own key
// handling. A host handler returning handlers.Stop keeps the engine out.
func (c *Coordinator[T]) ComposeKeyHandlers(host ...handlers.Handler[KeyEvent]) handlers.Handler[KeyEvent] {
	chain := append(append([]handlers.Handler[KeyEvent]{}, host...), c.handleKeyEvent)
	return handlers.Compose(chain...)
}

// ComposeClickHandlers does the same for token clicks
func (c *Coordinator[T]) ComposeClickHandlers(host ...handlers.Handler[int]) handlers.Handler[int] {
	engine := func(i int) handlers.Result {
		if err := c.HandleItemClick(i); err != nil {
			return handlers.Continue
		}
		return handlers.Stop
	}
	chain := append(append([]handlers.Handler[int]{}, host...), engine)
	return handlers.Compose(chain...)
}

func (c *Coordinator[T]) handleKeyEvent(e KeyEvent) handlers.Result {
	if c.HandleKeyDown(e.Msg, e.Ctx) {
		return handlers.Stop
	}
	return handlers.Continue
}

// commit is the post-update step run once per interaction: drop element
// references past the end of the list, issue the pending focus command and
// notify observers.
func (c *Coordinator[T]) commit(change ChangeType) {
	n := c.Selection.Len()
	c.Focus.Clamp(n)
	c.refs.Prune(n)
	c.Focus.Flush(c.refs)

	if change == ChangeNone {
		return
	}
	target := c.Focus.Current()
	c.bus.Publish(domain.SnapshotChangedEvent{Session: c.session, Total: n, Focus: target})
	if c.onChange != nil {
		c.onChange(ChangeEvent[T]{Type: change, Items: c.Selection.All(), Focus: target})
	}
}

func (c *Coordinator[T]) publishKey(msg tea.KeyMsg, ctx KeyContext, action types.Action, handled bool) {
	c.bus.Publish(domain.KeyResolvedEvent{
		Key:     msg.String(),
		Origin:  ctx.Origin,
		Action:  action.Type(),
		Handled: handled,
	})
}

// checkInvariant reports a focus target pointing outside the list
func (c *Coordinator[T]) checkInvariant() error {
	target := c.Focus.Current()
	if !target.ValidFor(c.Selection.Len()) {
		return fmt.Errorf("focus %s invalid for %d items", target, c.Selection.Len())
	}
	return nil
}
