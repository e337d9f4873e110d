package coordinator

import (
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/domain"
	"multiselect/internal/ui/handlers"
)

// ItemProps are the bindings a host attaches to the token at Index
type ItemProps struct {
	Index     int
	Role      domain.Role
	TabStop   bool
	Focused   bool
	OnClick   func() error
	OnKeyDown func(msg tea.KeyMsg, preventKeyAction bool) bool
}

// TriggerProps are the bindings a host attaches to the dropdown trigger
type TriggerProps struct {
	Role    domain.Role
	Focused bool
	// OnKeyDown takes the caret state because only the host's text input
	// knows it.
	OnKeyDown func(msg tea.KeyMsg, preventKeyAction, caretAtStart bool) bool
	OnClick   func()
}

// ItemProps returns the bindings for the token at index. Host handlers run
// before the engine's key handling and may stop it.
func (c *Coordinator[T]) ItemProps(index int, host ...handlers.Handler[KeyEvent]) ItemProps {
	target := c.Focus.Current()
	focused := target.IsItem() && target.Index == index
	role := domain.ItemRole(index)
	chain := c.ComposeKeyHandlers(host...)

	return ItemProps{
		Index:   index,
		Role:    role,
		TabStop: focused,
		Focused: focused,
		OnClick: func() error {
			return c.HandleItemClick(index)
		},
		OnKeyDown: func(msg tea.KeyMsg, preventKeyAction bool) bool {
			res := chain(KeyEvent{Msg: msg, Ctx: KeyContext{Origin: role, PreventKeyAction: preventKeyAction}})
			return res == handlers.Stop
		},
	}
}

// TriggerProps returns the bindings for the dropdown trigger
func (c *Coordinator[T]) TriggerProps(host ...handlers.Handler[KeyEvent]) TriggerProps {
	role := domain.TriggerRole()
	chain := c.ComposeKeyHandlers(host...)

	return TriggerProps{
		Role:    role,
		Focused: c.Focus.Current().IsTrigger(),
		OnKeyDown: func(msg tea.KeyMsg, preventKeyAction, caretAtStart bool) bool {
			res := chain(KeyEvent{Msg: msg, Ctx: KeyContext{
				Origin:           role,
				PreventKeyAction: preventKeyAction,
				CaretAtStart:     caretAtStart,
			}})
			return res == handlers.Stop
		},
		OnClick: c.HandleTriggerClick,
	}
}
