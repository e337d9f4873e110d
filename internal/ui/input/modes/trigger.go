package modes

import (
	"github.com/charmbracelet/bubbles/key"

	"multiselect/internal/domain"
	"multiselect/internal/ui/input/types"
)

// TriggerMode handles keys pressed on the dropdown trigger. An input trigger
// only gives up keys while the caret sits at the start with nothing selected,
// so ordinary text editing is never intercepted.
type TriggerMode struct {
	keys *types.Keymap
}

func NewTriggerMode(keys *types.Keymap) *TriggerMode {
	return &TriggerMode{keys: keys}
}

func (m *TriggerMode) Name() string {
	return "trigger"
}

func (m *TriggerMode) HandleKey(in types.KeyInput) (types.Action, bool) {
	if in.Trigger == domain.TriggerInput && !in.CaretAtStart {
		return nil, false
	}

	switch {
	case key.Matches(in.Msg, m.keys.RemoveLast):
		return types.RemoveLastAction{}, true
	case key.Matches(in.Msg, m.keys.Prev):
		return types.NavigateAction{Command: domain.CommandPrev}, true
	}
	return nil, false
}
