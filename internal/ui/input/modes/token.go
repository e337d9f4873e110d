package modes

import (
	"github.com/charmbracelet/bubbles/key"

	"multiselect/internal/domain"
	"multiselect/internal/ui/input/types"
)

// TokenMode handles keys pressed while a selected item has focus
type TokenMode struct {
	keys *types.Keymap
}

func NewTokenMode(keys *types.Keymap) *TokenMode {
	return &TokenMode{keys: keys}
}

func (m *TokenMode) Name() string {
	return "token"
}

func (m *TokenMode) HandleKey(in types.KeyInput) (types.Action, bool) {
	switch {
	case key.Matches(in.Msg, m.keys.Prev):
		return types.NavigateAction{Command: domain.CommandPrev}, true
	case key.Matches(in.Msg, m.keys.Next):
		return types.NavigateAction{Command: domain.CommandNext}, true
	case key.Matches(in.Msg, m.keys.Remove):
		return types.RemoveActiveAction{}, true
	}
	return nil, false
}
