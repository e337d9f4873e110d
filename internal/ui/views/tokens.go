package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/domain"
)

// TokenRenderer draws the selected items and the dropdown trigger on one
// wrapped line.
type TokenRenderer struct {
	styles *Styles
}

// NewTokenRenderer creates a new token renderer
func NewTokenRenderer(styles *Styles) *TokenRenderer {
	return &TokenRenderer{styles: styles}
}

// RenderToken renders one selected item. The focused token carries a marker
// so it stays visible without colors.
func (t *TokenRenderer) RenderToken(label string, focused bool) string {
	if focused {
		return t.styles.TokenFocused.Render(fmt.Sprintf("[▸%s ×]", label))
	}
	return t.styles.Token.Render(fmt.Sprintf("[ %s ×]", label))
}

// RenderTrigger renders the dropdown trigger. inputView is the text input's
// own view and is only used for input triggers.
func (t *TokenRenderer) RenderTrigger(kind domain.TriggerKind, inputView string, open, focused bool) string {
	style := t.styles.Trigger
	if focused {
		style = t.styles.TriggerFocused
	}
	if kind == domain.TriggerButton {
		arrow := "▾"
		if open {
			arrow = "▴"
		}
		return style.Render(fmt.Sprintf("( add %s )", arrow))
	}
	prefix := "  "
	if focused {
		prefix = "› "
	}
	return style.Render(prefix) + inputView
}

// RenderLine lays tokens and trigger out left to right, wrapping at width
func (t *TokenRenderer) RenderLine(labels []string, focus domain.FocusTarget, trigger string, width int) string {
	parts := make([]string, 0, len(labels)+1)
	for i, label := range labels {
		parts = append(parts, t.RenderToken(label, focus == domain.ItemFocus(i)))
	}
	parts = append(parts, trigger)

	if width <= 0 {
		return strings.Join(parts, " ")
	}

	var lines []string
	var current []string
	used := 0
	for _, part := range parts {
		w := lipgloss.Width(part)
		if len(current) > 0 && used+1+w > width {
			lines = append(lines, strings.Join(current, " "))
			current, used = nil, 0
		}
		if len(current) > 0 {
			used++
		}
		current = append(current, part)
		used += w
	}
	lines = append(lines, strings.Join(current, " "))
	return strings.Join(lines, "\n")
}
