package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"multiselect/internal/domain"
)

func TestRenderTokensMarksFocusedItem(t *testing.T) {
	tr := NewTokenRenderer(NewStyles())

	line := tr.RenderLine([]string{"A", "B"}, domain.ItemFocus(1), "", 0)

	assert.Contains(t, line, "[ A ×]")
	assert.Contains(t, line, "[▸B ×]")
	assert.NotContains(t, line, "[▸A ×]")
}

func TestRenderTokensWraps(t *testing.T) {
	tr := NewTokenRenderer(NewStyles())
	labels := []string{"Apple", "Banana", "Cherry", "Grape"}

	line := tr.RenderLine(labels, domain.NoFocus, "", 20)

	for _, l := range strings.Split(line, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 20)
	}
	assert.Greater(t, strings.Count(line, "\n"), 0)
}

func TestRenderTrigger(t *testing.T) {
	tr := NewTokenRenderer(NewStyles())

	assert.Contains(t, tr.RenderTrigger(domain.TriggerButton, "", false, false), "( add ▾ )")
	assert.Contains(t, tr.RenderTrigger(domain.TriggerButton, "", true, false), "( add ▴ )")
	assert.Contains(t, tr.RenderTrigger(domain.TriggerInput, "typed", false, true), "› ")
	assert.Contains(t, tr.RenderTrigger(domain.TriggerInput, "typed", false, true), "typed")
}

func TestRenderMenuScrollsToHighlight(t *testing.T) {
	dr := NewDropdownRenderer(NewStyles())
	options := make([]string, 10)
	for i := range options {
		options[i] = fmt.Sprintf("opt%d", i)
	}

	menu := dr.RenderMenu(options, 0, 3)
	assert.Contains(t, menu, "▸ opt0")
	assert.Contains(t, menu, "opt2")
	assert.NotContains(t, menu, "opt3")
	assert.Contains(t, menu, "… 7 more")

	menu = dr.RenderMenu(options, 5, 3)
	assert.Contains(t, menu, "▸ opt5")
	assert.Contains(t, menu, "opt3")
	assert.NotContains(t, menu, "opt2")
	assert.Contains(t, menu, "… 4 more")
}

func TestRenderMenuEmpty(t *testing.T) {
	dr := NewDropdownRenderer(NewStyles())

	assert.Contains(t, dr.RenderMenu(nil, 0, 5), "no matches")
}

func TestRender(t *testing.T) {
	r := NewRenderer()

	out := r.Render(ViewState{
		Width:         80,
		Height:        24,
		Items:         []string{"Kiwi", "Plum"},
		Focus:         domain.ItemFocus(0),
		TriggerKind:   domain.TriggerButton,
		DropdownOpen:  true,
		Options:       []string{"Apple", "Pear"},
		Highlight:     1,
		StatusMessage: "item add at 1 (2 selected)",
	})

	assert.Contains(t, out, "multiselect")
	assert.Contains(t, out, "2 selected")
	assert.Contains(t, out, "[▸Kiwi ×]")
	assert.Contains(t, out, "▸ Pear")
	assert.Contains(t, out, "item add at 1")
	assert.Contains(t, out, "Press ? for help")
}

func TestRenderLogOverlay(t *testing.T) {
	r := NewRenderer()

	out := r.Render(ViewState{
		Width:      80,
		Height:     24,
		ShowLog:    true,
		LogContent: "12:00:00.000  focus none -> trigger",
	})

	assert.Contains(t, out, "focus none -> trigger")
}

func TestSplitColumns(t *testing.T) {
	left, right := splitColumns("abcdefgh", 2, 5)
	assert.Equal(t, "ab", left)
	assert.Equal(t, "fgh", right)

	left, right = splitColumns("ab", 4, 6)
	assert.Equal(t, "ab  ", left)
	assert.Equal(t, "", right)
}
