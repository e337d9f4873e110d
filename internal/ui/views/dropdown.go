package views

import (
	"fmt"
	"strings"
)

// DropdownRenderer handles rendering of the open dropdown menu
type DropdownRenderer struct {
	styles *Styles
}

// NewDropdownRenderer creates a new dropdown renderer
func NewDropdownRenderer(styles *Styles) *DropdownRenderer {
	return &DropdownRenderer{styles: styles}
}

// RenderMenu renders at most maxRows options around the highlighted one
func (d *DropdownRenderer) RenderMenu(options []string, highlight, maxRows int) string {
	if len(options) == 0 {
		return d.styles.Menu.Render(d.styles.Dim.Render("no matches"))
	}
	if maxRows <= 0 {
		maxRows = len(options)
	}

	start := 0
	if highlight >= maxRows {
		start = highlight - maxRows + 1
	}
	end := min(start+maxRows, len(options))

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		if i == highlight {
			lines = append(lines, d.styles.OptionActive.Render("▸ "+options[i]))
		} else {
			lines = append(lines, d.styles.Option.Render("  "+options[i]))
		}
	}
	if rest := len(options) - end; rest > 0 {
		lines = append(lines, d.styles.Dim.Render(fmt.Sprintf("  … %d more", rest)))
	}
	return d.styles.Menu.Render(strings.Join(lines, "\n"))
}
