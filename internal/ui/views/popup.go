package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centred on top of a greyed copy of the
// main content.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width <= 0 {
		width = max(lipgloss.Width(mainContent), modalW)
	}
	if height <= 0 {
		height = max(lipgloss.Height(mainContent), modalH)
	}
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	modal := strings.Split(styledPopup, "\n")
	out := make([]string, len(base))
	for i, line := range base {
		row := i - y
		if row < 0 || row >= len(modal) {
			out[i] = grey(line)
			continue
		}
		left, right := splitColumns(line, x, x+modalW)
		out[i] = grey(left) + modal[row] + grey(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var greyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func grey(s string) string {
	if s == "" {
		return ""
	}
	return greyStyle.Render(s)
}

// splitColumns returns the plain-text columns before from and after to,
// padding short lines with spaces.
func splitColumns(line string, from, to int) (string, string) {
	runes := []rune(line)
	if len(runes) < from {
		return string(runes) + strings.Repeat(" ", from-len(runes)), ""
	}
	left := string(runes[:from])
	if len(runes) <= to {
		return left, ""
	}
	return left, string(runes[to:])
}
