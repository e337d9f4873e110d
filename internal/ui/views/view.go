package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Items         []string
	Focus         domain.FocusTarget
	TriggerKind   domain.TriggerKind
	InputView     string
	DropdownOpen  bool
	Options       []string
	Highlight     int
	MenuRows      int
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpModel     help.Model
	HelpKeys      help.KeyMap
	ShowLog       bool
	LogContent    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tokenRender *TokenRenderer
	menuRender  *DropdownRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		tokenRender: NewTokenRenderer(styles),
		menuRender:  NewDropdownRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding

	// Title with right-aligned counter
	logo := r.styles.Title.Render("multiselect")
	counter := r.styles.Dim.Render(fmt.Sprintf("%d selected", len(state.Items)))
	padding := availableWidth - lipgloss.Width(logo) - lipgloss.Width(counter)
	if padding < 2 {
		padding = 2
	}
	content.WriteString(logo + strings.Repeat(" ", padding) + counter)
	content.WriteString("\n\n")

	trigger := r.tokenRender.RenderTrigger(state.TriggerKind, state.InputView, state.DropdownOpen, state.Focus.IsTrigger())
	content.WriteString(r.tokenRender.RenderLine(state.Items, state.Focus, trigger, availableWidth))
	content.WriteString("\n")

	if state.DropdownOpen {
		content.WriteString(r.menuRender.RenderMenu(state.Options, state.Highlight, state.MenuRows))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError.MarginTop(1)
		}
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	// Help footer pushed to the bottom
	helpText := r.styles.Help.Render("Press ? for help, L for the event log")
	if state.ShowHelp && state.HelpKeys != nil {
		helpText = state.HelpModel.View(state.HelpKeys)
	}
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if paddingNeeded := availableLines - currentLines - lipgloss.Height(helpText); paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowLog {
		logContent := state.LogContent
		if logContent == "" {
			logContent = "no events yet"
		}
		return r.popupRender.RenderPopupOverlay(finalContent, tail(logContent, state.Height-8), state.Height, state.Width, r.styles.LogBox)
	}
	return finalContent
}

// tail keeps the last n lines of s
func tail(s string, n int) string {
	if n <= 0 {
		n = 10
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
