package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Token          lipgloss.Style
	TokenFocused   lipgloss.Style
	Trigger        lipgloss.Style
	TriggerFocused lipgloss.Style
	Menu           lipgloss.Style
	Option         lipgloss.Style
	OptionActive   lipgloss.Style
	Highlight      lipgloss.Style
	LogBox         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Token:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		TokenFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("33")).Bold(true),
		Trigger:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		TriggerFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Option:       lipgloss.NewStyle(),
		OptionActive: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		LogBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
	}
}
