package ui

import "github.com/charmbracelet/lipgloss"

// StyleManager encapsulates terminal output styles
type StyleManager struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// Global style manager instance
var styles = DefaultStyles()
