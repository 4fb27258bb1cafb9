package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true)
	staleStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	authorStyle   = lipgloss.NewStyle().Bold(true)
	counterStyle  = lipgloss.NewStyle().Faint(true)
)
