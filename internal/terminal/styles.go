package terminal

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("39")  // Blue
	secondaryColor = lipgloss.Color("245") // Gray
	errorColor     = lipgloss.Color("196") // Red
	warningColor   = lipgloss.Color("214") // Orange
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	progressStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	failureStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	alertStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)
)
