package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for the prompt
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))
)
