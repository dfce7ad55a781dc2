package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	barW      = 32 // width of a full probability bar in characters
	basisPadW = 2  // padding between basis label and bar
)

// Lipgloss styles for the terminal output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	basisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	probStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bb9af7"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)
)
