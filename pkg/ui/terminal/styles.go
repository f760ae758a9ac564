package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
)

// Styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)
