package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	nameStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	usageStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Width(26)

	chainStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
