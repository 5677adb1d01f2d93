// Package ui renders the game to a terminal.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorSnake = lipgloss.Color("#2CD7C7")
	ColorHead  = lipgloss.Color("#F4D03F")
	ColorFood  = lipgloss.Color("#E74C3C")
	ColorMuted = lipgloss.Color("#2C4A54")
	ColorText  = lipgloss.Color("#20B9B4")
)
