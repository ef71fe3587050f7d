package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette. colorAlert is bright red so a fired CPU alert reads
// differently from a single hot core (colorRed).
const (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorRed    = lipgloss.Color("1")
	colorBlue   = lipgloss.Color("4")
	colorCyan   = lipgloss.Color("6")
	colorWhite  = lipgloss.Color("7")
	colorAlert  = lipgloss.Color("9")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorBlue).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)
