package tui

import "github.com/charmbracelet/lipgloss"

var (
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)
