package ui

import "github.com/charmbracelet/lipgloss"

// JoinPanels joins body panels horizontally.
func JoinPanels(panels ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// ComposeLayout stacks the menu bar, body, and bottom bar.
func ComposeLayout(menuBar, body, bottom string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, body, bottom)
}
