package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ledStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(ColorLedRed).Bold(true),
	lipgloss.NewStyle().Foreground(ColorLedGreen).Bold(true),
	lipgloss.NewStyle().Foreground(ColorLedBlue).Bold(true),
}

var ledOffStyle = lipgloss.NewStyle().Foreground(ColorLedOff)

// RenderStatusBar renders the bottom status bar: LED indicators mirroring the
// physical LEDs, the active mode, the last-update age, and feedback from the
// last prompt command.
func RenderStatusBar(width int, leds [3]bool, mode, age, note string) string {
	names := []string{"A", "B", "C"}
	indicators := ""
	for i, on := range leds {
		if on {
			indicators += ledStyles[i].Render("●"+names[i]) + " "
		} else {
			indicators += ledOffStyle.Render("○"+names[i]) + " "
		}
	}

	info := fmt.Sprintf(" Mode: %s  Updated: %s ago", mode, age)
	content := indicators + StyleFieldValue.Render(info)
	if note != "" {
		content += StyleHelp.Render("  | " + note)
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

// RenderPrompt renders the command prompt line shown in place of the status
// bar while a command is being typed.
func RenderPrompt(width int, buf string) string {
	return StylePrompt.Width(width).Render(":" + buf + "▌")
}
