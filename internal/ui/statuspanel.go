package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusFields carries the debug/inspection values shown in the status panel.
type StatusFields struct {
	Color       string
	Gravity     string
	Temperature string
	Mode        string
	LastUpdate  string
	Refresh     time.Duration
	LedPulse    time.Duration
}

// RenderStatusPanel renders the inspection overlay next to the display.
func RenderStatusPanel(width, height int, f StatusFields) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("STATUS")
	hint := StyleHelp.Render("[D]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(hint))) + hint
	sep := StyleSegmentFrame.Render(strings.Repeat("-", innerW))

	lines := []string{titleLine, sep, ""}

	fields := []struct{ label, value string }{
		{"Tilt color", f.Color},
		{"Gravity", f.Gravity},
		{"Temperature", f.Temperature},
		{"Display mode", f.Mode},
		{"Last update", f.LastUpdate + " ago"},
		{"Refresh", fmt.Sprintf("%dms", f.Refresh.Milliseconds())},
		{"Led pulse", fmt.Sprintf("%dms", f.LedPulse.Milliseconds())},
	}

	for _, fl := range fields {
		label := StyleFieldLabel.Render(fmt.Sprintf("  %-14s", fl.label))
		value := StyleFieldValue.Render(fl.value)
		lines = append(lines, label+value)
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
