package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tilt-monitor.klederson.com/internal/config"
)

// segCell is one display cell: a character plus its decimal point, which on
// the hardware shares the cell with the digit before it.
type segCell struct {
	ch  rune
	dot bool
}

// segmentCells folds a render string into the fixed number of display cells,
// attaching each '.' to the preceding cell and truncating the overflow, the
// way the alphanumeric hardware does.
func segmentCells(text string, width int) []segCell {
	var cells []segCell
	for _, r := range text {
		if r == '.' && len(cells) > 0 && !cells[len(cells)-1].dot {
			cells[len(cells)-1].dot = true
			continue
		}
		cells = append(cells, segCell{ch: r})
	}
	if len(cells) > width {
		cells = cells[:width]
	}
	for len(cells) < width {
		cells = append(cells, segCell{ch: ' '})
	}
	return cells
}

// RenderSegmentPanel draws the 4-cell alphanumeric display inside a framed
// panel, centered in the given area.
func RenderSegmentPanel(width, height int, text string) string {
	cells := segmentCells(text, config.DisplayWidth)

	var top, mid, bot []string
	for _, c := range cells {
		top = append(top, "┌───┐")
		mid = append(mid, "│ "+string(c.ch)+" │")
		if c.dot {
			bot = append(bot, "└──●┘")
		} else {
			bot = append(bot, "└───┘")
		}
	}

	frame := StyleSegmentFrame
	lines := []string{
		frame.Render(strings.Join(top, " ")),
		StyleSegment.Render(strings.Join(mid, " ")),
		frame.Render(strings.Join(bot, " ")),
	}
	face := strings.Join(lines, "\n")

	title := StylePanelTitle.Render(config.AppName)
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", face)

	innerW := width - 2
	innerH := height - 2
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	centered := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, content)
	return StylePanelBorder.Render(centered)
}
