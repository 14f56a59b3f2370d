package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tilt-monitor.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, adapter string, demoMode bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"A", "/"},
		{"B", "/"},
		{"C", " buttons"},
		{":", "cmd"},
		{"D", "ump"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	badge := ""
	if demoMode {
		badge = StyleBadgeDemo.Render("DEMO")
	} else {
		badge = StyleBadgeLive.Render("LIVE")
	}

	adapterInfo := StyleMenuLabel.Render(fmt.Sprintf("Adapter: %s", adapter))

	left := StyleMenuKey.Render(title) + menu
	right := badge + "  " + adapterInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
