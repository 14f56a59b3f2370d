package ui

import "github.com/charmbracelet/lipgloss"

// Front panel palette: red segment display, amber accents, RGB status LEDs.
var (
	ColorSegment   = lipgloss.Color("#FF4422")
	ColorSegmentBg = lipgloss.Color("#1A0500")
	ColorAmber     = lipgloss.Color("#FFB000")
	ColorAmberDim  = lipgloss.Color("#805800")
	ColorFrame     = lipgloss.Color("#AA3311")
	ColorLedRed    = lipgloss.Color("#FF3333")
	ColorLedGreen  = lipgloss.Color("#33FF66")
	ColorLedBlue   = lipgloss.Color("#3399FF")
	ColorLedOff    = lipgloss.Color("#332222")
	ColorError     = lipgloss.Color("#FF3300")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#221100")).
			Foreground(ColorAmber).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorAmberDim)

	StyleBadgeDemo = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleBadgeLive = lipgloss.NewStyle().
			Foreground(ColorLedGreen).
			Bold(true)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#221100")).
			Foreground(ColorAmberDim).
			Padding(0, 1)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorFrame)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true).
			Padding(0, 1)

	StyleSegment = lipgloss.NewStyle().
			Foreground(ColorSegment).
			Background(ColorSegmentBg).
			Bold(true)

	StyleSegmentFrame = lipgloss.NewStyle().
				Foreground(ColorFrame)

	StyleFieldLabel = lipgloss.NewStyle().
			Foreground(ColorAmberDim)

	StyleFieldValue = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StylePrompt = lipgloss.NewStyle().
			Background(lipgloss.Color("#221100")).
			Foreground(ColorAmber).
			Padding(0, 1)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorAmberDim)
)
