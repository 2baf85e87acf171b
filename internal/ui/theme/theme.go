package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Late matches the red used for late scores in the SVG
// table and Bar its post bars.
var (
	Primary = lipgloss.Color("#2563EB") // Blue
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Late    = lipgloss.Color("#CC0000") // Red
	OnTime  = lipgloss.Color("#E2E8F0") // Light slate
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Bar     = lipgloss.Color("#CCCCCC") // Grey
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ColumnHeader = lipgloss.NewStyle().
			Foreground(TextDim).
			Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	LateScore = lipgloss.NewStyle().
			Foreground(Late).
			Bold(true)

	OnTimeScore = lipgloss.NewStyle().
			Foreground(OnTime)
)

// Components
var (
	PostBar = lipgloss.NewStyle().
		Background(Bar)
)
