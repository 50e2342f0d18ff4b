package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors.
const (
	ColorHeader   = "39"  // Blue
	ColorInfo     = "86"  // Cyan
	ColorSubtle   = "241" // Gray
	ColorLabel    = "245" // Light gray
	ColorValue    = "252" // Near white
	ColorCritical = "196" // Red
	ColorSelected = "57"  // Purple background
	ColorSelectFg = "229" // Pale yellow
	ColorBorder   = "62"
)

// Layout constants.
const (
	defaultWidth  = 100
	defaultHeight = 24
	minHeight     = 5
	borderPadding = 2
	// chromeHeight is the lines used around the table: title, endpoint,
	// blank line, footer and help.
	chromeHeight = 6
)

//nolint:gochecknoglobals // Shared styles are read-only after init.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorHeader))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInfo))

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSubtle))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorLabel))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorValue)).
			Bold(true)

	CriticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCritical)).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorCritical)).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorHeader)).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color(ColorSubtle))

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSelectFg)).
				Background(lipgloss.Color(ColorSelected)).
				Bold(false)

	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)
)
