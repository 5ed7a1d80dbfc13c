package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent   = lipgloss.Color("57")
	colorSelected = lipgloss.Color("229")
	colorSubtle   = lipgloss.Color("240")
	colorLabel    = lipgloss.Color("245")
	colorValue    = lipgloss.Color("255")
	colorInfo     = lipgloss.Color("39")
	colorOK       = lipgloss.Color("42")
	colorWarning  = lipgloss.Color("214")
	colorCritical = lipgloss.Color("196")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values shared across views.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorInfo)
	LabelStyle    = lipgloss.NewStyle().Foreground(colorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(colorValue).Bold(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(colorInfo)
	SubtleStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	OKStyle       = lipgloss.NewStyle().Foreground(colorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(colorCritical).Bold(true)
	BoxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorSubtle).
				BorderBottom(true).
				Bold(true)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorSelected).
				Background(colorAccent)
)

// statusStyle colors an order status.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "Completed":
		return OKStyle
	case "Pending":
		return WarningStyle
	default:
		return ValueStyle
	}
}
