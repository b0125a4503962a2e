package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Search       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Highlight    lipgloss.Style
	StatusError  lipgloss.Style
	StatusLoad   lipgloss.Style
	InfoBox      lipgloss.Style
	FilterTab    lipgloss.Style
	FilterActive lipgloss.Style

	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	Speaker       lipgloss.Style
	Link          lipgloss.Style
	Tag           lipgloss.Style
	Button        lipgloss.Style
	ButtonOff     lipgloss.Style
	Placeholder   lipgloss.Style
	PlaceholderHd lipgloss.Style
	ResultsHeader lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoad:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		FilterTab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")),
		FilterActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Speaker:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")).
			Padding(0, 1),
		ButtonOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		PlaceholderHd: lipgloss.NewStyle().Bold(true),
		ResultsHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}

// GetBadgeColor returns the background color for a status badge class
func GetBadgeColor(class string) string {
	switch class {
	case "status-current":
		return "78" // green
	case "status-future":
		return "33" // blue
	case "status-past":
		return "241" // gray
	default:
		return ""
	}
}
