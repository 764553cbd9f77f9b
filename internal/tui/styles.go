package tui

import "github.com/charmbracelet/lipgloss"

// Package tui contains all the Bubble Tea related code for the
// terminal user interface: the application shell (page host and refresh
// signal), the broker list page, input handling and styling.

// --- Styles ---

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()

	HelpStyle = BlurredStyle

	BreadcrumbStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	ActiveBreadcrumbStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	// Controller marker, gold like a crown
	ControllerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")) // Red for errors

	StatTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	StatValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	StatBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple border
			Padding(0, 1).
			MarginRight(2)

	TableBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	EmptyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240")).
			Padding(1, 4)
)
