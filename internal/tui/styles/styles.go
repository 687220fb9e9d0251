// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines the red/zinc palette, borders, and text styles used across screens

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#DC2626") // Red-600
	PrimaryLo = lipgloss.Color("#B91C1C") // Red-700
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#DC2626") // Red-600
	Muted     = lipgloss.Color("#71717A") // Zinc-500
	Text      = lipgloss.Color("#F5F5F4") // Zinc-100
	BgDark    = lipgloss.Color("#18181B") // Zinc-900

	// Colors - Extended palette
	Accent  = lipgloss.Color("#A1A1AA") // Zinc-400 for secondary text
	Surface = lipgloss.Color("#3F3F46") // Zinc-700 elevated surface

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// Label style for field names on cards
	LabelStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Notice styles for transient acknowledgments
	NoticeOK = lipgloss.NewStyle().
			Foreground(Secondary)

	NoticeError = lipgloss.NewStyle().
			Foreground(Danger)
)
