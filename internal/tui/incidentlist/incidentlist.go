// ABOUTME: Incident list screen showing the current collection as cards
// ABOUTME: Cursor navigation with open, create, delete, refresh, and logout actions

package incidentlist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/tui/styles"
)

// SelectedMsg is sent when an incident is opened for detail view
type SelectedMsg struct {
	ID string
}

// DeleteMsg is sent when the user deletes the incident under the cursor
type DeleteMsg struct {
	ID string
}

// NewMsg is sent when the user asks for the create screen
type NewMsg struct{}

// RefreshMsg is sent when the user asks for a manual refresh
type RefreshMsg struct{}

// LogoutMsg is sent when the user logs out
type LogoutMsg struct{}

// List is the incident list screen
type List struct {
	incidents []client.Incident
	cursor    int
	width     int
	height    int
}

// New creates an empty incident list screen
func New() *List {
	return &List{}
}

// SetIncidents replaces the displayed collection wholesale. The previous
// list is discarded; there is no merge or diffing.
func (l *List) SetIncidents(incidents []client.Incident) {
	l.incidents = incidents
	if l.cursor >= len(incidents) {
		l.cursor = len(incidents) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Incidents returns the currently displayed collection
func (l *List) Incidents() []client.Incident {
	return l.incidents
}

// SetSize sets the available rendering area
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Init implements tea.Model
func (l *List) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (l *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(l.incidents)-1 {
				l.cursor++
			}
		case "enter":
			if inc := l.current(); inc != nil {
				id := inc.ID
				return l, func() tea.Msg { return SelectedMsg{ID: id} }
			}
		case "d":
			// Deletion is immediate, with no confirmation step.
			if inc := l.current(); inc != nil {
				id := inc.ID
				return l, func() tea.Msg { return DeleteMsg{ID: id} }
			}
		case "n":
			return l, func() tea.Msg { return NewMsg{} }
		case "r":
			return l, func() tea.Msg { return RefreshMsg{} }
		case "l":
			return l, func() tea.Msg { return LogoutMsg{} }
		}
	}

	return l, nil
}

func (l *List) current() *client.Incident {
	if l.cursor < 0 || l.cursor >= len(l.incidents) {
		return nil
	}
	return &l.incidents[l.cursor]
}

// View implements tea.Model
func (l *List) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Welcome!"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Pick one of the cases below and save the day."))
	b.WriteString("\n\n")

	if len(l.incidents) == 0 {
		b.WriteString(styles.Help.Render("No cases reported yet. Press n to register one."))
		return b.String()
	}

	for i, inc := range l.incidents {
		b.WriteString(l.renderCard(inc, i == l.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCard renders one incident as a card, highlighted under the cursor
func (l *List) renderCard(inc client.Incident, selected bool) string {
	label := styles.LabelStyle
	value := lipgloss.NewStyle().Foreground(styles.Accent)

	var card strings.Builder
	card.WriteString(label.Render("Case:") + "  " + value.Render(inc.Title) + "\n")
	card.WriteString(label.Render("ONG:") + "   " + value.Render(inc.ONG) + "\n")
	card.WriteString(label.Render("Value:") + " " + value.Render("R$ "+inc.Value))

	panel := styles.Panel
	if selected {
		panel = styles.ActivePanel
	}
	width := l.width - 6
	if width > 60 {
		width = 60
	}
	if width > 0 {
		panel = panel.Width(width)
	}

	return panel.Render(card.String())
}
