// ABOUTME: Incident detail screen showing one case with edit and delete actions
// ABOUTME: Renders a loading placeholder until the record arrives

package detail

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/tui/icons"
	"github.com/betherohq/hero-cli/internal/tui/styles"
)

// EditMsg is sent when the user asks to edit the shown incident
type EditMsg struct {
	ID string
}

// DeleteMsg is sent when the user deletes the shown incident
type DeleteMsg struct {
	ID string
}

// NewMsg is sent when the user asks for the create screen
type NewMsg struct{}

// BackMsg is sent when the user navigates back to the list
type BackMsg struct{}

// Detail is the incident detail screen
type Detail struct {
	id       string
	incident *client.Incident
	width    int
	spinner  spinner.Model
}

// New creates a detail screen for the given incident id, in loading state
// until SetIncident is called
func New(id string) *Detail {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Primary)),
	)
	return &Detail{id: id, spinner: s}
}

// ID returns the incident id this screen shows
func (d *Detail) ID() string {
	return d.id
}

// SetIncident stores the fetched record and leaves loading state
func (d *Detail) SetIncident(inc *client.Incident) {
	d.incident = inc
}

// Loading reports whether the record is still being fetched
func (d *Detail) Loading() bool {
	return d.incident == nil
}

// SetSize sets the available rendering width
func (d *Detail) SetSize(width int) {
	d.width = width
}

// Init implements tea.Model
func (d *Detail) Init() tea.Cmd {
	return d.spinner.Tick
}

// Update implements tea.Model
func (d *Detail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !d.Loading() {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(tick)
		return d, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "e":
		if !d.Loading() {
			id := d.id
			return d, func() tea.Msg { return EditMsg{ID: id} }
		}
	case "d":
		// Deletion is immediate, with no confirmation step.
		id := d.id
		return d, func() tea.Msg { return DeleteMsg{ID: id} }
	case "n":
		return d, func() tea.Msg { return NewMsg{} }
	case "b", "esc":
		return d, func() tea.Msg { return BackMsg{} }
	}

	return d, nil
}

// View implements tea.Model
func (d *Detail) View() string {
	if d.Loading() {
		return d.spinner.View() + styles.Help.Render("Loading...")
	}

	label := styles.LabelStyle
	value := lipgloss.NewStyle().Foreground(styles.Accent)

	var card strings.Builder
	card.WriteString(label.Render("Case:") + "\n" + value.Render(d.incident.Title) + "\n\n")
	card.WriteString(label.Render("ONG:") + "\n" + value.Render(d.incident.ONG) + "\n\n")
	card.WriteString(label.Render("Description:") + "\n" + value.Render(d.incident.Description) + "\n\n")
	card.WriteString(label.Render("Contact:") + "\n" + value.Render(d.incident.Email+"  "+d.incident.Whatsapp) + "\n\n")
	card.WriteString(label.Render("Value:") + "\n" + value.Render("R$ "+d.incident.Value))

	panel := styles.ActivePanel
	width := d.width - 6
	if width > 70 {
		width = 70
	}
	if width > 0 {
		panel = panel.Width(width)
	}

	actions := styles.Help.Render(
		icons.Edit.String() + " e edit   " +
			icons.Trash.String() + " d delete   " +
			icons.New.String() + " n new case   " +
			icons.Back.String() + " b back")

	return panel.Render(card.String()) + "\n" + actions
}
