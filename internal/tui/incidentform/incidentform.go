// ABOUTME: Incident create/edit form as a bubbletea model
// ABOUTME: Uses a huh form with the backend's field rules wired as validators

package incidentform

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/tui/forms"
	"github.com/betherohq/hero-cli/internal/tui/styles"
	"github.com/betherohq/hero-cli/internal/validate"
)

// CompleteMsg is sent when the form is filled with a valid payload. ID is
// empty for create and set for edit.
type CompleteMsg struct {
	ID    string
	Input client.IncidentInput
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// Form is the incident create/edit screen
type Form struct {
	id      string // empty for create
	form    *huh.Form
	loading bool // edit mode until the record arrives
	spinner spinner.Model
	width   int

	title       string
	description string
	ong         string
	email       string
	whatsapp    string
	value       string
}

// NewCreate creates an empty form for registering a new case
func NewCreate() *Form {
	f := &Form{}
	f.form = f.createForm()
	return f
}

// NewEdit creates a form for the given incident id. The form stays in a
// loading state, blocking interaction, until Populate is called with the
// fetched record.
func NewEdit(id string) *Form {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Primary)),
	)
	return &Form{id: id, loading: true, spinner: s}
}

// Editing reports whether this form updates an existing record
func (f *Form) Editing() bool {
	return f.id != ""
}

// ID returns the incident id being edited, empty for create
func (f *Form) ID() string {
	return f.id
}

// Loading reports whether the record is still being fetched
func (f *Form) Loading() bool {
	return f.loading
}

// Populate fills the form with the fetched record and leaves loading state
func (f *Form) Populate(inc *client.Incident) tea.Cmd {
	f.title = inc.Title
	f.description = inc.Description
	f.ong = inc.ONG
	f.email = inc.Email
	f.whatsapp = inc.Whatsapp
	f.value = inc.Value
	f.loading = false
	f.form = f.createForm()
	return f.form.Init()
}

func (f *Form) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Case title").
				Value(&f.title).
				Validate(validate.MinChars(3, "title must be at least 3 characters")),
			huh.NewText().
				Title("Description").
				Placeholder("Describe the case in detail to find a hero").
				CharLimit(800).
				Value(&f.description).
				Validate(validate.MinChars(15, "description must be at least 15 characters")),
			huh.NewInput().
				Title("ONG").
				Placeholder("Responsible ONG").
				Value(&f.ong).
				Validate(validate.MinChars(3, "ong name must be at least 3 characters")),
			huh.NewInput().
				Title("Email").
				Placeholder("Contact email").
				Value(&f.email).
				Validate(validate.Email("enter a valid email")),
			huh.NewInput().
				Title("WhatsApp").
				Placeholder("Contact whatsapp").
				Value(&f.whatsapp).
				Validate(validate.MinChars(13, "whatsapp must be at least 13 characters")),
			huh.NewInput().
				Title("Value").
				Placeholder("Amount in reais").
				Value(&f.value).
				Validate(validate.MinChars(4, "enter a valid value")),
		).Title(f.groupTitle()).
			Description(f.groupDescription()),
	).WithTheme(forms.Theme())
}

func (f *Form) groupTitle() string {
	if f.Editing() {
		return "Edit Case"
	}
	return "Register New Case"
}

func (f *Form) groupDescription() string {
	if f.Editing() {
		return "Edit the case in detail to find a hero."
	}
	return "Describe the case in detail to find a hero."
}

// Input returns the current payload as entered by the user
func (f *Form) Input() client.IncidentInput {
	return client.IncidentInput{
		Title:       f.title,
		Description: f.description,
		ONG:         f.ong,
		Email:       f.email,
		Whatsapp:    f.whatsapp,
		Value:       f.value,
	}
}

// Reset rebuilds the form after a failed submission, keeping field values
// exactly as the user left them
func (f *Form) Reset() tea.Cmd {
	f.form = f.createForm()
	return f.form.Init()
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	if f.loading {
		return f.spinner.Tick
	}
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width

	case spinner.TickMsg:
		if !f.loading {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
	}

	// Interaction is blocked while the record loads.
	if f.loading {
		return f, nil
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		input := f.Input()
		if len(validate.Incident(input)) > 0 {
			return f, f.Reset()
		}
		id := f.id
		return f, func() tea.Msg {
			return CompleteMsg{ID: id, Input: input}
		}
	}

	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	if f.loading {
		return f.spinner.View() + styles.Help.Render("Loading...")
	}
	return f.form.View()
}
