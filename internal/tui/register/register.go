// ABOUTME: Signup screen as a bubbletea model for user and ONG registration
// ABOUTME: Collects profile fields with a huh form and emits a completion message

package register

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/session"
	"github.com/betherohq/hero-cli/internal/tui/forms"
	"github.com/betherohq/hero-cli/internal/validate"
)

// CompleteMsg is sent when the form is filled with a valid payload. Exactly
// one of User or ONG is meaningful, selected by Scope.
type CompleteMsg struct {
	Scope session.Scope
	User  client.UserInput
	ONG   client.ONGInput
}

// CancelledMsg is sent when the user backs out of the signup screen
type CancelledMsg struct{}

// Register is the signup form screen
type Register struct {
	scope session.Scope
	form  *huh.Form
	width int

	name     string
	email    string
	password string
	phone    string
	city     string
	uf       string
}

// New creates a signup screen for the given role-scope
func New(scope session.Scope) *Register {
	r := &Register{scope: scope}
	r.form = r.createForm()
	return r
}

func (r *Register) createForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("Your name").
			Value(&r.name).
			Validate(validate.MinChars(3, "name must be at least 3 characters")),
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&r.email).
			Validate(validate.Email("enter a valid email")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&r.password).
			Validate(validate.MinChars(6, "password must be at least 6 characters")),
		huh.NewInput().
			Title("Phone").
			Placeholder("+55 11 912345678").
			Value(&r.phone).
			Validate(validate.MinChars(13, "phone must be at least 13 characters")),
	}

	if r.scope == session.ScopeONG {
		fields = append(fields,
			huh.NewInput().
				Title("City").
				Value(&r.city).
				Validate(validate.MinChars(4, "city must be at least 4 characters")),
			huh.NewInput().
				Title("State").
				CharLimit(2).
				Value(&r.uf).
				Validate(validate.MinChars(2, "state must be at least 2 characters")),
		)
	}

	return huh.NewForm(
		huh.NewGroup(fields...).
			Title(r.groupTitle()).
			Description("Sign up and save the day."),
	).WithTheme(forms.Theme())
}

func (r *Register) groupTitle() string {
	if r.scope == session.ScopeONG {
		return "ONG Signup"
	}
	return "User Signup"
}

// Scope returns the role-scope this screen registers
func (r *Register) Scope() session.Scope {
	return r.scope
}

// Reset rebuilds the form after a failed submission, keeping field values
func (r *Register) Reset() tea.Cmd {
	r.form = r.createForm()
	return r.form.Init()
}

// Init implements tea.Model
func (r *Register) Init() tea.Cmd {
	return r.form.Init()
}

// Update implements tea.Model
func (r *Register) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return r, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		return r, r.complete()
	}

	return r, cmd
}

func (r *Register) complete() tea.Cmd {
	if r.scope == session.ScopeONG {
		input := client.ONGInput{
			Name:     r.name,
			Email:    r.email,
			Password: r.password,
			Phone:    r.phone,
			City:     r.city,
			UF:       r.uf,
		}
		if len(validate.ONG(input)) > 0 {
			return r.Reset()
		}
		return func() tea.Msg {
			return CompleteMsg{Scope: session.ScopeONG, ONG: input}
		}
	}

	input := client.UserInput{
		Name:     r.name,
		Email:    r.email,
		Password: r.password,
		Phone:    r.phone,
	}
	if len(validate.User(input)) > 0 {
		return r.Reset()
	}
	return func() tea.Msg {
		return CompleteMsg{Scope: session.ScopeUser, User: input}
	}
}

// View implements tea.Model
func (r *Register) View() string {
	return r.form.View()
}
