// ABOUTME: Login screen as a bubbletea model, one instance per auth role-scope
// ABOUTME: Collects credentials with a huh form and emits a submit message

package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/session"
	"github.com/betherohq/hero-cli/internal/tui/forms"
	"github.com/betherohq/hero-cli/internal/validate"
)

// SubmitMsg is sent when the form is filled with valid credentials
type SubmitMsg struct {
	Scope session.Scope
	Creds client.Credentials
}

// RegisterMsg is sent when the user asks for the signup screen
type RegisterMsg struct {
	Scope session.Scope
}

// SwitchScopeMsg is sent when the user switches between the user and ONG
// login screens
type SwitchScopeMsg struct{}

// CancelledMsg is sent when the user cancels the login screen
type CancelledMsg struct{}

// Login is the login form screen
type Login struct {
	scope session.Scope
	form  *huh.Form
	width int

	email    string
	password string
}

// New creates a login screen for the given role-scope
func New(scope session.Scope) *Login {
	l := &Login{scope: scope}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&l.email).
				Validate(validate.Email("enter a valid email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password).
				Validate(validate.MinChars(6, "password must be at least 6 characters")),
		).Title(l.groupTitle()).
			Description("Sign in and save the day."),
	).WithTheme(forms.Theme())
}

func (l *Login) groupTitle() string {
	if l.scope == session.ScopeONG {
		return "ONG Access"
	}
	return "User Access"
}

// Scope returns the role-scope this screen authenticates
func (l *Login) Scope() session.Scope {
	return l.scope
}

// Reset rebuilds the form after a failed submission, keeping field values
// exactly as the user left them
func (l *Login) Reset() tea.Cmd {
	l.form = l.createForm()
	return l.form.Init()
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return l, func() tea.Msg { return CancelledMsg{} }
		case "ctrl+r":
			return l, func() tea.Msg { return RegisterMsg{Scope: l.scope} }
		case "ctrl+o":
			return l, func() tea.Msg { return SwitchScopeMsg{} }
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		creds := client.Credentials{Email: l.email, Password: l.password}
		// Field validators already gate completion; this mirrors the
		// submit-time guard so empty credentials never reach the network.
		if len(validate.Login(creds)) > 0 {
			return l, l.Reset()
		}
		return l, func() tea.Msg {
			return SubmitMsg{Scope: l.scope, Creds: creds}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	return l.form.View()
}
