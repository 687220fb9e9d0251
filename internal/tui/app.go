// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Owns the session gate, screen navigation, and incident list sync

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/session"
	"github.com/betherohq/hero-cli/internal/tui/detail"
	"github.com/betherohq/hero-cli/internal/tui/icons"
	"github.com/betherohq/hero-cli/internal/tui/incidentform"
	"github.com/betherohq/hero-cli/internal/tui/incidentlist"
	"github.com/betherohq/hero-cli/internal/tui/login"
	"github.com/betherohq/hero-cli/internal/tui/register"
	"github.com/betherohq/hero-cli/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenOngLogin
	ScreenRegister
	ScreenList
	ScreenDetail
	ScreenNew
	ScreenEdit
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping frame rendering
)

// sessionCheckedMsg is sent when the session gate finishes reading the store
type sessionCheckedMsg struct {
	scope session.Scope
	token string
}

// loginDoneMsg is sent when a login request resolves. The token is only set
// after it has been persisted to the store.
type loginDoneMsg struct {
	scope session.Scope
	token string
	err   error
}

// registerDoneMsg is sent when a signup request resolves
type registerDoneMsg struct {
	scope session.Scope
	err   error
}

// loggedOutMsg is sent when the token slot has been cleared
type loggedOutMsg struct {
	scope session.Scope
	err   error
}

// incidentsLoadedMsg is sent when a list refresh resolves. Overlapping
// refreshes are not de-duplicated: whichever response arrives last wins.
type incidentsLoadedMsg struct {
	incidents []client.Incident
	err       error
}

// detailLoadedMsg is sent when a single record fetch for the detail screen resolves
type detailLoadedMsg struct {
	incident *client.Incident
	err      error
}

// editLoadedMsg is sent when the record fetch backing the edit form resolves
type editLoadedMsg struct {
	incident *client.Incident
	err      error
}

// incidentSavedMsg is sent when a create or update request resolves
type incidentSavedMsg struct {
	created bool
	err     error
}

// incidentDeletedMsg is sent when a delete request resolves
type incidentDeletedMsg struct {
	err error
}

// App is the root model for the TUI
type App struct {
	client *client.Client
	store  *session.Store
	screen Screen
	width  int
	height int

	// Transient acknowledgment line shown in the frame
	notice    string
	noticeErr bool

	// Authenticated role-scope once logged in
	scope session.Scope

	// Child models
	loginScreen    *login.Login
	registerScreen *register.Register
	list           *incidentlist.List
	detailScreen   *detail.Detail
	form           *incidentform.Form
}

// New creates a new TUI application
func New(apiClient *client.Client, store *session.Store) *App {
	return &App{
		client:      apiClient,
		store:       store,
		screen:      ScreenLogin,
		loginScreen: login.New(session.ScopeUser),
		list:        incidentlist.New(),
	}
}

// Init implements tea.Model. The session gate runs once on mount: a stored
// token skips the login screen entirely.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loginScreen.Init(), a.checkSession(session.ScopeUser))
}

// checkSession reads the token slot for the scope. Read failures behave as
// "no token": the gate fails open to the unauthenticated view.
func (a *App) checkSession(scope session.Scope) tea.Cmd {
	return func() tea.Msg {
		return sessionCheckedMsg{scope: scope, token: a.store.Load(scope)}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.list != nil {
			a.list.SetSize(msg.Width, msg.Height)
		}
		if a.detailScreen != nil {
			a.detailScreen.SetSize(msg.Width)
		}
		// Forward to form screens for huh internals
		if cmd := a.forwardToActive(msg); cmd != nil {
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "q" && (a.screen == ScreenList || a.screen == ScreenDetail) {
			return a, tea.Quit
		}
		a.notice = ""
		return a, a.forwardToActive(msg)

	case sessionCheckedMsg:
		return a.handleSessionChecked(msg)

	case login.SubmitMsg:
		return a, a.doLogin(msg.Scope, msg.Creds)

	case login.RegisterMsg:
		a.registerScreen = register.New(msg.Scope)
		a.screen = ScreenRegister
		return a, a.registerScreen.Init()

	case login.SwitchScopeMsg:
		return a.switchLoginScope()

	case login.CancelledMsg:
		return a, tea.Quit

	case register.CompleteMsg:
		return a, a.doRegister(msg)

	case register.CancelledMsg:
		return a.gotoLogin(a.registerScopeOrUser())

	case incidentlist.SelectedMsg:
		return a.gotoDetail(msg.ID)

	case incidentlist.DeleteMsg:
		return a, a.deleteIncident(msg.ID)

	case incidentlist.NewMsg:
		return a.gotoCreate()

	case incidentlist.RefreshMsg:
		return a, a.fetchIncidents()

	case incidentlist.LogoutMsg:
		return a, a.doLogout(a.scope)

	case detail.EditMsg:
		return a.gotoEdit(msg.ID)

	case detail.DeleteMsg:
		return a, a.deleteIncident(msg.ID)

	case detail.NewMsg:
		return a.gotoCreate()

	case detail.BackMsg:
		return a.gotoList()

	case incidentform.CompleteMsg:
		return a, a.saveIncident(msg.ID, msg.Input)

	case incidentform.CancelledMsg:
		a.form = nil
		return a.gotoList()

	case loginDoneMsg:
		return a.handleLoginDone(msg)

	case registerDoneMsg:
		return a.handleRegisterDone(msg)

	case loggedOutMsg:
		return a.handleLoggedOut(msg)

	case incidentsLoadedMsg:
		if msg.err != nil {
			// The previously displayed list stays untouched.
			a.setNotice("Could not load the cases.", true)
			return a, nil
		}
		a.list.SetIncidents(msg.incidents)
		return a, nil

	case detailLoadedMsg:
		if msg.err != nil {
			a.setNotice("Could not load the case data.", true)
			return a.gotoList()
		}
		if a.detailScreen != nil {
			a.detailScreen.SetIncident(msg.incident)
		}
		return a, nil

	case editLoadedMsg:
		if msg.err != nil {
			a.setNotice("Could not load the case data.", true)
			a.form = nil
			return a.gotoList()
		}
		if a.form != nil {
			return a, a.form.Populate(msg.incident)
		}
		return a, nil

	case incidentSavedMsg:
		return a.handleIncidentSaved(msg)

	case incidentDeletedMsg:
		if msg.err != nil {
			// The in-memory list stays unchanged on failure.
			a.setNotice("Could not delete the case.", true)
			return a, nil
		}
		a.setNotice("Case deleted.", false)
		return a.gotoList()

	default:
		// Forward unknown messages to huh-backed screens (needed for form internals)
		return a, a.forwardToActive(msg)
	}
}

// forwardToActive routes a message to the model owning the current screen
func (a *App) forwardToActive(msg tea.Msg) tea.Cmd {
	switch a.screen {
	case ScreenLogin, ScreenOngLogin:
		if a.loginScreen == nil {
			return nil
		}
		model, cmd := a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
		return cmd
	case ScreenRegister:
		if a.registerScreen == nil {
			return nil
		}
		model, cmd := a.registerScreen.Update(msg)
		a.registerScreen = model.(*register.Register)
		return cmd
	case ScreenList:
		if a.list == nil {
			return nil
		}
		model, cmd := a.list.Update(msg)
		a.list = model.(*incidentlist.List)
		return cmd
	case ScreenDetail:
		if a.detailScreen == nil {
			return nil
		}
		model, cmd := a.detailScreen.Update(msg)
		a.detailScreen = model.(*detail.Detail)
		return cmd
	case ScreenNew, ScreenEdit:
		if a.form == nil {
			return nil
		}
		model, cmd := a.form.Update(msg)
		a.form = model.(*incidentform.Form)
		return cmd
	}
	return nil
}

// handleSessionChecked applies the session gate result. A present token
// replaces the login screen with the list; absence leaves the login form up
// and takes no navigation action.
func (a *App) handleSessionChecked(msg sessionCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.token == "" {
		return a, nil
	}
	if a.screen != ScreenLogin && a.screen != ScreenOngLogin {
		return a, nil
	}
	a.scope = msg.scope
	a.loginScreen = nil
	return a.gotoList()
}

func (a *App) switchLoginScope() (tea.Model, tea.Cmd) {
	if a.screen == ScreenOngLogin {
		return a.gotoLogin(session.ScopeUser)
	}
	return a.gotoLogin(session.ScopeONG)
}

// gotoLogin replaces the current screen with the login form for the scope
// and re-runs the gate for that scope's slot (a fresh mount).
func (a *App) gotoLogin(scope session.Scope) (tea.Model, tea.Cmd) {
	a.loginScreen = login.New(scope)
	a.registerScreen = nil
	if scope == session.ScopeONG {
		a.screen = ScreenOngLogin
	} else {
		a.screen = ScreenLogin
	}
	return a, tea.Batch(a.loginScreen.Init(), a.checkSession(scope))
}

// gotoList navigates to the list screen and triggers a refresh. Every
// re-entry counts as a focus regain, so returning from detail, create, or
// edit resyncs the collection without a manual refresh.
func (a *App) gotoList() (tea.Model, tea.Cmd) {
	a.screen = ScreenList
	a.detailScreen = nil
	a.form = nil
	if a.list == nil {
		a.list = incidentlist.New()
	}
	a.list.SetSize(a.width, a.height)
	return a, a.fetchIncidents()
}

func (a *App) gotoDetail(id string) (tea.Model, tea.Cmd) {
	a.detailScreen = detail.New(id)
	a.detailScreen.SetSize(a.width)
	a.screen = ScreenDetail
	return a, tea.Batch(a.detailScreen.Init(), a.fetchDetail(id))
}

func (a *App) gotoCreate() (tea.Model, tea.Cmd) {
	a.form = incidentform.NewCreate()
	a.screen = ScreenNew
	return a, a.form.Init()
}

func (a *App) gotoEdit(id string) (tea.Model, tea.Cmd) {
	a.form = incidentform.NewEdit(id)
	a.screen = ScreenEdit
	return a, tea.Batch(a.form.Init(), a.fetchEdit(id))
}

func (a *App) registerScopeOrUser() session.Scope {
	if a.registerScreen != nil {
		return a.registerScreen.Scope()
	}
	return session.ScopeUser
}

// setNotice records a transient acknowledgment rendered in the frame
func (a *App) setNotice(text string, isErr bool) {
	a.notice = text
	a.noticeErr = isErr
}

// doLogin issues one login request. The store write happens inside the
// command, after the response is known successful and before any
// navigation message is processed.
func (a *App) doLogin(scope session.Scope, creds client.Credentials) tea.Cmd {
	return func() tea.Msg {
		var resp *client.LoginResponse
		var err error
		if scope == session.ScopeONG {
			resp, err = a.client.LoginONG(context.Background(), creds)
		} else {
			resp, err = a.client.Login(context.Background(), creds)
		}
		if err != nil {
			return loginDoneMsg{scope: scope, err: err}
		}
		if resp.AccessToken == "" {
			return loginDoneMsg{scope: scope}
		}
		if err := a.store.Save(scope, resp.AccessToken); err != nil {
			return loginDoneMsg{scope: scope, err: err}
		}
		return loginDoneMsg{scope: scope, token: resp.AccessToken}
	}
}

func (a *App) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.setNotice("Login failed. Check your credentials.", true)
		if a.loginScreen != nil {
			return a, a.loginScreen.Reset()
		}
		return a, nil
	}
	if msg.token == "" {
		a.setNotice("No access token in the response.", true)
		if a.loginScreen != nil {
			return a, a.loginScreen.Reset()
		}
		return a, nil
	}
	a.scope = msg.scope
	a.loginScreen = nil
	a.setNotice("Logged in. Welcome!", false)
	return a.gotoList()
}

// doRegister issues one signup request for the payload's scope
func (a *App) doRegister(msg register.CompleteMsg) tea.Cmd {
	return func() tea.Msg {
		var err error
		if msg.Scope == session.ScopeONG {
			err = a.client.RegisterONG(context.Background(), msg.ONG)
		} else {
			err = a.client.RegisterUser(context.Background(), msg.User)
		}
		return registerDoneMsg{scope: msg.Scope, err: err}
	}
}

func (a *App) handleRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.setNotice(mutationFailureNotice("Signup failed", msg.err), true)
		if a.registerScreen != nil {
			return a, a.registerScreen.Reset()
		}
		return a, nil
	}
	a.setNotice("Signup complete. Sign in to continue.", false)
	return a.gotoLogin(msg.scope)
}

// doLogout clears the scope's token slot
func (a *App) doLogout(scope session.Scope) tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{scope: scope, err: a.store.Clear(scope)}
	}
}

func (a *App) handleLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.setNotice("Could not log out.", true)
		return a, nil
	}
	a.setNotice("You are out! See you soon...", false)
	return a.gotoLogin(msg.scope)
}

// fetchIncidents creates a command fetching the full current collection.
// Concurrent refreshes are possible on rapid focus changes; responses are
// applied in arrival order and the last one wins.
func (a *App) fetchIncidents() tea.Cmd {
	return func() tea.Msg {
		incidents, err := a.client.ListIncidents(context.Background())
		return incidentsLoadedMsg{incidents: incidents, err: err}
	}
}

func (a *App) fetchDetail(id string) tea.Cmd {
	return func() tea.Msg {
		incident, err := a.client.GetIncident(context.Background(), id)
		return detailLoadedMsg{incident: incident, err: err}
	}
}

func (a *App) fetchEdit(id string) tea.Cmd {
	return func() tea.Msg {
		incident, err := a.client.GetIncident(context.Background(), id)
		return editLoadedMsg{incident: incident, err: err}
	}
}

// saveIncident issues one create or update request
func (a *App) saveIncident(id string, input client.IncidentInput) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = a.client.CreateIncident(context.Background(), input)
			return incidentSavedMsg{created: true, err: err}
		}
		_, err = a.client.UpdateIncident(context.Background(), id, input)
		return incidentSavedMsg{err: err}
	}
}

func (a *App) handleIncidentSaved(msg incidentSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.created {
			a.setNotice(mutationFailureNotice("Could not register the case", msg.err), true)
		} else {
			a.setNotice("Could not update the case.", true)
		}
		// Field values stay exactly as the user left them.
		if a.form != nil {
			return a, a.form.Reset()
		}
		return a, nil
	}
	if msg.created {
		a.setNotice("Case registered successfully.", false)
	} else {
		a.setNotice("Case updated successfully.", false)
	}
	return a.gotoList()
}

// mutationFailureNotice classifies a mutation error by kind, surfacing the
// server's own message when one is present
func mutationFailureNotice(prefix string, err error) string {
	switch client.KindOf(err) {
	case client.KindServerRejected:
		if msg := client.ServerMessage(err); msg != "" {
			return prefix + ": " + msg
		}
		return prefix + ". Please try again."
	case client.KindNetwork:
		return prefix + ": no response from the server."
	default:
		return prefix + ". An unexpected error occurred, try again later."
	}
}

// deleteIncident issues one delete request with no confirmation step
func (a *App) deleteIncident(id string) tea.Cmd {
	return func() tea.Msg {
		return incidentDeletedMsg{err: a.client.DeleteIncident(context.Background(), id)}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin, ScreenOngLogin:
		content = a.viewLogin()
	case ScreenRegister:
		content = a.viewRegister()
	case ScreenList:
		content = a.viewList()
	case ScreenDetail:
		content = a.viewDetail()
	case ScreenNew, ScreenEdit:
		content = a.viewForm()
	default:
		content = a.viewLogin()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLogin() string {
	if a.loginScreen != nil {
		return a.loginScreen.View()
	}
	return ""
}

func (a *App) viewRegister() string {
	if a.registerScreen != nil {
		return a.registerScreen.View()
	}
	return ""
}

func (a *App) viewList() string {
	if a.list != nil {
		return a.list.View()
	}
	return ""
}

func (a *App) viewDetail() string {
	if a.detailScreen != nil {
		return a.detailScreen.View()
	}
	return ""
}

func (a *App) viewForm() string {
	if a.form != nil {
		return a.form.View()
	}
	return ""
}

// screenTitle returns the context label for the header's right side
func (a *App) screenTitle() string {
	switch a.screen {
	case ScreenOngLogin:
		return "ONG access"
	case ScreenRegister:
		return "signup"
	case ScreenList:
		return "cases"
	case ScreenDetail:
		return "case detail"
	case ScreenNew:
		return "new case"
	case ScreenEdit:
		return "edit case"
	default:
		return ""
	}
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Accent)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Be The Hero"))

	rightText := ""
	if t := a.screenTitle(); t != "" {
		rightText = contextStyle.Render(t) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and the notice line
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin, ScreenOngLogin:
		shortcuts = []string{"Enter Submit", "^R Signup", "^O Switch role", "Esc Quit"}
	case ScreenRegister:
		shortcuts = []string{"Enter Submit", "Esc Back"}
	case ScreenList:
		shortcuts = []string{"↑↓ Navigate", "Enter Open", "n New", "d Delete", "r Refresh", "l Logout", "q Quit"}
	case ScreenDetail:
		shortcuts = []string{"e Edit", "d Delete", "n New", "b Back", "q Quit"}
	case ScreenNew, ScreenEdit:
		shortcuts = []string{"Enter Next field", "Esc Cancel"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if a.notice != "" {
		noticeStyle := styles.NoticeOK
		if a.noticeErr {
			noticeStyle = styles.NoticeError
		}
		rightText = noticeStyle.Render(a.notice) + " "
		rightPlainText = a.notice + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(apiClient *client.Client, store *session.Store) error {
	app := New(apiClient, store)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
