// Package tui provides the Terminal User Interface for the mood client.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/mood/internal/service"
	"github.com/xolan/mood/internal/session"
	"github.com/xolan/mood/internal/tui/ui"
	"github.com/xolan/mood/internal/tui/views"
)

// Model is the root TUI model. It shows exactly one view, chosen by passing
// the requested route through the auth gate.
type Model struct {
	services *service.Services

	route  session.Route
	width  int
	height int
	status string

	loginView   views.LoginModel
	journalView views.JournalModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// themeSavedMsg reports the result of persisting the theme
type themeSavedMsg struct {
	theme string
	err   error
}

// New creates a new TUI model showing the journal, or the login view when
// there is no token.
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)

	m := Model{
		services:      services,
		themeProvider: themeProvider,
		styles:        themeProvider.Styles(),
		keys:          ui.DefaultKeyMap(),
	}
	m.open(session.RouteJournal)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.initView()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.closeView()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			return m.cycleTheme()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeView()
		return m, nil

	case ui.SignedInMsg:
		m.status = ""
		cmd := m.navigate(session.RouteJournal)
		return m, cmd

	case ui.SignedOutMsg:
		if msg.Err != nil {
			m.status = "Logout failed: " + msg.Err.Error()
		} else {
			m.status = ""
		}
		cmd := m.navigate(session.RouteJournal)
		return m, cmd

	case themeSavedMsg:
		if msg.err != nil {
			m.status = "Could not save theme: " + msg.err.Error()
		} else {
			m.status = "Theme: " + msg.theme
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.route {
	case session.RouteLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	default:
		m.journalView, cmd = m.journalView.Update(msg)
	}
	return m, cmd
}

// navigate tears down the current view and opens the view the auth gate
// allows for requested.
func (m *Model) navigate(requested session.Route) tea.Cmd {
	m.closeView()
	m.open(requested)
	m.resizeView()
	return m.initView()
}

func (m *Model) open(requested session.Route) {
	m.route = session.Guard(m.services.Session, requested)
	switch m.route {
	case session.RouteLogin:
		m.loginView = views.NewLoginModel(m.services.Auth, m.styles, m.keys)
	default:
		noticeFor := m.services.Config.Get().NoticeDuration()
		m.journalView = views.NewJournalModel(m.services, m.styles, m.keys, noticeFor)
	}
}

func (m Model) initView() tea.Cmd {
	if m.route == session.RouteLogin {
		return m.loginView.Init()
	}
	return m.journalView.Init()
}

func (m *Model) closeView() {
	if m.route == session.RouteLogin {
		m.loginView.Close()
	} else {
		m.journalView.Close()
	}
}

func (m *Model) resizeView() {
	contentHeight := m.height - 4 // header and status bar
	if m.route == session.RouteLogin {
		m.loginView.SetSize(m.width, contentHeight)
	} else {
		m.journalView.SetSize(m.width, contentHeight)
	}
}

// cycleTheme switches to the next theme and persists the choice.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	theme := m.themeProvider.Cycle()
	m.styles = m.themeProvider.Styles()

	changed := ui.ThemeChangedMsg{ThemeName: theme, Styles: m.styles}
	if m.route == session.RouteLogin {
		m.loginView, _ = m.loginView.Update(changed)
	} else {
		m.journalView, _ = m.journalView.Update(changed)
	}

	cfg := m.services.Config
	return m, func() tea.Msg {
		return themeSavedMsg{theme: theme, err: cfg.SetTheme(theme)}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.route == session.RouteLogin {
		b.WriteString(m.loginView.View())
	} else {
		b.WriteString(m.journalView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderHeader renders the title bar
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("mood")
	subtitle := m.styles.Muted.Render("sign in to your journal")
	if m.route != session.RouteLogin {
		subtitle = m.styles.Muted.Render("journal @ " + m.services.Auth.Status().APIURL)
	}
	return m.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, " ", subtitle))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.status != "" {
		parts = append(parts, m.styles.StatusHelp.Render(m.status))
	}

	if m.route == session.RouteLogin {
		parts = append(parts, m.renderKeyHelp("tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("enter", "submit"))
		parts = append(parts, m.renderKeyHelp("ctrl+r", "login/register"))
	} else {
		parts = append(parts, m.renderKeyHelp("tab", "next field"))
		parts = append(parts, m.renderKeyHelp("ctrl+s", "save"))
		parts = append(parts, m.renderKeyHelp("ctrl+r", "refresh"))
		parts = append(parts, m.renderKeyHelp("ctrl+l", "logout"))
	}
	parts = append(parts, m.renderKeyHelp("ctrl+t", "theme"))
	parts = append(parts, m.renderKeyHelp("esc", "quit"))

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// Route returns the route currently shown
func (m Model) Route() session.Route {
	return m.route
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
