package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/mood/internal/service"
	"github.com/xolan/mood/internal/tui/ui"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// LoginModel is the model for the login view. It is the only public route.
type LoginModel struct {
	auth   *service.AuthService
	styles ui.Styles
	keys   ui.KeyMap
	life   lifetime

	width  int
	height int

	email    textinput.Model
	password textinput.Model
	focus    int
	register bool

	submitting bool
	spinner    spinner.Model
	err        string
}

// NewLoginModel creates a new login view model
func NewLoginModel(auth *service.AuthService, styles ui.Styles, keys ui.KeyMap) LoginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 40

	return LoginModel{
		auth:     auth,
		styles:   styles,
		keys:     keys,
		life:     newLifetime(),
		email:    email,
		password: password,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// authResultMsg carries the outcome of a login or registration attempt
type authResultMsg struct {
	view uint64
	err  error
}

// Init implements tea.Model
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			// Inputs are frozen until the attempt resolves
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Confirm):
			if m.focus == loginFieldEmail && m.password.Value() == "" {
				m.setFocus(loginFieldPassword)
				return m, textinput.Blink
			}
			return m.submit()
		case key.Matches(msg, m.keys.ToggleRegister):
			m.register = !m.register
			m.err = ""
			return m, nil
		case key.Matches(msg, m.keys.NextField):
			m.setFocus((m.focus + 1) % loginFieldCount)
			return m, textinput.Blink
		case key.Matches(msg, m.keys.PrevField):
			m.setFocus((m.focus + loginFieldCount - 1) % loginFieldCount)
			return m, textinput.Blink
		}

		var cmd tea.Cmd
		if m.focus == loginFieldEmail {
			m.email, cmd = m.email.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
		return m, cmd

	case authResultMsg:
		if msg.view != m.life.id {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.err = loginErrorText(msg.err, m.register)
			return m, nil
		}
		m.err = ""
		return m, func() tea.Msg { return ui.SignedInMsg{} }

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	// Cursor blink and other internal messages go to the focused input
	var cmd tea.Cmd
	if m.focus == loginFieldEmail {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submit validates locally and starts the login or registration request.
func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	if err := service.CheckCredentials(email, password); err != nil {
		m.err = loginErrorText(err, m.register)
		if errors.Is(err, service.ErrMissingPassword) {
			m.setFocus(loginFieldPassword)
		} else {
			m.setFocus(loginFieldEmail)
		}
		return m, nil
	}

	m.submitting = true
	m.err = ""
	return m, tea.Batch(m.authenticate(email, password), m.spinner.Tick)
}

func (m LoginModel) authenticate(email, password string) tea.Cmd {
	auth := m.auth
	life := m.life
	register := m.register
	return func() tea.Msg {
		var err error
		if register {
			err = auth.Register(life.ctx, email, password)
		} else {
			err = auth.Login(life.ctx, email, password)
		}
		return authResultMsg{view: life.id, err: err}
	}
}

func (m *LoginModel) setFocus(field int) {
	m.focus = field
	if field == loginFieldEmail {
		m.password.Blur()
		m.email.Focus()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
}

func loginErrorText(err error, register bool) string {
	var authErr *service.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.Is(err, service.ErrMissingEmail),
		errors.Is(err, service.ErrMissingPassword),
		errors.Is(err, service.ErrInvalidEmail):
		msg := err.Error()
		return strings.ToUpper(msg[:1]) + msg[1:]
	case register:
		return service.RegisterFailedMessage
	}
	return service.LoginFailedMessage
}

// View implements tea.Model
func (m LoginModel) View() string {
	var b strings.Builder

	title := "Log in"
	action := "Log in"
	other := "create an account"
	if m.register {
		title = "Create an account"
		action = "Register"
		other = "log in instead"
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	b.WriteString(m.renderField("Email", m.email.View(), m.focus == loginFieldEmail))
	b.WriteString(m.renderField("Password", m.password.View(), m.focus == loginFieldPassword))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render("Signing in..."))
	} else {
		b.WriteString(m.styles.Hint.Render("enter: " + strings.ToLower(action) + "  ctrl+r: " + other))
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err))
		b.WriteString("\n")
	}

	return b.String()
}

func (m LoginModel) renderField(label, input string, focused bool) string {
	labelStyle, box := m.styles.Label, m.styles.Input
	if focused {
		labelStyle, box = m.styles.LabelFocused, m.styles.InputFocused
	}
	return labelStyle.Render(label) + "\n" + box.Render(input) + "\n"
}

// SetSize sets the view dimensions
func (m *LoginModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := min(40, max(10, width-12))
	m.email.Width = inputWidth
	m.password.Width = inputWidth
}

// Close cancels any request still in flight for this view.
func (m LoginModel) Close() {
	m.life.cancel()
}

// Registering reports whether the view is in registration mode
func (m LoginModel) Registering() bool {
	return m.register
}

// Submitting reports whether a login or registration request is in flight
func (m LoginModel) Submitting() bool {
	return m.submitting
}

// Err returns the error line currently shown
func (m LoginModel) Err() string {
	return m.err
}
