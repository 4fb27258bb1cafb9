// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-board/internal/service"
	"github.com/MKhiriev/go-feed-board/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (email and password) and dispatches an async login command on
// form submission. On success an authDoneMsg is produced and handled by
// [RootModel] to finish the authentication flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	fieldErrs  map[string]string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and
// password inputs. The email field receives focus immediately; the password
// field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
		}
		return m, nil
	}
	if rejection, ok := msg.(loginRejectedMsg); ok {
		m.submitting = false
		m.errMsg = rejection.state.Message
		m.fieldErrs = rejection.state.Errors
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.fieldErrs = nil
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab", "down":
			m.focusInput((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString("Email    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password [" + m.inputs[1].View() + "]\n")

	for _, field := range []string{models.FieldEmail, models.FieldPassword} {
		if msg, ok := m.fieldErrs[field]; ok {
			b.WriteString(errorStyle.Render(field+": "+msg) + "\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.submitting {
		b.WriteString("\nlogging in...\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit · tab next field · esc back"))
	return appStyle.Render(b.String())
}

// loginRejectedMsg carries a structured rejection of the login form.
type loginRejectedMsg struct {
	state models.FormState
}

func (m *LoginModel) focusInput(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// cmdLogin submits the form off the UI goroutine. A structured rejection and
// a transport failure arrive as different messages so the screen can render
// field errors separately.
func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.auth.Login(m.ctx, email, password)
		if err != nil {
			return authDoneMsg{err: err}
		}
		if !state.Success {
			return loginRejectedMsg{state: state}
		}

		session, err := m.auth.Session(m.ctx)
		if err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{username: session.Username}
	}
}
