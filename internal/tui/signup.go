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

// SignupModel is the Bubble Tea model for the account-creation screen:
// email, username, password, and an optional bio.
type SignupModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	fieldErrs  map[string]string
}

const (
	signupFieldEmail = iota
	signupFieldUsername
	signupFieldPassword
	signupFieldBio
)

func NewSignupModel(ctx context.Context, auth service.ClientAuthService) *SignupModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 30
	usernameInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	bioInput := textinput.New()
	bioInput.Placeholder = "bio (optional)"
	bioInput.CharLimit = 160
	bioInput.Width = 40

	return &SignupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, usernameInput, passwordInput, bioInput},
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
		}
		return m, nil
	}
	if rejection, ok := msg.(signupRejectedMsg); ok {
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

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdSignup(
				strings.TrimSpace(m.inputs[signupFieldEmail].Value()),
				strings.TrimSpace(m.inputs[signupFieldUsername].Value()),
				m.inputs[signupFieldPassword].Value(),
				strings.TrimSpace(m.inputs[signupFieldBio].Value()),
			)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create account"))
	b.WriteString("\n\n")
	b.WriteString("Email    [" + m.inputs[signupFieldEmail].View() + "]\n")
	b.WriteString("Username [" + m.inputs[signupFieldUsername].View() + "]\n")
	b.WriteString("Password [" + m.inputs[signupFieldPassword].View() + "]\n")
	b.WriteString("Bio      [" + m.inputs[signupFieldBio].View() + "]\n")

	for _, field := range []string{models.FieldEmail, models.FieldUsername, models.FieldPassword, models.FieldBio} {
		if msg, ok := m.fieldErrs[field]; ok {
			b.WriteString(errorStyle.Render(field+": "+msg) + "\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.submitting {
		b.WriteString("\ncreating account...\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit · tab next field · esc back"))
	return appStyle.Render(b.String())
}

// signupRejectedMsg carries a structured rejection of the signup form.
type signupRejectedMsg struct {
	state models.FormState
}

func (m *SignupModel) focusInput(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// cmdSignup submits the form off the UI goroutine. On success the server has
// already set the session cookie, so the flow finishes immediately.
func (m *SignupModel) cmdSignup(email, username, password, bio string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.auth.Signup(m.ctx, email, username, password, bio)
		if err != nil {
			return authDoneMsg{err: err}
		}
		if !state.Success {
			return signupRejectedMsg{state: state}
		}

		return authDoneMsg{username: username}
	}
}
