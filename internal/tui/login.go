// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/models"
)

// SignInModel is the Bubble Tea model for the sign-in screen. It renders two
// text inputs (handle and app password) and dispatches an async sign-in
// command on submission. On success a [signedInMsg] is produced and handled
// by [RootModel], which opens the timeline.
type SignInModel struct {
	sh *shell

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

// NewSignInModel creates a [SignInModel] with the handle input focused; the
// password field uses masked echo.
func NewSignInModel(sh *shell) *SignInModel {
	handleInput := textinput.New()
	handleInput.Placeholder = "handle.bsky.social"
	handleInput.CharLimit = 253
	handleInput.Width = 40
	handleInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "app password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &SignInModel{
		sh:     sh,
		inputs: []textinput.Model{handleInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [signInDoneMsg]   clears submitting state; on success loads the session.
//   - [signInStatusMsg] shows why the user was sent back here.
//   - tab / shift+tab   moves focus between inputs.
//   - enter             validates inputs and dispatches the sign-in command.
//
// All other key events are forwarded to the focused input widget.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInDoneMsg:
		if !msg.result.Succeeded() {
			m.submitting = false
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.inputs[1].SetValue("")
		return m, m.cmdLoadSession()

	case refreshFeedMsg:
		// The feed opens after a successful sign-in.
		m.submitting = false
		m.errMsg = ""
		m.status = ""
		return m, nil

	case signInStatusMsg:
		m.submitting = false
		m.status = msg.text
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			identifier := strings.TrimSpace(m.inputs[0].Value())
			secret := m.inputs[1].Value()
			if identifier == "" || secret == "" {
				m.errMsg = "Handle and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(identifier, secret)
		}

	default:
		// Blink ticks are addressed to a single input.
		cmds := make([]tea.Cmd, len(m.inputs))
		for i := range m.inputs {
			m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Handle    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in │ ctrl+b: about")
}

func (m *SignInModel) cmdSignIn(identifier, secret string) tea.Cmd {
	return m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		return signInDoneMsg{result: b.SignIn(ctx, identifier, secret)}
	})
}

func (m *SignInModel) cmdLoadSession() tea.Cmd {
	return m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		session, err := b.Session(ctx)
		if err == nil && session.DID == "" {
			err = errors.New("signed in without a session")
		}
		if err != nil {
			return signInDoneMsg{result: models.StatusResult{Status: models.StatusError, Message: humanizeError(err)}}
		}
		return signedInMsg{session: session}
	})
}

func (m *SignInModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignInModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
