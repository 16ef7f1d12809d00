package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/state"
)

// activeForm returns the form for the current auth view.
func (m *Model) activeForm() *form {
	switch m.currentView {
	case ViewSignUp:
		return &m.signUp
	case ViewForgot:
		return &m.forgot
	case ViewSetNewPassword:
		return &m.newPass
	case ViewProfile:
		return &m.profileForm
	default:
		return &m.signIn
	}
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.activeForm()

	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		f.cycle(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.cycle(-1)
		return m, nil
	case tea.KeyEnter:
		return m.submitAuth()
	case tea.KeyEsc:
		if m.currentView != ViewSignIn {
			m.currentView = ViewSignIn
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+u":
		if m.currentView == ViewSignIn {
			m.signUp.reset()
			m.currentView = ViewSignUp
			return m, nil
		}
	case "ctrl+f":
		if m.currentView == ViewSignIn {
			m.forgot.reset()
			m.currentView = ViewForgot
			return m, nil
		}
	case "ctrl+r":
		if m.currentView == ViewSignIn {
			m.rememberMe = !m.rememberMe
			return m, nil
		}
	}

	cmd := f.update(msg)
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	if m.st.Request.Busy() {
		return m, nil
	}

	switch m.currentView {
	case ViewSignIn:
		creds := flashcards.Credentials{
			Email:      m.signIn.value(0),
			Password:   m.signIn.value(1),
			RememberMe: m.rememberMe,
		}
		if creds.Email == "" || creds.Password == "" {
			return m, nil
		}
		co := m.co
		return m.runOp(func(ctx context.Context, op state.OpID) []state.Action {
			return co.Login(ctx, op, creds)
		})

	case ViewSignUp:
		email, password, confirm := m.signUp.value(0), m.signUp.value(1), m.signUp.value(2)
		if email == "" || password == "" {
			return m, nil
		}
		if password != confirm {
			op := state.NewOpID()
			m.st = state.Apply(m.st,
				state.OpStarted{ID: op},
				state.OpDone{ID: op, Err: "passwords do not match"},
			)
			return m, nil
		}
		form := flashcards.RegisterForm{Email: email, Password: password}
		co := m.co
		return m.runOp(func(ctx context.Context, op state.OpID) []state.Action {
			return co.Register(ctx, op, form)
		})

	case ViewForgot:
		email := m.forgot.value(0)
		if email == "" {
			return m, nil
		}
		co := m.co
		return m.runOp(func(ctx context.Context, op state.OpID) []state.Action {
			return co.RequestPasswordReset(ctx, op, email)
		})

	case ViewSetNewPassword:
		token, password := m.newPass.value(0), m.newPass.value(1)
		if token == "" || password == "" {
			return m, nil
		}
		co := m.co
		return m.runOp(func(ctx context.Context, op state.OpID) []state.Action {
			return co.SetNewPassword(ctx, op, password, token)
		})
	}
	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.currentView = ViewPacks
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.profileForm.cycle(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.profileForm.cycle(-1)
		return m, nil
	case tea.KeyEnter:
		if m.st.Request.Busy() {
			return m, nil
		}
		upd := flashcards.ProfileUpdate{
			Name:   m.profileForm.value(0),
			Avatar: m.profileForm.value(1),
		}
		co := m.co
		return m.runOp(func(ctx context.Context, op state.OpID) []state.Action {
			return co.UpdateProfile(ctx, op, upd)
		})
	}

	cmd := m.profileForm.update(msg)
	return m, cmd
}

func (m Model) renderSignIn() string {
	remember := "[ ]"
	if m.rememberMe {
		remember = "[x]"
	}
	body := strings.Join([]string{
		m.styles.Title.Render("Sign in"),
		"",
		m.signIn.view(m.styles),
		"",
		m.styles.Text.Render(remember + " remember me (ctrl+r)"),
		"",
		m.styles.Muted.Render("enter sign in  ctrl+u sign up  ctrl+f forgot password"),
	}, "\n")
	return m.centered(m.styles.Box.Render(body))
}

func (m Model) renderSignUp() string {
	body := strings.Join([]string{
		m.styles.Title.Render("Sign up"),
		"",
		m.signUp.view(m.styles),
		"",
		m.styles.Muted.Render("enter create account  esc back"),
	}, "\n")
	return m.centered(m.styles.Box.Render(body))
}

func (m Model) renderForgot() string {
	lines := []string{
		m.styles.Title.Render("Forgot password"),
		"",
		m.forgot.view(m.styles),
		"",
		m.styles.Muted.Render("enter send reset mail  esc back"),
	}
	if m.st.Auth.Recovery.TokenAccepted {
		lines = append(lines, "",
			m.styles.Success.Render(fmt.Sprintf("reset mail sent to %s", m.st.Auth.Recovery.Email)))
	}
	return m.centered(m.styles.Box.Render(strings.Join(lines, "\n")))
}

func (m Model) renderSetNewPassword() string {
	body := strings.Join([]string{
		m.styles.Title.Render("Set new password"),
		"",
		m.newPass.view(m.styles),
		"",
		m.styles.Muted.Render("enter change password  esc back"),
	}, "\n")
	return m.centered(m.styles.Box.Render(body))
}

func (m Model) renderProfile() string {
	lines := []string{
		m.styles.Title.Render("Profile"),
		"",
		m.styles.Text.Render("Email: " + m.st.Auth.Profile.Email),
		"",
		m.profileForm.view(m.styles),
		"",
		m.styles.Muted.Render("enter save  esc back"),
	}
	return m.centered(m.styles.Box.Render(strings.Join(lines, "\n")))
}
