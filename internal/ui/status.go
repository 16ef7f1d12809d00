package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deckhand-cli/deckhand/internal/state"
)

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("deckhand")

	var right string
	if m.st.Auth.LoggedIn {
		who := m.st.Auth.Profile.Name
		if who == "" {
			who = m.st.Auth.Profile.Email
		}
		right = m.styles.Muted.Render(who)
	}

	if m.width <= 0 {
		return title
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

// renderStatusBar shows the surfaced operation's state: a spinner while
// anything is in flight, otherwise the last terminal message.
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.st.Request.Busy():
		left = m.spin.View() + " working"
	case m.st.Request.Status == state.StatusError:
		left = m.styles.Danger.Render(m.st.Request.Err)
	case m.st.Request.Info != "":
		left = m.styles.Success.Render(m.st.Request.Info)
	}

	right := m.styles.Muted.Render("? help  T theme  ctrl+c quit")

	if m.width <= 0 {
		return left
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
