package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deckhand-cli/deckhand/internal/state"
)

func (m Model) handleCardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewPacks
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.fetchCards(m.st.Cards.PackID)

	case key.Matches(msg, m.keys.Search):
		m.prompt = promptCardSearch
		m.promptInput.SetValue(m.st.Cards.Question)
		m.promptInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.SortGrade):
		return m.sortCards("grade")
	case key.Matches(msg, m.keys.SortUpdated):
		return m.sortCards("updated")

	case key.Matches(msg, m.keys.PrevPage):
		if m.st.Cards.Page > 1 {
			m.st = state.Reduce(m.st, state.SetCardsPage{Page: m.st.Cards.Page - 1})
			return m.fetchCards(m.st.Cards.PackID)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.st.Cards.Page < pageTotal(m.st.Cards.TotalCount, m.st.Cards.PageSize) {
			m.st = state.Reduce(m.st, state.SetCardsPage{Page: m.st.Cards.Page + 1})
			return m.fetchCards(m.st.Cards.PackID)
		}
		return m, nil

	case key.Matches(msg, m.keys.GrowPage):
		m.st = state.Reduce(m.st, state.SetCardsPageSize{Size: m.st.Cards.PageSize + 5})
		return m.fetchCards(m.st.Cards.PackID)

	case key.Matches(msg, m.keys.ShrinkPage):
		if m.st.Cards.PageSize > 5 {
			m.st = state.Reduce(m.st, state.SetCardsPageSize{Size: m.st.Cards.PageSize - 5})
			return m.fetchCards(m.st.Cards.PackID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.cardsTable, cmd = m.cardsTable.Update(msg)
	return m, cmd
}

func (m Model) sortCards(field string) (tea.Model, tea.Cmd) {
	m.st = state.Reduce(m.st, state.SetCardSort{Sort: state.ToggleSort(m.st.Cards.Sort, field)})
	return m.fetchCards(m.st.Cards.PackID)
}

func (m Model) renderCards() string {
	var b strings.Builder

	name := m.st.Cards.PackID
	for _, p := range m.st.Packs.Packs {
		if p.ID == m.st.Cards.PackID {
			name = p.Name
			break
		}
	}
	line := fmt.Sprintf("pack:%s  sort:%s", name, describeSort(m.st.Cards.Sort))
	if m.st.Cards.Question != "" {
		line += fmt.Sprintf("  question:%q", m.st.Cards.Question)
	}
	b.WriteString(m.styles.Muted.Render(line))
	b.WriteString("\n")

	b.WriteString(m.cardsTable.View())
	b.WriteString("\n")

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("page %d/%d  %d cards",
		m.st.Cards.Page,
		pageTotal(m.st.Cards.TotalCount, m.st.Cards.PageSize),
		m.st.Cards.TotalCount)))

	if m.prompt != promptNone {
		b.WriteString("\n")
		b.WriteString(m.renderPrompt())
	}
	return b.String()
}
