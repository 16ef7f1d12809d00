package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/state"
)

func (m *Model) initTables() {
	packCols := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Cards", Width: 6},
		{Title: "Updated", Width: 12},
		{Title: "Author", Width: 20},
	}
	cardCols := []table.Column{
		{Title: "Question", Width: 34},
		{Title: "Answer", Width: 30},
		{Title: "Grade", Width: 6},
		{Title: "Updated", Width: 12},
	}

	ts := table.DefaultStyles()
	ts.Header = m.styles.Header
	ts.Selected = m.styles.Selected

	packs := table.New(table.WithColumns(packCols), table.WithFocused(true))
	packs.SetStyles(ts)
	cards := table.New(table.WithColumns(cardCols), table.WithFocused(true))
	cards.SetStyles(ts)

	m.packsTable = packs
	m.cardsTable = cards
}

func (m *Model) resizeTables() {
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	m.packsTable.SetHeight(h)
	m.cardsTable.SetHeight(h)
}

// syncTables rebuilds the table rows from the current state snapshot.
func (m *Model) syncTables() {
	rows := make([]table.Row, 0, len(m.st.Packs.Packs))
	for _, p := range m.st.Packs.Packs {
		rows = append(rows, table.Row{
			truncate(p.Name, 30),
			strconv.Itoa(p.CardsCount),
			relativeTime(p.ParsedUpdatedAt()),
			truncate(p.OwnerName, 20),
		})
	}
	m.packsTable.SetRows(rows)

	cardRows := make([]table.Row, 0, len(m.st.Cards.Cards))
	for _, c := range m.st.Cards.Cards {
		cardRows = append(cardRows, table.Row{
			truncate(c.Question, 34),
			truncate(c.Answer, 30),
			fmt.Sprintf("%.1f", c.Grade),
			relativeTime(c.ParsedUpdatedAt()),
		})
	}
	m.cardsTable.SetRows(cardRows)
}

// selectedPack returns the pack under the cursor, if any.
func (m Model) selectedPack() (flashcards.CardPack, bool) {
	i := m.packsTable.Cursor()
	if i < 0 || i >= len(m.st.Packs.Packs) {
		return flashcards.CardPack{}, false
	}
	return m.st.Packs.Packs[i], true
}

func (m Model) handlePacksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.fetchPacks(false)

	case key.Matches(msg, m.keys.ResetFilters):
		return m.fetchPacks(true)

	case key.Matches(msg, m.keys.Search):
		m.prompt = promptPackSearch
		m.promptInput.SetValue(m.st.Packs.NameFilter)
		m.promptInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.ToggleOwner):
		next := state.OwnershipMine
		if m.st.Packs.Ownership == state.OwnershipMine {
			next = state.OwnershipAll
		}
		m.st = state.Reduce(m.st, state.SetPackOwnership{Ownership: next})
		return m.fetchPacks(false)

	case key.Matches(msg, m.keys.SortName):
		return m.sortPacks("name")
	case key.Matches(msg, m.keys.SortCards):
		return m.sortPacks("cardsCount")
	case key.Matches(msg, m.keys.SortUpdated):
		return m.sortPacks("updated")

	case key.Matches(msg, m.keys.PrevPage):
		if m.st.Packs.Page > 1 {
			m.st = state.Reduce(m.st, state.SetPacksPage{Page: m.st.Packs.Page - 1})
			return m.fetchPacks(false)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.st.Packs.Page < pageTotal(m.st.Packs.TotalCount, m.st.Packs.PageSize) {
			m.st = state.Reduce(m.st, state.SetPacksPage{Page: m.st.Packs.Page + 1})
			return m.fetchPacks(false)
		}
		return m, nil

	case key.Matches(msg, m.keys.GrowPage):
		m.st = state.Reduce(m.st, state.SetPacksPageSize{Size: m.st.Packs.PageSize + 5})
		return m.fetchPacks(false)

	case key.Matches(msg, m.keys.ShrinkPage):
		if m.st.Packs.PageSize > 5 {
			m.st = state.Reduce(m.st, state.SetPacksPageSize{Size: m.st.Packs.PageSize - 5})
			return m.fetchPacks(false)
		}
		return m, nil

	case key.Matches(msg, m.keys.EditBounds):
		m.prompt = promptBounds
		m.boundsMin.SetValue(strconv.Itoa(m.st.Packs.Slider.Min))
		m.boundsMax.SetValue(strconv.Itoa(m.st.Packs.Slider.Max))
		m.boundsFocus = 0
		m.boundsMin.Focus()
		m.boundsMax.Blur()
		return m, nil

	case key.Matches(msg, m.keys.NewPack):
		m.prompt = promptNewPack
		m.promptInput.SetValue("")
		m.promptInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.RenamePack):
		pack, ok := m.selectedPack()
		if !ok || pack.OwnerID != m.st.Auth.Profile.ID {
			return m, nil
		}
		m.prompt = promptRenamePack
		m.promptInput.SetValue(pack.Name)
		m.promptInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.DeletePack):
		pack, ok := m.selectedPack()
		if !ok || pack.OwnerID != m.st.Auth.Profile.ID {
			return m, nil
		}
		return m.deletePack(pack.ID)

	case key.Matches(msg, m.keys.OpenPack):
		pack, ok := m.selectedPack()
		if !ok {
			return m, nil
		}
		m.st = state.Apply(m.st,
			state.SetCardQuestion{Question: ""},
			state.SetCardsPage{Page: 1},
		)
		m.currentView = ViewCards
		return m.fetchCards(pack.ID)

	case key.Matches(msg, m.keys.Profile):
		m.profileForm.reset()
		m.profileForm.inputs[0].SetValue(m.st.Auth.Profile.Name)
		m.profileForm.inputs[1].SetValue(m.st.Auth.Profile.Avatar)
		m.currentView = ViewProfile
		return m, nil

	case key.Matches(msg, m.keys.SignOut):
		return m.runOp(m.co.Logout)
	}

	var cmd tea.Cmd
	m.packsTable, cmd = m.packsTable.Update(msg)
	return m, cmd
}

// sortPacks toggles direction on the currently sorted field and starts
// descending on a new one.
func (m Model) sortPacks(field string) (tea.Model, tea.Cmd) {
	m.st = state.Reduce(m.st, state.SetPackSort{Sort: state.ToggleSort(m.st.Packs.Sort, field)})
	return m.fetchPacks(false)
}

// deletePack dispatches the delete-then-refresh composite.
func (m Model) deletePack(id string) (Model, tea.Cmd) {
	op := state.NewOpID()
	m.st = state.Reduce(m.st, state.OpStarted{ID: op})
	m.st = state.Reduce(m.st, state.PacksFetchStarted{})
	gen := m.st.Packs.Gen
	query := state.PackParams(m.st)
	co, ctx := m.co, m.ctx
	return m, func() tea.Msg { return actionsMsg(co.DeletePack(ctx, op, gen, id, query)) }
}

// handlePromptKey routes input while a one-line prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt = promptNone
		m.promptInput.Blur()
		return m, nil
	case tea.KeyEnter:
		return m.submitPrompt()
	}

	if m.prompt == promptBounds {
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab {
			if m.boundsFocus == 0 {
				m.boundsFocus = 1
				m.boundsMin.Blur()
				m.boundsMax.Focus()
			} else {
				m.boundsFocus = 0
				m.boundsMax.Blur()
				m.boundsMin.Focus()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if m.boundsFocus == 0 {
			m.boundsMin, cmd = m.boundsMin.Update(msg)
		} else {
			m.boundsMax, cmd = m.boundsMax.Update(msg)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	mode := m.prompt
	value := strings.TrimSpace(m.promptInput.Value())
	m.prompt = promptNone
	m.promptInput.Blur()

	switch mode {
	case promptPackSearch:
		m.st = state.Reduce(m.st, state.SetPackName{Name: value})
		return m.fetchPacks(false)

	case promptCardSearch:
		m.st = state.Reduce(m.st, state.SetCardQuestion{Question: value})
		return m.fetchCards(m.st.Cards.PackID)

	case promptNewPack:
		if value == "" {
			return m, nil
		}
		op := state.NewOpID()
		m.st = state.Reduce(m.st, state.OpStarted{ID: op})
		m.st = state.Reduce(m.st, state.PacksFetchStarted{})
		gen := m.st.Packs.Gen
		query := state.PackParams(m.st)
		co, ctx := m.co, m.ctx
		attrs := flashcards.PackAttrs{Name: value}
		return m, func() tea.Msg { return actionsMsg(co.CreatePack(ctx, op, gen, attrs, query)) }

	case promptRenamePack:
		pack, ok := m.selectedPack()
		if !ok || value == "" {
			return m, nil
		}
		op := state.NewOpID()
		m.st = state.Reduce(m.st, state.OpStarted{ID: op})
		m.st = state.Reduce(m.st, state.PacksFetchStarted{})
		gen := m.st.Packs.Gen
		query := state.PackParams(m.st)
		co, ctx := m.co, m.ctx
		upd := flashcards.PackUpdate{ID: pack.ID, Name: value}
		return m, func() tea.Msg { return actionsMsg(co.RenamePack(ctx, op, gen, upd, query)) }

	case promptBounds:
		min, _ := strconv.Atoi(strings.TrimSpace(m.boundsMin.Value()))
		max, _ := strconv.Atoi(strings.TrimSpace(m.boundsMax.Value()))
		if min > max {
			min, max = max, min
		}
		m.st = state.Reduce(m.st, state.SetPackBounds{Min: min, Max: max})
		return m.fetchPacks(false)
	}
	return m, nil
}

func (m Model) renderPacks() string {
	var b strings.Builder

	filters := fmt.Sprintf("owner:%s  sort:%s  range:%d-%d",
		m.st.Packs.Ownership,
		describeSort(m.st.Packs.Sort),
		m.st.Packs.Slider.Min, m.st.Packs.Slider.Max)
	if m.st.Packs.NameFilter != "" {
		filters += fmt.Sprintf("  name:%q", m.st.Packs.NameFilter)
	}
	b.WriteString(m.styles.Muted.Render(filters))
	b.WriteString("\n")

	b.WriteString(m.packsTable.View())
	b.WriteString("\n")

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("page %d/%d  %d packs",
		m.st.Packs.Page,
		pageTotal(m.st.Packs.TotalCount, m.st.Packs.PageSize),
		m.st.Packs.TotalCount)))

	if m.prompt != promptNone {
		b.WriteString("\n")
		b.WriteString(m.renderPrompt())
	}
	return b.String()
}

func (m Model) renderPrompt() string {
	switch m.prompt {
	case promptPackSearch:
		return m.styles.Accent.Render("search packs: ") + m.promptInput.View()
	case promptCardSearch:
		return m.styles.Accent.Render("search cards: ") + m.promptInput.View()
	case promptNewPack:
		return m.styles.Accent.Render("new pack name: ") + m.promptInput.View()
	case promptRenamePack:
		return m.styles.Accent.Render("rename pack: ") + m.promptInput.View()
	case promptBounds:
		return m.styles.Accent.Render("card-count range: ") +
			m.boundsMin.View() + " " + m.boundsMax.View()
	}
	return ""
}

func describeSort(sort string) string {
	field := state.SortField(sort)
	if field == "" {
		return "none"
	}
	if state.SortDescending(sort) {
		return field + " desc"
	}
	return field + " asc"
}

func pageTotal(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
