package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deckhand-cli/deckhand/internal/coordinator"
	"github.com/deckhand-cli/deckhand/internal/prefs"
	"github.com/deckhand-cli/deckhand/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewSignIn View = iota
	ViewSignUp
	ViewForgot
	ViewSetNewPassword
	ViewPacks
	ViewCards
	ViewProfile
)

// promptMode is the inline one-line prompt state on the list views.
type promptMode int

const (
	promptNone promptMode = iota
	promptPackSearch
	promptNewPack
	promptRenamePack
	promptBounds
	promptCardSearch
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Coordinator *coordinator.Coordinator
	Initial     state.State
	ThemeName   string
	PrefsPath   string
	PageSize    int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	co        *coordinator.Coordinator
	prefsPath string
	pageSize  int

	st state.State

	theme  Theme
	styles Styles
	keys   keyMap

	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	spin spinner.Model

	signIn      form
	rememberMe  bool
	signUp      form
	forgot      form
	newPass     form
	profileForm form

	packsTable table.Model
	cardsTable table.Model

	prompt      promptMode
	promptInput textinput.Model
	boundsMin   textinput.Model
	boundsMax   textinput.Model
	boundsFocus int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	st := opts.Initial
	pageSize := opts.PageSize
	if pageSize > 0 {
		st = state.Apply(st,
			state.SetPacksPageSize{Size: pageSize},
			state.SetCardsPageSize{Size: pageSize},
		)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Styles().Accent

	view := ViewSignIn
	if st.Auth.LoggedIn {
		view = ViewPacks
	}

	m := Model{
		ctx:         ctx,
		co:          opts.Coordinator,
		prefsPath:   prefsPath,
		pageSize:    pageSize,
		st:          st,
		theme:       theme,
		styles:      theme.Styles(),
		keys:        defaultKeyMap(),
		currentView: view,
		spin:        sp,
		signIn: newForm(
			formField{label: "Email", placeholder: "you@example.com"},
			formField{label: "Password", placeholder: "password", password: true},
		),
		signUp: newForm(
			formField{label: "Email", placeholder: "you@example.com"},
			formField{label: "Password", placeholder: "password", password: true},
			formField{label: "Confirm password", placeholder: "password again", password: true},
		),
		forgot: newForm(
			formField{label: "Email", placeholder: "you@example.com"},
		),
		newPass: newForm(
			formField{label: "Reset token", placeholder: "token from the mail"},
			formField{label: "New password", placeholder: "new password", password: true},
		),
		profileForm: newForm(
			formField{label: "Name", placeholder: "display name"},
			formField{label: "Avatar URL", placeholder: "https://..."},
		),
	}

	m.promptInput = textinput.New()
	m.promptInput.CharLimit = 256
	m.promptInput.Width = 40
	m.boundsMin = textinput.New()
	m.boundsMin.Placeholder = "min"
	m.boundsMin.CharLimit = 6
	m.boundsMin.Width = 8
	m.boundsMax = textinput.New()
	m.boundsMax.Placeholder = "max"
	m.boundsMax.CharLimit = 6
	m.boundsMax.Width = 8

	m.initTables()
	return m
}

type initFetchMsg struct{}

// actionsMsg delivers a finished coordinator's action batch to Update.
type actionsMsg []state.Action

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spin.Tick,
	}
	if m.st.Auth.LoggedIn {
		cmds = append(cmds, func() tea.Msg { return initFetchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeTables()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case initFetchMsg:
		return m.fetchPacks(true)

	case actionsMsg:
		return m.applyActions(msg)
	}

	return m, nil
}

// applyActions folds a coordinator result into the state and reacts to the
// transitions the UI cares about: forced logout and completed sign-in.
func (m Model) applyActions(actions []state.Action) (tea.Model, tea.Cmd) {
	wasLoggedIn := m.st.Auth.LoggedIn
	wasSignedUp := m.st.Auth.SignedUp

	m.st = state.Apply(m.st, actions...)
	m.syncTables()

	if wasLoggedIn && !m.st.Auth.LoggedIn {
		// Session died (401 or sign-out): back to the sign-in form.
		m.currentView = ViewSignIn
		return m, nil
	}
	if !wasLoggedIn && m.st.Auth.LoggedIn && m.currentView < ViewPacks {
		m.currentView = ViewPacks
		return m.fetchPacks(true)
	}
	if !wasSignedUp && m.st.Auth.SignedUp && m.currentView == ViewSignUp {
		m.currentView = ViewSignIn
	}
	if m.currentView == ViewForgot && m.st.Auth.Recovery.TokenAccepted {
		m.newPass.reset()
		m.currentView = ViewSetNewPassword
	}
	if m.currentView == ViewSetNewPassword && m.st.Auth.Recovery.PasswordChanged != "" {
		m.currentView = ViewSignIn
	}
	return m, nil
}

// runOp reserves a correlation id, applies the loading phase synchronously,
// and schedules the coordinator call as a command.
func (m Model) runOp(run func(ctx context.Context, op state.OpID) []state.Action) (Model, tea.Cmd) {
	op := state.NewOpID()
	m.st = state.Reduce(m.st, state.OpStarted{ID: op})
	ctx := m.ctx
	return m, func() tea.Msg { return actionsMsg(run(ctx, op)) }
}

// fetchPacks dispatches a pack-list fetch. Reset mode restores every filter
// to its default before the fetch and queries without constraints.
func (m Model) fetchPacks(reset bool) (Model, tea.Cmd) {
	op := state.NewOpID()
	m.st = state.Reduce(m.st, state.OpStarted{ID: op})
	if reset {
		m.st = state.Reduce(m.st, state.ResetPackFilters{})
		if m.pageSize > 0 {
			m.st = state.Reduce(m.st, state.SetPacksPageSize{Size: m.pageSize})
		}
	}
	m.st = state.Reduce(m.st, state.PacksFetchStarted{})

	gen := m.st.Packs.Gen
	query := state.PackParams(m.st)
	if reset {
		query = state.DefaultPackParams()
	}

	co, ctx := m.co, m.ctx
	return m, func() tea.Msg { return actionsMsg(co.FetchPacks(ctx, op, gen, query)) }
}

// fetchCards dispatches a card-list fetch for the given pack. Foreign packs
// go through the positional deck-query variant.
func (m Model) fetchCards(packID string) (Model, tea.Cmd) {
	op := state.NewOpID()
	m.st = state.Reduce(m.st, state.OpStarted{ID: op})
	m.st = state.Reduce(m.st, state.CardsFetchStarted{PackID: packID})

	gen := m.st.Cards.Gen
	co, ctx := m.co, m.ctx

	if m.foreignPack(packID) {
		question := m.st.Cards.Question
		page, pageCount := m.st.Cards.Page, m.st.Cards.PageSize
		return m, func() tea.Msg {
			return actionsMsg(co.FetchPackCards(ctx, op, gen, packID, question, page, pageCount))
		}
	}

	query := state.CardParams(m.st, packID)
	return m, func() tea.Msg { return actionsMsg(co.FetchCards(ctx, op, gen, query)) }
}

// foreignPack reports whether the pack belongs to another user.
func (m Model) foreignPack(packID string) bool {
	for _, p := range m.st.Packs.Packs {
		if p.ID == packID {
			return p.OwnerID != m.st.Auth.Profile.ID
		}
	}
	return false
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if !m.inTextEntry() {
			m.showHelp = true
			return m, nil
		}

	case key.Matches(msg, m.keys.CycleTheme):
		if !m.inTextEntry() {
			m.theme = GetTheme(NextTheme(m.theme.Name))
			m.styles = m.theme.Styles()
			m.spin.Style = m.styles.Accent
			m.initTables()
			m.syncTables()
			if m.prefsPath != "" {
				_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, PageSize: m.st.Packs.PageSize})
			}
			return m, nil
		}
	}

	switch m.currentView {
	case ViewSignIn, ViewSignUp, ViewForgot, ViewSetNewPassword:
		return m.handleAuthKey(msg)
	case ViewPacks:
		return m.handlePacksKey(msg)
	case ViewCards:
		return m.handleCardsKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg)
	}

	return m, nil
}

// inTextEntry reports whether a form field currently receives typed text,
// in which case printable global shortcuts must not fire.
func (m Model) inTextEntry() bool {
	switch m.currentView {
	case ViewSignIn, ViewSignUp, ViewForgot, ViewSetNewPassword, ViewProfile:
		return true
	}
	return m.prompt != promptNone
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.currentView {
	case ViewSignIn:
		content = m.renderSignIn()
	case ViewSignUp:
		content = m.renderSignUp()
	case ViewForgot:
		content = m.renderForgot()
	case ViewSetNewPassword:
		content = m.renderSetNewPassword()
	case ViewPacks:
		content = m.renderPacks()
	case ViewCards:
		content = m.renderCards()
	case ViewProfile:
		content = m.renderProfile()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) centered(content string) string {
	if m.width <= 0 {
		return content
	}
	return lipgloss.Place(m.width, max(m.height-4, 1), lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
