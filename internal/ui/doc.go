// Package ui provides the terminal user interface for the deckhand
// application.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A single Model value holds the immutable
// application state snapshot (state.State) plus purely presentational
// concerns: the active view, form and table widgets, theme, and window
// dimensions. Update never talks to the network directly; it derives the
// query from the state, applies the loading-phase actions synchronously,
// and schedules the matching coordinator call as a tea.Cmd. The command's
// result arrives back as an actionsMsg and is folded into the state with
// state.Apply.
//
// # Package Structure
//
//   - app.go: Model, Options, the Update loop, dispatch helpers, and Run
//   - auth.go: sign-in, sign-up, forgot-password, new-password, and profile forms
//   - packs.go: the pack table, its key handling, and the inline prompts
//   - cards.go: the card table for the opened pack
//   - status.go: header and status bar rendering
//   - help.go: the key binding overlay
//   - forms.go: the shared labelled-input form widget
//   - keys.go: all key bindings
//   - theme.go: color themes and derived lipgloss styles
//   - strings.go: small formatting helpers
//
// # View Routing
//
// The active view is ordinary model state, but two transitions are driven
// by the state snapshot itself rather than by key handlers: a completed
// sign-in moves any auth view to the pack list, and a session that dies
// (server 401 or explicit sign-out) drops every view back to the sign-in
// form. applyActions performs both checks after each batch.
//
// # Dispatch Discipline
//
// Every server operation follows the same shape: allocate a correlation id,
// reduce OpStarted (and the matching fetch-started action for list fetches)
// before the command is launched, then hand the rest to the coordinator.
// Reserving the fetch generation synchronously is what lets the reducers
// drop results of superseded fetches.
package ui
