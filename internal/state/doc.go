// Package state holds deckhand's application state and the reducers that
// advance it.
//
// # Overview
//
// State is a plain value split into four slices: Auth (session and profile),
// Packs (cached pack list plus its filter/sort/paging fields), Cards (the
// open pack's cards), and Request (operation lifecycle). Reduce takes the
// current State and one Action and returns the next State; nothing is
// mutated in place, so a snapshot handed to a goroutine stays valid.
//
// # Actions
//
// Action is a closed sum: a sealed interface whose variants are plain
// structs carrying exactly the payload their transition needs. Reduce
// matches the whole set in one switch. There are no action name strings and
// no default-case surprises; adding a variant means touching the switch.
//
// # Request Lifecycle
//
// Every user-initiated operation gets a correlation id (OpID). OpStarted
// marks it in flight and surfaces it; OpDone ends it. Two rules tame
// concurrent operations racing on the shared indicator:
//
//   - only the surfaced (most recently started) operation's OpDone may set
//     the terminal status and error/info messages
//   - the in-flight counter tracks all operations, so the spinner stays up
//     until the slowest one finishes
//
// # Stale Fetch Results
//
// List fetches carry a generation: PacksFetchStarted/CardsFetchStarted bump
// it, and a *Loaded action whose generation no longer matches is dropped.
// A slow response that lost the race can therefore never clobber a newer
// page. There is no cancellation of the stale request itself; its result is
// simply discarded.
//
// # Query Derivation
//
// PackParams and CardParams are pure functions from State to the wire query
// (filtered mode); DefaultPackParams is the reset mode with no constraints.
// Sort keys use the backend's compact encoding: a leading '0' or '1'
// direction flag followed by the column name, toggled by ToggleSort.
package state
