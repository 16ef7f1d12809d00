// Package app provides the orchestration layer for the deckhand application.
//
// # Overview
//
// This package wires together configuration, the backend client, the
// coordinator, and the UI to create the complete deckhand TUI experience.
// It serves as the composition root where all dependencies are initialized
// and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/deckhand/config.yaml (ENV overrides apply)
//  2. Load user preferences from ~/.config/deckhand/prefs.toml
//  3. Open the file logger (or a no-op logger when no file is configured)
//  4. Initialize the HTTP client for the flashcards backend
//  5. Probe the persisted session cookie so a valid session skips sign-in
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Startup errors (bad config, unparseable server URL, unwritable log file)
// are fatal and returned from Run. Everything after the UI starts is
// recoverable: backend failures surface through the request state and the
// status bar, and a dead session drops the user back to the sign-in form.
//
// # Design Rationale
//
// The app package intentionally keeps orchestration logic minimal. Business
// logic lives in the domain packages (flashcards, state, coordinator, ui);
// this package simply connects these pieces with sensible defaults.
package app
