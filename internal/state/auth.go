package state

import "github.com/deckhand-cli/deckhand/internal/flashcards"

// Recovery tracks the forgot-password flow across its three screens.
type Recovery struct {
	Email           string
	TokenAccepted   bool
	PasswordChanged string
}

// AuthState is the session slice. It is rebuilt every run; nothing here is
// persisted.
type AuthState struct {
	SignedUp bool
	LoggedIn bool
	Recovery Recovery
	Profile  flashcards.Profile
}

func reduceLoggedIn(st AuthState, value bool) AuthState {
	st.LoggedIn = value
	if !value {
		// A dead session has no profile.
		st.Profile = flashcards.Profile{}
	}
	return st
}
