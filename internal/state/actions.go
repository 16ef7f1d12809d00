package state

import (
	"github.com/google/uuid"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
)

// OpID correlates the begin and end of one user-initiated operation. The
// request slice only surfaces the terminal status of the most recent one.
type OpID uuid.UUID

// NewOpID allocates a fresh correlation id.
func NewOpID() OpID {
	return OpID(uuid.New())
}

// Action is the closed set of state transitions. Every variant carries the
// full payload its reducer needs; Reduce matches exhaustively.
type Action interface {
	isAction()
}

// Request lifecycle.

// OpStarted marks an operation in flight and makes it the surfaced one.
type OpStarted struct {
	ID OpID
}

// OpDone terminates an operation. Err and Info are display messages; both
// are ignored when the operation has been superseded by a newer one.
type OpDone struct {
	ID   OpID
	Err  string
	Info string
}

// Auth slice.

// SetSignedUp records a completed registration.
type SetSignedUp struct {
	Value bool
}

// SetLoggedIn flips the session flag. Coordinators dispatch it with false on
// any 401, which is the single cross-cutting failure policy.
type SetLoggedIn struct {
	Value bool
}

// SetProfile replaces the cached account profile.
type SetProfile struct {
	Profile flashcards.Profile
}

// SetRecoveryEmail records the address a reset link was requested for.
type SetRecoveryEmail struct {
	Email string
}

// SetRecoveryAccepted records whether the backend accepted the reset request.
type SetRecoveryAccepted struct {
	Value bool
}

// SetPasswordChanged stores the backend confirmation after a password reset.
type SetPasswordChanged struct {
	Message string
}

// Packs slice.

// PacksFetchStarted bumps the fetch generation; a PacksLoaded carrying an
// older generation is discarded.
type PacksFetchStarted struct{}

// PacksLoaded replaces the cached pack list with one server page.
type PacksLoaded struct {
	Gen  uint64
	Page flashcards.PacksPage
}

// SetPackName sets the name filter.
type SetPackName struct {
	Name string
}

// SetPackSort sets the encoded sort key (direction flag + field).
type SetPackSort struct {
	Sort string
}

// SetPacksPage selects the page number.
type SetPacksPage struct {
	Page int
}

// SetPacksPageSize selects the page size.
type SetPacksPageSize struct {
	Size int
}

// SetPackBounds sets the card-count range filter.
type SetPackBounds struct {
	Min int
	Max int
}

// SetPackOwnership toggles between all packs and the session user's packs.
// Toggling resets the range filter to the last server bounds and clears the
// initialized flag so the next fetch repopulates it.
type SetPackOwnership struct {
	Ownership Ownership
}

// ResetPackFilters restores every pack filter field to its default.
type ResetPackFilters struct{}

// Cards slice.

// CardsFetchStarted bumps the cards fetch generation.
type CardsFetchStarted struct {
	PackID string
}

// CardsLoaded replaces the cached cards with one server page.
type CardsLoaded struct {
	Gen  uint64
	Page flashcards.CardsPage
}

// SetCardSort sets the encoded sort key for cards.
type SetCardSort struct {
	Sort string
}

// SetCardsPage selects the cards page number.
type SetCardsPage struct {
	Page int
}

// SetCardsPageSize selects the cards page size.
type SetCardsPageSize struct {
	Size int
}

// SetCardQuestion sets the question search filter.
type SetCardQuestion struct {
	Question string
}

func (OpStarted) isAction()          {}
func (OpDone) isAction()             {}
func (SetSignedUp) isAction()        {}
func (SetLoggedIn) isAction()        {}
func (SetProfile) isAction()         {}
func (SetRecoveryEmail) isAction()   {}
func (SetRecoveryAccepted) isAction() {}
func (SetPasswordChanged) isAction() {}
func (PacksFetchStarted) isAction()  {}
func (PacksLoaded) isAction()        {}
func (SetPackName) isAction()        {}
func (SetPackSort) isAction()        {}
func (SetPacksPage) isAction()       {}
func (SetPacksPageSize) isAction()   {}
func (SetPackBounds) isAction()      {}
func (SetPackOwnership) isAction()   {}
func (ResetPackFilters) isAction()   {}
func (CardsFetchStarted) isAction()  {}
func (CardsLoaded) isAction()        {}
func (SetCardSort) isAction()        {}
func (SetCardsPage) isAction()       {}
func (SetCardsPageSize) isAction()   {}
func (SetCardQuestion) isAction()    {}
