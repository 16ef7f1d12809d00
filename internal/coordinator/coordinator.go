package coordinator

import (
	"go.uber.org/zap"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/state"
)

// Coordinator sequences API calls for one user-initiated operation and
// returns the state actions describing the outcome. It never touches a
// store: the caller applies state.OpStarted (and any fetch-started actions)
// before invoking a method, then applies the returned batch.
type Coordinator struct {
	api flashcards.API
	log *zap.Logger
}

// New builds a Coordinator. A nil logger disables logging.
func New(api flashcards.API, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{api: api, log: log}
}

// fail builds the terminal actions for a failed operation: the surfaced
// error message plus, on 401, the forced logout. This is the only place the
// session-expiry policy lives.
func (c *Coordinator) fail(op state.OpID, err error) []state.Action {
	actions := []state.Action{state.OpDone{ID: op, Err: flashcards.ErrorMessage(err)}}
	if flashcards.IsUnauthorized(err) {
		actions = append(actions, state.SetLoggedIn{Value: false})
	}
	return actions
}
