package coordinator

import (
	"context"

	"go.uber.org/zap"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/state"
)

// FetchCards loads one page of the open pack's cards. Generation handling
// mirrors FetchPacks.
func (c *Coordinator) FetchCards(ctx context.Context, op state.OpID, gen uint64, query flashcards.CardQuery) []state.Action {
	page, err := c.api.ListCards(ctx, query)
	if err != nil {
		c.log.Warn("card list fetch failed", zap.String("pack", query.PackID), zap.Error(err))
		return c.fail(op, err)
	}
	return []state.Action{
		state.CardsLoaded{Gen: gen, Page: page},
		state.OpDone{ID: op},
	}
}

// FetchPackCards loads cards of another user's pack through the positional
// deck-query endpoint variant.
func (c *Coordinator) FetchPackCards(ctx context.Context, op state.OpID, gen uint64, packID, question string, page, pageCount int) []state.Action {
	result, err := c.api.ListPackCards(ctx, packID, question, "", 0, 0, page, pageCount)
	if err != nil {
		return c.fail(op, err)
	}
	return []state.Action{
		state.CardsLoaded{Gen: gen, Page: result},
		state.OpDone{ID: op},
	}
}
