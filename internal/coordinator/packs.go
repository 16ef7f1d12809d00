package coordinator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/state"
)

// FetchPacks loads one page of the pack list. The caller has already applied
// OpStarted and PacksFetchStarted (plus ResetPackFilters in reset mode), so
// gen and query reflect the post-dispatch state; a result for a superseded
// generation is dropped by the reducer.
func (c *Coordinator) FetchPacks(ctx context.Context, op state.OpID, gen uint64, query flashcards.PackQuery) []state.Action {
	page, err := c.api.ListPacks(ctx, query)
	if err != nil {
		c.log.Warn("pack list fetch failed", zap.Error(err))
		return c.fail(op, err)
	}
	return []state.Action{
		state.PacksLoaded{Gen: gen, Page: page},
		state.OpDone{ID: op},
	}
}

// CreatePack adds a pack and then refreshes the list, so success is only
// reported once the visible list includes the mutation.
func (c *Coordinator) CreatePack(ctx context.Context, op state.OpID, gen uint64, attrs flashcards.PackAttrs, query flashcards.PackQuery) []state.Action {
	if err := c.api.CreatePack(ctx, attrs); err != nil {
		return c.fail(op, err)
	}
	page, err := c.api.ListPacks(ctx, query)
	if err != nil {
		return c.fail(op, err)
	}
	return []state.Action{
		state.PacksLoaded{Gen: gen, Page: page},
		state.OpDone{ID: op, Info: fmt.Sprintf("pack %q created", attrs.Name)},
	}
}

// DeletePack removes a pack and refreshes the list, in that order.
func (c *Coordinator) DeletePack(ctx context.Context, op state.OpID, gen uint64, id string, query flashcards.PackQuery) []state.Action {
	if err := c.api.DeletePack(ctx, id); err != nil {
		return c.fail(op, err)
	}
	page, err := c.api.ListPacks(ctx, query)
	if err != nil {
		return c.fail(op, err)
	}
	return []state.Action{
		state.PacksLoaded{Gen: gen, Page: page},
		state.OpDone{ID: op, Info: "pack deleted"},
	}
}

// RenamePack updates a pack and refreshes the list.
func (c *Coordinator) RenamePack(ctx context.Context, op state.OpID, gen uint64, upd flashcards.PackUpdate, query flashcards.PackQuery) []state.Action {
	if err := c.api.UpdatePack(ctx, upd); err != nil {
		return c.fail(op, err)
	}
	page, err := c.api.ListPacks(ctx, query)
	if err != nil {
		return c.fail(op, err)
	}
	return []state.Action{
		state.PacksLoaded{Gen: gen, Page: page},
		state.OpDone{ID: op, Info: fmt.Sprintf("pack renamed to %q", upd.Name)},
	}
}
