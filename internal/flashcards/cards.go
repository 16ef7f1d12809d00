package flashcards

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ListCards retrieves one page of cards for the pack named in the query.
func (c *Client) ListCards(ctx context.Context, query CardQuery) (CardsPage, error) {
	if strings.TrimSpace(query.PackID) == "" {
		return CardsPage{}, fmt.Errorf("pack id required")
	}
	rel := &url.URL{Path: "cards/card", RawQuery: query.values().Encode()}
	var payload CardsPage
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return CardsPage{}, err
	}
	return payload, nil
}

// ListPackCards is the positional variant of ListCards used when browsing
// another user's pack.
func (c *Client) ListPackCards(ctx context.Context, packID, question, answer string, min, max, page, pageCount int) (CardsPage, error) {
	return c.ListCards(ctx, CardQuery{
		PackID:    packID,
		Question:  question,
		Answer:    answer,
		Min:       min,
		Max:       max,
		Page:      page,
		PageCount: pageCount,
	})
}
