package flashcards

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ListPacks retrieves one page of packs matching the query.
func (c *Client) ListPacks(ctx context.Context, query PackQuery) (PacksPage, error) {
	rel := &url.URL{Path: "cards/pack", RawQuery: query.values().Encode()}
	var payload PacksPage
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return PacksPage{}, err
	}
	return payload, nil
}

// CreatePack adds a new pack owned by the signed-in account.
func (c *Client) CreatePack(ctx context.Context, attrs PackAttrs) error {
	body := struct {
		CardsPack PackAttrs `json:"cardsPack"`
	}{CardsPack: attrs}
	return c.do(ctx, http.MethodPost, "/cards/pack", body, nil)
}

// DeletePack removes a pack by id.
func (c *Client) DeletePack(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("pack id required")
	}
	values := url.Values{}
	values.Set("id", id)
	rel := &url.URL{Path: "cards/pack", RawQuery: values.Encode()}
	return c.doURL(ctx, http.MethodDelete, rel, nil, nil)
}

// UpdatePack renames an existing pack.
func (c *Client) UpdatePack(ctx context.Context, upd PackUpdate) error {
	if strings.TrimSpace(upd.ID) == "" {
		return fmt.Errorf("pack id required")
	}
	body := struct {
		CardsPack PackUpdate `json:"cardsPack"`
	}{CardsPack: upd}
	return c.do(ctx, http.MethodPut, "/cards/pack", body, nil)
}
