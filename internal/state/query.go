package state

import "github.com/deckhand-cli/deckhand/internal/flashcards"

const (
	// DefaultSort is newest-first by update time: direction flag '0'
	// (ascending from the backend's point of view) plus field name.
	DefaultSort = "0updated"

	// DefaultPageSize matches the backend default.
	DefaultPageSize = 5
)

// ToggleSort flips the direction flag when field is already the active sort
// column and starts fresh with '0' when a different column is picked.
func ToggleSort(current, field string) string {
	if len(current) > 1 && current[1:] == field {
		if current[0] == '0' {
			return "1" + field
		}
		return "0" + field
	}
	return "0" + field
}

// SortField returns the column name encoded in a sort key.
func SortField(sort string) string {
	if len(sort) < 2 {
		return ""
	}
	return sort[1:]
}

// SortDescending reports whether a sort key encodes descending order.
func SortDescending(sort string) bool {
	return len(sort) > 0 && sort[0] == '1'
}

// PackParams derives the pack-list query from the current UI state
// (filtered mode). When ownership is Mine the session user's id constrains
// the query; otherwise the owner constraint stays empty.
func PackParams(st State) flashcards.PackQuery {
	owner := ""
	if st.Packs.Ownership == OwnershipMine {
		owner = st.Auth.Profile.ID
	}
	return flashcards.PackQuery{
		Name:      st.Packs.NameFilter,
		Min:       st.Packs.Slider.Min,
		Max:       st.Packs.Slider.Max,
		Sort:      st.Packs.Sort,
		Page:      st.Packs.Page,
		PageCount: st.Packs.PageSize,
		OwnerID:   owner,
	}
}

// DefaultPackParams is the reset-mode derivation: every constraint empty,
// letting the backend apply its defaults.
func DefaultPackParams() flashcards.PackQuery {
	return flashcards.PackQuery{}
}

// CardParams derives the card-list query for the given pack.
func CardParams(st State, packID string) flashcards.CardQuery {
	return flashcards.CardQuery{
		PackID:    packID,
		Question:  st.Cards.Question,
		Sort:      st.Cards.Sort,
		Page:      st.Cards.Page,
		PageCount: st.Cards.PageSize,
	}
}
