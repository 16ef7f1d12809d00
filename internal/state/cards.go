package state

import "github.com/deckhand-cli/deckhand/internal/flashcards"

// CardsState is the slice for the currently open pack's cards.
type CardsState struct {
	PackID   string
	Question string
	Sort     string
	Page     int
	PageSize int

	Cards       []flashcards.Card
	TotalCount  int
	MinGrade    float64
	MaxGrade    float64
	PackOwnerID string

	Gen uint64
}

func reduceCardsLoaded(st CardsState, a CardsLoaded) CardsState {
	if a.Gen != st.Gen {
		return st
	}
	st.Cards = a.Page.Cards
	st.TotalCount = a.Page.TotalCount
	st.MinGrade = a.Page.MinGrade
	st.MaxGrade = a.Page.MaxGrade
	st.PackOwnerID = a.Page.PackOwnerID
	if a.Page.Page > 0 {
		st.Page = a.Page.Page
	}
	if a.Page.PageCount > 0 {
		st.PageSize = a.Page.PageCount
	}
	return st
}
