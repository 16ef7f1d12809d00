package state

import "github.com/deckhand-cli/deckhand/internal/flashcards"

// Ownership selects whose packs the list shows.
type Ownership int

const (
	OwnershipAll Ownership = iota
	OwnershipMine
)

func (o Ownership) String() string {
	if o == OwnershipMine {
		return "Mine"
	}
	return "All"
}

// Bounds is the card-count range filter. Initialized marks that the range
// was populated (from the first fetch or by the user); until an explicit
// reset, later fetches must not overwrite it.
type Bounds struct {
	Min         int
	Max         int
	Initialized bool
}

// PacksState is the pack-list slice: the last-known-good server page plus
// the UI-only filter, sort, and paging fields that drive the next query.
type PacksState struct {
	Ownership  Ownership
	NameFilter string
	Sort       string
	Page       int
	PageSize   int
	Slider     Bounds

	Packs         []flashcards.CardPack
	TotalCount    int
	MinCardsCount int
	MaxCardsCount int

	// Gen is bumped when a fetch is dispatched; a PacksLoaded carrying an
	// older generation lost the race and is dropped.
	Gen uint64
}

func reducePacksLoaded(st PacksState, a PacksLoaded) PacksState {
	if a.Gen != st.Gen {
		return st
	}
	st.Packs = a.Page.CardPacks
	st.TotalCount = a.Page.TotalCount
	st.MinCardsCount = a.Page.MinCardsCount
	st.MaxCardsCount = a.Page.MaxCardsCount
	if a.Page.Page > 0 {
		st.Page = a.Page.Page
	}
	if a.Page.PageCount > 0 {
		st.PageSize = a.Page.PageCount
	}
	if !st.Slider.Initialized {
		st.Slider.Min = a.Page.MinCardsCount
		st.Slider.Max = a.Page.MaxCardsCount
		st.Slider.Initialized = true
	}
	return st
}

func reduceOwnership(st PacksState, ownership Ownership) PacksState {
	st.Ownership = ownership
	st.Page = 1
	// The range of available card counts differs between "all" and "mine",
	// so the filter falls back to the server bounds and re-initializes on
	// the next fetch.
	st.Slider = Bounds{Min: st.MinCardsCount, Max: st.MaxCardsCount}
	return st
}

func resetPackFilters(st PacksState) PacksState {
	st.Ownership = OwnershipAll
	st.NameFilter = ""
	st.Sort = DefaultSort
	st.Page = 1
	st.Slider = Bounds{}
	return st
}
