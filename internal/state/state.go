package state

// State is the whole application state. It is a value: reducers derive a new
// State from the previous one and never mutate in place.
type State struct {
	Auth    AuthState
	Packs   PacksState
	Cards   CardsState
	Request RequestState
}

// New returns the initial state with default filters and paging.
func New() State {
	return State{
		Packs: PacksState{
			Ownership: OwnershipAll,
			Sort:      DefaultSort,
			Page:      1,
			PageSize:  DefaultPageSize,
		},
		Cards: CardsState{
			Sort:     DefaultSort,
			Page:     1,
			PageSize: DefaultPageSize,
		},
	}
}

// Reduce applies one action and returns the next state. Unknown actions
// cannot exist: Action is a closed set and the switch covers every variant.
func Reduce(st State, action Action) State {
	switch a := action.(type) {
	case OpStarted:
		st.Request = reduceOpStarted(st.Request, a)
	case OpDone:
		st.Request = reduceOpDone(st.Request, a)

	case SetSignedUp:
		st.Auth.SignedUp = a.Value
	case SetLoggedIn:
		st.Auth = reduceLoggedIn(st.Auth, a.Value)
	case SetProfile:
		st.Auth.Profile = a.Profile
	case SetRecoveryEmail:
		st.Auth.Recovery.Email = a.Email
	case SetRecoveryAccepted:
		st.Auth.Recovery.TokenAccepted = a.Value
	case SetPasswordChanged:
		st.Auth.Recovery.PasswordChanged = a.Message

	case PacksFetchStarted:
		st.Packs.Gen++
	case PacksLoaded:
		st.Packs = reducePacksLoaded(st.Packs, a)
	case SetPackName:
		st.Packs.NameFilter = a.Name
		st.Packs.Page = 1
	case SetPackSort:
		st.Packs.Sort = a.Sort
	case SetPacksPage:
		st.Packs.Page = a.Page
	case SetPacksPageSize:
		st.Packs.PageSize = a.Size
		st.Packs.Page = 1
	case SetPackBounds:
		st.Packs.Slider.Min = a.Min
		st.Packs.Slider.Max = a.Max
		st.Packs.Slider.Initialized = true
		st.Packs.Page = 1
	case SetPackOwnership:
		st.Packs = reduceOwnership(st.Packs, a.Ownership)
	case ResetPackFilters:
		st.Packs = resetPackFilters(st.Packs)

	case CardsFetchStarted:
		st.Cards.Gen++
		st.Cards.PackID = a.PackID
	case CardsLoaded:
		st.Cards = reduceCardsLoaded(st.Cards, a)
	case SetCardSort:
		st.Cards.Sort = a.Sort
	case SetCardsPage:
		st.Cards.Page = a.Page
	case SetCardsPageSize:
		st.Cards.PageSize = a.Size
		st.Cards.Page = 1
	case SetCardQuestion:
		st.Cards.Question = a.Question
		st.Cards.Page = 1
	}
	return st
}

// Apply runs a batch of actions in order.
func Apply(st State, actions ...Action) State {
	for _, action := range actions {
		st = Reduce(st, action)
	}
	return st
}
