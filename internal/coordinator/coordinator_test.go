package coordinator

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/state"
)

// fakeAPI records calls in order and serves scripted results.
type fakeAPI struct {
	calls []string

	loginProfile flashcards.Profile
	loginErr     error
	meProfile    flashcards.Profile
	meErr        error
	resetOK      bool
	resetErr     error
	newPassInfo  string
	newPassErr   error
	logoutInfo   string
	logoutErr    error

	packsPage   flashcards.PacksPage
	packsErr    error
	createErr   error
	deleteErr   error
	updateErr   error
	cardsPage   flashcards.CardsPage
	cardsErr    error
	deckPage    flashcards.CardsPage
	deckErr     error
	registerErr error
	profileErr  error
	profile     flashcards.Profile

	gotPackQuery flashcards.PackQuery
	gotCardQuery flashcards.CardQuery
	gotDeleteID  string
	gotUpdate    flashcards.PackUpdate
	gotAttrs     flashcards.PackAttrs
}

func (f *fakeAPI) Register(_ context.Context, _ flashcards.RegisterForm) error {
	f.calls = append(f.calls, "register")
	return f.registerErr
}

func (f *fakeAPI) Login(_ context.Context, _ flashcards.Credentials) (flashcards.Profile, error) {
	f.calls = append(f.calls, "login")
	return f.loginProfile, f.loginErr
}

func (f *fakeAPI) RequestPasswordReset(_ context.Context, _ string) (bool, error) {
	f.calls = append(f.calls, "forgot")
	return f.resetOK, f.resetErr
}

func (f *fakeAPI) SetNewPassword(_ context.Context, _, _ string) (string, error) {
	f.calls = append(f.calls, "set-new-password")
	return f.newPassInfo, f.newPassErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, _ flashcards.ProfileUpdate) (flashcards.Profile, error) {
	f.calls = append(f.calls, "update-profile")
	return f.profile, f.profileErr
}

func (f *fakeAPI) Me(_ context.Context) (flashcards.Profile, error) {
	f.calls = append(f.calls, "me")
	return f.meProfile, f.meErr
}

func (f *fakeAPI) Logout(_ context.Context) (string, error) {
	f.calls = append(f.calls, "logout")
	return f.logoutInfo, f.logoutErr
}

func (f *fakeAPI) ListPacks(_ context.Context, query flashcards.PackQuery) (flashcards.PacksPage, error) {
	f.calls = append(f.calls, "list-packs")
	f.gotPackQuery = query
	return f.packsPage, f.packsErr
}

func (f *fakeAPI) CreatePack(_ context.Context, attrs flashcards.PackAttrs) error {
	f.calls = append(f.calls, "create-pack")
	f.gotAttrs = attrs
	return f.createErr
}

func (f *fakeAPI) DeletePack(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete-pack")
	f.gotDeleteID = id
	return f.deleteErr
}

func (f *fakeAPI) UpdatePack(_ context.Context, upd flashcards.PackUpdate) error {
	f.calls = append(f.calls, "update-pack")
	f.gotUpdate = upd
	return f.updateErr
}

func (f *fakeAPI) ListCards(_ context.Context, query flashcards.CardQuery) (flashcards.CardsPage, error) {
	f.calls = append(f.calls, "list-cards")
	f.gotCardQuery = query
	return f.cardsPage, f.cardsErr
}

func (f *fakeAPI) ListPackCards(_ context.Context, packID, question, answer string, min, max, page, pageCount int) (flashcards.CardsPage, error) {
	f.calls = append(f.calls, "list-pack-cards")
	return f.deckPage, f.deckErr
}

var _ flashcards.API = (*fakeAPI)(nil)

func unauthorized() error {
	return &flashcards.APIError{Status: http.StatusUnauthorized, Message: "you are not authorized"}
}

func TestLoginSuccess(t *testing.T) {
	api := &fakeAPI{loginProfile: flashcards.Profile{ID: "u-1", Email: "a@b.c"}}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.Reduce(state.New(), state.OpStarted{ID: op})
	st = state.Apply(st, co.Login(context.Background(), op, flashcards.Credentials{Email: "a@b.c"})...)

	assert.True(t, st.Auth.LoggedIn)
	assert.Equal(t, "u-1", st.Auth.Profile.ID)
	assert.Equal(t, state.StatusSucceeded, st.Request.Status)
	assert.Equal(t, "signed in as a@b.c", st.Request.Info)
	assert.False(t, st.Request.Busy())
}

func TestLoginFailureSurfacesMessage(t *testing.T) {
	api := &fakeAPI{loginErr: &flashcards.APIError{Status: 400, Message: "Incorrect email or password"}}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.Reduce(state.New(), state.OpStarted{ID: op})
	st = state.Apply(st, co.Login(context.Background(), op, flashcards.Credentials{})...)

	assert.False(t, st.Auth.LoggedIn)
	assert.Equal(t, state.StatusError, st.Request.Status)
	assert.Equal(t, "Incorrect email or password", st.Request.Err)
}

func TestUnauthorizedForcesLogoutEverywhere(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		run  func(co *Coordinator, op state.OpID) []state.Action
	}{
		{"fetch packs", func(co *Coordinator, op state.OpID) []state.Action {
			return co.FetchPacks(ctx, op, 1, flashcards.PackQuery{})
		}},
		{"fetch cards", func(co *Coordinator, op state.OpID) []state.Action {
			return co.FetchCards(ctx, op, 1, flashcards.CardQuery{PackID: "p"})
		}},
		{"create pack", func(co *Coordinator, op state.OpID) []state.Action {
			return co.CreatePack(ctx, op, 1, flashcards.PackAttrs{Name: "x"}, flashcards.PackQuery{})
		}},
		{"delete pack", func(co *Coordinator, op state.OpID) []state.Action {
			return co.DeletePack(ctx, op, 1, "p", flashcards.PackQuery{})
		}},
		{"rename pack", func(co *Coordinator, op state.OpID) []state.Action {
			return co.RenamePack(ctx, op, 1, flashcards.PackUpdate{ID: "p"}, flashcards.PackQuery{})
		}},
		{"update profile", func(co *Coordinator, op state.OpID) []state.Action {
			return co.UpdateProfile(ctx, op, flashcards.ProfileUpdate{Name: "n"})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{
				packsErr: unauthorized(), cardsErr: unauthorized(),
				createErr: unauthorized(), deleteErr: unauthorized(),
				updateErr: unauthorized(), profileErr: unauthorized(),
			}
			co := New(api, nil)
			op := state.NewOpID()

			st := state.New()
			st = state.Apply(st,
				state.SetProfile{Profile: flashcards.Profile{ID: "u-1"}},
				state.SetLoggedIn{Value: true},
				state.OpStarted{ID: op},
			)
			st = state.Apply(st, tc.run(co, op)...)

			assert.False(t, st.Auth.LoggedIn, "session must be dropped")
			assert.Equal(t, flashcards.Profile{}, st.Auth.Profile)
			assert.Equal(t, state.StatusError, st.Request.Status)
		})
	}
}

func TestDeletePackRefreshesAfterMutation(t *testing.T) {
	api := &fakeAPI{
		packsPage: flashcards.PacksPage{
			CardPacks:  []flashcards.CardPack{{ID: "p-keep", Name: "kept"}},
			TotalCount: 1,
		},
	}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.New()
	st = state.Apply(st, state.OpStarted{ID: op}, state.PacksFetchStarted{})
	query := state.PackParams(st)

	st = state.Apply(st, co.DeletePack(context.Background(), op, st.Packs.Gen, "p-gone", query)...)

	require.Equal(t, []string{"delete-pack", "list-packs"}, api.calls)
	assert.Equal(t, "p-gone", api.gotDeleteID)
	assert.Equal(t, query, api.gotPackQuery)

	require.Len(t, st.Packs.Packs, 1)
	assert.Equal(t, "p-keep", st.Packs.Packs[0].ID)
	assert.Equal(t, state.StatusSucceeded, st.Request.Status)
	assert.Equal(t, "pack deleted", st.Request.Info)
}

func TestCreatePackRefreshFailureIsTerminal(t *testing.T) {
	api := &fakeAPI{packsErr: &flashcards.APIError{Status: 500, Message: "backend down"}}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.New()
	st = state.Apply(st, state.OpStarted{ID: op}, state.PacksFetchStarted{})
	st = state.Apply(st, co.CreatePack(context.Background(), op, st.Packs.Gen, flashcards.PackAttrs{Name: "x"}, flashcards.PackQuery{})...)

	require.Equal(t, []string{"create-pack", "list-packs"}, api.calls)
	assert.Equal(t, state.StatusError, st.Request.Status)
	assert.Equal(t, "backend down", st.Request.Err)
	assert.Empty(t, st.Packs.Packs)
}

func TestRenamePackInfoNamesNewTitle(t *testing.T) {
	api := &fakeAPI{}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.New()
	st = state.Apply(st, state.OpStarted{ID: op}, state.PacksFetchStarted{})
	st = state.Apply(st, co.RenamePack(context.Background(), op, st.Packs.Gen, flashcards.PackUpdate{ID: "p-1", Name: "better"}, flashcards.PackQuery{})...)

	require.Equal(t, []string{"update-pack", "list-packs"}, api.calls)
	assert.Equal(t, "p-1", api.gotUpdate.ID)
	assert.Equal(t, `pack renamed to "better"`, st.Request.Info)
}

func TestRestoreSessionColdStartIsSilent(t *testing.T) {
	api := &fakeAPI{meErr: unauthorized()}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.Reduce(state.New(), state.OpStarted{ID: op})
	st = state.Apply(st, co.RestoreSession(context.Background(), op)...)

	assert.False(t, st.Auth.LoggedIn)
	assert.Empty(t, st.Request.Err)
	assert.Equal(t, state.StatusSucceeded, st.Request.Status)
	assert.False(t, st.Request.Busy())
}

func TestRestoreSessionRecoversProfile(t *testing.T) {
	api := &fakeAPI{meProfile: flashcards.Profile{ID: "u-1", Email: "a@b.c"}}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.Reduce(state.New(), state.OpStarted{ID: op})
	st = state.Apply(st, co.RestoreSession(context.Background(), op)...)

	assert.True(t, st.Auth.LoggedIn)
	assert.Equal(t, "a@b.c", st.Auth.Profile.Email)
}

func TestPasswordRecoveryFlow(t *testing.T) {
	api := &fakeAPI{resetOK: true, newPassInfo: ""}
	co := New(api, nil)
	ctx := context.Background()

	st := state.New()
	op := state.NewOpID()
	st = state.Reduce(st, state.OpStarted{ID: op})
	st = state.Apply(st, co.RequestPasswordReset(ctx, op, "a@b.c")...)

	assert.Equal(t, "a@b.c", st.Auth.Recovery.Email)
	assert.True(t, st.Auth.Recovery.TokenAccepted)

	op = state.NewOpID()
	st = state.Reduce(st, state.OpStarted{ID: op})
	st = state.Apply(st, co.SetNewPassword(ctx, op, "hunter22", "tok")...)

	assert.Equal(t, "password changed", st.Auth.Recovery.PasswordChanged)
	assert.Equal(t, "password changed", st.Request.Info)
}

func TestFetchCardsCarriesGeneration(t *testing.T) {
	api := &fakeAPI{cardsPage: flashcards.CardsPage{TotalCount: 2, PackOwnerID: "u-9"}}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.New()
	st = state.Apply(st, state.OpStarted{ID: op}, state.CardsFetchStarted{PackID: "p-1"})
	st = state.Apply(st, co.FetchCards(context.Background(), op, st.Cards.Gen, state.CardParams(st, "p-1"))...)

	assert.Equal(t, "p-1", api.gotCardQuery.PackID)
	assert.Equal(t, 2, st.Cards.TotalCount)
	assert.Equal(t, "u-9", st.Cards.PackOwnerID)
}

func TestRegisterFlipsSignedUp(t *testing.T) {
	api := &fakeAPI{}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.Reduce(state.New(), state.OpStarted{ID: op})
	st = state.Apply(st, co.Register(context.Background(), op, flashcards.RegisterForm{Email: "a@b.c", Password: "12345678"})...)

	assert.True(t, st.Auth.SignedUp)
	assert.Equal(t, state.StatusSucceeded, st.Request.Status)
}

func TestLogout(t *testing.T) {
	api := &fakeAPI{logoutInfo: "bye"}
	co := New(api, nil)
	op := state.NewOpID()

	st := state.New()
	st = state.Apply(st,
		state.SetProfile{Profile: flashcards.Profile{ID: "u-1"}},
		state.SetLoggedIn{Value: true},
		state.OpStarted{ID: op},
	)
	st = state.Apply(st, co.Logout(context.Background(), op)...)

	assert.False(t, st.Auth.LoggedIn)
	assert.Equal(t, flashcards.Profile{}, st.Auth.Profile)
	assert.Equal(t, "bye", st.Request.Info)
}
