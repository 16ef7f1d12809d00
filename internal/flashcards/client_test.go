package flashcards

import (
	"context"
	"errors"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultServerURL+"/" {
		t.Fatalf("base = %q, want %q", u.String(), defaultServerURL+"/")
	}

	u, err = parseBaseURL("example.com:1234/2.0?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/2.0/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_PreservesVersionPrefix(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PacksPage{})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/2.0")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.ListPacks(context.Background(), PackQuery{}); err != nil {
		t.Fatalf("ListPacks returned error: %v", err)
	}
	if gotPath != "/2.0/cards/pack" {
		t.Fatalf("path = %q, want /2.0/cards/pack", gotPath)
	}
}

func TestClient_EncodesQueriesAndOmitsZeroValues(t *testing.T) {
	t.Parallel()

	var gotPacksQuery url.Values
	var gotCardsQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/cards/pack":
			gotPacksQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(PacksPage{TotalCount: 3})
		case "/cards/card":
			gotCardsQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(CardsPage{TotalCount: 7})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	page, err := c.ListPacks(ctx, PackQuery{
		Name:      "go",
		Min:       3,
		Max:       12,
		Sort:      "0updated",
		Page:      2,
		PageCount: 5,
		OwnerID:   "u-1",
	})
	if err != nil {
		t.Fatalf("ListPacks returned error: %v", err)
	}
	if page.TotalCount != 3 {
		t.Fatalf("TotalCount = %d, want 3", page.TotalCount)
	}
	want := url.Values{
		"packName":  {"go"},
		"min":       {"3"},
		"max":       {"12"},
		"sortPacks": {"0updated"},
		"page":      {"2"},
		"pageCount": {"5"},
		"user_id":   {"u-1"},
	}
	for k, v := range want {
		if gotPacksQuery.Get(k) != v[0] {
			t.Fatalf("packs query %s = %q, want %q", k, gotPacksQuery.Get(k), v[0])
		}
	}

	cards, err := c.ListCards(ctx, CardQuery{PackID: "p-9", Question: "what"})
	if err != nil {
		t.Fatalf("ListCards returned error: %v", err)
	}
	if cards.TotalCount != 7 {
		t.Fatalf("TotalCount = %d, want 7", cards.TotalCount)
	}
	if got := gotCardsQuery.Get("cardsPack_id"); got != "p-9" {
		t.Fatalf("cardsPack_id = %q, want p-9", got)
	}
	if got := gotCardsQuery.Get("cardQuestion"); got != "what" {
		t.Fatalf("cardQuestion = %q, want what", got)
	}
	for _, absent := range []string{"min", "max", "sortCards", "page", "pageCount", "cardAnswer"} {
		if gotCardsQuery.Has(absent) {
			t.Fatalf("cards query unexpectedly sets %s=%q", absent, gotCardsQuery.Get(absent))
		}
	}
}

func TestClient_NormalizesServerErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Incorrect email or password"}`))
		case "/auth/me":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"you are not authorized"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Login(context.Background(), Credentials{Email: "a@b.c", Password: "nope"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Login error = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Incorrect email or password" {
		t.Fatalf("Login error = %#v", apiErr)
	}
	if IsUnauthorized(err) {
		t.Fatalf("400 should not report unauthorized")
	}

	_, err = c.Me(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("Me error = %v, want unauthorized", err)
	}
}

func TestClient_SoftErrorInSuccessPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"","error":"user with this email already exists"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.Register(context.Background(), RegisterForm{Email: "a@b.c", Password: "12345678"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Register error = %T, want *APIError", err)
	}
	if apiErr.Status != 0 {
		t.Fatalf("soft error status = %d, want 0", apiErr.Status)
	}
	if !strings.Contains(apiErr.Message, "already exists") {
		t.Fatalf("soft error message = %q", apiErr.Message)
	}
}

func TestClient_TransportFailureHasZeroStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.ListPacks(context.Background(), PackQuery{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("ListPacks error = %T, want *APIError", err)
	}
	if apiErr.Status != 0 || apiErr.Message == "" {
		t.Fatalf("transport error = %#v", apiErr)
	}
}

func TestClient_PersistsSessionCookie(t *testing.T) {
	t.Parallel()

	var meCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cret", Path: "/"})
			_, _ = w.Write([]byte(`{"_id":"u-1","email":"a@b.c","name":"alice"}`))
		case "/auth/me":
			if c, err := r.Cookie("session"); err == nil {
				meCookie = c.Value
			}
			_, _ = w.Write([]byte(`{"_id":"u-1","email":"a@b.c","name":"alice"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	profile, err := c.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw", RememberMe: true})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if profile.ID != "u-1" || profile.Name != "alice" {
		t.Fatalf("profile = %#v", profile)
	}

	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if meCookie != "s3cret" {
		t.Fatalf("session cookie = %q, want s3cret", meCookie)
	}
}

func TestClient_PackMutationBodies(t *testing.T) {
	t.Parallel()

	var createBody, updateBody map[string]any
	var deleteID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			_ = json.NewDecoder(r.Body).Decode(&createBody)
		case http.MethodPut:
			_ = json.NewDecoder(r.Body).Decode(&updateBody)
		case http.MethodDelete:
			deleteID = r.URL.Query().Get("id")
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if err := c.CreatePack(ctx, PackAttrs{Name: "irregular verbs"}); err != nil {
		t.Fatalf("CreatePack returned error: %v", err)
	}
	pack, ok := createBody["cardsPack"].(map[string]any)
	if !ok || pack["name"] != "irregular verbs" {
		t.Fatalf("create body = %#v", createBody)
	}

	if err := c.UpdatePack(ctx, PackUpdate{ID: "p-1", Name: "renamed"}); err != nil {
		t.Fatalf("UpdatePack returned error: %v", err)
	}
	pack, ok = updateBody["cardsPack"].(map[string]any)
	if !ok || pack["_id"] != "p-1" || pack["name"] != "renamed" {
		t.Fatalf("update body = %#v", updateBody)
	}

	if err := c.DeletePack(ctx, "p-2"); err != nil {
		t.Fatalf("DeletePack returned error: %v", err)
	}
	if deleteID != "p-2" {
		t.Fatalf("delete id = %q, want p-2", deleteID)
	}

	if err := c.DeletePack(ctx, " "); err == nil {
		t.Fatalf("DeletePack with blank id should fail")
	}
	if err := c.UpdatePack(ctx, PackUpdate{Name: "x"}); err == nil {
		t.Fatalf("UpdatePack without id should fail")
	}
	if _, err := c.ListCards(ctx, CardQuery{}); err == nil {
		t.Fatalf("ListCards without pack id should fail")
	}
}
