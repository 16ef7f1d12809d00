package flashcards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// API defines the operations the client exposes to coordinators. It is
// implemented by *Client and can be faked in tests.
type API interface {
	Register(ctx context.Context, form RegisterForm) error
	Login(ctx context.Context, creds Credentials) (Profile, error)
	RequestPasswordReset(ctx context.Context, email string) (bool, error)
	SetNewPassword(ctx context.Context, password, resetToken string) (string, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (Profile, error)
	Me(ctx context.Context) (Profile, error)
	Logout(ctx context.Context) (string, error)
	ListPacks(ctx context.Context, query PackQuery) (PacksPage, error)
	CreatePack(ctx context.Context, attrs PackAttrs) error
	DeletePack(ctx context.Context, id string) error
	UpdatePack(ctx context.Context, upd PackUpdate) error
	ListCards(ctx context.Context, query CardQuery) (CardsPage, error)
	ListPackCards(ctx context.Context, packID, question, answer string, min, max, page, pageCount int) (CardsPage, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the flashcards HTTP API. The backend authenticates via a
// session cookie, so a single Client must be reused across requests.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerURL = "http://127.0.0.1:7542/2.0"
	defaultUserAgent = "deckhand/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given server URL. An empty value selects
// the default local backend.
func NewClient(serverURL string) (*Client, error) {
	return NewClientTimeout(serverURL, requestTimeout)
}

// NewClientTimeout builds a Client with an explicit per-request timeout.
func NewClientTimeout(serverURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		userAgent: defaultUserAgent,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: strings.TrimPrefix(path, "/")}
	return c.doURL(ctx, method, rel, body, dest)
}

// doURL issues one request and normalizes the outcome: transport failures and
// non-2xx responses come back as *APIError, successful payloads are decoded
// into dest unchanged.
func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: serverErrorMessage(raw, resp.StatusCode)}
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// serverErrorMessage prefers the structured {error} body over a generic
// status line.
func serverErrorMessage(raw []byte, status int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		return payload.Error
	}
	return fmt.Sprintf("server returned status %d", status)
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	// Relative references resolve below the version prefix, so the base path
	// must end with a slash.
	u.Path = strings.TrimSuffix(u.Path, "/") + "/"
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
