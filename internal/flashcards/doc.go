// Package flashcards provides an HTTP client for the flashcards REST backend.
//
// # Overview
//
// The backend is an opaque HTTP+JSON service owning accounts, card packs and
// cards. This package is the only place in deckhand that talks to it: it
// builds requests, decodes payloads, and normalizes every failure into a
// single shape the rest of the application can reason about.
//
// # Files
//
//   - client.go: transport plumbing (base URL handling, do/doURL, cookie jar)
//   - auth.go:   account operations (/auth/*)
//   - packs.go:  pack listing and mutations (/cards/pack)
//   - cards.go:  card listing (/cards/card)
//   - types.go:  wire structs mirroring the backend schema, query builders
//   - errors.go: the APIError normalization
//
// # Error Normalization
//
// Every operation returns either a decoded payload or a *APIError:
//
//   - transport failures (refused connection, timeout, DNS) keep the
//     transport message and carry Status 0
//   - non-2xx responses prefer the structured {error} body over a generic
//     "server returned status N" line and preserve the HTTP status
//   - some endpoints (login, me, update profile) embed an error message in a
//     2xx payload; those fail exactly like hard failures, Status 0
//
// Status 401 means the session is invalid wherever it appears; callers check
// it with IsUnauthorized.
//
// # Session Handling
//
// Authentication is cookie-based. The Client owns a cookie jar, so a single
// Client instance must be shared across the whole application lifetime.
// The token itself is opaque to this package.
//
// # Request Discipline
//
// Each exported operation issues exactly one request: no retries, no
// batching, no caching. Timeouts come from the underlying http.Client;
// cancellation from the caller's context.
package flashcards
