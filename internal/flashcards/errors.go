package flashcards

import (
	"errors"
	"net/http"
)

// APIError is the normalized failure shape for every request the client
// issues. Status holds the HTTP status code when the server answered, and 0
// for transport-level failures or soft errors embedded in 2xx payloads.
// Message is suitable for direct display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err carries HTTP 401. The backend answers
// 401 whenever the session cookie is missing or expired, regardless of the
// endpoint, so callers treat it as "session invalid".
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// ErrorMessage extracts the display message from err, falling back to the
// plain error text for non-API errors.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
