package api

import "fmt"

// Error is a normalized remote rejection: the HTTP status plus whatever
// message the response envelope carried. RetryAfter is only populated for
// rate-limited responses.
type Error struct {
	StatusCode int
	Message    string
	RetryAfter int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// Message extracts the server-provided message from err, or returns fallback
// when the error carries none. Store operations pass their fixed localized
// fallback here so users always see something actionable.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := err.(*Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
