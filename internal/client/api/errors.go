package api

import "errors"

var (
	// ErrUnavailable means the request never completed (transport failure).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps HTTP 401 (invalid credentials, login required).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoCredits maps HTTP 402: the caller has no session or user credits left.
	ErrNoCredits = errors.New("no credits available")

	// ErrEmailTaken maps HTTP 409 on registration.
	ErrEmailTaken = errors.New("email already registered")

	// ErrRateLimited maps HTTP 429.
	ErrRateLimited = errors.New("too many requests")

	// ErrServer maps 5xx responses.
	ErrServer = errors.New("server error")

	// ErrMalformedResponse means the response body was not parseable JSON.
	ErrMalformedResponse = errors.New("malformed server response")
)

// wrapStatus attaches the server-supplied error text (when present) to a
// sentinel so callers can both match with errors.Is and surface the detail.
func wrapStatus(sentinel error, detail string) error {
	if detail == "" {
		return sentinel
	}
	return &statusError{sentinel: sentinel, detail: detail}
}

type statusError struct {
	sentinel error
	detail   string
}

func (e *statusError) Error() string { return e.detail }
func (e *statusError) Unwrap() error { return e.sentinel }
