// Package apperr defines the closed set of failure kinds the API can report.
// Services return these (possibly wrapped); the transport layer maps each
// kind to its HTTP status exhaustively, so no handler invents its own.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation signals missing or malformed request fields.
	ErrValidation = errors.New("missing required fields")

	// ErrDuplicateIdentity signals a signup with an email that is already registered.
	ErrDuplicateIdentity = errors.New("email already registered")

	// ErrInvalidCredentials signals a failed login. It is returned for both
	// unknown emails and wrong passwords so callers cannot probe which
	// emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden signals an operation the requester's role does not permit.
	ErrForbidden = errors.New("operation not permitted")

	// ErrNotFound signals an absent referenced entity.
	ErrNotFound = errors.New("not found")

	// ErrCaretakerNotFound signals an assign-caretaker request naming an email
	// with no matching caretaker identity.
	ErrCaretakerNotFound = errors.New("caretaker not found")
)

// Status maps an error to its HTTP status code. Unrecognized errors map to
// 500; their detail is for logs only, never for response bodies.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateIdentity):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCaretakerNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-visible message for an error. Internal failures
// get a stable generic message; the underlying detail is logged upstream.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
