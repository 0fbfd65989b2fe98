package shared

import (
	"errors"
	"net/http"
)

// The full error taxonomy of the core. Every operation resolves to exactly
// one of these; handlers map them to a status and a stable code.
var (
	// ErrInvalidInput indicates a malformed role, status, or field value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateIdentity indicates a registration with an email that already exists.
	ErrDuplicateIdentity = errors.New("email already registered")
	// ErrInvalidCredentials indicates login failure. Unknown email and wrong
	// password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a malformed, expired, or badly signed token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnknownSubject indicates a valid token whose subject no longer exists.
	ErrUnknownSubject = errors.New("unknown subject")
	// ErrForbidden indicates the caller is authenticated but policy denies the
	// operation. Used only where existence itself is not sensitive.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound covers both true absence and denied access to an existing
	// record, so that existence is never leaked.
	ErrNotFound = errors.New("not found")
)

// CodeOf returns the stable machine-readable code for a taxonomy error.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrDuplicateIdentity):
		return "duplicate_identity"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, ErrUnknownSubject):
		return "unknown_subject"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	}
	return "internal"
}

// StatusOf returns the HTTP status a taxonomy error surfaces as.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrDuplicateIdentity):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrUnknownSubject):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
