package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("requested resource not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrStore              = errors.New("store failure")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
// Duplicate usernames and failed logins are reported as 400 to keep the
// contract the dashboard client was written against.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicateUsername) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text safe to put in a response body. Store and
// unclassified errors collapse to a generic message so driver output never
// reaches the client.
func PublicMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		// Drop wrapping context such as "failed to create product: ".
		msg := err.Error()
		if i := strings.Index(msg, ErrValidation.Error()); i > 0 {
			return msg[i:]
		}
		return msg
	case errors.Is(err, ErrDuplicateUsername):
		return "Username already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrUnauthorized):
		return "Authentication required"
	case errors.Is(err, ErrStore):
		return "Database error"
	default:
		return "Server error"
	}
}

// Validationf builds an ErrValidation carrying a caller-facing reason.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StoreError wraps a driver failure so it classifies as ErrStore while
// keeping the original message for server-side logs.
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStore, err)
}
