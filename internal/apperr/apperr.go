// Package apperr classifies service failures so the transport layer can map
// them to HTTP statuses without inspecting messages.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota + 1
	Conflict
	NotFound
	Auth
	Persistence
	Internal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Status maps an error to the HTTP status the response should carry.
// Anything unclassified is a 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation, Persistence:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Auth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message. Internal and unclassified errors
// get a generic one so store internals never leak into a response body.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "Internal server error"
}
