// Package apperr defines the kind-tagged errors shared by handlers, stores,
// and auth components. Handlers map kinds to HTTP statuses at the boundary;
// everything below the boundary only deals in kinds and messages.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary rendering.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindConflict
	KindInvalidCredentials
	KindUnauthenticated
	KindNotFound
	KindStore
)

// Error carries a kind, a client-safe message, and an optional wrapped cause.
// The cause is for internal logging only and never reaches clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an error of the given kind with a client-safe message.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and client-safe message to an underlying error.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the client-safe message for err. Errors that carry no kind
// render as an opaque internal error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal Server Error"
}
