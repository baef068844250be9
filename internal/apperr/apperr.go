// Package apperr defines the typed errors shared by all domain services.
// Handlers never build error responses from raw errors; they hand them to
// internal/web which switches on the Kind.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP boundary can pick a status code.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindAuthentication
	KindAuthorization
	KindFileStorage
)

// Error is a classified application error. Details carries field-level
// validation messages when present.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports malformed or missing input. Optional details list
// per-field messages.
func Validation(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Authentication reports bad credentials or a missing/invalid/expired token.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Authorization reports a valid identity lacking the required role.
func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// FileStorage reports a rejected or failed file upload.
func FileStorage(message string) *Error {
	return &Error{Kind: KindFileStorage, Message: message}
}

// Wrap attaches an underlying cause to a classified error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindUnexpected for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// As unwraps err into an *Error when possible.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
