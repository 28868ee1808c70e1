// Package apperr defines the error taxonomy shared by every feature.
// Each error belongs to one kind (validation, unauthorized, not found, ...) and carries
// a message that is safe to show to API clients.
package apperr

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	ErrStorage         = errors.New("storage error")
)

// storageMessage is the only detail clients see for storage failures.
const storageMessage = "Internal server error"

// Error is a classified error with a client-facing message.
type Error struct {
	// Kind is one of the Err* kind sentinels above.
	Kind error
	// Message is returned to clients as-is.
	Message string
	// Err is the underlying cause, if any. It is never shown to clients.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Validation returns a new validation error with the given message.
func Validation(msg string) *Error { return &Error{Kind: ErrValidation, Message: msg} }

// Unauthorized returns a new authentication error with the given message.
func Unauthorized(msg string) *Error { return &Error{Kind: ErrUnauthorized, Message: msg} }

// NotFound returns a new not-found error with the given message.
func NotFound(msg string) *Error { return &Error{Kind: ErrNotFound, Message: msg} }

// Conflict returns a new conflict error with the given message.
func Conflict(msg string) *Error { return &Error{Kind: ErrConflict, Message: msg} }

// TooManyRequests returns a new throttling error with the given message.
func TooManyRequests(msg string) *Error { return &Error{Kind: ErrTooManyRequests, Message: msg} }

// Storage classifies err as a storage failure. Errors that are already classified
// are returned unchanged so a not-found raised inside a transaction keeps its kind.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	return &Error{Kind: ErrStorage, Message: storageMessage, Err: err}
}

// Message returns the client-facing message for err.
// Unclassified errors get the same generic message as storage failures.
func Message(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Message
	}
	return storageMessage
}
