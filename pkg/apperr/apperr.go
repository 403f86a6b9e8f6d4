package apperr

import "errors"

// Kind classifies an error for HTTP mapping and logging.
type Kind int

const (
	// KindStorage covers database and filesystem failures. It is the
	// default for errors that carry no classification.
	KindStorage Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

// Error carries a client-safe message alongside the underlying cause.
// The cause is meant for server-side logs only.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New creates a classified error with a client-safe message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap classifies an underlying error without exposing it to clients.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf returns the classification of err, defaulting to KindStorage
// for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindStorage
}

// Message returns the client-safe message for err. Unclassified errors
// collapse to a generic message so driver internals never reach clients.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg
	}
	return "internal error"
}
