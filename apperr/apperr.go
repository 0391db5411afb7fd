// Package apperr defines the failure taxonomy shared by stores, services and
// the HTTP layer. Every failure carries a machine-checkable kind and a
// human-readable message; the HTTP layer maps kinds to status codes.
package apperr

import "errors"

type Kind string

const (
	Unauthorized  Kind = "unauthorized"
	NotFound      Kind = "not_found"
	Conflict      Kind = "conflict"
	InvalidItem   Kind = "invalid_item"
	InvalidFormat Kind = "invalid_format"
	Validation    Kind = "validation"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
