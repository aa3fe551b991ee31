package apperr

import (
	"errors"
	"fmt"
)

// Kind is a machine-checkable error category. Handlers map kinds to HTTP
// statuses; the core packages never deal in transport concerns themselves.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindAccessDenied      Kind = "access_denied"
	KindInvalidTransition Kind = "invalid_transition"
	KindValidation        Kind = "validation"
	KindConflict          Kind = "conflict"
)

// Error carries a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func NotFound(format string, a ...any) *Error {
	return New(KindNotFound, format, a...)
}

func AccessDenied(format string, a ...any) *Error {
	return New(KindAccessDenied, format, a...)
}

func InvalidTransition(format string, a ...any) *Error {
	return New(KindInvalidTransition, format, a...)
}

func Validation(format string, a ...any) *Error {
	return New(KindValidation, format, a...)
}

func Conflict(format string, a ...any) *Error {
	return New(KindConflict, format, a...)
}

// KindOf returns the kind buried in err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
