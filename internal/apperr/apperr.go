// Package apperr carries the closed set of error kinds the batch boundary
// can produce. It follows the teacher's own error style (stdlib errors and
// fmt.Errorf wrapping, see internal/net/server.go and
// internal/server/server.go in the original) rather than pulling in an
// error-kind framework: the set of kinds is small and fixed, and nothing
// here needs the extra machinery of something like cockroachdb/errors.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is one of the closed error categories from the batch boundary
// contract.
type Kind string

const (
	KindInputParse     Kind = "InputParse"
	KindInvalidEnum    Kind = "InvalidEnum"
	KindInvalidDecimal Kind = "InvalidDecimal"
	KindInvalidOrder   Kind = "InvalidOrder"
	KindIO             Kind = "IO"
)

// Error wraps a cause with the Kind that classifies it, so callers can
// branch on kind with errors.As while %w still carries the original cause
// through fmt.Errorf chains.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a Kind-tagged error with no wrapped cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap tags an existing error with a Kind, preserving it as the cause.
func Wrap(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// Is reports whether err carries the given Kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}
