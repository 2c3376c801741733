// Package serrors implements the semantic error taxonomy of the pricing
// pipeline. Every failure that crosses a package boundary carries one Kind so
// callers can branch with errors.Is without matching on message text.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and match through errors.Is/As when wrapped by Error.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrUnknownKind indicates a cargo or transport keyword missing from the catalog.
	ErrUnknownKind = NewKind("UNKNOWN_KIND")
	// ErrMalformedInput indicates a structural violation in an input document.
	ErrMalformedInput = NewKind("MALFORMED_INPUT")
	// ErrUnsupportedFormat indicates that no parser, exporter or sort key matches an identifier.
	ErrUnsupportedFormat = NewKind("UNSUPPORTED_FORMAT")
	// ErrValidation indicates an incomplete or invalid order.
	ErrValidation = NewKind("VALIDATION")
	// ErrTransform indicates a cipher or archive stage failure.
	ErrTransform = NewKind("TRANSFORM")
	// ErrIO indicates a failure reading or writing a file.
	ErrIO = NewKind("IO")
)

// allKinds lists the kinds KindOf looks for, in match priority.
var allKinds = []Kind{ //nolint: gochecknoglobals
	ErrUnknownKind,
	ErrMalformedInput,
	ErrUnsupportedFormat,
	ErrValidation,
	ErrTransform,
	ErrIO,
}

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or anything in the wrapped chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As supports extraction of either the kind sentinel or a wrapped error type.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind of this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf reports the outermost semantic kind found in err's chain, or nil
// when err carries none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}
	for _, k := range allKinds {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}
