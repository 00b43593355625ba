/*
 * Scan Error Model
 *
 * This file implements the error type shared by every scanning primitive.
 * An error carries a kind (used by callers for control flow), an optional
 * wrapped cause (for example a backing-store read failure), and an ordered
 * breadcrumb trace that each enclosing operation extends as the error
 * propagates outward.
 */

package scanerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a scan failure for control-flow matching.
type Kind int

const (
	// KindGeneric is a message-only failure, such as a malformed numeric
	// substring or a scanner-misuse precondition violation.
	KindGeneric Kind = iota
	// KindEmpty means the input was exhausted where more was required.
	KindEmpty
	// KindUnexpected means a character did not match the expected grammar.
	KindUnexpected
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindUnexpected:
		return "unexpected"
	default:
		return "generic"
	}
}

// Error is the concrete error produced by all scanning primitives.
//
// Trace holds the context breadcrumbs, innermost first: the operation that
// failed attaches its label before any enclosing operation does, and each
// enclosing operation appends its own label on the way out.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
	Trace []string
}

// New returns a generic, message-only error.
func New(msg string) *Error {
	return &Error{Kind: KindGeneric, Msg: msg}
}

// Newf returns a generic error with a formatted message.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Empty returns an input-exhausted error.
func Empty(msg string) *Error {
	return &Error{Kind: KindEmpty, Msg: msg}
}

// Emptyf returns an input-exhausted error with a formatted message.
func Emptyf(format string, args ...any) *Error {
	return Empty(fmt.Sprintf(format, args...))
}

// Unexpected returns a grammar-mismatch error.
func Unexpected(msg string) *Error {
	return &Error{Kind: KindUnexpected, Msg: msg}
}

// Unexpectedf returns a grammar-mismatch error with a formatted message.
func Unexpectedf(format string, args ...any) *Error {
	return Unexpected(fmt.Sprintf(format, args...))
}

// Wrap returns a generic error with msg as its root message and err as its
// wrapped cause. If err is already an *Error its kind and trace are kept and
// the existing root message is demoted into the new one.
func Wrap(err error, msg string) *Error {
	var serr *Error
	if errors.As(err, &serr) {
		return &Error{
			Kind:  serr.Kind,
			Msg:   msg + ": " + serr.Msg,
			Cause: serr.Cause,
			Trace: serr.Trace,
		}
	}
	return &Error{Kind: KindGeneric, Msg: msg, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error renders the root cause and message followed by the breadcrumb
// chain, most specific first.
func (e *Error) Error() string {
	var b strings.Builder
	switch {
	case e.Msg != "" && e.Cause != nil:
		b.WriteString(e.Msg)
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	case e.Msg != "":
		b.WriteString(e.Msg)
	case e.Cause != nil:
		b.WriteString(e.Cause.Error())
	default:
		switch e.Kind {
		case KindEmpty:
			b.WriteString("the input is empty")
		case KindUnexpected:
			b.WriteString("unexpected character")
		default:
			b.WriteString("scan error")
		}
	}
	for _, label := range e.Trace {
		b.WriteString("; ")
		b.WriteString(label)
	}
	return b.String()
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Context attaches a breadcrumb label to err and returns the same error:
// kind, cause and root message are unchanged. A nil err passes through.
// Errors from outside this package are wrapped into a generic *Error first.
//
// Inner operations call Context before outer ones, so appending keeps the
// trace ordered innermost first.
func Context(err error, label string) error {
	if err == nil {
		return nil
	}
	var serr *Error
	if !errors.As(err, &serr) {
		serr = &Error{Kind: KindGeneric, Cause: err}
	}
	serr.Trace = append(serr.Trace, label)
	return serr
}

// With runs fn and, on failure, attaches label to the returned error. It is
// the combinator form of Context for callers composing larger operations
// out of scanning primitives.
func With[T any](label string, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil {
		return v, Context(err, label)
	}
	return v, nil
}

// IsEmpty reports whether err (or anything it wraps) is an input-exhausted
// scan error.
func IsEmpty(err error) bool {
	var serr *Error
	return errors.As(err, &serr) && serr.Kind == KindEmpty
}

// IsUnexpected reports whether err (or anything it wraps) is a
// grammar-mismatch scan error.
func IsUnexpected(err error) bool {
	var serr *Error
	return errors.As(err, &serr) && serr.Kind == KindUnexpected
}
