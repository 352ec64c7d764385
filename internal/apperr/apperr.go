// Package apperr defines the user-facing error type shared by every fusion
// package
package apperr

import (
	"errors"
	"fmt"
)

// Error is an error whose message is shown to the user as-is. Values declared
// at package level act as templates: Fmt and Wrap return copies that still
// match the template with errors.Is.
type Error struct {
	Context any
	Cause   error
	Message string
	tmpl    *Error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause (if any).
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the template e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.tmpl != nil && e.tmpl == t)
}

func (e *Error) root() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}

// Fmt returns a copy of the error with the message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Context: e.Context,
		Cause:   e.Cause,
		tmpl:    e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Context: e.Context,
		Cause:   err,
		tmpl:    e.root(),
	}
}

// WithCtx attaches arbitrary context to a copy of the error.
func (e *Error) WithCtx(ctx any) *Error {
	return &Error{
		Message: e.Message,
		Context: ctx,
		Cause:   e.Cause,
		tmpl:    e.root(),
	}
}

// As is a shorthand for errors.As with an *Error target.
func As(err error) (*Error, bool) {
	var target *Error

	ok := errors.As(err, &target)

	return target, ok
}
