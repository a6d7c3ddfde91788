package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure. Every error crossing a manager
// boundary carries exactly one of the two kinds: a validation failure the
// caller can correct and retry, or a storage failure originating in the
// backend.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindStorage    Kind = "STORAGE"
)

// Error is the error type returned by managers and repositories. It is
// always returned, never panicked.
type Error struct {
	kind    Kind
	message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.err
}

// Validationf creates a validation failure with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{kind: KindValidation, message: fmt.Sprintf(format, args...)}
}

// Storagef creates a storage failure with a formatted message.
func Storagef(format string, args ...any) *Error {
	return &Error{kind: KindStorage, message: fmt.Sprintf(format, args...)}
}

// Storage wraps a backend error as a storage failure.
func Storage(err error, message string) *Error {
	return &Error{kind: KindStorage, message: message, err: err}
}

// Wrap attaches a message to err, keeping its kind. Unclassified errors
// become storage failures.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{kind: appErr.kind, message: message, err: err}
	}
	return &Error{kind: KindStorage, message: message, err: err}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.kind == KindValidation
}

// IsStorage reports whether err is a storage failure.
func IsStorage(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.kind == KindStorage
}
