// Package errutils provides the error values shared by the mkdir and mbprobe
// tools. It defines sentinel errors for the setup and per-directory failure
// classes, error wrapping helpers, and small helpers for rendering operating
// system errors the way Unix tools print them.
//
// The sentinels are always wrapped with %w, so callers can use errors.Is both
// on the sentinel and on the underlying errno.
package errutils

import (
	"errors"
	"fmt"
	"syscall"
	"unicode"
	"unicode/utf8"
)

// Common error types used throughout the application.
var (
	// Usage errors are detected before any filesystem mutation.

	// ErrMissingOperand is returned when no directory operand was given.
	ErrMissingOperand = fmt.Errorf("missing operand")

	// ErrInvalidMode is returned when a mode specification cannot be compiled.
	ErrInvalidMode = fmt.Errorf("invalid mode")

	// ErrInvalidOutputFormat is returned when an invalid output format is specified.
	ErrInvalidOutputFormat = fmt.Errorf("invalid output format")

	// Per-directory errors.

	// ErrCreateDirectory is returned when a path segment cannot be created.
	ErrCreateDirectory = fmt.Errorf("cannot create directory")

	// ErrChangePermissions is returned when a freshly created directory
	// cannot be given its requested mode.
	ErrChangePermissions = fmt.Errorf("cannot change permissions of")

	// ErrStat is returned when an existing path cannot be inspected.
	ErrStat = fmt.Errorf("cannot stat")

	// Security label errors.

	// ErrSetCreateContext is returned when the process-wide file creation
	// context cannot be installed.
	ErrSetCreateContext = fmt.Errorf("failed to set default file creation context")

	// ErrSetDefaultContext is returned when a default label cannot be
	// assigned before creating a directory.
	ErrSetDefaultContext = fmt.Errorf("failed to set default creation context")

	// ErrRestoreContext is returned when the corrective relabel fails.
	ErrRestoreContext = fmt.Errorf("failed to restore context")

	// ErrLabelingUnsupported is returned when no security module is active.
	ErrLabelingUnsupported = fmt.Errorf("security labeling is not supported")
)

// Wrap wraps an error with additional context.
// If the error is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
// If the error is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// PathError ties a sentinel to the quoted path it concerns and the
// underlying cause. Error renders as "<op> <path>: <Cause>", which is the
// shape Unix tools print after their program name.
type PathError struct {
	Op    error
	Path  string
	Cause error
}

func (e *PathError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, Strerror(e.Cause))
}

// Unwrap exposes both the sentinel and the cause to errors.Is.
func (e *PathError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Cause}
}

// NewPathError is a helper to create a PathError for an already quoted path.
func NewPathError(op error, quotedPath string, cause error) error {
	return &PathError{Op: op, Path: quotedPath, Cause: cause}
}

// ErrInvalidModeWithSpec is a helper to create a wrapped error with the quoted mode spec.
func ErrInvalidModeWithSpec(quotedSpec string) error {
	return fmt.Errorf("%w %s", ErrInvalidMode, quotedSpec)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json, yaml", ErrInvalidOutputFormat, format)
}

// Strerror renders err the way C's strerror does: errno texts start with an
// upper case letter. Errors that wrap an errno are reduced to the errno text.
func Strerror(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var errno syscall.Errno
	if errors.As(err, &errno) {
		msg = errno.Error()
	}
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
