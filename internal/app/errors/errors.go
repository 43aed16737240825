package errors

import (
	"fmt"
)

// Pipeline error kinds. Every error surfaced by a pipeline stage wraps one of
// these sentinels, so callers can classify with errors.Is without depending on
// message text.
var (
	// ErrInvalidInput covers malformed URLs, wrong artifact extensions and
	// empty audio files.
	ErrInvalidInput = New("invalid input")

	// ErrNotFound covers referenced artifact paths that do not exist.
	ErrNotFound = New("not found")
)

// Error represents a standardized error with an optional underlying cause.
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Helper constructors for the pipeline taxonomy.

// InvalidURL returns an ErrInvalidInput for a malformed or unsupported URL.
func InvalidURL(url string) error {
	return &Error{message: fmt.Sprintf("invalid URL: %q", url), cause: ErrInvalidInput}
}

// UnsupportedFormat returns an ErrInvalidInput for an artifact with the wrong
// extension.
func UnsupportedFormat(path string, expected string) error {
	return &Error{
		message: fmt.Sprintf("unsupported format for %q: expected %s", path, expected),
		cause:   ErrInvalidInput,
	}
}

// EmptyAudio returns an ErrInvalidInput for a zero-byte audio artifact.
func EmptyAudio(path string) error {
	return &Error{message: fmt.Sprintf("empty audio file: %q", path), cause: ErrInvalidInput}
}

// FileNotFound returns an ErrNotFound for a missing artifact path.
func FileNotFound(path string) error {
	return &Error{message: fmt.Sprintf("file not found: %q", path), cause: ErrNotFound}
}
