package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingConfig = New("configuration is required")
	ErrInvalidConfig = New("invalid configuration")
	ErrUnknownEngine = New("unknown transcription engine")
	ErrMissingAPIKey = New("API key is required")

	// Upload errors
	ErrUnsupportedFormat = New("Formato no soportado")
	ErrEmptyUpload       = New("uploaded file is empty")
	ErrUploadTooLarge    = New("uploaded file is too large")

	// Network errors
	ErrRequestFailed   = New("request failed")
	ErrResponseInvalid = New("invalid response")

	// Storage errors
	ErrQueryFailed  = New("query failed")
	ErrInsertFailed = New("insert failed")
	ErrCacheMiss    = New("cache miss")
)

// Error represents a standardized error
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

// Mark attaches a sentinel to err so that errors.Is(result, sentinel) holds
// while the message still reads as the original cause.
func Mark(err error, sentinel *Error) error {
	if err == nil {
		return nil
	}
	return &marked{cause: err, sentinel: sentinel}
}

type marked struct {
	cause    error
	sentinel *Error
}

func (m *marked) Error() string   { return m.cause.Error() }
func (m *marked) Unwrap() []error { return []error{m.cause, m.sentinel} }

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

// Message returns the message without the wrapped cause.
func (e *Error) Message() string {
	return e.message
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// RequiredField returns an error for a missing required field. It matches
// ErrMissingConfig.
func RequiredField(field string) error {
	return Mark(Newf("%s is required", field), ErrMissingConfig)
}

// InvalidField returns an error for an invalid field value. It matches
// ErrInvalidConfig.
func InvalidField(field string, reason string) error {
	return Mark(Newf("%s is invalid: %s", field, reason), ErrInvalidConfig)
}

// IsValidationError reports whether err was caused by bad input rather than
// a failing dependency
func IsValidationError(err error) bool {
	for _, sentinel := range []*Error{ErrUnsupportedFormat, ErrEmptyUpload, ErrMissingConfig, ErrInvalidConfig, ErrMissingAPIKey} {
		if Is(err, sentinel) {
			return true
		}
	}
	return false
}
