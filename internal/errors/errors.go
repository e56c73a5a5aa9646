package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorConfig   = 4   // Indicates a configuration or input validation error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure: the single
// "invalid argument" error kind of the numeric operations. It identifies
// which field failed validation and provides a human-readable explanation.
// Raised when an input integer is negative or not an integer at all.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// CalculationError encapsulates a computation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during an operation.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies ANSI color codes for error display. The interface
// keeps this package free of presentation dependencies; the CLI passes its
// theme-backed implementation.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError writes a diagnostic for a failed operation and
// returns the matching process exit code.
//
// Mapping:
//   - context.DeadlineExceeded / TimeoutError -> ExitErrorTimeout
//   - context.Canceled                        -> ExitErrorCanceled
//   - ValidationError                         -> ExitErrorConfig
//   - anything else                           -> ExitErrorGeneric
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "\n%sTimeout exceeded after %s.%s\n", colors.Red(), duration, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "\n%sOperation canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	case IsValidationError(err):
		fmt.Fprintf(out, "\n%sInvalid input: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	default:
		var te TimeoutError
		if errors.As(err, &te) {
			fmt.Fprintf(out, "\n%s%v%s\n", colors.Red(), te, colors.Reset())
			return ExitErrorTimeout
		}
		fmt.Fprintf(out, "\n%sError: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
