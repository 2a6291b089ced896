package exception

import (
	"errors"
	"fmt"
)

// ApplicationError handles application level errors.
// Kind identifies the error for clients and for errors.Is comparisons,
// StatusCode is the HTTP status the transport responds with.
type ApplicationError struct {
	Kind       string
	Message    string
	StatusCode int
	Cause      error
}

// New returns an application error sentinel.
func New(kind string, statusCode int, message string) ApplicationError {
	return ApplicationError{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	return e.Cause
}

// Is matches another application error of the same kind. Sentinels without
// a kind fall back to comparing messages.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if e.Kind != "" || targetErr.Kind != "" {
		return e.Kind == targetErr.Kind
	}

	return e.Message == targetErr.Message
}

// WithCause returns a copy of the error carrying cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// WithMessage returns a copy of the error with a more specific message.
func (e ApplicationError) WithMessage(format string, args ...any) ApplicationError {
	e.Message = fmt.Sprintf(format, args...)

	return e
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
