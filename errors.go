package deboiler

import (
	"errors"
	"fmt"
)

// Application error codes, following Ben Johnson's "Standard Package
// Layout" convention: errors carry a machine-readable code plus a
// human-readable message, and wrap cleanly with errors.Is/As.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"
	ECONFLICT = "conflict"
)

// Error represents an application-specific error with a code and message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("deboiler error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a formatted message.
func Errorf(code string, format string, args ...any) error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an error and returns its code, if available.
// Returns EINTERNAL if the error has no code, or an empty string if err is nil.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an error and returns its message, if available.
// Returns "Internal error." if the error has no message, or an empty
// string if err is nil.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
