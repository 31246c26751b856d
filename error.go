package sitebind

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These codes describe the class of a failure independently of the
// component that produced it. EUNAVAILABLE is the recoverable per-item
// class: a discovery visit or an ingestion job that fails with it is
// recorded and skipped, never escalated to abort the run.
const (
	EINVALID     = "invalid"     // malformed input (e.g. seed URL)
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // every fetch strategy exhausted
	EINTERNAL    = "internal"    // unexpected internal failure
)

// Error represents an application-level error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sitebind error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code, if available.
// Non-application errors map to EINTERNAL; nil maps to the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message, if available.
// Non-application errors report a generic message to avoid leaking internals.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
