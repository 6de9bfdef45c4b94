// Package apperr defines the structured error taxonomy shared by the OCR and
// summarization stages. Handlers map codes onto HTTP statuses; the pipeline
// itself only ever deals in codes.
package apperr

import (
	"errors"
	"fmt"
)

// Code is a short machine-checkable error category.
type Code string

const (
	// CodeInvalidInput marks malformed or missing request fields. Rejected
	// before any backend call.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeConfiguration marks missing credentials or processor identifiers,
	// distinct from a transient backend failure.
	CodeConfiguration Code = "CONFIGURATION"

	// CodeNoText marks an OCR response with zero extractable blocks. A hard
	// failure, never folded into a low-confidence result.
	CodeNoText Code = "NO_TEXT"

	// CodeBackendFailed marks a network/auth/quota failure talking to a
	// backend. Not retried.
	CodeBackendFailed Code = "BACKEND_FAILED"

	// CodeParseFailed marks a summarization response that contains no JSON
	// object at all, as opposed to an incomplete object the normalizer can
	// repair.
	CodeParseFailed Code = "PARSE_FAILED"
)

// Error pairs a taxonomy code with a human-readable detail string.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a taxonomy error without a cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a taxonomy error around an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// CodeOf extracts the taxonomy code from err, or CodeBackendFailed when err
// carries none.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeBackendFailed
}

// MessageOf extracts the human-readable detail from err.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Cause != nil {
			return fmt.Sprintf("%s: %v", ae.Message, ae.Cause)
		}
		return ae.Message
	}
	return err.Error()
}
