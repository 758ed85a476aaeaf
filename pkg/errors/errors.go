// Package errors gives hanoi's failures a machine-readable [Code].
//
// The CLI prints only the message of an [*Error]; the HTTP API sends the
// code and message as JSON and derives the status from the code. Codes are
// grouped as:
//   - INVALID_*: bad disk counts, rods, transcripts, config or other input
//   - EMPTY_SOURCE, ILLEGAL_PLACEMENT: moves the board rejected
//   - NOT_FOUND, INTERNAL_ERROR: everything else
//
// The board's move errors are plain struct types in package hanoi. They
// satisfy [Coder], so [GetCode] and [Is] see their codes too.
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid disk amount: %s", arg)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // prompt again
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a kind of failure, e.g. "INVALID_DISK_COUNT".
type Code string

// Known codes.
const (
	// Rejected input
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDiskCount  Code = "INVALID_DISK_COUNT"
	ErrCodeInvalidRod        Code = "INVALID_ROD"
	ErrCodeInvalidTranscript Code = "INVALID_TRANSCRIPT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	// Rejected moves
	ErrCodeEmptySource      Code = "EMPTY_SOURCE"
	ErrCodeIllegalPlacement Code = "ILLEGAL_PLACEMENT"

	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Coder is implemented by error types that carry a code without being an
// [*Error].
type Coder interface {
	Code() Code
}

// Error pairs a code with a message for people and, optionally, the error
// that caused it.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error formats as "CODE: message" followed by ": cause" when present.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns an Error that keeps cause in the chain.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// The outermost coded error in the chain decides.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the outermost coded error in err's chain, or
// "" when none carries one.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case Coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// UserMessage returns the message of the first [*Error] in the chain, without
// code or cause, and err.Error() for any other error.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
