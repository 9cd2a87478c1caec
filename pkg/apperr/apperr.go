// Package apperr provides structured errors for the drafter application.
//
// Every failure mode of the file operations maps to a machine-readable
// code, so the CLI and HTTP hosts can classify errors consistently while
// the boundary results stay plain human-readable strings.
//
//	err := apperr.Wrap(apperr.CodeFileWrite, cause, "Failed to save file")
//	if apperr.Is(err, apperr.CodeFileWrite) {
//	    ...
//	}
package apperr

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

// Error codes covering the failure taxonomy of the file operations.
const (
	// CodeInvalidShapes marks shape-JSON parse failures.
	CodeInvalidShapes Code = "INVALID_SHAPES"

	// CodeFileRead and CodeFileWrite mark filesystem failures on the
	// native format.
	CodeFileRead  Code = "FILE_READ"
	CodeFileWrite Code = "FILE_WRITE"

	// CodeDXFRead and CodeDXFWrite mark DXF container failures,
	// including the filesystem half of each operation.
	CodeDXFRead  Code = "DXF_READ"
	CodeDXFWrite Code = "DXF_WRITE"

	// CodeSerialize marks shape re-serialization failures on import.
	CodeSerialize Code = "SERIALIZE"

	// CodeInternal marks unexpected internal errors.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // machine-readable error code
	Message string // human-readable message
	Cause   error  // underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err or any error in its chain carries the code.
func Is(err error, code Code) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Code == code {
			return true
		}
		err = e.Cause
		if err == nil {
			return false
		}
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or
// CodeInternal when err is not structured.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
