package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a domain error with a structured error code.
//
// Codes follow the format MD-<AREA>-<NNNN>, where the first digit of the
// number mirrors the HTTP class of the failure (4 = caller, 5 = storage).
type DomainError struct {
	Code    string // Error code (e.g., "MD-STOR-5001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Wrap returns a copy of the error wrapping the given cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Code returns the code of the first DomainError in err's chain, or "".
func Code(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCallerError reports whether err carries a 4xxx code, meaning the input
// was at fault rather than the store.
func IsCallerError(err error) bool {
	code := Code(err)
	i := strings.LastIndexByte(code, '-')
	return i >= 0 && i+1 < len(code) && code[i+1] == '4'
}

// Storage errors (STOR).
var (
	// ErrCommitFailed indicates the snapshot could not be written after a mutation.
	ErrCommitFailed = NewDomainError("MD-STOR-5001", "commit failed")

	// ErrStorageDir indicates the directory holding the snapshot could not be created.
	ErrStorageDir = NewDomainError("MD-STOR-5002", "cannot prepare storage directory")

	// ErrSnapshotRead indicates an existing snapshot could not be read from disk.
	ErrSnapshotRead = NewDomainError("MD-STOR-5003", "cannot read snapshot")
)

// Command-line errors (CLI).
var (
	// ErrBadSyntax indicates a malformed key=value token.
	ErrBadSyntax = NewDomainError("MD-CLI-4001", "invalid format")

	// ErrUnknownCommand indicates an unrecognised verb.
	ErrUnknownCommand = NewDomainError("MD-CLI-4002", "unknown command")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("MD-CLI-4003", "missing required argument")
)

// Record errors (REC).
var (
	// ErrInvalidText indicates a field name or value that is not valid UTF-8.
	ErrInvalidText = NewDomainError("MD-REC-4001", "record is not valid UTF-8 text")
)

// Configuration errors (CFG).
var (
	// ErrInvalidConfig indicates the loaded configuration failed validation.
	ErrInvalidConfig = NewDomainError("MD-CFG-4001", "invalid configuration")
)
