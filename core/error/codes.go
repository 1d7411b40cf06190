// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the mdwx utility packages. Codes
//              classify failures so callers can branch on the kind of failure
//              (missing argument, malformed input, overflow) without parsing
//              error messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set for the utility packages

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeCanceled Code = "CANCELED"
	CodeTimeout  Code = "TIMEOUT"

	// Argument and input handling
	CodeArgumentMissing Code = "ARGUMENT_MISSING"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeOverflow        Code = "OVERFLOW"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeDuplicateEntry  Code = "DUPLICATE_ENTRY"

	// I/O
	CodeIOError Code = "IO_ERROR"

	// Aggregated failures
	CodeAggregate Code = "AGGREGATE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeCanceled, CodeTimeout,
		CodeArgumentMissing, CodeInvalidFormat, CodeOverflow, CodeValueOutOfRange, CodeDuplicateEntry,
		CodeIOError, CodeAggregate,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeArgumentMissing, CodeInvalidFormat, CodeOverflow, CodeValueOutOfRange, CodeDuplicateEntry:
		return "argument"
	case CodeIOError:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeCanceled, CodeTimeout:
		return "execution"
	case CodeAggregate:
		return "aggregate"
	default:
		return "generic"
	}
}
