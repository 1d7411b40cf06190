// File: argument.go
// Title: Argument Error Constructors
// Description: Constructors for the uniform argument failure policy shared by the
//              utility packages: missing required arguments, malformed text,
//              numeric overflow and out-of-range configuration values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package error

import "fmt"

// ArgumentMissing reports that a required argument was absent
func ArgumentMissing(param string) *Error {
	err := New(fmt.Sprintf("argument %q must not be nil", param)).
		WithCode(CodeArgumentMissing).
		WithDetail("param", param)
	err.stackTrace = captureStackTrace(2)
	return err
}

// InvalidFormat reports that value could not be parsed as target
func InvalidFormat(value, target string, cause error) *Error {
	err := New(fmt.Sprintf("%q is not a valid %s", value, target)).
		WithCode(CodeInvalidFormat).
		WithCause(cause).
		WithDetail("value", value).
		WithDetail("target", target)
	err.stackTrace = captureStackTrace(2)
	return err
}

// Overflow reports that value does not fit into target
func Overflow(value, target string, cause error) *Error {
	err := New(fmt.Sprintf("%q overflows %s", value, target)).
		WithCode(CodeOverflow).
		WithCause(cause).
		WithDetail("value", value).
		WithDetail("target", target)
	err.stackTrace = captureStackTrace(2)
	return err
}

// OutOfRange reports that the value of param is outside its accepted range
func OutOfRange(param string, value interface{}) *Error {
	err := New(fmt.Sprintf("argument %q is out of range: %v", param, value)).
		WithCode(CodeValueOutOfRange).
		WithDetail("param", param).
		WithDetail("value", value)
	err.stackTrace = captureStackTrace(2)
	return err
}
