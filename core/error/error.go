// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, severity, details and a
//              captured stack trace. Error stays compatible with the standard
//              error interface and with errors.Is/As through Unwrap.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors
// - 2026-10-14 v0.1.1: Code lookups walk the wrap chain
// - 2026-10-18 v0.1.2: Code lookups descend into aggregated errors

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string

	stackTrace []StackFrame
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxStackFrames limits the number of stack frames captured
	MaxStackFrames = 20
)

var stackFramePool = sync.Pool{
	New: func() interface{} {
		return make([]StackFrame, 0, MaxStackFrames)
	},
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	err := New(fmt.Sprintf(format, args...))
	err.stackTrace = captureStackTrace(2)
	return err
}

// Wrap wraps an existing error with additional context. Code, severity and
// details of a wrapped *Error are inherited; wrapping an *AggregateError keeps
// CodeAggregate.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2),
	}

	mdwErr, agg := outermost(err)
	switch {
	case mdwErr != nil:
		wrapped.code = mdwErr.code
		wrapped.severity = mdwErr.severity
		for k, v := range mdwErr.details {
			wrapped.details[k] = v
		}
	case agg != nil:
		wrapped.code = CodeAggregate
		wrapped.severity = GetSeverity(agg)
	}
	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithCause attaches an underlying cause
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// StackTrace returns the stack trace
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
		fmt.Sprintf("Severity: %s", e.severity),
		fmt.Sprintf("Timestamp: %s", e.timestamp.Format(time.RFC3339)),
	}

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
		"details":   e.details,
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	if len(e.stackTrace) > 0 {
		data["stack_trace"] = e.stackTrace
	}

	return json.Marshal(data)
}

// captureStackTrace captures the current stack trace using a pooled scratch slice
func captureStackTrace(skip int) []StackFrame {
	frames := stackFramePool.Get().([]StackFrame)[:0]
	defer stackFramePool.Put(frames[:0])

	for i := skip; i < MaxStackFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	result := make([]StackFrame, len(frames))
	copy(result, frames)
	return result
}

// HasCode checks if any error in the tree carries the given code. Members of
// an *AggregateError are searched as well.
func HasCode(err error, code Code) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *Error:
		if e == nil {
			return false
		}
		return e.code == code || HasCode(e.cause, code)
	case *AggregateError:
		if code == CodeAggregate {
			return true
		}
		for _, member := range e.errs {
			if HasCode(member, code) {
				return true
			}
		}
		return false
	case interface{ Unwrap() []error }:
		for _, member := range e.Unwrap() {
			if HasCode(member, code) {
				return true
			}
		}
		return false
	default:
		return HasCode(errors.Unwrap(err), code)
	}
}

// outermost follows the single-error wrap chain and returns the first *Error
// or *AggregateError on it. At most one of the results is non-nil.
func outermost(err error) (*Error, *AggregateError) {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e, nil
		case *AggregateError:
			return nil, e
		}
		err = errors.Unwrap(err)
	}
	return nil, nil
}

// GetCode returns the code of the outermost *Error in the chain, CodeAggregate
// if an *AggregateError comes first, or CodeUnknown
func GetCode(err error) Code {
	mdwErr, agg := outermost(err)
	switch {
	case mdwErr != nil:
		return mdwErr.code
	case agg != nil:
		return agg.Code()
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost *Error, the highest member
// severity for an aggregate, or SeverityMedium for other errors
func GetSeverity(err error) Severity {
	mdwErr, agg := outermost(err)
	switch {
	case mdwErr != nil:
		return mdwErr.severity
	case agg != nil:
		highest := SeverityLow
		for _, member := range agg.errs {
			highest = max(highest, GetSeverity(member))
		}
		return highest
	}
	return SeverityMedium
}
