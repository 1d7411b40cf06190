// File: aggregate.go
// Title: Error Aggregation
// Description: Collects several failures into one compound error. The compound
//              error exposes its members through Unwrap() []error so errors.Is
//              and errors.As match any of them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package error

import (
	"fmt"
	"strings"
)

// AggregateError is a compound error holding one or more failures
type AggregateError struct {
	errs []error
}

// Aggregate combines errs into a single error. Nil entries are dropped; if no
// error remains the result is nil.
func Aggregate(errs ...error) error {
	kept := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &AggregateError{errs: kept}
}

// PanicIfAny raises the aggregate of errs immediately instead of returning it.
// It does nothing when every entry is nil.
func PanicIfAny(errs ...error) {
	if err := Aggregate(errs...); err != nil {
		panic(err)
	}
}

// Error implements the standard error interface
func (a *AggregateError) Error() string {
	if len(a.errs) == 1 {
		return a.errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors occurred:", len(a.errs))
	for _, err := range a.errs {
		sb.WriteString("\n\t* ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As
func (a *AggregateError) Unwrap() []error {
	return a.Errors()
}

// Errors returns a copy of the aggregated errors
func (a *AggregateError) Errors() []error {
	result := make([]error, len(a.errs))
	copy(result, a.errs)
	return result
}

// Len returns the number of aggregated errors
func (a *AggregateError) Len() int {
	return len(a.errs)
}

// Code returns CodeAggregate
func (a *AggregateError) Code() Code {
	return CodeAggregate
}
