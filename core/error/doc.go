// Package error provides the structured error type used across mdwx.
//
// Package: error
// Title: mdwx Error Handling
// Description: Structured errors with codes, severity, details and stack traces,
//              plus the argument failure constructors and error aggregation used
//              by the utility packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with codes and argument errors
// - 2026-10-13 v0.1.1: Added Aggregate and PanicIfAny
//
// Every utility reports failures the same way:
//
//   - a required argument that is nil fails with CodeArgumentMissing naming the parameter
//   - malformed text fails with CodeInvalidFormat
//   - a number that does not fit the target type fails with CodeOverflow
//   - an out-of-range setting (for example a non-positive buffer size) fails with CodeValueOutOfRange
//
// Usage:
//
//	import mdwerror "github.com/msto63/mdwx/core/error"
//
//	v, err := convertx.ToInt64(input)
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//	    // reject input
//	}
//
//	// Collect failures from independent steps
//	if err := mdwerror.Aggregate(errA, errB, errC); err != nil {
//	    return err
//	}
package error
