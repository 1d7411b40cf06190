// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Utility failures caused by bad
//              caller input are low severity; I/O and configuration failures rank
//              higher so the CLI can decide what to surface.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a failure caused by caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a workaround
	SeverityMedium

	// SeverityHigh indicates a failure of the surrounding environment (I/O, config)
	SeverityHigh

	// SeverityCritical indicates an unrecoverable failure
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIOError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeArgumentMissing, CodeInvalidFormat, CodeOverflow,
		CodeValueOutOfRange, CodeDuplicateEntry:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
