// File: level.go
// Title: Log Levels and Formats
// Description: Defines log levels and output formats and maps them onto the
//              logrus backend.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota
	// LevelDebug provides detailed information for debugging purposes
	LevelDebug
	// LevelInfo represents general informational messages
	LevelInfo
	// LevelWarn indicates potentially harmful situations
	LevelWarn
	// LevelError represents error conditions that need attention
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ParseLevel parses a level name (case-insensitive, "warning" accepted)
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", level)
	}
}

// Format selects the output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat parses a format name
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return FormatJSON, nil
	case "text", "console":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("invalid log format: %q", format)
	}
}

func (f Format) formatter() logrus.Formatter {
	if f == FormatText {
		return &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}
	}
	return &logrus.JSONFormatter{}
}
