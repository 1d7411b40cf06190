// File: logger.go
// Title: Structured Logger
// Description: Logger with named, field-carrying child loggers on top of logrus.
//              A nil *Logger is valid and discards everything, so packages can
//              accept an optional logger without nil checks at every call site.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: LogError picks the level from the error severity

package log

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	mdwerror "github.com/msto63/mdwx/core/error"
)

// Fields holds structured key-value pairs attached to a log entry
type Fields map[string]interface{}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// Logger represents a structured logger with contextual information
type Logger struct {
	entry *logrus.Entry
	level Level
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// New creates a new logger with the specified configuration
func New(config Config) *Logger {
	base := logrus.New()
	base.SetLevel(config.Level.logrus())
	base.SetFormatter(config.Format.formatter())

	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	base.SetOutput(output)

	entry := logrus.NewEntry(base)
	if config.Name != "" {
		entry = entry.WithField("logger", config.Name)
	}

	return &Logger{entry: entry, level: config.Level}
}

// Default returns the process-wide logger (info level, JSON to stderr)
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(Config{Level: LevelInfo, Format: FormatJSON})
	})
	return defaultLogger
}

// WithName returns a child logger tagged with name
func (l *Logger) WithName(name string) *Logger {
	return l.WithField("logger", name)
}

// WithField returns a child logger carrying key=value on every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{entry: l.entry.WithField(key, value), level: l.level}
}

// WithFields returns a child logger carrying all fields on every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields)), level: l.level}
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs err with its code and details. Low severity errors go to
// info, medium to warn, everything else to error.
func (l *Logger) LogError(err error) {
	if l == nil || err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	agg, isAggregate := err.(*mdwerror.AggregateError)
	if !isAggregate && !errors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	severity := mdwerror.GetSeverity(err)
	fields := Fields{
		"error_code":     mdwerror.GetCode(err),
		"error_severity": severity.String(),
	}
	if isAggregate {
		fields["error_count"] = agg.Len()
	} else {
		if op := mdwErr.Operation(); op != "" {
			fields["error_operation"] = op
		}
		for k, v := range mdwErr.Details() {
			fields["error_"+k] = v
		}
	}

	switch severity {
	case mdwerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, fields)
	case mdwerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, fields)
	default:
		l.log(LevelError, err.Error(), err, fields)
	}
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l != nil && level >= l.level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	if l == nil {
		return LevelError
	}
	return l.level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	entry := l.entry
	for _, set := range fields {
		entry = entry.WithFields(logrus.Fields(set))
	}
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(level.logrus(), message)
}
