// Package log provides structured logging for mdwx.
//
// Loggers are configured once (level, format, output) and then narrowed with
// WithName, WithField and WithFields. Output is produced by logrus in JSON or
// text form. A nil *Logger discards all output.
//
//	logger := log.New(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger.WithName("hash").Info("digest computed", log.Fields{"file": name})
package log
