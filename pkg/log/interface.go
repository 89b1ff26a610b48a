// Package log provides a structured logging interface for linfit estimators.
//
// The Logger interface is slog-compatible in shape. The default provider is
// backed by zerolog and writes JSON lines; SetupLogger configures log/slog for
// applications that prefer the standard library handler chain.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("linear").With(
//	    log.ModelNameKey, "GradientDescent",
//	)
//	logger.Info("Optimization started",
//	    log.OperationKey, log.OperationOptimize,
//	    log.SamplesKey, 100,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
type Logger interface {
	// Debug logs a debug-level message with optional key-value fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional key-value fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional key-value fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. If the first field is an error it is
	// attached as the record's error rather than treated as a key.
	//
	//	logger.Error("Fit failed", err, log.OperationKey, log.OperationFit)
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip computing expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
