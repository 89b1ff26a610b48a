package log

import (
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ErrorDetailKey holds the structured form of an error that implements
// zerolog.LogObjectMarshaler somewhere in its chain.
const ErrorDetailKey = "error.detail"

// ZerologLogger implements Logger on top of a zerolog.Logger.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a JSON logger writing to w at the given minimum level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// Debug implements Logger.Debug.
func (l *ZerologLogger) Debug(msg string, fields ...any) {
	emit(l.zl.Debug(), msg, fields)
}

// Info implements Logger.Info.
func (l *ZerologLogger) Info(msg string, fields ...any) {
	emit(l.zl.Info(), msg, fields)
}

// Warn implements Logger.Warn.
func (l *ZerologLogger) Warn(msg string, fields ...any) {
	emit(l.zl.Warn(), msg, fields)
}

// Error implements Logger.Error.
func (l *ZerologLogger) Error(msg string, fields ...any) {
	emit(l.zl.Error(), msg, fields)
}

// With implements Logger.With.
func (l *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}

// Enabled implements Logger.Enabled.
func (l *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	zlLevel := toZerologLevel(level)
	return zlLevel >= l.zl.GetLevel() && zlLevel >= zerolog.GlobalLevel()
}

// emit writes one record. A nil event means the level is disabled.
func emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = e.Err(err)
			var m zerolog.LogObjectMarshaler
			if errors.As(err, &m) {
				e = e.Object(ErrorDetailKey, m)
			}
			if stack := extractStacktrace(err); stack != "" {
				e = e.Str(StacktraceAttrKey, stack)
			}
			fields = fields[1:]
		}
	}
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologProvider implements LoggerProvider. Loggers handed out before a
// SetLevel call keep the level they were created with.
type ZerologProvider struct {
	mu    sync.RWMutex
	w     io.Writer
	level Level
}

// NewZerologProvider creates a provider whose loggers write JSON lines to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	return &ZerologProvider{w: w, level: level}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return NewZerologLogger(p.w, p.level)
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}
