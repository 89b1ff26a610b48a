package log

import (
	"io"
	"log/slog"
	"os"

	linfitErrors "github.com/YuminosukeSato/linfit/pkg/errors"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger configures the process-wide slog default with a JSON handler on
// stdout in CloudLogging field naming. It is meant for example programs and
// services embedding the library; estimators log through GetLogger.
func SetupLogger(loglevel string) error {
	return SetupLoggerTo(os.Stdout, loglevel)
}

// SetupLoggerTo is SetupLogger with an explicit destination.
func SetupLoggerTo(w io.Writer, loglevel string) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     slog.Level(level),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr.Key = "severity"
			case slog.MessageKey:
				attr.Key = "message"
			case slog.SourceKey:
				attr.Key = "logging.googleapis.com/sourceLocation"
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(w, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
	SetLevel(level)
	return nil
}

// ParseLevel converts "debug", "info", "warn" or "error" into a Level.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, linfitErrors.NewValidationError("log_level", "must be debug, info, warn or error", level)
	}
}

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
