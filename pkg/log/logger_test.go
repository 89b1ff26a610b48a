package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	linfitErrors "github.com/YuminosukeSato/linfit/pkg/errors"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestZerologLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("hidden", "k", 1)
	logger.Info("Optimization started", OperationKey, OperationOptimize, SamplesKey, 3)
	logger.Warn("step size too large", LearningRateKey, 10.0)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "Optimization started", entries[0]["message"])
	assert.Equal(t, OperationOptimize, entries[0][OperationKey])
	assert.Equal(t, 3.0, entries[0][SamplesKey])
	assert.Equal(t, "warn", entries[1]["level"])
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug).With(ModelNameKey, "GradientDescent")

	logger.Debug("iteration", IterationKey, 10)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "GradientDescent", entries[0][ModelNameKey])
	assert.Equal(t, 10.0, entries[0][IterationKey])
}

func TestZerologLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	err := linfitErrors.NewSizeMismatchError("Validate", 6, 3)
	logger.Error("validation failed", err, OperationKey, OperationSolve)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0]["error"], "arrays have different sizes")
	assert.Equal(t, OperationSolve, entries[0][OperationKey])

	detail, ok := entries[0][ErrorDetailKey].(map[string]interface{})
	require.True(t, ok, "structured error detail expected")
	assert.Equal(t, "SizeMismatchError", detail["type"])
	assert.NotEmpty(t, entries[0][StacktraceAttrKey])
}

func TestZerologLoggerEnabled(t *testing.T) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelWarn)
	ctx := context.Background()

	assert.False(t, logger.Enabled(ctx, LevelDebug))
	assert.False(t, logger.Enabled(ctx, LevelInfo))
	assert.True(t, logger.Enabled(ctx, LevelWarn))
	assert.True(t, logger.Enabled(ctx, LevelError))
}

func TestProviderRoutesWarnings(t *testing.T) {
	prev := GetProvider()
	defer SetProvider(prev)

	testProvider, buf := NewTestLoggerProvider(LevelDebug)
	SetProvider(testProvider)

	linfitErrors.Warn(linfitErrors.NewNumericalInstabilityError("gradient_descent", []float64{1}, 5))

	assert.Contains(t, buf.String(), "numerical instability detected in gradient_descent")
	assert.Contains(t, buf.String(), `"component":"warnings"`)
}

func TestZerologProviderSetLevel(t *testing.T) {
	var buf bytes.Buffer
	p := NewZerologProvider(&buf, LevelWarn)

	p.GetLoggerWithName("linear").Info("dropped")
	p.SetLevel(LevelInfo)
	p.GetLoggerWithName("linear").Info("kept")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
	assert.Equal(t, "linear", entries[0][ComponentKey])
}

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)

	testLogger.Debug("debug message")
	testLogger.Info("info message", "key1", "value1", "number", 42)
	testLogger.Error("error message", fmt.Errorf("test error"), ErrorCodeKey, ErrorSingularMatrix)

	assert.NotContains(t, buffer.String(), "debug message")
	assert.True(t, testLogger.ContainsMessage("info message"))
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "test error"))
	assert.True(t, testLogger.ContainsField(ErrorCodeKey, ErrorSingularMatrix))

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	testLogger.Clear()
	assert.Empty(t, buffer.String())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Level
		wantErr bool
	}{
		"debug":   {"debug", LevelDebug, false},
		"info":    {"info", LevelInfo, false},
		"warn":    {"warn", LevelWarn, false},
		"error":   {"error", LevelError, false},
		"unknown": {"verbose", LevelInfo, true},
	}

	for name, td := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLevel(td.in)
			if td.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.want, got)
		})
	}
}

func TestSetupLoggerAddsStacktrace(t *testing.T) {
	prevDefault := slog.Default()
	prevProvider := GetProvider()
	defer func() {
		slog.SetDefault(prevDefault)
		SetProvider(prevProvider)
	}()
	SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelWarn))

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, "debug"))

	slog.Error("solve failed", ErrAttr(linfitErrors.NewSingularMatrixError("SolveNormalEquation", 2, nil)))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["severity"])
	assert.Equal(t, "solve failed", entries[0]["message"])
	assert.NotEmpty(t, entries[0][StacktraceAttrKey])

	assert.Error(t, SetupLoggerTo(&buf, "loud"))
}
