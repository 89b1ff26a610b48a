package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewEmptyArrayError(t *testing.T) {
	err := NewEmptyArrayError("SolveNormalEquation", "x")

	want := "linfit: SolveNormalEquation: empty array: x has no elements"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var emptyErr *EmptyArrayError
	if !As(err, &emptyErr) {
		t.Fatal("Error should be castable to *EmptyArrayError")
	}
	if emptyErr.Argument != "x" {
		t.Errorf("Argument = %q, want %q", emptyErr.Argument, "x")
	}

	if !Is(err, ErrEmptyData) {
		t.Error("Expected Is(err, ErrEmptyData) to be true")
	}
	if Is(err, ErrSizeMismatch) {
		t.Error("EmptyArrayError must not match ErrSizeMismatch")
	}

	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}
}

func TestNewSizeMismatchError(t *testing.T) {
	err := NewSizeMismatchError("Validate", 6, 3)

	want := "linfit: Validate: arrays have different sizes: x has 6 samples, y has 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var sizeErr *SizeMismatchError
	if !As(err, &sizeErr) {
		t.Fatal("Error should be castable to *SizeMismatchError")
	}
	if sizeErr.InputN != 6 || sizeErr.OutputN != 3 {
		t.Errorf("got (%d, %d), want (6, 3)", sizeErr.InputN, sizeErr.OutputN)
	}
	if !Is(err, ErrSizeMismatch) {
		t.Error("Expected Is(err, ErrSizeMismatch) to be true")
	}
}

func TestNewSingularMatrixError(t *testing.T) {
	tests := []struct {
		name    string
		cause   error
		wantMsg string
	}{
		{
			name:    "with cause",
			cause:   fmt.Errorf("matrix singular or near-singular"),
			wantMsg: "linfit: SolveNormalEquation: singular matrix (2x2): matrix singular or near-singular",
		},
		{
			name:    "without cause",
			cause:   nil,
			wantMsg: "linfit: SolveNormalEquation: singular matrix (2x2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSingularMatrixError("SolveNormalEquation", 2, tt.cause)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}
			if !Is(err, ErrSingularMatrix) {
				t.Error("Expected Is(err, ErrSingularMatrix) to be true")
			}

			var singErr *SingularMatrixError
			if !As(err, &singErr) {
				t.Error("Error should be castable to *SingularMatrixError")
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Predict")

	want := "linfit: LinearRegression: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
	if !Is(err, ErrNotFitted) {
		t.Error("Expected Is(err, ErrNotFitted) to be true")
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 2, 3, 1)

	want := "linfit: Predict: dimension mismatch on axis 1 (features). Expected 2, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("step_size", "must be positive", -0.5)

	want := "linfit: validation failed for parameter 'step_size': must be positive (got: -0.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Fit",
			kind:    "invalid input",
			err:     fmt.Errorf("test error"),
			wantMsg: "linfit: Fit: invalid input: test error",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "linfit: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var sizeErr *SizeMismatchError
	if !As(NewSizeMismatchError("Validate", 4, 2), &sizeErr) {
		t.Fatal("expected *SizeMismatchError")
	}
	logger.Error().Object("error", sizeErr).Msg("validation failed")

	out := buf.String()
	for _, want := range []string{`"type":"SizeMismatchError"`, `"x_samples":4`, `"y_samples":2`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %s does not contain %s", out, want)
		}
	}
}

func TestWrapfKeepsSentinel(t *testing.T) {
	wrapped := Wrapf(NewEmptyArrayError("Validate", "y"), "in %s", "PolynomialRegression.Fit")

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in PolynomialRegression.Fit") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWarnRoutesToHandler(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	SetZerologWarnFunc(nil)
	defer SetWarningHandler(func(w error) {})

	Warn(New("first"))
	Warn(New("second"))

	if len(got) != 2 {
		t.Fatalf("handler received %d warnings, want 2", len(got))
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("update", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("unexpected error for finite values: %v", err)
	}

	err := CheckNumericalStability("update", []float64{1, math.NaN(), math.Inf(1)}, 7)
	var instErr *NumericalInstabilityError
	if !As(err, &instErr) {
		t.Fatalf("expected *NumericalInstabilityError, got %v", err)
	}
	if instErr.Iteration != 7 || len(instErr.Values) != 2 {
		t.Errorf("got iteration %d with %d values", instErr.Iteration, len(instErr.Values))
	}
}

type denseStub struct {
	data       []float64
	rows, cols int
}

func (d denseStub) At(i, j int) float64 { return d.data[i*d.cols+j] }
func (d denseStub) Dims() (int, int)    { return d.rows, d.cols }

func TestCheckMatrix(t *testing.T) {
	finite := denseStub{data: []float64{1, 2, 3, 4}, rows: 2, cols: 2}
	if err := CheckMatrix("theta", finite, 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	diverged := denseStub{data: []float64{1, math.Inf(-1), 3, math.NaN()}, rows: 2, cols: 2}
	err := CheckMatrix("theta", diverged, 3)
	if err == nil {
		t.Fatal("expected instability error")
	}
	if !strings.Contains(err.Error(), "theta at iteration 3") {
		t.Errorf("unexpected message: %v", err)
	}
}
