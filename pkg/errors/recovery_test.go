package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type shapeError struct{ msg string }

func (e shapeError) Error() string { return e.msg }

func TestRecover_WithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		panic("test panic message")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "TestOperation" {
		t.Errorf("Expected operation 'TestOperation', got '%s'", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}

	expectedMsg := "panic in TestOperation: test panic message"
	if panicErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, panicErr.Error())
	}
	if panicErr.Unwrap() != nil {
		t.Error("string panic value should not unwrap to an error")
	}
}

func TestRecover_ErrorPanicValueUnwraps(t *testing.T) {
	sentinel := shapeError{msg: "mat: dimension mismatch"}
	testFunc := func() (err error) {
		defer Recover(&err, "GradientDescent.Optimize")
		panic(sentinel)
	}

	err := testFunc()
	if !errors.Is(err, sentinel) {
		t.Errorf("expected recovered error to match the panic value, got %v", err)
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error when no panic occurs, got: %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	originalErr := fmt.Errorf("original error")

	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		err = originalErr
		panic("panic after error")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic with existing error, got nil")
	}
	if !strings.Contains(err.Error(), "panic in TestOperation") {
		t.Errorf("Error message should contain panic info: %s", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("Wrapped error should still match the original error")
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("inversion", func() error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "inversion" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "inversion")
	}

	if err := SafeExecute("noop", func() error { return nil }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
