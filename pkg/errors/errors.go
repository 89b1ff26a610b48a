// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 観測データの検証エラー、数値計算エラー、推定器の状態エラーを構造化された型として表現し、
// すべての生成関数は cockroachdb/errors によるスタックトレースを付与します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("linfit-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc registers a zerolog-backed warning sink. pkg/log calls
// this when its default provider is installed.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. The zerolog sink wins over the plain handler when both are set.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	観測データの検証エラー
//
// ===========================================================================

// EmptyArrayError is returned when an observation array has no elements.
type EmptyArrayError struct {
	Op       string
	Argument string // "x" or "y"
}

func (e *EmptyArrayError) Error() string {
	return fmt.Sprintf("linfit: %s: empty array: %s has no elements", e.Op, e.Argument)
}

// Unwrap lets errors.Is(err, ErrEmptyData) match.
func (e *EmptyArrayError) Unwrap() error {
	return ErrEmptyData
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *EmptyArrayError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("argument", e.Argument).
		Str("type", "EmptyArrayError")
}

// NewEmptyArrayError は新しいEmptyArrayErrorを作成し、スタックトレースを付与します。
func NewEmptyArrayError(op, argument string) error {
	return errors.WithStack(&EmptyArrayError{Op: op, Argument: argument})
}

// SizeMismatchError is returned when input and output observation arrays
// hold a different number of samples.
type SizeMismatchError struct {
	Op      string
	InputN  int
	OutputN int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("linfit: %s: arrays have different sizes: x has %d samples, y has %d", e.Op, e.InputN, e.OutputN)
}

// Unwrap lets errors.Is(err, ErrSizeMismatch) match.
func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *SizeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("x_samples", e.InputN).
		Int("y_samples", e.OutputN).
		Str("type", "SizeMismatchError")
}

// NewSizeMismatchError は新しいSizeMismatchErrorを作成し、スタックトレースを付与します。
func NewSizeMismatchError(op string, inputN, outputN int) error {
	return errors.WithStack(&SizeMismatchError{Op: op, InputN: inputN, OutputN: outputN})
}

// ===========================================================================
//
//	数値計算エラー
//
// ===========================================================================

// SingularMatrixError is returned when the Gram matrix XᵀX of a least-squares
// problem cannot be inverted, e.g. fewer samples than parameters or collinear features.
type SingularMatrixError struct {
	Op   string
	Size int // order of the square matrix
	Err  error
}

func (e *SingularMatrixError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("linfit: %s: singular matrix (%dx%d): %v", e.Op, e.Size, e.Size, e.Err)
	}
	return fmt.Sprintf("linfit: %s: singular matrix (%dx%d)", e.Op, e.Size, e.Size)
}

// Is reports ErrSingularMatrix as a match in addition to the wrapped cause.
func (e *SingularMatrixError) Is(target error) bool {
	return target == ErrSingularMatrix
}

func (e *SingularMatrixError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *SingularMatrixError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("size", e.Size).
		Str("type", "SingularMatrixError")
	if e.Err != nil {
		event.Str("cause", e.Err.Error())
	}
}

// NewSingularMatrixError は新しいSingularMatrixErrorを作成し、スタックトレースを付与します。
func NewSingularMatrixError(op string, size int, cause error) error {
	return errors.WithStack(&SingularMatrixError{Op: op, Size: size, Err: cause})
}

// NumericalInstabilityError reports NaN or Inf values produced by an iterative computation.
type NumericalInstabilityError struct {
	Operation string    // e.g. "gradient_descent"
	Values    []float64 // offending values, at most the first few
	Iteration int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("linfit: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Int("iteration", e.Iteration).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	})
}

// ===========================================================================
//
//	推定器とパラメータのエラー
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Predict` や `Transform` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("linfit: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

func (e *NotFittedError) Unwrap() error {
	return ErrNotFitted
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("linfit: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("linfit: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("linfit: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError は機械学習モデルに関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("linfit: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("linfit: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSizeMismatch は入力と出力のサンプル数が一致しない場合のエラーです。
	ErrSizeMismatch = New("size mismatch")

	// ErrSingularMatrix は特異行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")

	// ErrNotFitted は未学習のモデルが使用された場合のエラーです。
	ErrNotFitted = New("not fitted")
)
