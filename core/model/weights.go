package model

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// WeightsFormatVersion is written into every exported ModelWeights document.
const WeightsFormatVersion = "1.0"

// ModelWeights はモデルの重みを表す構造体（シリアライゼーション用）
type ModelWeights struct {
	// ModelType はモデルの種類（LinearRegression, PolynomialRegression 等）
	ModelType string `json:"model_type"`

	// Version is the document format version.
	Version string `json:"version"`

	// Coefficients は重み係数（切片を除く）
	Coefficients []float64 `json:"coefficients"`

	// Intercept は切片
	Intercept float64 `json:"intercept"`

	// Hyperparameters はモデルのハイパーパラメータ
	Hyperparameters map[string]interface{} `json:"hyperparameters,omitempty"`

	// State is the fitted state at export time.
	State ModelState `json:"state"`
}

// Validate はModelWeightsの妥当性を検証
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return errors.NewValidationError("model_type", "is required", mw.ModelType)
	}
	if mw.Version == "" {
		return errors.NewValidationError("version", "is required", mw.Version)
	}
	if !mw.State.Fitted && len(mw.Coefficients) > 0 {
		return errors.NewValidationError("coefficients", "unfitted model should not have coefficients", len(mw.Coefficients))
	}
	if mw.State.Fitted && len(mw.Coefficients) == 0 {
		return errors.NewValidationError("coefficients", "fitted model must have coefficients", 0)
	}
	if mw.State.Fitted && mw.State.NFeatures != len(mw.Coefficients) {
		return errors.NewDimensionError("ModelWeights.Validate", mw.State.NFeatures, len(mw.Coefficients), 1)
	}
	return nil
}

// WriteTo encodes the document as indented JSON.
func (mw *ModelWeights) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(mw, "", "  ")
	if err != nil {
		return 0, errors.Wrap(err, "failed to marshal model weights")
	}
	n, err := w.Write(append(data, '\n'))
	if err != nil {
		return int64(n), errors.Wrap(err, "failed to write model weights")
	}
	return int64(n), nil
}

// ReadWeights decodes and validates a ModelWeights document.
func ReadWeights(r io.Reader) (*ModelWeights, error) {
	var mw ModelWeights
	if err := json.NewDecoder(r).Decode(&mw); err != nil {
		return nil, errors.Wrap(err, "failed to decode model weights")
	}
	if err := mw.Validate(); err != nil {
		return nil, err
	}
	return &mw, nil
}

// Clone はModelWeightsのディープコピーを作成
func (mw *ModelWeights) Clone() *ModelWeights {
	clone := &ModelWeights{
		ModelType:    mw.ModelType,
		Version:      mw.Version,
		Intercept:    mw.Intercept,
		State:        mw.State,
		Coefficients: make([]float64, len(mw.Coefficients)),
	}
	copy(clone.Coefficients, mw.Coefficients)

	if mw.Hyperparameters != nil {
		clone.Hyperparameters = make(map[string]interface{}, len(mw.Hyperparameters))
		for k, v := range mw.Hyperparameters {
			clone.Hyperparameters[k] = v
		}
	}
	return clone
}
