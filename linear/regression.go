package linear

import (
	"io"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/metrics"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

// LinearRegression は最小二乗法による線形回帰モデル
//
// Unlike SolveNormalEquation it never forms XᵀX: the system is solved by QR
// factorization, which keeps ill-conditioned problems accurate.
type LinearRegression struct {
	state *model.StateManager

	fitIntercept bool
	logger       log.Logger

	coef      []float64
	intercept float64
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		state:        model.NewStateManager(),
		fitIntercept: true,
	}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.GetLoggerWithName("linear")
	}
	lr.logger = lr.logger.With(log.ModelNameKey, "LinearRegression")
	return lr
}

// Fit はモデルを訓練データで学習させる
func (lr *LinearRegression) Fit(X, y mat.Matrix) (err error) {
	const op = "LinearRegression.Fit"
	defer errors.Recover(&err, op)

	if err := validate(op, X, y); err != nil {
		return err
	}
	if _, cy := y.Dims(); cy != 1 {
		return errors.NewDimensionError(op, 1, cy, 1)
	}

	startTime := time.Now()
	r, c := X.Dims()
	lr.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)

	var design mat.Matrix = X
	if lr.fitIntercept {
		design = DesignMatrix(X)
	}
	_, p := design.Dims()

	// 未知数がサンプル数を上回る場合、Solve は最小ノルム解を返してしまう
	if r < p {
		err := errors.NewSingularMatrixError(op, p, nil)
		lr.logger.Error("Training failed", err, log.ErrorCodeKey, log.ErrorSingularMatrix)
		return err
	}

	var theta mat.Dense
	if solveErr := theta.Solve(design, y); solveErr != nil {
		err := errors.NewSingularMatrixError(op, p, solveErr)
		lr.logger.Error("Training failed", err, log.ErrorCodeKey, log.ErrorSingularMatrix)
		return err
	}

	params := mat.Col(nil, 0, &theta)
	if lr.fitIntercept {
		lr.intercept, lr.coef = params[0], params[1:]
	} else {
		lr.intercept, lr.coef = 0, params
	}
	lr.state.MarkFitted(c, r)

	lr.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	)
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != len(lr.coef) {
		return nil, errors.NewDimensionError("LinearRegression.Predict", len(lr.coef), c, 1)
	}

	// y = X·w + b
	var predictions mat.VecDense
	predictions.MulVec(X, mat.NewVecDense(c, lr.coef))
	for i := 0; i < r; i++ {
		predictions.SetVec(i, predictions.AtVec(i)+lr.intercept)
	}

	lr.logger.Debug("Prediction completed",
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.PredsKey, r,
	)
	return mat.NewDense(r, 1, predictions.RawVector().Data), nil
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return r2(y, yPred)
}

// Coef は学習された係数（切片を除く）のコピーを返す
func (lr *LinearRegression) Coef() []float64 {
	if !lr.state.IsFitted() {
		return nil
	}
	return append([]float64(nil), lr.coef...)
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept
}

// Theta returns the parameters in the layout of SolveNormalEquation: a
// (d+1)×1 column with the intercept in row 0.
func (lr *LinearRegression) Theta() (*mat.Dense, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Theta")
	}
	data := append([]float64{lr.intercept}, lr.coef...)
	return mat.NewDense(len(data), 1, data), nil
}

// IsFitted reports whether Fit or ImportWeights has succeeded.
func (lr *LinearRegression) IsFitted() bool {
	return lr.state.IsFitted()
}

// ExportWeights writes the fitted parameters as a JSON ModelWeights document.
func (lr *LinearRegression) ExportWeights(w io.Writer) error {
	return lr.exportWeights(w, "LinearRegression", nil)
}

// ImportWeights restores parameters previously written by ExportWeights.
func (lr *LinearRegression) ImportWeights(r io.Reader) error {
	_, err := lr.importWeights(r, "LinearRegression")
	return err
}

func (lr *LinearRegression) exportWeights(w io.Writer, modelType string, hyper map[string]interface{}) error {
	if !lr.state.IsFitted() {
		return errors.NewNotFittedError(modelType, "ExportWeights")
	}
	if hyper == nil {
		hyper = map[string]interface{}{}
	}
	hyper["fit_intercept"] = lr.fitIntercept

	mw := &model.ModelWeights{
		ModelType:       modelType,
		Version:         model.WeightsFormatVersion,
		Coefficients:    lr.Coef(),
		Intercept:       lr.intercept,
		Hyperparameters: hyper,
		State:           lr.state.State(),
	}
	_, err := mw.WriteTo(w)
	return err
}

func (lr *LinearRegression) importWeights(r io.Reader, modelType string) (*model.ModelWeights, error) {
	mw, err := model.ReadWeights(r)
	if err != nil {
		return nil, err
	}
	if mw.ModelType != modelType {
		return nil, errors.NewValidationError("model_type", "expected "+modelType, mw.ModelType)
	}

	lr.coef = append([]float64(nil), mw.Coefficients...)
	lr.intercept = mw.Intercept
	if fit, ok := mw.Hyperparameters["fit_intercept"].(bool); ok {
		lr.fitIntercept = fit
	}
	lr.state.Restore(mw.State)
	return mw, nil
}

// r2 scores column predictions against column targets.
func r2(y, yPred mat.Matrix) (float64, error) {
	r, c := y.Dims()
	if c != 1 {
		return 0, errors.NewDimensionError("Score", 1, c, 1)
	}
	if pr, _ := yPred.Dims(); pr != r {
		return 0, errors.NewSizeMismatchError("Score", pr, r)
	}
	return metrics.R2Score(
		mat.NewVecDense(r, mat.Col(nil, 0, y)),
		mat.NewVecDense(r, mat.Col(nil, 0, yPred)),
	)
}
