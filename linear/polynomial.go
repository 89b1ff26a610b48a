package linear

import (
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
	"github.com/YuminosukeSato/linfit/preprocessing"
)

// PolynomialRegression fits a LinearRegression on the polynomial expansion of
// its input.
type PolynomialRegression struct {
	degree   int
	features *preprocessing.PolynomialFeatures
	lr       *LinearRegression
}

// NewPolynomialRegression creates a model of the given degree. Options are
// applied to the underlying LinearRegression.
func NewPolynomialRegression(degree int, opts ...Option) *PolynomialRegression {
	lr := NewLinearRegression(opts...)
	lr.logger = lr.logger.With(log.DegreeKey, degree)
	return &PolynomialRegression{
		degree:   degree,
		features: preprocessing.NewPolynomialFeatures(degree, false),
		lr:       lr,
	}
}

// Fit expands x without a bias column and fits the linear model on the result.
func (pr *PolynomialRegression) Fit(x, y mat.Matrix) error {
	const op = "PolynomialRegression.Fit"
	if err := validate(op, x, y); err != nil {
		return err
	}

	expanded, err := pr.features.FitTransform(x)
	if err != nil {
		return err
	}
	return pr.lr.Fit(expanded, y)
}

// Predict evaluates the fitted polynomial at x.
func (pr *PolynomialRegression) Predict(x mat.Matrix) (mat.Matrix, error) {
	if !pr.lr.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialRegression", "Predict")
	}
	expanded, err := pr.features.Transform(x)
	if err != nil {
		return nil, err
	}
	return pr.lr.Predict(expanded)
}

// Score returns R² of the prediction on x against y.
func (pr *PolynomialRegression) Score(x, y mat.Matrix) (float64, error) {
	yPred, err := pr.Predict(x)
	if err != nil {
		return 0, err
	}
	return r2(y, yPred)
}

// Coefficients returns the fitted coefficients highest degree first, followed
// by the intercept. For a single feature and degree D that is
// [a_D, ..., a_1, a_0].
func (pr *PolynomialRegression) Coefficients() ([]float64, error) {
	if !pr.lr.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialRegression", "Coefficients")
	}
	coef := pr.lr.Coef()
	out := make([]float64, 0, len(coef)+1)
	for i := len(coef) - 1; i >= 0; i-- {
		out = append(out, coef[i])
	}
	return append(out, pr.lr.Intercept()), nil
}

// Degree returns the polynomial degree.
func (pr *PolynomialRegression) Degree() int {
	return pr.degree
}

// ExportWeights writes the fitted model as a JSON ModelWeights document.
// Coefficients are stored in expansion order.
func (pr *PolynomialRegression) ExportWeights(w io.Writer) error {
	inputs := 0
	if pr.lr.IsFitted() {
		inputs = len(pr.features.Powers()[0])
	}
	return pr.lr.exportWeights(w, "PolynomialRegression", map[string]interface{}{
		"degree":           pr.degree,
		"n_input_features": inputs,
	})
}

// ImportWeights restores a model written by ExportWeights.
func (pr *PolynomialRegression) ImportWeights(r io.Reader) error {
	mw, err := pr.lr.importWeights(r, "PolynomialRegression")
	if err != nil {
		return err
	}

	// JSON の数値は float64 としてデコードされる
	degree, _ := mw.Hyperparameters["degree"].(float64)
	inputs, _ := mw.Hyperparameters["n_input_features"].(float64)
	if inputs < 1 {
		pr.lr.state.Reset()
		return errors.NewValidationError("n_input_features", "must be at least 1", inputs)
	}

	features := preprocessing.NewPolynomialFeatures(int(degree), false)
	if err := features.Fit(mat.NewDense(1, int(inputs), nil)); err != nil {
		pr.lr.state.Reset()
		return err
	}
	if features.NOutputFeatures() != len(mw.Coefficients) {
		pr.lr.state.Reset()
		return errors.NewDimensionError("PolynomialRegression.ImportWeights", features.NOutputFeatures(), len(mw.Coefficients), 1)
	}

	pr.degree = int(degree)
	pr.features = features
	return nil
}
