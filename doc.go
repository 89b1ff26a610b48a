// Package linfit fits straight lines, hyperplanes and polynomials to
// observations with ordinary least squares.
//
// Two solvers are provided for the same problem:
//
//   - linear.SolveNormalEquation computes θ = (XbᵀXb)⁻¹·Xbᵀ·y in closed form,
//     where Xb is x with a leading column of ones.
//   - linear.GradientDescent minimizes the mean squared error iteratively and
//     returns the full parameter trajectory, one column per iteration.
//
// On top of them, linear.LinearRegression fits through QR factorization and
// exposes Predict, Score and JSON weights export, and
// linear.PolynomialRegression fits on the expansion computed by
// preprocessing.PolynomialFeatures.
//
// # Quick Start
//
//	x := mat.NewDense(3, 1, []float64{0, 1, 2})
//	y := mat.NewDense(3, 1, []float64{1, 3, 5})
//
//	theta, err := linear.SolveNormalEquation(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// theta ≈ [[1], [2]]
//
//	gd := linear.NewGradientDescent(linear.WithStepSize(0.1), linear.WithIterations(1000))
//	theta, trajectory, err := gd.Optimize(linear.DesignMatrix(x), y)
//
// The trajectory can be rendered with visualize.SaveTrajectoryPlot.
//
// # Packages
//
//   - linear: validation, normal equation, gradient descent and the estimators
//   - preprocessing: polynomial feature expansion
//   - metrics: MSE, RMSE, MAE and R²
//   - visualize: trajectory plots with gonum/plot
//   - core/model: estimator interfaces, fitted state and the weights document
//   - core/parallel: row-parallel helpers for large inputs
//   - pkg/errors: structured errors with stack traces and the warning hook
//   - pkg/log: structured logging backed by zerolog, slog setup for programs
//
// # Errors
//
// Input problems are reported as *errors.EmptyArrayError or
// *errors.SizeMismatchError and match errors.ErrEmptyData and
// errors.ErrSizeMismatch through errors.Is. A design matrix without full column
// rank yields *errors.SingularMatrixError.
package linfit
