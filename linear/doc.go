// Package linear estimates the parameters of linear models by least squares.
//
// Two complementary estimators share one validation gate:
//
//   - SolveNormalEquation computes θ = (XbᵀXb)⁻¹Xbᵀy in closed form, where Xb is
//     x with a leading column of ones.
//   - GradientDescent refines θ with batch gradient steps on the mean squared
//     error and returns the full parameter trajectory for diagnostics.
//
// LinearRegression and PolynomialRegression wrap a QR least-squares fit in the
// usual Fit/Predict/Score estimator API.
//
// Example:
//
//	x := linear.NewColumn([]float64{0, 1, 2})
//	y := linear.NewColumn([]float64{1, 3, 5})
//	theta, err := linear.SolveNormalEquation(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// theta ≈ [[1], [2]]
package linear
