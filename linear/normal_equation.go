package linear

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/core/parallel"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

// DesignMatrix returns [1 | x]: an N×(d+1) matrix whose first column is all ones.
func DesignMatrix(x mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	xb := mat.NewDense(r, c+1, nil)

	parallel.Rows(r, func(start, end int) {
		for i := start; i < end; i++ {
			xb.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				xb.Set(i, j+1, x.At(i, j))
			}
		}
	})
	return xb
}

// SolveNormalEquation returns the least-squares parameter vector
// θ = (XbᵀXb)⁻¹·Xbᵀ·y with shape (d+1)×1, where Xb = DesignMatrix(x).
// Row 0 of θ is the intercept.
//
// Validation errors from Validate are returned unchanged. When XbᵀXb cannot be
// inverted (fewer samples than parameters, collinear features) the call fails
// with *errors.SingularMatrixError; no pseudo-inverse is attempted.
func SolveNormalEquation(x, y mat.Matrix) (theta *mat.Dense, err error) {
	const op = "SolveNormalEquation"
	defer errors.Recover(&err, op)

	if err := validate(op, x, y); err != nil {
		return nil, err
	}

	startTime := time.Now()
	xb := DesignMatrix(x)
	n, p := xb.Dims()

	var gram mat.Dense
	gram.Mul(xb.T(), xb)

	var gramInv mat.Dense
	if err := gramInv.Inverse(&gram); err != nil {
		return nil, errors.NewSingularMatrixError(op, p, err)
	}

	var xty mat.Dense
	xty.Mul(xb.T(), y)

	theta = new(mat.Dense)
	theta.Mul(&gramInv, &xty)

	log.GetLoggerWithName("linear").Debug("Normal equation solved",
		log.OperationKey, log.OperationSolve,
		log.SamplesKey, n,
		log.ParametersKey, p,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	)
	return theta, nil
}
