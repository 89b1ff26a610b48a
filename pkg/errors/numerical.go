package errors

import (
	"math"
)

// maxReportedValues bounds how many offending values an instability error carries.
const maxReportedValues = 10

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	var unstable []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			unstable = append(unstable, v)
			if len(unstable) >= maxReportedValues {
				break
			}
		}
	}
	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable, iteration)
	}
	return nil
}

// CheckMatrix checks all values in a matrix for numerical instability.
func CheckMatrix(operation string, matrix interface {
	At(int, int) float64
	Dims() (int, int)
}, iteration int) error {
	rows, cols := matrix.Dims()
	var unstable []float64

	for i := 0; i < rows && len(unstable) < maxReportedValues; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				unstable = append(unstable, v)
				if len(unstable) >= maxReportedValues {
					break
				}
			}
		}
	}

	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable, iteration)
	}
	return nil
}
