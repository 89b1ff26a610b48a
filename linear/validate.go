package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// Validate checks an observation pair before any linear algebra is attempted.
//
// It fails with *errors.EmptyArrayError when x or y has no elements and with
// *errors.SizeMismatchError when their sample (row) counts differ. Emptiness is
// checked first. A nil matrix and the zero mat.Dense both count as empty.
func Validate(x, y mat.Matrix) error {
	return validate("Validate", x, y)
}

func validate(op string, x, y mat.Matrix) error {
	xr, xc := dims(x)
	yr, yc := dims(y)

	if xr*xc == 0 {
		return errors.NewEmptyArrayError(op, "x")
	}
	if yr*yc == 0 {
		return errors.NewEmptyArrayError(op, "y")
	}
	if xr != yr {
		return errors.NewSizeMismatchError(op, xr, yr)
	}
	return nil
}

// dims is Dims that tolerates nil matrices.
func dims(m mat.Matrix) (r, c int) {
	switch v := m.(type) {
	case nil:
		return 0, 0
	case *mat.Dense:
		if v == nil {
			return 0, 0
		}
	case *mat.VecDense:
		if v == nil {
			return 0, 0
		}
	}
	return m.Dims()
}

// NewColumn returns values as an n×1 column. An empty slice yields the zero
// mat.Dense, which Validate reports as empty.
func NewColumn(values []float64) *mat.Dense {
	if len(values) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(values))
	copy(data, values)
	return mat.NewDense(len(data), 1, data)
}
