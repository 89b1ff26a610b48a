package linear

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

type guessKind int

const (
	guessRandom guessKind = iota
	guessProvided
)

// InitialGuess selects the starting parameters of gradient descent. The zero
// value is RandomGuess.
type InitialGuess struct {
	kind  guessKind
	theta *mat.Dense
}

// RandomGuess draws every starting parameter from N(0, 1) using a generator
// seeded from the optimizer's seed.
func RandomGuess() InitialGuess {
	return InitialGuess{kind: guessRandom}
}

// ProvidedGuess starts from a copy of theta, which must be a p×1 column where
// p is the number of columns of the design matrix.
func ProvidedGuess(theta mat.Matrix) InitialGuess {
	return InitialGuess{kind: guessProvided, theta: mat.DenseCopyOf(theta)}
}

// IsRandom reports whether the guess is drawn at random.
func (g InitialGuess) IsRandom() bool {
	return g.kind == guessRandom
}

func (g InitialGuess) String() string {
	if g.IsRandom() {
		return "random"
	}
	return "provided"
}

// materialize returns a fresh p×1 starting vector.
func (g InitialGuess) materialize(op string, p int, seed uint64) (*mat.Dense, error) {
	if g.IsRandom() {
		rng := rand.New(rand.NewPCG(seed, seed))
		data := make([]float64, p)
		for i := range data {
			data[i] = rng.NormFloat64()
		}
		return mat.NewDense(p, 1, data), nil
	}

	r, c := g.theta.Dims()
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	if r != p {
		return nil, errors.NewDimensionError(op, p, r, 0)
	}
	return mat.DenseCopyOf(g.theta), nil
}
