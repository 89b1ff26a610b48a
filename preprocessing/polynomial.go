// Package preprocessing provides feature transformers applied before fitting
// a linear model.
package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/core/model"
	"github.com/YuminosukeSato/linfit/core/parallel"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

// PolynomialFeatures expands each sample into all monomials of its features
// up to a given degree.
//
// Output columns are ordered by total degree, then lexicographically by
// feature index. For two features and degree 2 with bias:
//
//	1, x0, x1, x0², x0·x1, x1²
type PolynomialFeatures struct {
	state *model.StateManager

	degree      int
	includeBias bool

	// powers[k][j] は出力列 k における入力特徴量 j の指数
	powers [][]int
	logger log.Logger
}

// NewPolynomialFeatures は新しいPolynomialFeaturesを作成する
//
// 使用例:
//
//	poly := preprocessing.NewPolynomialFeatures(2, false)
//	XPoly, err := poly.FitTransform(X)
func NewPolynomialFeatures(degree int, includeBias bool) *PolynomialFeatures {
	return &PolynomialFeatures{
		state:       model.NewStateManager(),
		degree:      degree,
		includeBias: includeBias,
		logger: log.GetLoggerWithName("preprocessing").With(
			log.ModelNameKey, "PolynomialFeatures",
		),
	}
}

// Fit computes the output exponents for the number of columns in X.
func (p *PolynomialFeatures) Fit(X mat.Matrix) error {
	const op = "PolynomialFeatures.Fit"
	if p.degree < 1 {
		return errors.NewValidationError("degree", "must be at least 1", p.degree)
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewEmptyArrayError(op, "X")
	}

	minDegree := 1
	if p.includeBias {
		minDegree = 0
	}
	p.powers = p.powers[:0]
	for d := minDegree; d <= p.degree; d++ {
		p.powers = append(p.powers, combinations(c, d)...)
	}

	p.state.MarkFitted(c, r)
	p.logger.Debug("Polynomial features fitted",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhasePreprocessing,
		log.FeaturesKey, c,
		log.DegreeKey, p.degree,
	)
	return nil
}

// Transform expands X into its polynomial features.
func (p *PolynomialFeatures) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.state.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialFeatures", "Transform")
	}
	nFeatures, _ := p.state.Dimensions()
	r, c := X.Dims()
	if c != nFeatures {
		return nil, errors.NewDimensionError("PolynomialFeatures.Transform", nFeatures, c, 1)
	}

	out := mat.NewDense(r, len(p.powers), nil)
	parallel.Rows(r, func(start, end int) {
		for i := start; i < end; i++ {
			for k, exps := range p.powers {
				v := 1.0
				for j, e := range exps {
					for ; e > 0; e-- {
						v *= X.At(i, j)
					}
				}
				out.Set(i, k, v)
			}
		}
	})
	return out, nil
}

// FitTransform はFitとTransformを同時に実行する
func (p *PolynomialFeatures) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// NOutputFeatures returns the number of columns Transform produces.
func (p *PolynomialFeatures) NOutputFeatures() int {
	return len(p.powers)
}

// Powers returns a copy of the exponent table, one row per output column.
func (p *PolynomialFeatures) Powers() [][]int {
	out := make([][]int, len(p.powers))
	for k, exps := range p.powers {
		out[k] = append([]int(nil), exps...)
	}
	return out
}

// Degree returns the maximum total degree.
func (p *PolynomialFeatures) Degree() int {
	return p.degree
}

// combinations enumerates the exponent vectors of total degree d over n
// features, i.e. multisets of size d drawn from {0..n-1} in lexicographic order.
func combinations(n, d int) [][]int {
	var out [][]int
	idx := make([]int, d)

	var walk func(pos, from int)
	walk = func(pos, from int) {
		if pos == d {
			exps := make([]int, n)
			for _, f := range idx {
				exps[f]++
			}
			out = append(out, exps)
			return
		}
		for f := from; f < n; f++ {
			idx[pos] = f
			walk(pos+1, f)
		}
	}
	walk(0, 0)
	return out
}
