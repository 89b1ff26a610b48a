package linear

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/metrics"
	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

// Defaults for NewGradientDescent.
const (
	DefaultStepSize   = 0.1
	DefaultIterations = 1000
	DefaultSeed       = uint64(42)
)

// GradientDescent minimizes the mean squared error of X·θ against y with
// fixed-size batch gradient steps.
//
// The loop always runs the configured number of iterations. There is no
// convergence test and no divergence check: with a step size that is too
// large θ grows without bound and may end up Inf or NaN. Picking a stable
// step size is the caller's responsibility; a non-finite result is only
// reported through errors.Warn.
type GradientDescent struct {
	stepSize   float64
	iterations int
	guess      InitialGuess
	seed       uint64
	logger     log.Logger
}

// NewGradientDescent creates an optimizer with step size 0.1, 1000
// iterations, a random initial guess and seed 42.
func NewGradientDescent(opts ...GDOption) *GradientDescent {
	g := &GradientDescent{
		stepSize:   DefaultStepSize,
		iterations: DefaultIterations,
		guess:      RandomGuess(),
		seed:       DefaultSeed,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.GetLoggerWithName("linear")
	}
	g.logger = g.logger.With(log.ModelNameKey, "GradientDescent")
	return g
}

// Optimize runs batch gradient descent on the design matrix X (N×p, bias
// column included by the caller if wanted) and targets y (N×1).
//
// Each iteration k stores the current θ in column k of the trajectory, then
// applies θ ← θ − stepSize·(2/N)·Xᵀ(Xθ − y). The returned trajectory is
// p×iterations and its column 0 is the initial guess.
//
// X and y pass through the same gate as SolveNormalEquation. Shape errors
// raised by gonum surface as *errors.PanicError.
func (g *GradientDescent) Optimize(X, y mat.Matrix) (theta, trajectory *mat.Dense, err error) {
	const op = "GradientDescent.Optimize"
	defer errors.Recover(&err, op)

	if err := g.checkParams(); err != nil {
		return nil, nil, err
	}
	if err := validate(op, X, y); err != nil {
		return nil, nil, err
	}

	n, p := X.Dims()
	theta, err = g.guess.materialize(op, p, g.seed)
	if err != nil {
		return nil, nil, err
	}

	startTime := time.Now()
	g.logger.Info("Optimization started",
		log.OperationKey, log.OperationOptimize,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, n,
		log.ParametersKey, p,
		log.LearningRateKey, g.stepSize,
		log.IterationKey, g.iterations,
		log.InitialGuessKey, g.guess.String(),
		log.RandomSeedKey, g.seed,
	)

	trajectory = mat.NewDense(p, g.iterations, nil)
	scale := g.stepSize * 2 / float64(n)
	col := make([]float64, p)

	var residual, gradient mat.Dense
	for k := 0; k < g.iterations; k++ {
		trajectory.SetCol(k, mat.Col(col, 0, theta))

		residual.Mul(X, theta)
		residual.Sub(&residual, y)
		gradient.Mul(X.T(), &residual)
		gradient.Scale(scale, &gradient)
		theta.Sub(theta, &gradient)
	}

	if instability := errors.CheckMatrix("gradient_descent", theta, g.iterations); instability != nil {
		errors.Warn(instability)
	}

	fields := []any{
		log.OperationKey, log.OperationOptimize,
		log.PhaseKey, log.PhaseTraining,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	}
	if g.logger.Enabled(context.Background(), log.LevelInfo) {
		var fitted mat.Dense
		fitted.Mul(X, theta)
		if loss, lossErr := metrics.MSEMatrix(y, &fitted); lossErr == nil {
			fields = append(fields, log.LossKey, loss)
		}
	}
	g.logger.Info("Optimization completed", fields...)

	return theta, trajectory, nil
}

func (g *GradientDescent) checkParams() error {
	if !(g.stepSize > 0) || math.IsInf(g.stepSize, 0) {
		return errors.NewValidationError("step_size", "must be a positive finite number", g.stepSize)
	}
	if g.iterations < 1 {
		return errors.NewValidationError("iterations", "must be at least 1", g.iterations)
	}
	return nil
}

// StepSize returns the configured learning rate.
func (g *GradientDescent) StepSize() float64 { return g.stepSize }

// Iterations returns the configured iteration count.
func (g *GradientDescent) Iterations() int { return g.iterations }

// Seed returns the seed used for random initial guesses.
func (g *GradientDescent) Seed() uint64 { return g.seed }
