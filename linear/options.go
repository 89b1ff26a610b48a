package linear

import "github.com/YuminosukeSato/linfit/pkg/log"

// Option configures LinearRegression and PolynomialRegression.
type Option func(*LinearRegression)

// WithFitIntercept sets whether to calculate the intercept
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// WithLogger sets the logger used by the estimator
func WithLogger(logger log.Logger) Option {
	return func(lr *LinearRegression) {
		lr.logger = logger
	}
}

// GDOption configures GradientDescent.
type GDOption func(*GradientDescent)

// WithStepSize sets the learning rate. It must be positive; Optimize rejects
// anything else.
func WithStepSize(stepSize float64) GDOption {
	return func(g *GradientDescent) {
		g.stepSize = stepSize
	}
}

// WithIterations sets the exact number of update steps.
func WithIterations(n int) GDOption {
	return func(g *GradientDescent) {
		g.iterations = n
	}
}

// WithInitialGuess sets the starting parameters.
func WithInitialGuess(guess InitialGuess) GDOption {
	return func(g *GradientDescent) {
		g.guess = guess
	}
}

// WithSeed sets the seed of the generator behind RandomGuess.
func WithSeed(seed uint64) GDOption {
	return func(g *GradientDescent) {
		g.seed = seed
	}
}

// WithGDLogger sets the logger used by the optimizer
func WithGDLogger(logger log.Logger) GDOption {
	return func(g *GradientDescent) {
		g.logger = logger
	}
}
