// Standard attribute keys for estimator logging.
//
// Keys follow a hierarchical naming convention ("model.name", "data.samples")
// so that log pipelines can filter on them.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "LinearRegression", "GradientDescent", "PolynomialFeatures"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score", "solve", "optimize"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "preprocessing", "visualize"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey indicates the number of samples (rows).
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns).
	FeaturesKey = "data.features"

	// ParametersKey indicates the length of the parameter vector θ.
	ParametersKey = "data.parameters"
)

// Performance and Training Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the mean squared error of the current parameters.
	LossKey = "metrics.loss"

	// R2ScoreKey records R² coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the iteration count of an iterative process.
	IterationKey = "training.iteration"

	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)

// Hyperparameters and Configuration
const (
	// LearningRateKey records the step size of gradient descent.
	LearningRateKey = "hyperparams.learning_rate"

	// DegreeKey records the polynomial degree of a feature expansion.
	DegreeKey = "hyperparams.degree"

	// InitialGuessKey records how the starting parameters were chosen ("random" or "provided").
	InitialGuessKey = "hyperparams.initial_guess"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"
)

// Standard attribute values.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationScore     = "score"
	OperationSolve     = "solve"
	OperationOptimize  = "optimize"
	OperationPlot      = "plot"

	PhaseTraining      = "training"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"
	PhaseDiagnostics   = "diagnostics"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorSizeMismatch      = "SIZE_MISMATCH"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
	ErrorNumerical         = "NUMERICAL_INSTABILITY"
)
