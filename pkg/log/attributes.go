// Standard attribute keys for the evaluation pipeline.
//
// Using these keys consistently across packages keeps the structured logs
// filterable: every grid-search run can be sliced by component, seed, and
// hyperparameter values.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "SVC", "StandardScaler".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "transform", "score", "split", "search".
	OperationKey = "ml.operation"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) being processed.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct class labels.
	ClassesKey = "data.classes"
)

// Partitioning and search context.
const (
	// SeedKey is the seed driving a deterministic shuffle or SMO run.
	SeedKey = "split.seed"

	// GridSizeKey is the total number of hyperparameter points evaluated.
	GridSizeKey = "grid.size"

	// GridPositionKey is the row-major position of a point in the grid.
	GridPositionKey = "grid.position"

	// CKey is the regularization strength of a grid point.
	CKey = "grid.c"

	// GammaKey is the kernel-width coefficient of a grid point.
	GammaKey = "grid.gamma"
)

// Metrics.
const (
	// AccuracyKey records a classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
