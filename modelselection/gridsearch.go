package modelselection

import (
	"time"

	"github.com/macaler/iris-svm-classification/core/parallel"
	"github.com/macaler/iris-svm-classification/dataset"
	"github.com/macaler/iris-svm-classification/pkg/errors"
	"github.com/macaler/iris-svm-classification/pkg/log"
)

// GridSearch evaluates every point of a Grid against a validation subset.
type GridSearch struct {
	trainer  Trainer
	parallel bool
	logger   log.Logger
}

// Option configures a GridSearch.
type Option func(*GridSearch)

// WithParallel evaluates grid points concurrently. The Observation sequence
// is still materialized in row-major order, so selection is identical to a
// sequential run. Only enable this when the Trainer is safe to invoke
// concurrently.
func WithParallel(enabled bool) Option {
	return func(gs *GridSearch) {
		gs.parallel = enabled
	}
}

// WithLogger overrides the component logger, e.g. with a test logger.
func WithLogger(logger log.Logger) Option {
	return func(gs *GridSearch) {
		gs.logger = logger
	}
}

// NewGridSearch creates a sequential GridSearch over the given trainer.
func NewGridSearch(trainer Trainer, opts ...Option) *GridSearch {
	gs := &GridSearch{
		trainer: trainer,
		logger:  log.GetLoggerWithName("modelselection.gridsearch"),
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// Result is a completed grid search: the full Observation sequence in
// row-major order and the position of the selected best point.
type Result struct {
	Observations []Observation
	BestIndex    int
}

// Best returns the selected Observation.
func (r *Result) Best() Observation {
	return r.Observations[r.BestIndex]
}

// BestPoint returns the selected hyperparameter point.
func (r *Result) BestPoint() Point {
	return r.Best().Point
}

// BestScore returns the validation accuracy of the selected point.
func (r *Result) BestScore() float64 {
	return r.Best().Score
}

// Run trains and scores a classifier for every grid point. A single
// training failure aborts the whole search; observations collected before
// the failure are discarded rather than presented as a completed search.
func (gs *GridSearch) Run(train, validation *dataset.Dataset, grid Grid) (*Result, error) {
	if train == nil || train.Len() == 0 {
		return nil, errors.NewEmptyDatasetError("GridSearch.Run: training subset")
	}
	if validation == nil || validation.Len() == 0 {
		return nil, errors.NewEmptyDatasetError("GridSearch.Run: validation subset")
	}
	size := grid.Size()
	if size == 0 {
		return nil, errors.NewValueError("GridSearch.Run", "empty hyperparameter grid")
	}

	start := time.Now()
	gs.logger.Info("Starting grid search",
		log.OperationKey, "search",
		log.GridSizeKey, size,
		"train_samples", train.Len(),
		"validation_samples", validation.Len(),
		"parallel", gs.parallel,
	)

	observations := make([]Observation, size)
	var err error
	if gs.parallel {
		err = gs.runParallel(train, validation, grid, observations)
	} else {
		err = gs.runSequential(train, validation, grid, observations)
	}
	if err != nil {
		gs.logger.Error("Grid search aborted", err)
		return nil, err
	}

	best := SelectBest(observations)
	result := &Result{Observations: observations, BestIndex: best}

	gs.logger.Info("Grid search finished",
		log.OperationKey, "search",
		log.GridPositionKey, best,
		log.CKey, result.BestPoint().C,
		log.GammaKey, result.BestPoint().Gamma,
		log.AccuracyKey, result.BestScore(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (gs *GridSearch) runSequential(train, validation *dataset.Dataset, grid Grid, observations []Observation) error {
	for position := range observations {
		obs, err := gs.evaluate(train, validation, grid, position)
		if err != nil {
			return err
		}
		observations[position] = obs
	}
	return nil
}

// runParallel evaluates all points into the pre-sized slice; positions keep
// the row-major layout, so the downstream selection is order-stable. The
// first error in iteration order is reported, matching fail-fast semantics.
func (gs *GridSearch) runParallel(train, validation *dataset.Dataset, grid Grid, observations []Observation) error {
	failures := make([]error, len(observations))
	parallel.ForEach(len(observations), func(position int) {
		obs, err := gs.evaluate(train, validation, grid, position)
		if err != nil {
			failures[position] = err
			return
		}
		observations[position] = obs
	})
	for _, err := range failures {
		if err != nil {
			return err
		}
	}
	return nil
}

func (gs *GridSearch) evaluate(train, validation *dataset.Dataset, grid Grid, position int) (Observation, error) {
	point := grid.At(position)

	clf, err := gs.trainer.Train(train, point)
	if err != nil {
		return Observation{}, errors.NewTrainingFailureError(position, point.C, point.Gamma, err)
	}

	score, err := clf.Score(validation)
	if err != nil {
		return Observation{}, errors.NewTrainingFailureError(position, point.C, point.Gamma, err)
	}

	gs.logger.Debug("Evaluated grid point",
		log.GridPositionKey, position,
		log.CKey, point.C,
		log.GammaKey, point.Gamma,
		log.AccuracyKey, score,
	)
	return Observation{Point: point, Score: score}, nil
}

// SelectBest returns the position of the maximum score in the Observation
// sequence. Ties keep the first occurrence in iteration order; later
// equal-scoring configurations are discarded.
func SelectBest(observations []Observation) int {
	best := 0
	for i := 1; i < len(observations); i++ {
		if observations[i].Score > observations[best].Score {
			best = i
		}
	}
	return best
}
