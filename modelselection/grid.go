// Package modelselection implements the brute-force hyperparameter grid
// search: enumerate a two-dimensional grid in row-major order, train a
// classifier at each point via an injected training collaborator, score it
// on a validation subset, and select the first best-scoring point.
package modelselection

import (
	"fmt"

	"github.com/macaler/iris-svm-classification/dataset"
)

// Point is one configuration in the search grid: a regularization strength
// and a kernel-width coefficient.
type Point struct {
	C     float64
	Gamma float64
}

// String returns the point in "C=..., gamma=..." form.
func (p Point) String() string {
	return fmt.Sprintf("C=%g, gamma=%g", p.C, p.Gamma)
}

// Grid is the two-dimensional search space. Enumeration is row-major: the
// outer loop runs over Cs, the inner loop over Gammas. Downstream consumers
// index observations by position, so this order is part of the contract.
type Grid struct {
	Cs     []float64
	Gammas []float64
}

// Size returns the total number of grid points.
func (g Grid) Size() int {
	return len(g.Cs) * len(g.Gammas)
}

// At returns the point at row-major position i*len(Gammas)+j.
func (g Grid) At(position int) Point {
	return Point{
		C:     g.Cs[position/len(g.Gammas)],
		Gamma: g.Gammas[position%len(g.Gammas)],
	}
}

// Observation is one (configuration, validation accuracy) result, recorded
// at its row-major grid position.
type Observation struct {
	Point Point
	Score float64
}

// Classifier is a fitted model produced by the training collaborator.
type Classifier interface {
	// Predict returns the predicted class label for one feature vector.
	Predict(features []float64) (int, error)

	// Score returns the classification accuracy on a labeled subset.
	Score(subset *dataset.Dataset) (float64, error)
}

// Trainer is the external training collaborator: it produces a fitted
// Classifier from a training subset and one hyperparameter point. The grid
// search only requires deterministic output for identical inputs; when a
// Trainer is not safe for concurrent use, run the search sequentially.
type Trainer interface {
	Train(train *dataset.Dataset, point Point) (Classifier, error)
}

// TrainerFunc adapts a function to the Trainer interface.
type TrainerFunc func(train *dataset.Dataset, point Point) (Classifier, error)

// Train implements Trainer.
func (f TrainerFunc) Train(train *dataset.Dataset, point Point) (Classifier, error) {
	return f(train, point)
}
