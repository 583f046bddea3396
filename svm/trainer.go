package svm

import (
	"github.com/macaler/iris-svm-classification/dataset"
	"github.com/macaler/iris-svm-classification/modelselection"
)

// Trainer adapts the SVC to the grid search's training-collaborator
// interface. Each Train call builds a fresh SVC at the grid point's C and
// gamma with the Trainer's solver settings, so the search never shares
// state between points and is safe to run in parallel.
type Trainer struct {
	// Kernel, Tol and MaxPasses configure every SVC the trainer builds.
	Kernel    string
	Tol       float64
	MaxPasses int

	// RandomState seeds each SVC's SMO solver. It is fixed here, not
	// inferred, so the retrain at the selected point reproduces the
	// solution found during the search.
	RandomState uint64
}

// NewTrainer returns a Trainer with the SVC solver defaults.
func NewTrainer() *Trainer {
	return &Trainer{
		Kernel:      KernelRBF,
		Tol:         1e-3,
		MaxPasses:   5,
		RandomState: 1,
	}
}

// Train implements modelselection.Trainer.
func (t *Trainer) Train(train *dataset.Dataset, point modelselection.Point) (modelselection.Classifier, error) {
	clf := NewSVC(point.C, point.Gamma)
	clf.Kernel = t.Kernel
	clf.Tol = t.Tol
	clf.MaxPasses = t.MaxPasses
	clf.RandomState = t.RandomState

	if err := clf.Fit(train.Matrix(), train.LabelMatrix()); err != nil {
		return nil, err
	}
	return &fittedSVC{svc: clf}, nil
}

// fittedSVC exposes a trained SVC through the collaborator interface.
type fittedSVC struct {
	svc *SVC
}

// Predict implements modelselection.Classifier.
func (f *fittedSVC) Predict(features []float64) (int, error) {
	return f.svc.PredictOne(features)
}

// Score implements modelselection.Classifier.
func (f *fittedSVC) Score(subset *dataset.Dataset) (float64, error) {
	return f.svc.Score(subset.Matrix(), subset.LabelMatrix())
}

// Model returns the underlying SVC.
func (f *fittedSVC) Model() *SVC {
	return f.svc
}
