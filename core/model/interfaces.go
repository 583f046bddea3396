package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for estimators that learn from labeled data.
// Labels are passed as an n×1 matrix of class values.
type Fitter interface {
	// Fit trains the estimator on X with labels y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for estimators that predict labels.
type Predictor interface {
	// Predict returns an n×1 matrix of predicted labels for X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for estimators that can compute a score.
type Scorer interface {
	// Score returns the mean accuracy of the prediction on X against y.
	Score(X, y mat.Matrix) (float64, error)
}

// Transformer is the interface for stateful feature transformations.
type Transformer interface {
	// Fit learns transformation statistics from X.
	Fit(X mat.Matrix) error
	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)
}

// Classifier combines the interfaces a classification estimator exposes.
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// Classes returns the unique class labels seen during fitting.
	Classes() []int
}

// ParameterGetter is the interface for estimators that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the estimator's hyperparameters.
	GetParams() map[string]interface{}
}
