// Package metrics provides classification metrics for the evaluation
// pipeline: accuracy and the predicted-vs-actual contingency table.
package metrics

import (
	"github.com/macaler/iris-svm-classification/pkg/errors"
)

// Accuracy returns the fraction of positions where yPred equals yTrue.
func Accuracy(yTrue, yPred []int) (float64, error) {
	if len(yTrue) == 0 {
		return 0, errors.NewValueError("Accuracy", "empty label sequence")
	}
	if len(yPred) != len(yTrue) {
		return 0, errors.NewLengthMismatchError("Accuracy", len(yTrue), len(yPred))
	}

	correct := 0
	for i := range yTrue {
		if yPred[i] == yTrue[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}
