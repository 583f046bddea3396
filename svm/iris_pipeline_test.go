package svm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macaler/iris-svm-classification/dataset"
	"github.com/macaler/iris-svm-classification/metrics"
	"github.com/macaler/iris-svm-classification/modelselection"
	"github.com/macaler/iris-svm-classification/preprocessing"
)

// TestIrisPipeline runs the full workflow end to end on the embedded
// corpus: scale, split, grid-search, retrain the best point on
// train+validation, and score the held-out test subset.
func TestIrisPipeline(t *testing.T) {
	iris, err := dataset.LoadIris()
	require.NoError(t, err)

	scaler := preprocessing.NewStandardScaler()
	scaled, err := scaler.FitTransform(iris.Matrix())
	require.NoError(t, err)
	ds, err := iris.WithFeatures(scaled)
	require.NoError(t, err)

	partition, err := dataset.Split(ds, [3]float64{0.6, 0.2, 0.2}, 42)
	require.NoError(t, err)

	trainer := NewTrainer()
	search := modelselection.NewGridSearch(trainer)
	result, err := search.Run(partition.Train, partition.Validation, modelselection.Grid{
		Cs:     []float64{1, 10},
		Gammas: []float64{0.1, 1},
	})
	require.NoError(t, err)
	require.Len(t, result.Observations, 4)

	combined, err := partition.Train.Concat(partition.Validation)
	require.NoError(t, err)
	clf, err := trainer.Train(combined, result.BestPoint())
	require.NoError(t, err)

	predicted := make([]int, partition.Test.Len())
	for i := range predicted {
		predicted[i], err = clf.Predict(partition.Test.Record(i).Features)
		require.NoError(t, err)
	}

	accuracy, err := metrics.Accuracy(partition.Test.Labels(), predicted)
	require.NoError(t, err)
	assert.Greater(t, accuracy, 0.6, "scaled iris should be mostly separable")

	table, err := metrics.NewConfusionTable(partition.Test.Labels(), predicted, ds.ClassNames())
	require.NoError(t, err)
	assert.Equal(t, partition.Test.Len(), table.Total())

	sum := 0
	names := ds.ClassNames()
	for _, p := range names {
		for _, a := range names {
			sum += table.Count(p, a)
		}
	}
	assert.Equal(t, partition.Test.Len(), sum, "every test record contributes exactly one count")
}
