package svm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macaler/iris-svm-classification/dataset"
	"github.com/macaler/iris-svm-classification/modelselection"
	"github.com/macaler/iris-svm-classification/pkg/errors"
)

func blobDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	var records []dataset.Record
	for label, center := range [][2]float64{{0, 0}, {5, 5}} {
		for _, off := range [][2]float64{{0, 0}, {0.2, 0}, {0, 0.2}, {-0.2, -0.2}} {
			records = append(records, dataset.Record{
				Features: []float64{center[0] + off[0], center[1] + off[1]},
				Label:    label,
			})
		}
	}
	d, err := dataset.New(records, []string{"near", "far"})
	require.NoError(t, err)
	return d
}

func TestTrainerTrain(t *testing.T) {
	d := blobDataset(t)

	trainer := NewTrainer()
	clf, err := trainer.Train(d, modelselection.Point{C: 1.0, Gamma: 0.5})
	require.NoError(t, err)

	score, err := clf.Score(d)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	label, err := clf.Predict([]float64{5.1, 4.9})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestTrainerInvalidPoint(t *testing.T) {
	d := blobDataset(t)

	trainer := NewTrainer()
	_, err := trainer.Train(d, modelselection.Point{C: -1, Gamma: 0.5})

	var invalid *errors.ValidationError
	require.True(t, errors.As(err, &invalid))
}

func TestTrainerWithGridSearch(t *testing.T) {
	d := blobDataset(t)
	train := d.Subset([]int{0, 1, 2, 4, 5, 6})
	validation := d.Subset([]int{3, 7})

	search := modelselection.NewGridSearch(NewTrainer())
	result, err := search.Run(train, validation, modelselection.Grid{
		Cs:     []float64{0.5, 1, 10},
		Gammas: []float64{0.1, 0.5},
	})
	require.NoError(t, err)

	require.Len(t, result.Observations, 6)
	assert.Equal(t, 1.0, result.BestScore(), "separable blobs should reach perfect validation accuracy")
}
