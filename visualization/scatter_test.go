package visualization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macaler/iris-svm-classification/dataset"
	"github.com/macaler/iris-svm-classification/pkg/errors"
)

func testSubset(t *testing.T) *dataset.Dataset {
	t.Helper()
	records := []dataset.Record{
		{Features: []float64{5.1, 3.5, 1.4, 0.2}, Label: 0},
		{Features: []float64{6.0, 2.7, 4.2, 1.3}, Label: 1},
		{Features: []float64{6.5, 3.0, 5.5, 1.8}, Label: 2},
		{Features: []float64{5.8, 2.6, 4.0, 1.2}, Label: 1},
	}
	ds, err := dataset.New(records, []string{"setosa", "versicolor", "virginica"})
	require.NoError(t, err)
	return ds
}

func TestPredictionScatterWritesFile(t *testing.T) {
	ds := testSubset(t)
	path := filepath.Join(t.TempDir(), "scatter.png")

	// One misprediction so both the class series and the overlay render.
	err := PredictionScatter(ds, []int{0, 1, 1, 1}, 2, 3, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPredictionScatterValidation(t *testing.T) {
	ds := testSubset(t)
	path := filepath.Join(t.TempDir(), "scatter.png")

	err := PredictionScatter(nil, nil, 0, 1, path)
	var empty *errors.EmptyDatasetError
	assert.True(t, errors.As(err, &empty))

	err = PredictionScatter(ds, []int{0, 1}, 0, 1, path)
	var mismatch *errors.LengthMismatchError
	assert.True(t, errors.As(err, &mismatch))

	err = PredictionScatter(ds, []int{0, 1, 2, 1}, 0, 7, path)
	var value *errors.ValueError
	assert.True(t, errors.As(err, &value))
}
