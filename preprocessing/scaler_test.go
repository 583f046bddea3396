package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/macaler/iris-svm-classification/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		var sum, sumSq float64
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(r)
		for i := 0; i < r; i++ {
			d := scaled.At(i, j) - mean
			sumSq += d * d
		}
		std := math.Sqrt(sumSq / float64(r))

		assert.InDelta(t, 0.0, mean, 1e-12, "column %d mean", j)
		assert.InDelta(t, 1.0, std, 1e-12, "column %d std", j)
	}
}

func TestStandardScalerInverseRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.5, -2,
		0.5, 4,
		-1.0, 7,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)
	restored, err := scaler.InverseTransform(scaled)
	require.NoError(t, err)

	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, X.At(i, j), restored.At(i, j), 1e-12)
		}
	}
}

func TestStandardScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	// Constant features scale by 1 instead of dividing by zero.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, scaled.At(i, 0))
	}
}

func TestStandardScalerErrors(t *testing.T) {
	t.Run("Transform before fit", func(t *testing.T) {
		scaler := NewStandardScaler()
		_, err := scaler.Transform(mat.NewDense(1, 1, nil))
		var notFitted *errors.NotFittedError
		require.True(t, errors.As(err, &notFitted))
	})

	t.Run("Feature count mismatch", func(t *testing.T) {
		scaler := NewStandardScaler()
		require.NoError(t, scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
		_, err := scaler.Transform(mat.NewDense(2, 3, nil))
		var dim *errors.DimensionError
		require.True(t, errors.As(err, &dim))
	})
}
