package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIris(t *testing.T) {
	d, err := LoadIris()
	require.NoError(t, err)

	assert.Equal(t, 150, d.Len())
	assert.Equal(t, 4, d.NumFeatures())
	assert.Equal(t, 3, d.NumClasses())
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, d.ClassNames())

	// The corpus is balanced: 50 records per class, in file order.
	counts := map[int]int{}
	for _, label := range d.Labels() {
		counts[label]++
	}
	for label := 0; label < 3; label++ {
		assert.Equal(t, 50, counts[label], "class %d", label)
	}

	first := d.Record(0)
	assert.Equal(t, []float64{5.1, 3.5, 1.4, 0.2}, first.Features)
	assert.Equal(t, 0, first.Label)

	last := d.Record(149)
	assert.Equal(t, []float64{5.9, 3.0, 5.1, 1.8}, last.Features)
	assert.Equal(t, 2, last.Label)
}
