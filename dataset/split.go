package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/macaler/iris-svm-classification/pkg/errors"
	"github.com/macaler/iris-svm-classification/pkg/log"
)

// fractionTolerance is the epsilon within which split fractions must sum to 1.
const fractionTolerance = 1e-9

// Partition is a disjoint division of a Dataset into training, validation,
// and test subsets covering every record exactly once.
type Partition struct {
	Train      *Dataset
	Validation *Dataset
	Test       *Dataset
}

// Split partitions d into train/validation/test subsets sized
// round(N*fraction), assigning records by a pseudo-random shuffle keyed on
// seed. The rounding remainder goes to the subset with the largest fraction
// (first on ties) so the subsets always cover d exactly. Identical seed and
// dataset always yield an identical partition.
func Split(d *Dataset, fractions [3]float64, seed uint64) (*Partition, error) {
	if d == nil || d.Len() == 0 {
		return nil, errors.NewEmptyDatasetError("dataset.Split")
	}

	sum := 0.0
	for _, f := range fractions {
		if f < 0 || f > 1 {
			return nil, errors.NewInvalidFractionError(fractions[:], sum, "fraction outside [0, 1]")
		}
		sum += f
	}
	if math.Abs(sum-1.0) > fractionTolerance {
		return nil, errors.NewInvalidFractionError(fractions[:], sum, "fractions must sum to 1.0")
	}

	n := d.Len()
	sizes := [3]int{}
	total := 0
	for i, f := range fractions {
		sizes[i] = int(math.Round(float64(n) * f))
		total += sizes[i]
	}
	// Absorb the rounding remainder into the largest-fraction subset.
	largest := 0
	for i := 1; i < 3; i++ {
		if fractions[i] > fractions[largest] {
			largest = i
		}
	}
	sizes[largest] += n - total

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	r := rand.New(rand.NewPCG(seed, seed))
	r.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	bounds := [4]int{0, sizes[0], sizes[0] + sizes[1], n}
	p := &Partition{
		Train:      d.Subset(indices[bounds[0]:bounds[1]]),
		Validation: d.Subset(indices[bounds[1]:bounds[2]]),
		Test:       d.Subset(indices[bounds[2]:bounds[3]]),
	}

	logger := log.GetLoggerWithName("dataset.split")
	logger.Debug("Partitioned dataset",
		log.OperationKey, "split",
		log.SamplesKey, n,
		log.SeedKey, seed,
		"train", p.Train.Len(),
		"validation", p.Validation.Len(),
		"test", p.Test.Len(),
	)

	return p, nil
}
