// Package dataset provides the labeled record collection the evaluation
// pipeline operates on, the embedded Iris corpus, and the deterministic
// train/validation/test partitioner.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/macaler/iris-svm-classification/pkg/errors"
)

// Record is one labeled data point: a fixed-length feature vector paired
// with an integer class label in [0, numClasses).
type Record struct {
	Features []float64
	Label    int
}

// Dataset is an ordered collection of Records sharing one feature
// dimensionality, plus the label-to-class-name table.
type Dataset struct {
	records []Record
	names   []string // index = label value
}

// New builds a Dataset from records and the class-name table.
// Every record must have the same feature dimensionality and a label
// addressable in names.
func New(records []Record, names []string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, errors.NewEmptyDatasetError("dataset.New")
	}
	dims := len(records[0].Features)
	for _, rec := range records {
		if len(rec.Features) != dims {
			return nil, errors.NewDimensionError("dataset.New", dims, len(rec.Features), 1)
		}
		if rec.Label < 0 || rec.Label >= len(names) {
			return nil, errors.NewUnknownLabelError("dataset.New", rec.Label)
		}
	}
	return &Dataset{records: records, names: names}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// NumFeatures returns the feature dimensionality.
func (d *Dataset) NumFeatures() int {
	if len(d.records) == 0 {
		return 0
	}
	return len(d.records[0].Features)
}

// NumClasses returns the size of the closed label set.
func (d *Dataset) NumClasses() int {
	return len(d.names)
}

// Record returns the record at position i.
func (d *Dataset) Record(i int) Record {
	return d.records[i]
}

// ClassName returns the human-readable name for a label.
func (d *Dataset) ClassName(label int) (string, error) {
	if label < 0 || label >= len(d.names) {
		return "", errors.NewUnknownLabelError("Dataset.ClassName", label)
	}
	return d.names[label], nil
}

// ClassNames returns the label-to-name table, indexed by label value.
func (d *Dataset) ClassNames() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Matrix returns the features as an n×d dense matrix.
func (d *Dataset) Matrix() *mat.Dense {
	n, c := d.Len(), d.NumFeatures()
	X := mat.NewDense(n, c, nil)
	for i, rec := range d.records {
		X.SetRow(i, rec.Features)
	}
	return X
}

// Labels returns the label sequence in record order.
func (d *Dataset) Labels() []int {
	y := make([]int, len(d.records))
	for i, rec := range d.records {
		y[i] = rec.Label
	}
	return y
}

// LabelMatrix returns the labels as an n×1 matrix for estimator interfaces.
func (d *Dataset) LabelMatrix() *mat.Dense {
	y := mat.NewDense(d.Len(), 1, nil)
	for i, rec := range d.records {
		y.Set(i, 0, float64(rec.Label))
	}
	return y
}

// Subset returns a new Dataset holding the records at the given positions,
// in the given order. The class-name table is shared.
func (d *Dataset) Subset(indices []int) *Dataset {
	records := make([]Record, len(indices))
	for i, idx := range indices {
		records[i] = d.records[idx]
	}
	return &Dataset{records: records, names: d.names}
}

// Concat returns a new Dataset with other's records appended to d's.
// Both must share feature dimensionality and class-name tables.
func (d *Dataset) Concat(other *Dataset) (*Dataset, error) {
	if other.NumFeatures() != d.NumFeatures() {
		return nil, errors.NewDimensionError("Dataset.Concat", d.NumFeatures(), other.NumFeatures(), 1)
	}
	records := make([]Record, 0, d.Len()+other.Len())
	records = append(records, d.records...)
	records = append(records, other.records...)
	return &Dataset{records: records, names: d.names}, nil
}

// WithFeatures returns a new Dataset with the same labels and class names
// but features replaced by the rows of X, e.g. after scaling.
func (d *Dataset) WithFeatures(X mat.Matrix) (*Dataset, error) {
	r, c := X.Dims()
	if r != d.Len() {
		return nil, errors.NewDimensionError("Dataset.WithFeatures", d.Len(), r, 0)
	}
	records := make([]Record, r)
	for i := range records {
		features := make([]float64, c)
		for j := 0; j < c; j++ {
			features[j] = X.At(i, j)
		}
		records[i] = Record{Features: features, Label: d.records[i].Label}
	}
	return &Dataset{records: records, names: d.names}, nil
}
