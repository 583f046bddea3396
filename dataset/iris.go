package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"strconv"

	"github.com/macaler/iris-svm-classification/pkg/errors"
)

// The classic Fisher/UCI Iris measurements: 150 records, 4 features,
// 3 balanced classes.
//
//go:embed iris.csv
var irisCSV []byte

// LoadIris parses the embedded Iris corpus into a Dataset.
// Labels are assigned in order of first appearance of each species name,
// which for the embedded file yields setosa=0, versicolor=1, virginica=2.
func LoadIris() (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(irisCSV))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.LoadIris: parsing embedded csv")
	}
	if len(rows) < 2 {
		return nil, errors.NewEmptyDatasetError("dataset.LoadIris")
	}

	header := rows[0]
	numFeatures := len(header) - 1

	var names []string
	labelByName := make(map[string]int)
	records := make([]Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if len(row) != numFeatures+1 {
			return nil, errors.NewDimensionError("dataset.LoadIris", numFeatures+1, len(row), 1)
		}
		features := make([]float64, numFeatures)
		for j := 0; j < numFeatures; j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset.LoadIris: column %q", header[j])
			}
			features[j] = v
		}
		species := row[numFeatures]
		label, ok := labelByName[species]
		if !ok {
			label = len(names)
			labelByName[species] = label
			names = append(names, species)
		}
		records = append(records, Record{Features: features, Label: label})
	}

	return New(records, names)
}

// IrisFeatureNames returns the feature column names of the embedded corpus.
func IrisFeatureNames() []string {
	return []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}
}
