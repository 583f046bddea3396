package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/macaler/iris-svm-classification/pkg/errors"
)

// ConfusionTable cross-tabulates predicted against actual class names over
// a held-out test subset. Each record contributes exactly one count, so the
// sum of all cells equals the number of scored records. Zero cells are
// valid and queryable, not omitted.
type ConfusionTable struct {
	names  []string                  // sorted class names present in the true sequence
	counts map[string]map[string]int // predicted name -> actual name -> count
	total  int
}

// NewConfusionTable builds a ConfusionTable from equal-length predicted and
// true label sequences. classNames maps a label integer to its class name
// by index; a label without a mapping fails with UnknownLabelError.
func NewConfusionTable(yTrue, yPred []int, classNames []string) (*ConfusionTable, error) {
	if len(yPred) != len(yTrue) {
		return nil, errors.NewLengthMismatchError("NewConfusionTable", len(yTrue), len(yPred))
	}

	nameOf := func(label int) (string, error) {
		if label < 0 || label >= len(classNames) {
			return "", errors.NewUnknownLabelError("NewConfusionTable", label)
		}
		return classNames[label], nil
	}

	t := &ConfusionTable{
		counts: make(map[string]map[string]int),
		total:  len(yTrue),
	}

	seen := make(map[string]bool)
	for i := range yTrue {
		actual, err := nameOf(yTrue[i])
		if err != nil {
			return nil, err
		}
		predicted, err := nameOf(yPred[i])
		if err != nil {
			return nil, err
		}

		if t.counts[predicted] == nil {
			t.counts[predicted] = make(map[string]int)
		}
		t.counts[predicted][actual]++

		if !seen[actual] {
			seen[actual] = true
			t.names = append(t.names, actual)
		}
	}
	sort.Strings(t.names)

	return t, nil
}

// Count returns the number of records predicted as predicted whose actual
// class is actual. Pairs never observed return 0.
func (t *ConfusionTable) Count(predicted, actual string) int {
	return t.counts[predicted][actual]
}

// Total returns the number of records the table was built from.
func (t *ConfusionTable) Total() int {
	return t.total
}

// Names returns the sorted class names present in the true-label sequence.
// These are the row and column labels of the rendered table.
func (t *ConfusionTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// String renders the table with predicted classes as rows and actual
// classes as columns. Rows cover the actual-name axis plus any predicted
// name that only appears in predictions, so no count is dropped.
func (t *ConfusionTable) String() string {
	cols := t.Names()

	rowSet := make(map[string]bool, len(cols))
	rows := make([]string, 0, len(cols))
	for _, name := range cols {
		rowSet[name] = true
		rows = append(rows, name)
	}
	for predicted := range t.counts {
		if !rowSet[predicted] {
			rowSet[predicted] = true
			rows = append(rows, predicted)
		}
	}
	sort.Strings(rows)

	width := len("predicted")
	for _, name := range append(rows[:len(rows):len(rows)], cols...) {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", width, "predicted")
	for _, col := range cols {
		fmt.Fprintf(&b, "  %*s", width, col)
	}
	b.WriteByte('\n')

	for _, row := range rows {
		fmt.Fprintf(&b, "%-*s", width, row)
		for _, col := range cols {
			fmt.Fprintf(&b, "  %*d", width, t.Count(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
