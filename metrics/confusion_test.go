package metrics

import (
	"strings"
	"testing"

	"github.com/macaler/iris-svm-classification/pkg/errors"
)

func TestConfusionTableRoundTrip(t *testing.T) {
	yTrue := []int{0, 0, 1, 1, 2}
	yPred := []int{0, 0, 1, 2, 2}
	names := []string{"a", "b", "c"}

	table, err := NewConfusionTable(yTrue, yPred, names)
	if err != nil {
		t.Fatalf("NewConfusionTable() error = %v", err)
	}

	want := map[[2]string]int{
		{"a", "a"}: 2,
		{"b", "b"}: 1,
		{"c", "b"}: 1,
		{"c", "c"}: 1,
	}
	for _, predicted := range names {
		for _, actual := range names {
			got := table.Count(predicted, actual)
			if got != want[[2]string{predicted, actual}] {
				t.Errorf("Count(%q, %q) = %d, want %d",
					predicted, actual, got, want[[2]string{predicted, actual}])
			}
		}
	}
}

func TestConfusionTableConservation(t *testing.T) {
	yTrue := []int{0, 1, 2, 2, 1, 0, 0, 1}
	yPred := []int{1, 1, 2, 0, 1, 0, 2, 2}
	names := []string{"setosa", "versicolor", "virginica"}

	table, err := NewConfusionTable(yTrue, yPred, names)
	if err != nil {
		t.Fatalf("NewConfusionTable() error = %v", err)
	}

	sum := 0
	for _, predicted := range names {
		for _, actual := range names {
			sum += table.Count(predicted, actual)
		}
	}
	if sum != len(yTrue) {
		t.Errorf("cell sum = %d, want %d", sum, len(yTrue))
	}
	if table.Total() != len(yTrue) {
		t.Errorf("Total() = %d, want %d", table.Total(), len(yTrue))
	}
}

func TestConfusionTableNames(t *testing.T) {
	// Class 0 never appears in the true sequence, so the axes only carry
	// the names actually present, sorted.
	yTrue := []int{2, 1, 2}
	yPred := []int{2, 1, 0}
	names := []string{"zebra", "b", "c"}

	table, err := NewConfusionTable(yTrue, yPred, names)
	if err != nil {
		t.Fatalf("NewConfusionTable() error = %v", err)
	}

	got := table.Names()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("Names() = %v, want [b c]", got)
	}
	// The prediction-only class still contributes its count.
	if table.Count("zebra", "c") != 1 {
		t.Errorf("Count(zebra, c) = %d, want 1", table.Count("zebra", "c"))
	}
}

func TestConfusionTableErrors(t *testing.T) {
	t.Run("Length mismatch", func(t *testing.T) {
		_, err := NewConfusionTable([]int{0, 1, 2, 0, 1}, []int{0, 1, 2, 0}, []string{"a", "b", "c"})
		var mismatch *errors.LengthMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected LengthMismatchError, got %v", err)
		}
	})

	t.Run("Unknown true label", func(t *testing.T) {
		_, err := NewConfusionTable([]int{0, 3}, []int{0, 0}, []string{"a", "b", "c"})
		var unknown *errors.UnknownLabelError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownLabelError, got %v", err)
		}
		if unknown.Label != 3 {
			t.Errorf("UnknownLabelError.Label = %d, want 3", unknown.Label)
		}
	})

	t.Run("Unknown predicted label", func(t *testing.T) {
		_, err := NewConfusionTable([]int{0, 1}, []int{0, -1}, []string{"a", "b", "c"})
		var unknown *errors.UnknownLabelError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownLabelError, got %v", err)
		}
	})
}

func TestConfusionTableString(t *testing.T) {
	table, err := NewConfusionTable([]int{0, 0, 1, 1, 2}, []int{0, 0, 1, 2, 2}, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewConfusionTable() error = %v", err)
	}

	rendered := table.String()
	for _, name := range []string{"predicted", "a", "b", "c"} {
		if !strings.Contains(rendered, name) {
			t.Errorf("String() missing %q:\n%s", name, rendered)
		}
	}
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("String() has %d lines, want 4 (header + 3 classes):\n%s", len(lines), rendered)
	}
}
