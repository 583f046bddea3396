package errors

import (
	"strings"
	"testing"
)

func TestInvalidFractionError(t *testing.T) {
	err := NewInvalidFractionError([]float64{0.5, 0.2, 0.2}, 0.9, "fractions must sum to 1.0")

	var invalid *InvalidFractionError
	if !As(err, &invalid) {
		t.Fatalf("expected InvalidFractionError, got %T", err)
	}
	if invalid.Sum != 0.9 {
		t.Errorf("Sum = %v, want 0.9", invalid.Sum)
	}
	if !strings.Contains(err.Error(), "sum=0.9") {
		t.Errorf("message missing sum: %v", err)
	}
}

func TestTrainingFailureErrorUnwrap(t *testing.T) {
	cause := New("solver blew up")
	err := NewTrainingFailureError(3, 10, 0.1, cause)

	var failure *TrainingFailureError
	if !As(err, &failure) {
		t.Fatalf("expected TrainingFailureError, got %T", err)
	}
	if failure.Position != 3 || failure.C != 10 || failure.Gamma != 0.1 {
		t.Errorf("failure = %+v", failure)
	}
	if !Is(err, cause) {
		t.Error("TrainingFailureError should unwrap to its cause")
	}
	msg := err.Error()
	for _, part := range []string{"position 3", "C=10", "gamma=0.1", "solver blew up"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message missing %q: %v", part, msg)
		}
	}
}

func TestLengthMismatchError(t *testing.T) {
	err := NewLengthMismatchError("Accuracy", 5, 4)
	var mismatch *LengthMismatchError
	if !As(err, &mismatch) {
		t.Fatalf("expected LengthMismatchError, got %T", err)
	}
	if mismatch.Expected != 5 || mismatch.Got != 4 {
		t.Errorf("mismatch = %+v", mismatch)
	}
}

func TestUnknownLabelError(t *testing.T) {
	err := NewUnknownLabelError("NewConfusionTable", 7)
	var unknown *UnknownLabelError
	if !As(err, &unknown) {
		t.Fatalf("expected UnknownLabelError, got %T", err)
	}
	if unknown.Label != 7 {
		t.Errorf("Label = %d, want 7", unknown.Label)
	}
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("SVC", "Predict")
	if !strings.Contains(err.Error(), "SVC") || !strings.Contains(err.Error(), "Predict()") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestWrapPreservesType(t *testing.T) {
	inner := NewEmptyDatasetError("dataset.Split")
	wrapped := Wrap(inner, "running pipeline")

	var empty *EmptyDatasetError
	if !As(wrapped, &empty) {
		t.Error("wrapping should preserve the typed error")
	}
	if !strings.Contains(wrapped.Error(), "running pipeline") {
		t.Errorf("wrap message missing: %v", wrapped)
	}
}
