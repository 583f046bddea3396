package svm

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/macaler/iris-svm-classification/core/model"
	"github.com/macaler/iris-svm-classification/metrics"
	"github.com/macaler/iris-svm-classification/pkg/errors"
	"github.com/macaler/iris-svm-classification/pkg/log"
)

// Supported kernel names.
const (
	KernelRBF    = "rbf"
	KernelLinear = "linear"
)

// SVC is a C-support vector classifier. Multiclass problems are decomposed
// one-vs-one with majority voting; vote ties go to the lowest class label.
type SVC struct {
	model.BaseEstimator

	// C is the regularization strength. Must be positive.
	C float64

	// Gamma is the RBF kernel-width coefficient. Must be positive for
	// the RBF kernel; ignored by the linear kernel.
	Gamma float64

	// Kernel selects the kernel function: "rbf" (default) or "linear".
	Kernel string

	// Tol is the KKT violation tolerance of the SMO solver.
	Tol float64

	// MaxPasses is the number of alpha-stable sweeps SMO requires before
	// declaring convergence.
	MaxPasses int

	// RandomState seeds the SMO partner selection. The solver is fully
	// deterministic for a fixed seed; this must be set explicitly when
	// reproducibility across retrains is required.
	RandomState uint64

	classes_ []int
	pairs    []classPair
	machines []*binaryMachine
}

// classPair identifies one one-vs-one subproblem. A positive decision value
// votes for hi, a non-positive one for lo.
type classPair struct {
	lo, hi int
}

// NewSVC creates an SVC with the given regularization strength and RBF
// kernel coefficient, using the default solver settings.
func NewSVC(c, gamma float64) *SVC {
	return &SVC{
		C:           c,
		Gamma:       gamma,
		Kernel:      KernelRBF,
		Tol:         1e-3,
		MaxPasses:   5,
		RandomState: 1,
	}
}

func (s *SVC) kernelFunc() (Kernel, error) {
	switch s.Kernel {
	case KernelRBF, "":
		if s.Gamma <= 0 {
			return nil, errors.NewValidationError("gamma", "must be positive for the rbf kernel", s.Gamma)
		}
		return RBFKernel(s.Gamma), nil
	case KernelLinear:
		return LinearKernel(), nil
	default:
		return nil, errors.NewValidationError("kernel", "unsupported kernel", s.Kernel)
	}
}

// Fit trains the classifier on X with integer class labels y (n×1 matrix).
func (s *SVC) Fit(X, y mat.Matrix) error {
	start := time.Now()

	if s.C <= 0 {
		return errors.NewValidationError("C", "must be positive", s.C)
	}
	kernel, err := s.kernelFunc()
	if err != nil {
		return err
	}

	r, c := X.Dims()
	yr, yc := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewValueError("SVC.Fit", "empty matrix")
	}
	if yr != r {
		return errors.NewDimensionError("SVC.Fit", r, yr, 0)
	}
	if yc != 1 {
		return errors.NewDimensionError("SVC.Fit", 1, yc, 1)
	}

	rows := make([][]float64, r)
	labels := make([]int, r)
	classSet := make(map[int]bool)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		mat.Row(row, i, X)
		rows[i] = row
		labels[i] = int(y.At(i, 0))
		classSet[labels[i]] = true
	}

	classes := make([]int, 0, len(classSet))
	for cls := range classSet {
		classes = append(classes, cls)
	}
	sort.Ints(classes)
	if len(classes) < 2 {
		return errors.NewValueError("SVC.Fit", "need at least 2 classes")
	}

	s.classes_ = classes
	s.pairs = s.pairs[:0]
	s.machines = s.machines[:0]

	rng := rand.New(rand.NewPCG(s.RandomState, s.RandomState))
	for a := 0; a < len(classes); a++ {
		for b := a + 1; b < len(classes); b++ {
			pair := classPair{lo: classes[a], hi: classes[b]}

			var subX [][]float64
			var subY []float64
			for i, lbl := range labels {
				switch lbl {
				case pair.lo:
					subX = append(subX, rows[i])
					subY = append(subY, -1)
				case pair.hi:
					subX = append(subX, rows[i])
					subY = append(subY, +1)
				}
			}

			machine := solveSMO(subX, subY, smoConfig{
				c:         s.C,
				tol:       s.Tol,
				maxPasses: s.MaxPasses,
				kernel:    kernel,
				rng:       rng,
			})
			s.pairs = append(s.pairs, pair)
			s.machines = append(s.machines, machine)
		}
	}

	s.SetFitted()

	logger := log.GetLoggerWithName("svm.svc")
	logger.Debug("Fitted SVC",
		log.ModelNameKey, "SVC",
		log.OperationKey, "fit",
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.ClassesKey, len(classes),
		log.CKey, s.C,
		log.GammaKey, s.Gamma,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// PredictOne returns the predicted class label for a single feature vector.
func (s *SVC) PredictOne(features []float64) (int, error) {
	if !s.IsFitted() {
		return 0, errors.NewNotFittedError("SVC", "PredictOne")
	}

	votes := make(map[int]int, len(s.classes_))
	for k, machine := range s.machines {
		if machine.decision(features) > 0 {
			votes[s.pairs[k].hi]++
		} else {
			votes[s.pairs[k].lo]++
		}
	}

	// classes_ is sorted, so the first maximum wins vote ties.
	best := s.classes_[0]
	for _, cls := range s.classes_[1:] {
		if votes[cls] > votes[best] {
			best = cls
		}
	}
	return best, nil
}

// Predict returns an n×1 matrix of predicted class labels for X.
func (s *SVC) Predict(X mat.Matrix) (mat.Matrix, error) {
	labels, err := s.PredictLabels(X)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(len(labels), 1, nil)
	for i, lbl := range labels {
		out.Set(i, 0, float64(lbl))
	}
	return out, nil
}

// PredictLabels returns the predicted class labels for the rows of X.
func (s *SVC) PredictLabels(X mat.Matrix) ([]int, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SVC", "Predict")
	}
	r, c := X.Dims()
	if len(s.machines) > 0 && len(s.machines[0].supportVectors) > 0 &&
		c != len(s.machines[0].supportVectors[0]) {
		return nil, errors.NewDimensionError("SVC.Predict", len(s.machines[0].supportVectors[0]), c, 1)
	}

	labels := make([]int, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, X)
		lbl, err := s.PredictOne(row)
		if err != nil {
			return nil, err
		}
		labels[i] = lbl
	}
	return labels, nil
}

// Score returns the mean accuracy of the prediction on X against the true
// labels y (n×1 matrix).
func (s *SVC) Score(X, y mat.Matrix) (float64, error) {
	predicted, err := s.PredictLabels(X)
	if err != nil {
		return 0, err
	}
	yr, _ := y.Dims()
	actual := make([]int, yr)
	for i := 0; i < yr; i++ {
		actual[i] = int(y.At(i, 0))
	}
	return metrics.Accuracy(actual, predicted)
}

// Classes returns the sorted class labels seen during fitting.
func (s *SVC) Classes() []int {
	out := make([]int, len(s.classes_))
	copy(out, s.classes_)
	return out
}

// GetParams returns the classifier's hyperparameters.
func (s *SVC) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"C":            s.C,
		"gamma":        s.Gamma,
		"kernel":       s.Kernel,
		"tol":          s.Tol,
		"max_passes":   s.MaxPasses,
		"random_state": s.RandomState,
	}
}

// String returns a short description of the classifier configuration.
func (s *SVC) String() string {
	return fmt.Sprintf("SVC(C=%g, gamma=%g, kernel=%s)", s.C, s.Gamma, s.Kernel)
}
