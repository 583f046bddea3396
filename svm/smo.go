package svm

import (
	"math"
	"math/rand/v2"
)

// smoConfig holds the solver parameters for one binary subproblem.
type smoConfig struct {
	c         float64
	tol       float64
	maxPasses int
	kernel    Kernel
	rng       *rand.Rand
}

// binaryMachine is one trained two-class decision function:
// f(x) = sum_k coef_k * K(sv_k, x) + b, sign deciding the class.
type binaryMachine struct {
	supportVectors [][]float64
	coefs          []float64 // alpha_k * y_k for each support vector
	b              float64
	kernel         Kernel
}

func (m *binaryMachine) decision(x []float64) float64 {
	f := m.b
	for k, sv := range m.supportVectors {
		f += m.coefs[k] * m.kernel(sv, x)
	}
	return f
}

// solveSMO trains a binary soft-margin SVM on X with labels y in {-1, +1}
// using the simplified SMO algorithm. The partner index for each joint
// optimization step is drawn from cfg.rng, so a fixed seed yields a fixed
// solution.
func solveSMO(X [][]float64, y []float64, cfg smoConfig) *binaryMachine {
	n := len(X)
	alphas := make([]float64, n)
	b := 0.0

	// Gram matrix; the subproblems here are small (Iris scale).
	gram := make([][]float64, n)
	for i := range gram {
		gram[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			v := cfg.kernel(X[i], X[j])
			gram[i][j] = v
			gram[j][i] = v
		}
	}

	f := func(i int) float64 {
		s := b
		for k := 0; k < n; k++ {
			if alphas[k] != 0 {
				s += alphas[k] * y[k] * gram[k][i]
			}
		}
		return s
	}

	passes := 0
	for passes < cfg.maxPasses {
		numChanged := 0
		for i := 0; i < n; i++ {
			ei := f(i) - y[i]
			if !((y[i]*ei < -cfg.tol && alphas[i] < cfg.c) || (y[i]*ei > cfg.tol && alphas[i] > 0)) {
				continue
			}

			j := cfg.rng.IntN(n - 1)
			if j >= i {
				j++
			}
			ej := f(j) - y[j]

			aiOld, ajOld := alphas[i], alphas[j]

			var lo, hi float64
			if y[i] != y[j] {
				lo = math.Max(0, ajOld-aiOld)
				hi = math.Min(cfg.c, cfg.c+ajOld-aiOld)
			} else {
				lo = math.Max(0, aiOld+ajOld-cfg.c)
				hi = math.Min(cfg.c, aiOld+ajOld)
			}
			if lo == hi {
				continue
			}

			eta := 2*gram[i][j] - gram[i][i] - gram[j][j]
			if eta >= 0 {
				continue
			}

			aj := ajOld - y[j]*(ei-ej)/eta
			if aj > hi {
				aj = hi
			} else if aj < lo {
				aj = lo
			}
			if math.Abs(aj-ajOld) < 1e-5 {
				continue
			}
			alphas[j] = aj
			alphas[i] = aiOld + y[i]*y[j]*(ajOld-aj)

			b1 := b - ei - y[i]*(alphas[i]-aiOld)*gram[i][i] - y[j]*(aj-ajOld)*gram[i][j]
			b2 := b - ej - y[i]*(alphas[i]-aiOld)*gram[i][j] - y[j]*(aj-ajOld)*gram[j][j]
			switch {
			case alphas[i] > 0 && alphas[i] < cfg.c:
				b = b1
			case alphas[j] > 0 && alphas[j] < cfg.c:
				b = b2
			default:
				b = (b1 + b2) / 2
			}

			numChanged++
		}
		if numChanged == 0 {
			passes++
		} else {
			passes = 0
		}
	}

	m := &binaryMachine{b: b, kernel: cfg.kernel}
	for i, a := range alphas {
		if a > 0 {
			sv := make([]float64, len(X[i]))
			copy(sv, X[i])
			m.supportVectors = append(m.supportVectors, sv)
			m.coefs = append(m.coefs, a*y[i])
		}
	}
	return m
}
