// Package svm implements a kernel support-vector classifier trained with
// sequential minimal optimization. It serves as the default training
// collaborator for the hyperparameter grid search: each grid point supplies
// a regularization strength C and an RBF kernel-width coefficient gamma.
package svm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Kernel computes the inner product of two feature vectors in the kernel's
// implicit feature space.
type Kernel func(a, b []float64) float64

// RBFKernel returns the Gaussian radial basis function kernel
// exp(-gamma * ||a-b||^2).
func RBFKernel(gamma float64) Kernel {
	return func(a, b []float64) float64 {
		var sq float64
		for i := range a {
			d := a[i] - b[i]
			sq += d * d
		}
		return math.Exp(-gamma * sq)
	}
}

// LinearKernel returns the plain dot-product kernel.
func LinearKernel() Kernel {
	return func(a, b []float64) float64 {
		return floats.Dot(a, b)
	}
}
