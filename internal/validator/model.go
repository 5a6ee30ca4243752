// Package validator checks forward-pass implementations against known-good outputs.
package validator

import (
	"gonum.org/v1/gonum/mat"
)

// Model is the capability set a forward-pass implementation must provide.
//
// *nn.SimpleFCN satisfies Model; so can any learner-written network.
type Model interface {
	// LinearForward computes W·x + b.
	LinearForward(w mat.Matrix, x, b mat.Vector) (*mat.VecDense, error)

	// ReLU applies max(0, z) element-wise.
	ReLU(z mat.Vector) *mat.VecDense

	// Softmax converts scores into a probability distribution.
	Softmax(z mat.Vector) *mat.VecDense

	// Forward runs the whole network on x.
	Forward(x mat.Vector) (*mat.VecDense, error)
}

// DefaultTolerance is the absolute tolerance used when comparing outputs.
const DefaultTolerance = 1e-6

// Config controls validation behavior.
type Config struct {
	Tolerance float64 // Absolute tolerance for element-wise comparisons.
}

// DefaultConfig returns the configuration used by the exercise.
func DefaultConfig() Config {
	return Config{Tolerance: DefaultTolerance}
}

func (c Config) withDefaults() Config {
	if !(c.Tolerance > 0) {
		c.Tolerance = DefaultTolerance
	}
	return c
}
