// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/fcn/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// Architecture sizes of the exercise network.
const (
	InputSize  = nn.InputSize
	HiddenSize = nn.HiddenSize
	OutputSize = nn.OutputSize
)

// SimpleFCN is the two-layer network: Linear → ReLU → Linear → Softmax.
type SimpleFCN = nn.SimpleFCN

// Params holds the weights and biases of a SimpleFCN.
type Params = nn.Params

// Trace records the intermediate values of one forward pass.
type Trace = nn.Trace

// NewSimpleFCN creates a network from the given parameters.
//
// Example:
//
//	model, err := nn.NewSimpleFCN(nn.ReferenceParams())
func NewSimpleFCN(p Params) (*SimpleFCN, error) {
	return nn.NewSimpleFCN(p)
}

// NewReference creates the network with the reference parameters.
func NewReference() *SimpleFCN {
	return nn.NewReference()
}

// ReferenceParams returns the known-good parameter values.
func ReferenceParams() Params {
	return nn.ReferenceParams()
}

// Operations

// LinearForward computes W·x + b, failing with tensor.ErrShapeMismatch on
// incompatible dimensions.
func LinearForward(w mat.Matrix, x, b mat.Vector) (*mat.VecDense, error) {
	return nn.LinearForward(w, x, b)
}

// ReLU applies max(0, z) element-wise.
func ReLU(z mat.Vector) *mat.VecDense {
	return nn.ReLU(z)
}

// Softmax computes the numerically stable softmax of z.
func Softmax(z mat.Vector) *mat.VecDense {
	return nn.Softmax(z)
}
