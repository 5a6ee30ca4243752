// Package nn implements the forward pass of a small fully connected network.
package nn

import (
	"fmt"

	"github.com/born-ml/fcn/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SimpleFCN is a two-layer fully connected network with a ReLU hidden
// layer and a softmax output layer:
//
//	z1 = W1·x + b1
//	a1 = ReLU(z1)
//	z2 = W2·a1 + b2
//	y  = Softmax(z2)
//
// Parameters are copied at construction and never mutated afterwards, so a
// SimpleFCN can be shared freely.
//
// Example:
//
//	model := nn.NewReference()
//	probs, err := model.Forward(tensor.NewVector(1.0, 2.0))
//	// probs ≈ [0.22793645, 0.77206355]
type SimpleFCN struct {
	params Params
}

// Trace records the intermediate values of one forward pass.
type Trace struct {
	Input *mat.VecDense // x
	Z1    *mat.VecDense // W1·x + b1
	A1    *mat.VecDense // ReLU(z1)
	Z2    *mat.VecDense // W2·a1 + b2
	Y     *mat.VecDense // Softmax(z2)
}

// NewSimpleFCN creates a network from the given parameters.
//
// The parameters are deep-copied. Returns an error matching
// tensor.ErrShapeMismatch if they do not fit the [2, 2, 2] architecture.
func NewSimpleFCN(p Params) (*SimpleFCN, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("new network: %w", err)
	}
	return &SimpleFCN{params: p.Clone()}, nil
}

// NewReference creates the network with ReferenceParams.
func NewReference() *SimpleFCN {
	model, err := NewSimpleFCN(ReferenceParams())
	if err != nil {
		panic(fmt.Sprintf("nn: reference parameters are invalid: %v", err))
	}
	return model
}

// Params returns a copy of the network parameters.
func (m *SimpleFCN) Params() Params {
	return m.params.Clone()
}

// Architecture returns the layer sizes [input, hidden, output].
func (m *SimpleFCN) Architecture() []int {
	return []int{InputSize, HiddenSize, OutputSize}
}

// LinearForward computes W·x + b. See the package-level LinearForward.
func (m *SimpleFCN) LinearForward(w mat.Matrix, x, b mat.Vector) (*mat.VecDense, error) {
	return LinearForward(w, x, b)
}

// ReLU applies max(0, z) element-wise. See the package-level ReLU.
func (m *SimpleFCN) ReLU(z mat.Vector) *mat.VecDense {
	return ReLU(z)
}

// Softmax computes the numerically stable softmax. See the package-level Softmax.
func (m *SimpleFCN) Softmax(z mat.Vector) *mat.VecDense {
	return Softmax(z)
}

// Forward runs the network on x and returns the class probabilities.
//
// x must have length InputSize; otherwise the first layer's shape mismatch
// is returned.
func (m *SimpleFCN) Forward(x mat.Vector) (*mat.VecDense, error) {
	trace, err := m.ForwardTrace(x)
	if err != nil {
		return nil, err
	}
	return trace.Y, nil
}

// ForwardTrace runs the network on x and returns every intermediate value.
func (m *SimpleFCN) ForwardTrace(x mat.Vector) (*Trace, error) {
	// First layer
	z1, err := m.LinearForward(m.params.W1, x, m.params.B1)
	if err != nil {
		return nil, fmt.Errorf("forward: layer 1: %w", err)
	}
	a1 := m.ReLU(z1)

	// Output layer
	z2, err := m.LinearForward(m.params.W2, a1, m.params.B2)
	if err != nil {
		return nil, fmt.Errorf("forward: layer 2: %w", err)
	}
	y := m.Softmax(z2)

	return &Trace{
		Input: tensor.CloneVector(x),
		Z1:    z1,
		A1:    a1,
		Z2:    z2,
		Y:     y,
	}, nil
}

// Predict returns the most probable class for x together with the full
// probability vector. Ties resolve to the lowest class index.
func (m *SimpleFCN) Predict(x mat.Vector) (int, *mat.VecDense, error) {
	probs, err := m.Forward(x)
	if err != nil {
		return 0, nil, err
	}
	return floats.MaxIdx(tensor.Values(probs)), probs, nil
}
