package nn

import (
	"github.com/born-ml/fcn/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Fixed architecture of the exercise network: 2 inputs, 2 hidden units, 2 classes.
const (
	InputSize  = 2
	HiddenSize = 2
	OutputSize = 2
)

// Params holds the weights and biases of the two-layer network.
//
// Shapes:
//   - W1: [HiddenSize, InputSize]
//   - B1: [HiddenSize]
//   - W2: [OutputSize, HiddenSize]
//   - B2: [OutputSize]
type Params struct {
	W1 *mat.Dense
	B1 *mat.VecDense
	W2 *mat.Dense
	B2 *mat.VecDense
}

// ReferenceParams returns the known-good parameter values of the exercise.
//
//	W1 = [[0.2, -0.4], [0.7, 0.3]]   b1 = [0.1, 0.0]
//	W2 = [[0.5, -0.3], [-0.4, 0.6]]  b2 = [0.0, 0.05]
//
// With these values Forward([1, 2]) ≈ [0.22793645, 0.77206355].
func ReferenceParams() Params {
	return Params{
		W1: mat.NewDense(HiddenSize, InputSize, []float64{
			0.2, -0.4,
			0.7, 0.3,
		}),
		B1: tensor.NewVector(0.1, 0.0),
		W2: mat.NewDense(OutputSize, HiddenSize, []float64{
			0.5, -0.3,
			-0.4, 0.6,
		}),
		B2: tensor.NewVector(0.0, 0.05),
	}
}

// Validate checks that every parameter is present and has the shape of the
// fixed [2, 2, 2] architecture. Errors match tensor.ErrShapeMismatch.
func (p Params) Validate() error {
	checks := []struct {
		name string
		got  tensor.Shape
		want tensor.Shape
	}{
		{"W1", matrixShape(p.W1), tensor.Shape{HiddenSize, InputSize}},
		{"b1", vectorShape(p.B1), tensor.Shape{HiddenSize}},
		{"W2", matrixShape(p.W2), tensor.Shape{OutputSize, HiddenSize}},
		{"b2", vectorShape(p.B2), tensor.Shape{OutputSize}},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			return &tensor.ShapeError{Op: "params", Detail: c.name, Want: c.want, Got: c.got}
		}
	}
	return nil
}

// Clone returns a deep copy of the parameters.
func (p Params) Clone() Params {
	return Params{
		W1: cloneDense(p.W1),
		B1: cloneVec(p.B1),
		W2: cloneDense(p.W2),
		B2: cloneVec(p.B2),
	}
}

// Typed nils must not reach the mat.Matrix/mat.Vector interfaces.

func matrixShape(m *mat.Dense) tensor.Shape {
	if m == nil {
		return tensor.Shape{}
	}
	return tensor.MatrixShape(m)
}

func vectorShape(v *mat.VecDense) tensor.Shape {
	if v == nil {
		return tensor.Shape{}
	}
	return tensor.VectorShape(v)
}

func cloneDense(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	return tensor.CloneMatrix(m)
}

func cloneVec(v *mat.VecDense) *mat.VecDense {
	if v == nil {
		return nil
	}
	return tensor.CloneVector(v)
}
