package nn

import (
	"github.com/born-ml/fcn/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// LinearForward computes the affine transform z = W·x + b.
//
// Shapes:
//   - W: [m, n] weight matrix
//   - x: [n] input vector
//   - b: [m] bias vector
//   - z: [m] output vector
//
// Returns a *tensor.ShapeError (matching tensor.ErrShapeMismatch) when
// W.cols != len(x) or W.rows != len(b). The operands are never modified.
//
// Example:
//
//	w := mat.NewDense(2, 2, []float64{1, -1, 0.5, 2})
//	z, err := nn.LinearForward(w, tensor.NewVector(1, 2), tensor.NewVector(0, 1))
//	// z = [-1, 5.5]
func LinearForward(w mat.Matrix, x, b mat.Vector) (*mat.VecDense, error) {
	const op = "linear_forward"

	if isNilMatrix(w) {
		return nil, &tensor.ShapeError{Op: op, Detail: "W is nil", Want: tensor.Shape{1, 1}, Got: tensor.Shape{}}
	}
	rows, cols := w.Dims()
	if rows == 0 || cols == 0 {
		return nil, &tensor.ShapeError{Op: op, Detail: "W is empty", Want: tensor.Shape{1, 1}, Got: tensor.Shape{rows, cols}}
	}
	if isNilVector(x) {
		return nil, &tensor.ShapeError{Op: op, Detail: "x is nil", Want: tensor.Shape{cols}, Got: tensor.Shape{}}
	}
	if isNilVector(b) {
		return nil, &tensor.ShapeError{Op: op, Detail: "b is nil", Want: tensor.Shape{rows}, Got: tensor.Shape{}}
	}
	if x.Len() != cols {
		return nil, &tensor.ShapeError{Op: op, Detail: "W.cols != len(x)", Want: tensor.Shape{cols}, Got: tensor.Shape{x.Len()}}
	}
	if b.Len() != rows {
		return nil, &tensor.ShapeError{Op: op, Detail: "W.rows != len(b)", Want: tensor.Shape{rows}, Got: tensor.Shape{b.Len()}}
	}

	z := mat.NewVecDense(rows, nil)
	z.MulVec(w, x)
	z.AddVec(z, b)
	return z, nil
}

func isNilMatrix(m mat.Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	}
	return false
}

func isNilVector(v mat.Vector) bool {
	switch vv := v.(type) {
	case nil:
		return true
	case *mat.VecDense:
		return vv == nil
	}
	return false
}
