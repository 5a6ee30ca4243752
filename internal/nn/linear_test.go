package nn

import (
	"errors"
	"testing"

	"github.com/born-ml/fcn/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestLinearForward tests both reference layers of the exercise.
func TestLinearForward(t *testing.T) {
	p := ReferenceParams()

	z1, err := LinearForward(p.W1, tensor.NewVector(1.0, 2.0), p.B1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.5, 1.3}, tensor.Values(z1), 1e-12)

	z2, err := LinearForward(p.W2, tensor.NewVector(0.0, 1.3), p.B2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.39, 0.83}, tensor.Values(z2), 1e-12)
}

// TestLinearForwardNonSquare tests a [3, 2] weight matrix.
func TestLinearForwardNonSquare(t *testing.T) {
	w := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	z, err := LinearForward(w, tensor.NewVector(2, 3), tensor.NewVector(0.5, 0.5, 0.5))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, tensor.VectorShape(z))
	assert.InDeltaSlice(t, []float64{2.5, 3.5, 5.5}, tensor.Values(z), 1e-12)
}

// TestLinearForwardDoesNotModifyOperands tests purity.
func TestLinearForwardDoesNotModifyOperands(t *testing.T) {
	w := mat.NewDense(2, 2, []float64{1, -1, 0.5, 2})
	x := tensor.NewVector(1, 2)
	b := tensor.NewVector(0, 1)

	z, err := LinearForward(w, x, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 5.5}, tensor.Values(z), 1e-12)

	assert.Equal(t, []float64{1, 2}, tensor.Values(x))
	assert.Equal(t, []float64{0, 1}, tensor.Values(b))
	assert.Equal(t, []float64{1, -1, 0.5, 2}, w.RawMatrix().Data)
}

// TestLinearForwardShapeMismatch tests every rejected operand combination.
func TestLinearForwardShapeMismatch(t *testing.T) {
	w := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	tests := []struct {
		name   string
		w      mat.Matrix
		x      mat.Vector
		b      mat.Vector
		detail string
	}{
		{"cols != len(x)", w, tensor.NewVector(1, 2, 3), tensor.NewVector(0, 0), "W.cols != len(x)"},
		{"rows != len(b)", w, tensor.NewVector(1, 2), tensor.NewVector(0, 0, 0), "W.rows != len(b)"},
		{"empty x", w, tensor.NewVector(), tensor.NewVector(0, 0), "W.cols != len(x)"},
		{"nil W", nil, tensor.NewVector(1, 2), tensor.NewVector(0, 0), "W is nil"},
		{"typed nil W", (*mat.Dense)(nil), tensor.NewVector(1, 2), tensor.NewVector(0, 0), "W is nil"},
		{"empty W", &mat.Dense{}, tensor.NewVector(1, 2), tensor.NewVector(0, 0), "W is empty"},
		{"nil x", w, nil, tensor.NewVector(0, 0), "x is nil"},
		{"typed nil b", w, tensor.NewVector(1, 2), (*mat.VecDense)(nil), "b is nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := LinearForward(tt.w, tt.x, tt.b)
			assert.Nil(t, z)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

			var shapeErr *tensor.ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, "linear_forward", shapeErr.Op)
			assert.Equal(t, tt.detail, shapeErr.Detail)
		})
	}
}
