// Package tensor defines shapes, errors and helpers over gonum vectors and matrices.
package tensor

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a vector or matrix.
//
// A vector of length n has Shape{n}; a matrix with r rows and c columns
// has Shape{r, c}.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape the way NumPy prints it:
//
//	Shape{2}    → (2,)
//	Shape{2, 3} → (2, 3)
//	Shape{}     → ()
func (s Shape) String() string {
	if len(s) == 1 {
		return "(" + strconv.Itoa(s[0]) + ",)"
	}
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// VectorShape returns the shape of v. A nil vector has an empty shape.
func VectorShape(v mat.Vector) Shape {
	if v == nil {
		return Shape{}
	}
	return Shape{v.Len()}
}

// MatrixShape returns the (rows, cols) shape of m. A nil matrix has an empty shape.
func MatrixShape(m mat.Matrix) Shape {
	if m == nil {
		return Shape{}
	}
	r, c := m.Dims()
	return Shape{r, c}
}
