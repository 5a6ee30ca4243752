// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/fcn/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Type aliases for public API

// Shape represents the dimensions of a vector or matrix.
type Shape = tensor.Shape

// ShapeError describes a shape mismatch in a specific operation.
type ShapeError = tensor.ShapeError

// ErrShapeMismatch is matched by every ShapeError.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// NewVector creates a vector holding a copy of values.
func NewVector(values ...float64) *mat.VecDense {
	return tensor.NewVector(values...)
}

// NewMatrix creates a dense matrix from row-major rows.
//
// Example:
//
//	w, err := tensor.NewMatrix([][]float64{{0.2, -0.4}, {0.7, 0.3}})
func NewMatrix(rows [][]float64) (*mat.Dense, error) {
	return tensor.NewMatrix(rows)
}

// Values returns a copy of the elements of v.
func Values(v mat.Vector) []float64 {
	return tensor.Values(v)
}

// VectorShape returns the shape of v.
func VectorShape(v mat.Vector) Shape {
	return tensor.VectorShape(v)
}

// MatrixShape returns the shape of m.
func MatrixShape(m mat.Matrix) Shape {
	return tensor.MatrixShape(m)
}

// AllClose reports whether a and b agree element-wise within atol.
func AllClose(a, b []float64, atol float64) bool {
	return tensor.AllClose(a, b, atol)
}
