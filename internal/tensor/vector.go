package tensor

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// NewVector creates a column vector holding a copy of values.
//
// With no values the result is an empty vector (Len() == 0), which gonum
// cannot build through mat.NewVecDense.
func NewVector(values ...float64) *mat.VecDense {
	if len(values) == 0 {
		return &mat.VecDense{}
	}
	data := make([]float64, len(values))
	copy(data, values)
	return mat.NewVecDense(len(data), data)
}

// NewMatrix creates a dense matrix from row-major rows.
//
// Every row must have the same, non-zero length.
//
// Example:
//
//	w, err := tensor.NewMatrix([][]float64{
//	    {0.2, -0.4},
//	    {0.7, 0.3},
//	})
func NewMatrix(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ShapeError{Op: "new_matrix", Detail: "matrix must have at least one row and one column", Want: Shape{1, 1}, Got: Shape{len(rows), 0}}
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ShapeError{Op: "new_matrix", Detail: "ragged row " + strconv.Itoa(i), Want: Shape{cols}, Got: Shape{len(row)}}
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Values returns a fresh copy of the elements of v.
func Values(v mat.Vector) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// CloneVector returns an independent copy of v.
func CloneVector(v mat.Vector) *mat.VecDense {
	return NewVector(Values(v)...)
}

// CloneMatrix returns an independent copy of m.
func CloneMatrix(m mat.Matrix) *mat.Dense {
	if m == nil {
		return nil
	}
	return mat.DenseCopyOf(m)
}

// AllClose reports whether a and b have the same length and every pair of
// elements differs by at most atol.
func AllClose(a, b []float64, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	return floats.EqualFunc(a, b, func(x, y float64) bool {
		return scalar.EqualWithinAbs(x, y, atol)
	})
}

// IsFinite reports whether every element of v is neither NaN nor ±Inf.
func IsFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
