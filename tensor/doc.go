// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the vector and matrix vocabulary used by fcn.
//
// Storage is gonum's mat package: vectors are *mat.VecDense and matrices
// *mat.Dense. This package adds NumPy-style shapes, constructors that copy
// their input, tolerance comparisons and the shape-mismatch error.
//
//	w, err := tensor.NewMatrix([][]float64{
//	    {0.2, -0.4},
//	    {0.7, 0.3},
//	})
//	x := tensor.NewVector(1.0, 2.0)
//	fmt.Println(tensor.MatrixShape(w), tensor.VectorShape(x)) // (2, 2) (2,)
package tensor
