// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/fcn/nn"
	"github.com/born-ml/fcn/tensor"
	"gonum.org/v1/gonum/mat"
)

func ExampleSimpleFCN_Forward() {
	model := nn.NewReference()

	probs, err := model.Forward(tensor.NewVector(1.0, 2.0))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.8f\n", tensor.Values(probs))
	// Output: [0.22793645 0.77206355]
}

func ExampleLinearForward() {
	w := mat.NewDense(2, 2, []float64{1, -1, 0.5, 2})

	z, err := nn.LinearForward(w, tensor.NewVector(1, 2), tensor.NewVector(0, 1))
	if err != nil {
		panic(err)
	}
	fmt.Println(tensor.Values(z))

	_, err = nn.LinearForward(w, tensor.NewVector(1, 2, 3), tensor.NewVector(0, 1))
	fmt.Println(errors.Is(err, tensor.ErrShapeMismatch))
	// Output:
	// [-1 5.5]
	// true
}

func ExampleSoftmax() {
	p := nn.Softmax(tensor.NewVector(1000, 1001))
	fmt.Printf("%.4f\n", tensor.Values(p))
	// Output: [0.2689 0.7311]
}
