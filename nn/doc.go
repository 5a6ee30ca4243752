// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the forward pass of a two-layer fully connected network.
//
// # Overview
//
// This package contains:
//   - SimpleFCN: a fixed [2, 2, 2] network (Linear → ReLU → Linear → Softmax)
//   - Operations: LinearForward, ReLU, Softmax
//   - Params: weights and biases, with ReferenceParams as the known-good values
//
// There is no training: the network only computes forward passes.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/fcn/nn"
//	    "github.com/born-ml/fcn/tensor"
//	)
//
//	func main() {
//	    model := nn.NewReference()
//
//	    probs, err := model.Forward(tensor.NewVector(1.0, 2.0))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(tensor.Values(probs)) // ≈ [0.22793645 0.77206355]
//	}
//
// # Operations
//
// LinearForward: z = W·x + b; dimension mismatches return tensor.ErrShapeMismatch
//
//	z, err := nn.LinearForward(w, x, b)
//
// ReLU: element-wise max(0, z)
//
//	a := nn.ReLU(z)
//
// Softmax: numerically stable (the maximum is subtracted before exponentiating)
//
//	p := nn.Softmax(tensor.NewVector(1000, 1001)) // no overflow
package nn
