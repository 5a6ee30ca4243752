package nn

import (
	"math"

	"github.com/born-ml/fcn/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ReLU applies the Rectified Linear Unit element-wise: f(z) = max(0, z).
//
// Each output element equals the input element when it is positive and 0
// otherwise (NaN maps to 0). The input is not modified.
//
// Example:
//
//	a := nn.ReLU(tensor.NewVector(-0.5, 1.3)) // [0, 1.3]
func ReLU(z mat.Vector) *mat.VecDense {
	values := tensor.Values(z)
	for i, v := range values {
		if !(v > 0) {
			values[i] = 0
		}
	}
	return tensor.NewVector(values...)
}

// Softmax converts raw scores into a probability distribution.
//
// Numerically stable version: the maximum score is subtracted before
// exponentiating, so large inputs (e.g. [1000, 1001]) do not overflow.
//
//	softmax(z)_i = exp(z_i - max(z)) / Σ_j exp(z_j - max(z))
//
// For any finite input every output lies in [0, 1] and the outputs sum to 1.
// An empty input yields an empty output.
func Softmax(z mat.Vector) *mat.VecDense {
	values := tensor.Values(z)
	if len(values) == 0 {
		return tensor.NewVector()
	}

	maxVal := floats.Max(values)
	for i, v := range values {
		values[i] = math.Exp(v - maxVal)
	}
	floats.Scale(1/floats.Sum(values), values)

	return tensor.NewVector(values...)
}
