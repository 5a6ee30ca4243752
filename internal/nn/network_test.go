package nn

import (
	"testing"

	"github.com/born-ml/fcn/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var referenceOutput = []float64{0.22793645, 0.77206355}

func TestReferenceForward(t *testing.T) {
	model := NewReference()

	probs, err := model.Forward(tensor.NewVector(1.0, 2.0))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, tensor.VectorShape(probs))
	assert.InDeltaSlice(t, referenceOutput, tensor.Values(probs), 1e-6)
}

func TestForwardTrace(t *testing.T) {
	trace, err := NewReference().ForwardTrace(tensor.NewVector(1.0, 2.0))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, tensor.Values(trace.Input))
	assert.InDeltaSlice(t, []float64{-0.5, 1.3}, tensor.Values(trace.Z1), 1e-12)
	assert.InDeltaSlice(t, []float64{0.0, 1.3}, tensor.Values(trace.A1), 1e-12)
	assert.InDeltaSlice(t, []float64{-0.39, 0.83}, tensor.Values(trace.Z2), 1e-12)
	assert.InDeltaSlice(t, referenceOutput, tensor.Values(trace.Y), 1e-6)
}

// TestForwardOutputShape checks the (2,) output for assorted inputs, including negative ones.
func TestForwardOutputShape(t *testing.T) {
	model := NewReference()
	inputs := [][]float64{
		{-1.0, 0.5},
		{0, 0},
		{-10, -10},
		{1e3, -1e3},
		{5, 7},
	}

	for _, in := range inputs {
		probs, err := model.Forward(tensor.NewVector(in...))
		require.NoError(t, err)
		out := tensor.Values(probs)
		assert.Equal(t, tensor.Shape{2}, tensor.VectorShape(probs), "input %v", in)
		assert.InDelta(t, 1.0, floats.Sum(out), 1e-9, "input %v", in)
		for _, p := range out {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestForwardNegativeInput(t *testing.T) {
	// z1 = [-0.3, -0.55] → a1 = [0, 0] → z2 = b2 = [0, 0.05]
	trace, err := NewReference().ForwardTrace(tensor.NewVector(-1.0, 0.5))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0}, tensor.Values(trace.A1), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.05}, tensor.Values(trace.Z2), 1e-12)
}

func TestForwardShapeMismatch(t *testing.T) {
	model := NewReference()

	_, err := model.Forward(tensor.NewVector(1, 2, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "layer 1")
}

func TestPredict(t *testing.T) {
	class, probs, err := NewReference().Predict(tensor.NewVector(1.0, 2.0))
	require.NoError(t, err)
	assert.Equal(t, 1, class)
	assert.InDeltaSlice(t, referenceOutput, tensor.Values(probs), 1e-6)

	_, _, err = NewReference().Predict(tensor.NewVector(1))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestNewSimpleFCNCopiesParams(t *testing.T) {
	p := ReferenceParams()
	model, err := NewSimpleFCN(p)
	require.NoError(t, err)

	p.W1.Set(0, 0, 100)
	p.B2.SetVec(1, 100)

	probs, err := model.Forward(tensor.NewVector(1.0, 2.0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, referenceOutput, tensor.Values(probs), 1e-6)

	// Accessor returns a copy as well.
	got := model.Params()
	got.W2.Set(0, 0, -5)
	assert.Equal(t, 0.5, model.Params().W2.At(0, 0))
}

func TestNewSimpleFCNRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"missing W1", func(p *Params) { p.W1 = nil }},
		{"missing b1", func(p *Params) { p.B1 = nil }},
		{"wide W1", func(p *Params) { p.W1 = mat.NewDense(2, 3, nil) }},
		{"long b2", func(p *Params) { p.B2 = tensor.NewVector(0, 0, 0) }},
		{"tall W2", func(p *Params) { p.W2 = mat.NewDense(3, 2, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ReferenceParams()
			tt.mutate(&p)
			model, err := NewSimpleFCN(p)
			assert.Nil(t, model)
			assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
		})
	}
}

func TestArchitecture(t *testing.T) {
	assert.Equal(t, []int{2, 2, 2}, NewReference().Architecture())
}

func TestMethodsMatchPackageFunctions(t *testing.T) {
	model := NewReference()
	z := tensor.NewVector(-2, 0.25)

	assert.Equal(t, tensor.Values(ReLU(z)), tensor.Values(model.ReLU(z)))
	assert.Equal(t, tensor.Values(Softmax(z)), tensor.Values(model.Softmax(z)))

	p := ReferenceParams()
	want, err := LinearForward(p.W1, z, p.B1)
	require.NoError(t, err)
	got, err := model.LinearForward(p.W1, z, p.B1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Values(want), tensor.Values(got))
}
