package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArchitecture(t *testing.T) {
	tests := []struct {
		name    string
		nnDim   any
		want    bool
		message string
	}{
		{"match", []int{3, 5, 5, 2}, true, "✅ Architecture matches the expected configuration!"},
		{"match any list", []any{3, 5, 5, 2}, true, "✅ Architecture matches the expected configuration!"},
		{"too short", []int{3, 5, 2}, false, "❌ Expected 4 layers, got 3"},
		{"too long", []int{3, 5, 5, 5, 2}, false, "❌ Expected 4 layers, got 5"},
		{"empty list", []int{}, false, "❌ Expected 4 layers, got 0"},
		{"wrong values", []int{3, 4, 5, 2}, false, "❌ Expected architecture [3, 5, 5, 2], got [3, 4, 5, 2]"},
		{"non-int element", []any{3, "5", 5, 2}, false, "❌ Expected architecture [3, 5, 5, 2], got [3, 5, 5, 2]"},
		{"float element", []any{3, 5.0, 5, 2}, false, "❌ Expected architecture [3, 5, 5, 2], got [3, 5, 5, 2]"},
		{"string", "not a list", false, "❌ nn_dim should be a list"},
		{"nil", nil, false, "❌ nn_dim should be a list"},
		{"array", [4]int{3, 5, 5, 2}, false, "❌ nn_dim should be a list"},
		{"int", 4, false, "❌ nn_dim should be a list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateArchitecture(tt.nnDim, nil)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestValidateArchitectureCustomExpected(t *testing.T) {
	ok, msg := ValidateArchitecture([]int{2, 2, 2}, []int{2, 2, 2})
	assert.True(t, ok)
	assert.Contains(t, msg, "matches")

	ok, msg = ValidateArchitecture([]int{2, 2, 2}, []int{2, 2})
	assert.False(t, ok)
	assert.Equal(t, "❌ Expected 2 layers, got 3", msg)
}

func TestValidateArchitectureDoesNotAliasDefault(t *testing.T) {
	d := DefaultArchitecture()
	d[0] = 99
	assert.Equal(t, []int{3, 5, 5, 2}, DefaultArchitecture())
}

func TestCheckArchitecture(t *testing.T) {
	res := CheckArchitecture([]int{3, 5, 5, 2}, nil)
	assert.True(t, res.Passed)
	assert.Nil(t, res.Err)

	res = CheckArchitecture("not a list", nil)
	assert.False(t, res.Passed)
	require.NotNil(t, res.Err)
	assert.Equal(t, "nn_dim should be a list", res.Err.Reason)
	assert.Equal(t, []int{3, 5, 5, 2}, res.Err.Expected)
	assert.Equal(t, "not a list", res.Err.Actual)
	assert.ErrorIs(t, res.Err, ErrValidation)

	report := Report{Results: []Result{res}}
	assert.False(t, report.Passed())
	assert.Error(t, report.Err())
}
