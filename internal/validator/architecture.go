package validator

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultArchitecture returns the expected layer sizes of the architecture
// exercise: 3 inputs, two hidden layers of 5, 2 outputs.
func DefaultArchitecture() []int {
	return []int{3, 5, 5, 2}
}

// ValidateArchitecture compares a learner-supplied list of layer sizes with
// the expected one.
//
// nnDim must be a list: []int, or []any holding ints. A nil expected means
// DefaultArchitecture. The function never panics; every malformed input is
// reported through the returned message:
//
//	ok, msg := validator.ValidateArchitecture([]int{3, 5, 2}, nil)
//	// ok == false, msg == "❌ Expected 4 layers, got 3"
func ValidateArchitecture(nnDim any, expected []int) (bool, string) {
	if expected == nil {
		expected = DefaultArchitecture()
	}

	items, ok := asList(nnDim)
	if !ok {
		return false, "❌ nn_dim should be a list"
	}

	if len(items) != len(expected) {
		return false, fmt.Sprintf("❌ Expected %d layers, got %d", len(expected), len(items))
	}

	for i, item := range items {
		size, isInt := item.(int)
		if !isInt || size != expected[i] {
			return false, fmt.Sprintf("❌ Expected architecture %s, got %s", formatList(expected), formatList(items))
		}
	}

	return true, "✅ Architecture matches the expected configuration!"
}

// CheckArchitecture is ValidateArchitecture reported as a Result, so it
// composes with a Report.
func CheckArchitecture(nnDim any, expected []int) Result {
	const name = "architecture"
	if expected == nil {
		expected = DefaultArchitecture()
	}
	ok, msg := ValidateArchitecture(nnDim, expected)
	if ok {
		return Result{Name: name, Passed: true, Message: msg}
	}
	return Result{
		Name:    name,
		Passed:  false,
		Message: msg,
		Err: &ValidationFailure{
			Check:    name,
			Reason:   strings.TrimPrefix(msg, "❌ "),
			Expected: slices.Clone(expected),
			Actual:   nnDim,
		},
	}
}

// asList converts the accepted list types to []any. Anything else,
// including untyped nil and arrays, is not a list.
func asList(v any) ([]any, bool) {
	switch vv := v.(type) {
	case []int:
		items := make([]any, len(vv))
		for i, x := range vv {
			items[i] = x
		}
		return items, true
	case []any:
		return vv, true
	default:
		return nil, false
	}
}

// formatList prints a list as [a, b, c].
func formatList[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
