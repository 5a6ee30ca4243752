package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationFailure.
var ErrValidation = errors.New("validation failed")

// ValidationFailure describes why a check rejected a model's output.
type ValidationFailure struct {
	Check    string // Check name, e.g. "softmax".
	Reason   string // Human-readable reason, e.g. "Softmax output does not sum to 1".
	Expected any    // Expected value (vector, shape, scalar or description).
	Actual   any    // Value the model produced.
}

// Error implements error.
func (f *ValidationFailure) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %s",
		f.Check, f.Reason, formatValue(f.Expected), formatValue(f.Actual))
}

// Is reports whether target is ErrValidation.
func (f *ValidationFailure) Is(target error) bool {
	return target == ErrValidation
}

// Result is the outcome of a single check.
//
// Message is meant to be shown to the learner as-is: it starts with ✅ on
// success and ❌ on failure. Err is nil on success.
type Result struct {
	Name    string
	Passed  bool
	Message string
	Err     *ValidationFailure
}

func pass(name string) Result {
	return Result{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("✅ %s passed!", name),
	}
}

func fail(name, reason string, expected, actual any) Result {
	f := &ValidationFailure{Check: name, Reason: reason, Expected: expected, Actual: actual}
	return Result{
		Name:    name,
		Passed:  false,
		Message: fmt.Sprintf("❌ %s: expected %s, got %s", reason, formatValue(expected), formatValue(actual)),
		Err:     f,
	}
}

// Report collects the results of a validation run in execution order.
type Report struct {
	Results []Result
}

// Passed reports whether every check passed. An empty report passes.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failed results.
func (r Report) Failures() []Result {
	var failures []Result
	for _, res := range r.Results {
		if !res.Passed {
			failures = append(failures, res)
		}
	}
	return failures
}

// Err joins every failure into one error, or returns nil if all checks passed.
// The joined error matches ErrValidation.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failures() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}

// String renders the report the way it is shown to learners:
//
//	🔍 Testing: relu...
//	✅ relu passed!
//	...
//	6/6 checks passed
func (r Report) String() string {
	var sb strings.Builder
	passed := 0
	for _, res := range r.Results {
		fmt.Fprintf(&sb, "🔍 Testing: %s...\n%s\n", res.Name, res.Message)
		if res.Passed {
			passed++
		}
	}
	fmt.Fprintf(&sb, "%d/%d checks passed", passed, len(r.Results))
	return sb.String()
}

// formatValue prints float slices as [a, b, c] with full precision and
// falls back to %v for everything else.
func formatValue(v any) string {
	switch vv := v.(type) {
	case []float64:
		parts := make([]string, len(vv))
		for i, x := range vv {
			parts[i] = fmt.Sprintf("%.8g", x)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []int:
		return formatList(vv)
	case float64:
		return fmt.Sprintf("%.8g", vv)
	case error:
		return vv.Error()
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%v", vv)
	}
}
