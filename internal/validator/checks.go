package validator

import (
	"fmt"
	"math"

	"github.com/born-ml/fcn/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Expected outputs of the reference network.
var (
	// ReferenceForwardOutput is Forward([1, 2]).
	ReferenceForwardOutput = []float64{0.22793645, 0.77206355}

	// ReferenceNegativeOutput is Forward([-1, 0.5]); the hidden layer is
	// fully inactive, so the output is Softmax(b2).
	ReferenceNegativeOutput = []float64{0.48750260, 0.51249740}
)

// Check is a single named validation step.
type Check struct {
	Name string
	Run  func(m Model, cfg Config) Result
}

// Checks returns the standard battery, in execution order.
func Checks() []Check {
	return []Check{
		{Name: "linear_forward", Run: CheckLinearForward},
		{Name: "relu", Run: CheckReLU},
		{Name: "softmax", Run: CheckSoftmax},
		{Name: "softmax_stability", Run: CheckSoftmaxStability},
		{Name: "forward_pass", Run: CheckForward},
		{Name: "forward_negative_input", Run: CheckForwardNegativeInput},
	}
}

// Run executes every standard check against m.
func Run(m Model, cfg Config) Report {
	return RunChecks(m, cfg, Checks()...)
}

// RunChecks executes the given checks in order.
//
// Checks are independent: a failing or panicking check is recorded as a
// failed Result and the remaining checks still run.
func RunChecks(m Model, cfg Config, checks ...Check) Report {
	cfg = cfg.withDefaults()
	report := Report{Results: make([]Result, 0, len(checks))}
	for _, c := range checks {
		report.Results = append(report.Results, runCheck(c, m, cfg))
	}
	return report
}

func runCheck(c Check, m Model, cfg Config) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail(c.Name, "Implementation panicked", "no panic", fmt.Sprint(r))
		}
	}()
	if m == nil {
		return fail(c.Name, "Model is missing", "a model", nil)
	}
	return c.Run(m, cfg)
}

// CheckLinearForward verifies W·x + b on a fixed input:
//
//	W = [[1, -1], [0.5, 2]], x = [1, 2], b = [0, 1] → [-1, 5.5]
func CheckLinearForward(m Model, cfg Config) Result {
	const name = "linear_forward"
	cfg = cfg.withDefaults()

	w := mat.NewDense(2, 2, []float64{
		1.0, -1.0,
		0.5, 2.0,
	})
	x := tensor.NewVector(1.0, 2.0)
	b := tensor.NewVector(0.0, 1.0)
	expected := []float64{-1.0, 5.5}

	got, err := m.LinearForward(w, x, b)
	if err != nil {
		return fail(name, "linear_forward returned an error", expected, err)
	}
	if res, ok := checkVector(name, got, expected, cfg.Tolerance, "Incorrect values"); !ok {
		return res
	}
	if !floats.Equal(tensor.Values(x), []float64{1.0, 2.0}) || !floats.Equal(tensor.Values(b), []float64{0.0, 1.0}) {
		return fail(name, "linear_forward modified its inputs", "x = [1, 2], b = [0, 1]",
			fmt.Sprintf("x = %s, b = %s", formatValue(tensor.Values(x)), formatValue(tensor.Values(b))))
	}
	return pass(name)
}

// CheckReLU verifies ReLU([-1, 0, 2.5]) == [0, 0, 2.5].
func CheckReLU(m Model, cfg Config) Result {
	const name = "relu"
	cfg = cfg.withDefaults()

	z := tensor.NewVector(-1.0, 0.0, 2.5)
	expected := []float64{0.0, 0.0, 2.5}

	got := m.ReLU(z)
	if res, ok := checkVector(name, got, expected, cfg.Tolerance, "ReLU failed"); !ok {
		return res
	}
	return pass(name)
}

// CheckSoftmax verifies Softmax([1, 2, 3]) against exp(z) / Σ exp(z) and
// that the result sums to 1.
func CheckSoftmax(m Model, cfg Config) Result {
	const name = "softmax"
	cfg = cfg.withDefaults()

	in := []float64{1.0, 2.0, 3.0}
	expected := make([]float64, len(in))
	for i, v := range in {
		expected[i] = math.Exp(v)
	}
	floats.Scale(1/floats.Sum(expected), expected)

	got := m.Softmax(tensor.NewVector(in...))
	if res, ok := checkVector(name, got, expected, cfg.Tolerance, "Softmax values are incorrect"); !ok {
		return res
	}
	if res, ok := checkSumsToOne(name, tensor.Values(got), cfg.Tolerance, "Softmax output does not sum to 1"); !ok {
		return res
	}
	return pass(name)
}

// CheckSoftmaxStability verifies that Softmax([1000, 1001]) does not
// overflow: no NaN or Inf, sums to 1, and equals Softmax([0, 1]).
func CheckSoftmaxStability(m Model, cfg Config) Result {
	const name = "softmax_stability"
	cfg = cfg.withDefaults()

	e := math.E
	expected := []float64{1 / (1 + e), e / (1 + e)}

	got := m.Softmax(tensor.NewVector(1000.0, 1001.0))
	if got == nil {
		return fail(name, "Output is not a vector", tensor.Shape{2}, nil)
	}
	values := tensor.Values(got)
	if !tensor.IsFinite(values) {
		return fail(name, "Softmax produced NaN or Inf (subtract max(z) before exponentiating)", expected, values)
	}
	if res, ok := checkVector(name, got, expected, cfg.Tolerance, "Softmax values are incorrect for large inputs"); !ok {
		return res
	}
	if res, ok := checkSumsToOne(name, values, cfg.Tolerance, "Softmax output does not sum to 1"); !ok {
		return res
	}
	return pass(name)
}

// CheckForward verifies Forward([1, 2]): shape (2,), a valid probability
// distribution, and the reference output values.
func CheckForward(m Model, cfg Config) Result {
	return checkForwardOn(m, cfg, "forward_pass", []float64{1.0, 2.0}, ReferenceForwardOutput)
}

// CheckForwardNegativeInput verifies Forward([-1, 0.5]) the same way.
func CheckForwardNegativeInput(m Model, cfg Config) Result {
	return checkForwardOn(m, cfg, "forward_negative_input", []float64{-1.0, 0.5}, ReferenceNegativeOutput)
}

func checkForwardOn(m Model, cfg Config, name string, in, expected []float64) Result {
	cfg = cfg.withDefaults()

	got, err := m.Forward(tensor.NewVector(in...))
	if err != nil {
		return fail(name, "forward returned an error", expected, err)
	}
	if got == nil {
		return fail(name, "Output must be a vector", tensor.Shape{2}, nil)
	}
	if shape := tensor.VectorShape(got); !shape.Equal(tensor.Shape{2}) {
		return fail(name, "Unexpected output shape", tensor.Shape{2}, shape)
	}

	values := tensor.Values(got)
	if res, ok := checkSumsToOne(name, values, cfg.Tolerance, "Output probabilities must sum to 1"); !ok {
		return res
	}
	for _, p := range values {
		if p < 0 {
			return fail(name, "Output contains negative probabilities", "all entries >= 0", values)
		}
	}
	if !tensor.AllClose(values, expected, cfg.Tolerance) {
		return fail(name, "Incorrect output probabilities", expected, values)
	}
	return pass(name)
}

// checkVector verifies that got is a vector with the shape and values of expected.
func checkVector(name string, got *mat.VecDense, expected []float64, tol float64, reason string) (Result, bool) {
	want := tensor.Shape{len(expected)}
	if got == nil {
		return fail(name, "Output is not a vector", want, nil), false
	}
	if shape := tensor.VectorShape(got); !shape.Equal(want) {
		return fail(name, "Unexpected output shape", want, shape), false
	}
	values := tensor.Values(got)
	if !tensor.AllClose(values, expected, tol) {
		return fail(name, reason, expected, values), false
	}
	return Result{}, true
}

func checkSumsToOne(name string, values []float64, tol float64, reason string) (Result, bool) {
	sum := floats.Sum(values)
	if math.IsNaN(sum) || math.Abs(sum-1) > tol {
		return fail(name, reason, 1.0, sum), false
	}
	return Result{}, true
}
