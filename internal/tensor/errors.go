package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch reports incompatible dimensions between a matrix and the
// vector(s) it operates on.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError describes a shape mismatch in a specific operation.
//
// ShapeError matches ErrShapeMismatch with errors.Is:
//
//	_, err := nn.LinearForward(w, x, b)
//	if errors.Is(err, tensor.ErrShapeMismatch) { ... }
type ShapeError struct {
	Op     string // Operation that rejected its operands, e.g. "linear_forward".
	Detail string // Which dimensions disagree.
	Want   Shape  // Expected shape.
	Got    Shape  // Actual shape.
}

// Error implements error.
func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, ErrShapeMismatch)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("%s (expected %v, got %v)", msg, e.Want, e.Got)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}
