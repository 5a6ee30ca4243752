// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package validator checks forward-pass implementations against known-good
// outputs and validates architecture descriptions.
//
// Every check returns a structured Result; nothing panics. A learner's
// implementation only has to satisfy Model:
//
//	report := validator.Run(myModel, validator.DefaultConfig())
//	fmt.Println(report)
//	if err := report.Err(); err != nil {
//	    // errors.Is(err, validator.ErrValidation)
//	}
package validator

import (
	"github.com/born-ml/fcn/internal/validator"
)

// Model is the capability set a forward-pass implementation must provide.
type Model = validator.Model

// Config controls validation behavior.
type Config = validator.Config

// Result is the outcome of a single check.
type Result = validator.Result

// Report collects the results of a validation run.
type Report = validator.Report

// Check is a single named validation step.
type Check = validator.Check

// ValidationFailure describes why a check rejected a model's output.
type ValidationFailure = validator.ValidationFailure

// ErrValidation is matched by every ValidationFailure.
var ErrValidation = validator.ErrValidation

// DefaultTolerance is the default absolute tolerance.
const DefaultTolerance = validator.DefaultTolerance

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return validator.DefaultConfig()
}

// Checks returns the standard battery of checks.
func Checks() []Check {
	return validator.Checks()
}

// Run executes every standard check against m.
func Run(m Model, cfg Config) Report {
	return validator.Run(m, cfg)
}

// RunChecks executes the given checks in order.
func RunChecks(m Model, cfg Config, checks ...Check) Report {
	return validator.RunChecks(m, cfg, checks...)
}

// ValidateArchitecture compares a list of layer sizes with the expected one
// (DefaultArchitecture when expected is nil). It never panics.
func ValidateArchitecture(nnDim any, expected []int) (bool, string) {
	return validator.ValidateArchitecture(nnDim, expected)
}

// CheckArchitecture is ValidateArchitecture reported as a Result.
func CheckArchitecture(nnDim any, expected []int) Result {
	return validator.CheckArchitecture(nnDim, expected)
}

// DefaultArchitecture returns [3, 5, 5, 2].
func DefaultArchitecture() []int {
	return validator.DefaultArchitecture()
}
