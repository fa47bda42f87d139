package samplespace

import "errors"

// Sentinel errors for the samplespace package, matched with errors.Is.
var (
	// ErrEmptyInterimRange is returned when no admissible interim sizes are given.
	ErrEmptyInterimRange = errors.New("interim sample size range must not be empty")

	// ErrInterimRange is returned when n1range violates its bounds
	// (min < 1 or max > nmax).
	ErrInterimRange = errors.New("interim sample size range out of bounds")

	// ErrMaxVariables is returned when the candidate-set cap is below the
	// hard floor of 100.
	ErrMaxVariables = errors.New("maxvariables must be at least 100")

	// ErrOutOfRange is returned when a discretization query names an
	// interim size outside the admissible range.
	ErrOutOfRange = errors.New("interim sample size outside the admissible range")
)
