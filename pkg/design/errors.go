package design

import "errors"

// Sentinel errors for the design package. Using sentinels instead of ad-hoc
// fmt.Errorf allows callers to match with errors.Is for reliable error
// handling.
var (
	// ErrEmpty is returned when a design has no stage-one outcomes at all.
	ErrEmpty = errors.New("design needs at least one stage-one outcome")

	// ErrLengthMismatch is returned when sample sizes and critical values
	// differ in length.
	ErrLengthMismatch = errors.New("sample sizes and critical values differ in length")

	// ErrStageTwoNegative is returned when a total sample size falls below
	// the stage-one responses it is conditioned on.
	ErrStageTwoNegative = errors.New("total sample size below stage-one responses")

	// ErrOutOfRange is returned when an outcome lies outside the design's
	// sample space.
	ErrOutOfRange = errors.New("outcome outside the design's sample space")

	// ErrProbability is returned when a response probability is outside [0, 1].
	ErrProbability = errors.New("response probability outside [0, 1]")

	// ErrSimSize is returned when a simulation is requested with a
	// non-positive replicate count.
	ErrSimSize = errors.New("simulation size must be positive")

	// ErrRowCoverage is returned when solver rows do not cover x1 = 0..n1
	// exactly once.
	ErrRowCoverage = errors.New("rows must cover x1 = 0..n1 exactly once")

	// ErrCriticalValueSyntax is returned when a serialized critical value is
	// neither a number nor one of the sentinel strings.
	ErrCriticalValueSyntax = errors.New(`critical value must be a number, "always", or "never"`)
)
