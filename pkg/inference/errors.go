package inference

import "errors"

// Sentinel errors for the inference package, matched with errors.Is.
var (
	// ErrNilDesign is returned when an interval is requested without a design.
	ErrNilDesign = errors.New("confidence interval needs a design")

	// ErrConfidence is returned when the confidence level is outside (0, 1).
	ErrConfidence = errors.New("confidence level outside (0, 1)")

	// ErrIncompatibleObservation is returned when an observation cannot be
	// produced by the design the interval is paired with.
	ErrIncompatibleObservation = errors.New("observation not achievable under the design")
)
