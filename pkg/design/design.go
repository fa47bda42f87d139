// Package design models two-stage adaptive sampling designs for
// binary-outcome trials. A design assigns every interim response count x1 a
// total sample size n(x1) and a critical value c(x1); the null hypothesis is
// rejected iff x1 + x2 > c(x1). Designs are immutable after construction and
// safe for concurrent readers.
package design

import (
	"fmt"
	"math"
	"slices"
)

// Design is the canonical (n(x1), c(x1)) representation of a two-stage rule.
// Index x1 runs over 0..n1 where n1 = len(n)-1 is the interim sample size.
type Design struct {
	n []int
	c []CriticalValue
}

// New validates and builds a design from per-x1 sample sizes and critical
// values. It requires len(n) == len(c) and n[x1] >= x1 for every x1, so the
// stage-two size can never be negative for an observed response count.
func New(n []int, c []CriticalValue) (*Design, error) {
	if len(n) == 0 {
		return nil, ErrEmpty
	}
	if len(n) != len(c) {
		return nil, fmt.Errorf("%w: %d sample sizes vs %d critical values", ErrLengthMismatch, len(n), len(c))
	}
	for x1, v := range n {
		if v < x1 {
			return nil, fmt.Errorf("%w: n(%d) = %d", ErrStageTwoNegative, x1, v)
		}
	}
	return &Design{n: slices.Clone(n), c: slices.Clone(c)}, nil
}

// InterimSampleSize returns n1, the number of subjects observed in stage one.
func (d *Design) InterimSampleSize() int { return len(d.n) - 1 }

// SampleSize returns the total sample size n(x1).
func (d *Design) SampleSize(x1 int) (int, error) {
	if x1 < 0 || x1 >= len(d.n) {
		return 0, fmt.Errorf("%w: x1 = %d", ErrOutOfRange, x1)
	}
	return d.n[x1], nil
}

// CriticalValue returns the decision threshold c(x1).
func (d *Design) CriticalValue(x1 int) (CriticalValue, error) {
	if x1 < 0 || x1 >= len(d.c) {
		return CriticalValue{}, fmt.Errorf("%w: x1 = %d", ErrOutOfRange, x1)
	}
	return d.c[x1], nil
}

// checkOutcome verifies (x1, x2) lies inside [0, n1] x [0, n(x1)-n1].
func (d *Design) checkOutcome(x1, x2 int) error {
	if x1 < 0 || x1 >= len(d.n) {
		return fmt.Errorf("%w: x1 = %d", ErrOutOfRange, x1)
	}
	if n2 := d.n[x1] - d.InterimSampleSize(); x2 < 0 || x2 > n2 {
		return fmt.Errorf("%w: x2 = %d with stage-two size %d", ErrOutOfRange, x2, d.n[x1]-d.InterimSampleSize())
	}
	return nil
}

func checkProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: p = %g", ErrProbability, p)
	}
	return nil
}
