// Package inference derives exact confidence statements from a completed
// two-stage trial. Outcomes are ranked through a pluggable total ordering;
// the canonical ordering by the plain response total is built in, and
// design-compatible orderings can be supplied without touching the interval
// algorithm.
package inference

// Ordering ranks complete outcomes (x1, x2): higher ranks mean stronger
// evidence against the null. Implementations must be deterministic.
type Ordering interface {
	Rank(x1, x2 int) float64
}

// OrderFunc adapts a plain function to the Ordering interface.
type OrderFunc func(x1, x2 int) float64

// Rank calls f.
func (f OrderFunc) Rank(x1, x2 int) float64 { return f(x1, x2) }

// SumOrdering ranks outcomes by the response total x1 + x2. It is the
// default: simple and monotone, but blind to the design's rejection
// geometry, so intervals built on it are not guaranteed consistent with the
// design's decision rule.
func SumOrdering() Ordering {
	return OrderFunc(func(x1, x2 int) float64 { return float64(x1 + x2) })
}
