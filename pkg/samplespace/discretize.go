package samplespace

import (
	"fmt"
	"math"
	"slices"
)

// ThinningNotice reports whether a candidate set was subsampled and how.
// It is a returned value rather than a log line so callers (and tests) can
// inspect it deterministically; thinning is never an error.
type ThinningNotice struct {
	// Thinned is true when the stride dropped candidates.
	Thinned bool
	// Stride is the subsampling step (1 when no thinning occurred).
	Stride int
	// Span is the width of the un-thinned candidate range.
	Span int
	// Kept is the number of candidates returned, after mandatory
	// re-insertion.
	Kept int
}

// stride picks the subsampling step for a candidate range of the given
// width so the candidate count approximately respects MaxVariables. A ratio
// at or below 1 keeps every integer.
func (s *SampleSpace) stride(n1, width int) int {
	ratio := float64(width) / math.Sqrt(float64(s.params.MaxVariables)/float64(n1))
	if ratio <= 1 {
		return 1
	}
	return int(math.Ceil(ratio))
}

// thinRange returns lo, lo+stride, ... capped at hi.
func thinRange(lo, hi, stride int) ([]int, ThinningNotice) {
	notice := ThinningNotice{Thinned: stride > 1, Stride: stride, Span: hi - lo + 1}
	var vals []int
	for v := lo; v <= hi; v += stride {
		vals = append(vals, v)
	}
	return vals, notice
}

// NValues returns the discretized candidate overall sample sizes for
// interim size n1, ascending and deduplicated. Regardless of thinning the
// set always retains n1, n1+nmincont, n1+n2min, MaxSampleSize(n1), and every
// registered special n value that lies in range: these are operationally
// mandated and the solver must be able to pick them.
func (s *SampleSpace) NValues(n1 int) ([]int, ThinningNotice, error) {
	if !s.Possible(n1) {
		return nil, ThinningNotice{}, fmt.Errorf("%w: n1 = %d", ErrOutOfRange, n1)
	}
	lo, hi := n1, s.MaxSampleSize(n1)
	vals, notice := thinRange(lo, hi, s.stride(n1, hi-lo))

	mandatory := []int{n1, n1 + s.params.NMinCont, n1 + s.params.N2Min, hi}
	mandatory = append(mandatory, s.params.SpecialN...)
	for _, m := range mandatory {
		if m >= lo && m <= hi {
			vals = append(vals, m)
		}
	}

	slices.Sort(vals)
	vals = slices.Compact(vals)
	notice.Kept = len(vals)
	return vals, notice, nil
}

// CValues returns the discretized candidate finite critical values for
// interim size n1, over [0, MaxSampleSize(n1)-1] with its own stride. The
// range endpoints and every in-range registered special c value survive
// thinning.
func (s *SampleSpace) CValues(n1 int) ([]float64, ThinningNotice, error) {
	if !s.Possible(n1) {
		return nil, ThinningNotice{}, fmt.Errorf("%w: n1 = %d", ErrOutOfRange, n1)
	}
	hi := s.MaxSampleSize(n1) - 1
	ivals, notice := thinRange(0, hi, s.stride(n1, hi))

	vals := make([]float64, 0, len(ivals)+len(s.params.SpecialC)+2)
	for _, v := range ivals {
		vals = append(vals, float64(v))
	}
	vals = append(vals, 0, float64(hi))
	for _, c := range s.params.SpecialC {
		if c >= 0 && c <= float64(hi) {
			vals = append(vals, c)
		}
	}

	slices.Sort(vals)
	vals = slices.Compact(vals)
	notice.Kept = len(vals)
	return vals, notice, nil
}
