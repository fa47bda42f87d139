// Package samplespace bounds the candidate set an external design-search
// solver explores. A SampleSpace records the admissible interim sizes and
// size caps of a trial, answers feasibility queries per (n1, n, c) triple,
// and discretizes the n and c candidate lattices so the solver's model stays
// tractable. Values the constraints mandate survive discretization even when
// the lattice is thinned.
package samplespace

import (
	"fmt"
	"math"
	"slices"

	"github.com/boshu2/twostage/pkg/design"
)

// SampleSpace is immutable after construction and safe for concurrent
// readers; the solver typically queries it once per candidate n1.
type SampleSpace struct {
	n1range []int // sorted ascending, deduplicated
	nmax    int
	params  Params
}

// New builds a sample space over the admissible interim sizes n1range with
// global size cap nmax. A nil params uses DefaultParams; a zero MaxNFact
// defaults to nmax / min(n1range).
func New(n1range []int, nmax int, params *Params) (*SampleSpace, error) {
	p := DefaultParams()
	if params != nil {
		p = *params
	}
	if len(n1range) == 0 {
		return nil, ErrEmptyInterimRange
	}
	r := slices.Clone(n1range)
	slices.Sort(r)
	r = slices.Compact(r)
	if r[0] < 1 {
		return nil, fmt.Errorf("%w: min(n1range) = %d", ErrInterimRange, r[0])
	}
	if r[len(r)-1] > nmax {
		return nil, fmt.Errorf("%w: max(n1range) = %d exceeds nmax = %d", ErrInterimRange, r[len(r)-1], nmax)
	}
	if p.MaxVariables < 100 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxVariables, p.MaxVariables)
	}
	if p.MaxNFact <= 0 {
		p.MaxNFact = float64(nmax) / float64(r[0])
	}
	p.SpecialN = slices.Clone(p.SpecialN)
	p.SpecialC = slices.Clone(p.SpecialC)
	return &SampleSpace{n1range: r, nmax: nmax, params: p}, nil
}

// InterimSampleSizeRange returns the admissible interim sizes, ascending.
func (s *SampleSpace) InterimSampleSizeRange() []int {
	return slices.Clone(s.n1range)
}

// NMax returns the global cap on the overall sample size.
func (s *SampleSpace) NMax() int { return s.nmax }

// IsGroupSequential reports whether the space is restricted to
// group-sequential rules.
func (s *SampleSpace) IsGroupSequential() bool { return s.params.GroupSequential }

// Possible reports whether n1 is an admissible interim size.
func (s *SampleSpace) Possible(n1 int) bool {
	_, ok := slices.BinarySearch(s.n1range, n1)
	return ok
}

// MaxSampleSize returns the overall size cap for one interim size:
// min(nmax, floor(n1 * maxnfact)).
func (s *SampleSpace) MaxSampleSize(n1 int) int {
	byFact := int(math.Floor(float64(n1) * s.params.MaxNFact))
	return min(s.nmax, byFact)
}

// Feasible reports whether the solver may assign the (n, c) pair to interim
// size n1. A region below nmincont is admissible only when it can never
// reject (pure futility continuation); the sole other exemption from the
// stage-two minimum is stopping for efficacy at the interim itself:
// c = AlwaysReject with n == n1 >= nmincont.
func (s *SampleSpace) Feasible(n1, n int, c design.CriticalValue) bool {
	if !s.Possible(n1) || n > s.nmax || n < n1 {
		return false
	}
	if float64(n) > s.params.MaxNFact*float64(n1) {
		return false
	}
	earlyEfficacy := c == design.AlwaysReject && n == n1 && n1 >= s.params.NMinCont
	if n-n1 < s.params.N2Min && c != design.NeverReject && !earlyEfficacy {
		return false
	}
	if n < s.params.NMinCont && c != design.NeverReject {
		return false
	}
	return true
}
