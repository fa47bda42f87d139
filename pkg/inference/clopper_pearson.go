package inference

import (
	"fmt"
	"math"

	"github.com/boshu2/twostage/internal/dist"
	"github.com/boshu2/twostage/pkg/design"
)

// ClopperPearson maps observed outcomes of a two-stage design to exact
// binomial confidence limits at a fixed confidence level. It is stateless
// beyond its construction arguments and safe for concurrent use.
type ClopperPearson struct {
	d          *design.Design
	confidence float64
	ord        Ordering
}

// Option configures a ClopperPearson interval.
type Option func(*ClopperPearson)

// WithOrdering replaces the default sum ordering.
func WithOrdering(ord Ordering) Option {
	return func(cp *ClopperPearson) { cp.ord = ord }
}

// New pairs a design with a confidence level in (0, 1).
func New(d *design.Design, confidence float64, opts ...Option) (*ClopperPearson, error) {
	if d == nil {
		return nil, ErrNilDesign
	}
	if math.IsNaN(confidence) || confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrConfidence, confidence)
	}
	cp := &ClopperPearson{d: d, confidence: confidence, ord: SumOrdering()}
	for _, o := range opts {
		o(cp)
	}
	return cp, nil
}

// Limits returns the exact confidence limits for the observation (x1, x2).
// The ordering's rank is treated as an effective binomial count out of
// n(x1) trials; under the default sum ordering this is the textbook
// Clopper-Pearson interval on x1 + x2, with the closed-form endpoints at
// counts 0 and n:
//
//	x == 0: [0, 1 - (alpha/2)^(1/n)]
//	x == n: [(alpha/2)^(1/n), 1]
//
// and Beta quantiles in between.
func (cp *ClopperPearson) Limits(x1, x2 int) (lower, upper float64, err error) {
	n1 := cp.d.InterimSampleSize()
	if x1 < 0 || x1 > n1 {
		return 0, 0, fmt.Errorf("%w: x1 = %d", ErrIncompatibleObservation, x1)
	}
	n, err := cp.d.SampleSize(x1)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x1 = %d", ErrIncompatibleObservation, x1)
	}
	if x2 < 0 || x2 > n-n1 {
		return 0, 0, fmt.Errorf("%w: x2 = %d with stage-two size %d", ErrIncompatibleObservation, x2, n-n1)
	}

	alpha := 1 - cp.confidence
	x := cp.ord.Rank(x1, x2)
	nf := float64(n)
	switch {
	case x <= 0:
		return 0, 1 - math.Pow(alpha/2, 1/nf), nil
	case x >= nf:
		return math.Pow(alpha/2, 1/nf), 1, nil
	default:
		lower = dist.BetaQuantile(x, nf-x+1, alpha/2)
		upper = dist.BetaQuantile(x+1, nf-x, 1-alpha/2)
		return lower, upper, nil
	}
}

// Confidence returns the confidence level the interval was built with.
func (cp *ClopperPearson) Confidence() float64 { return cp.confidence }
