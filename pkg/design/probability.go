package design

import (
	"fmt"
	"math"

	"github.com/boshu2/twostage/internal/dist"
)

// PDF returns the exact probability of observing x1 stage-one and x2
// stage-two responses at true response rate p:
//
//	C(n1, x1) * C(n-n1, x2) * p^(x1+x2) * (1-p)^(n-x1-x2)
//
// with n = n(x1). Outcomes the design cannot produce have probability zero;
// that is the correct answer, not a failure, so only p outside [0, 1] errors.
// Binomial coefficients that overflow int64 are evaluated exactly in
// arbitrary precision.
func (d *Design) PDF(x1, x2 int, p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	n1 := d.InterimSampleSize()
	if x1 < 0 || x1 > n1 {
		return 0, nil
	}
	n := d.n[x1]
	if x2 < 0 || x2 > n-n1 {
		return 0, nil
	}
	x := x1 + x2
	coef := dist.Binom(n1, x1) * dist.Binom(n-n1, x2)
	return coef * math.Pow(p, float64(x)) * math.Pow(1-p, float64(n-x)), nil
}

// ConditionalPower returns the probability of rejecting the null given x1
// stage-one responses, at true response rate p. The rule is piecewise: 1
// once x1 alone exceeds the threshold, 0 when even x2 = n-n1 cannot reach
// it, and a binomial tail otherwise.
func (d *Design) ConditionalPower(x1 int, p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	n1 := d.InterimSampleSize()
	if x1 < 0 || x1 > n1 {
		return 0, fmt.Errorf("%w: x1 = %d", ErrOutOfRange, x1)
	}
	c := d.c[x1]
	switch c {
	case NeverReject:
		return 0, nil
	case AlwaysReject:
		return 1, nil
	}
	cv := c.val
	n2 := d.n[x1] - n1
	if float64(x1) > cv {
		return 1, nil
	}
	if float64(n2+x1) <= cv {
		return 0, nil
	}
	return 1 - dist.BinomialCDF(n2, p, math.Floor(cv-float64(x1))), nil
}

// Power returns the unconditional rejection probability at response rate p:
// the expectation of ConditionalPower over x1 ~ Binomial(n1, p).
func (d *Design) Power(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	n1 := d.InterimSampleSize()
	sum := 0.0
	for x1 := 0; x1 <= n1; x1++ {
		cp, err := d.ConditionalPower(x1, p)
		if err != nil {
			return 0, err
		}
		sum += dist.BinomialPMF(n1, p, x1) * cp
	}
	return sum, nil
}

// ExpectedSampleSize returns E[n(X1)] at response rate p.
func (d *Design) ExpectedSampleSize(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	n1 := d.InterimSampleSize()
	sum := 0.0
	for x1 := 0; x1 <= n1; x1++ {
		sum += dist.BinomialPMF(n1, p, x1) * float64(d.n[x1])
	}
	return sum, nil
}
