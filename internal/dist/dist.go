// Package dist wraps the distribution primitives the library consumes:
// binomial pmf/cdf, Beta quantiles, binomial variates, and exact binomial
// coefficients.
package dist

import (
	"math"
	"math/big"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// maxInt64Binom is the largest n for which the multiplicative int64
// evaluation of C(n, k) stays within int64 at every intermediate step.
const maxInt64Binom = 61

// Binom returns the exact binomial coefficient C(n, k) as a float64.
// The tier is selected by a checked bound on n, not by overflow recovery:
// through n = 61 the coefficient is evaluated in int64, beyond that the
// evaluation switches to math/big so no intermediate ever overflows.
// k outside [0, n] yields 0.
func Binom(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if n <= maxInt64Binom {
		return float64(binomInt64(n, k))
	}
	var z big.Int
	z.Binomial(int64(n), int64(k))
	f, _ := new(big.Float).SetInt(&z).Float64()
	return f
}

// binomInt64 evaluates C(n, k) by the multiplicative formula. At step i the
// accumulator holds C(n-k+i, i) exactly, so the worst intermediate is
// C(n-1, k-1)*n; that fits in int64 through n = maxInt64Binom.
func binomInt64(n, k int) int64 {
	if k > n-k {
		k = n - k
	}
	r := int64(1)
	for i := 1; i <= k; i++ {
		r = r * int64(n-k+i) / int64(i)
	}
	return r
}

// BinomialPMF returns P(X = k) for X ~ Binomial(n, p). Degenerate p is
// handled here because the log-space evaluation underneath yields NaN at the
// boundary.
func BinomialPMF(n int, p float64, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if p <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if p >= 1 {
		if k == n {
			return 1
		}
		return 0
	}
	if n == 0 {
		return 1
	}
	return distuv.Binomial{N: float64(n), P: p}.Prob(float64(k))
}

// BinomialCDF returns P(X <= floor(k)) for X ~ Binomial(n, p).
func BinomialCDF(n int, p float64, k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if k >= float64(n) {
		return 1
	}
	return distuv.Binomial{N: float64(n), P: p}.CDF(k)
}

// BetaQuantile returns the q-quantile of the Beta(alpha, beta) distribution.
func BetaQuantile(alpha, beta, q float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta}.Quantile(q)
}

// BinomialRand draws one variate from Binomial(n, p) using src. Degenerate
// parameters short-circuit so callers can pass empty second stages.
func BinomialRand(n int, p float64, src rand.Source) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	return int(distuv.Binomial{N: float64(n), P: p, Src: src}.Rand())
}
