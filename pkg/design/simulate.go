package design

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/boshu2/twostage/internal/dist"
	"github.com/boshu2/twostage/internal/worker"
)

// blockSeedStride separates per-block RNG streams (Weyl increment).
const blockSeedStride = 0x9e3779b97f4a7c15

// Trial is one simulated replicate of the two-stage trial.
type Trial struct {
	X1     int
	N      int
	C      CriticalValue
	X2     int
	Reject bool
}

// Simulation holds the replicates drawn by one Simulate call.
type Simulation struct {
	Trials []Trial
}

// RejectionRate returns the fraction of replicates that rejected the null.
func (s *Simulation) RejectionRate() float64 {
	if len(s.Trials) == 0 {
		return 0
	}
	rejected := 0
	for _, tr := range s.Trials {
		if tr.Reject {
			rejected++
		}
	}
	return float64(rejected) / float64(len(s.Trials))
}

// MeanSampleSize returns the average total sample size across replicates.
func (s *Simulation) MeanSampleSize() float64 {
	if len(s.Trials) == 0 {
		return 0
	}
	sum := 0
	for _, tr := range s.Trials {
		sum += tr.N
	}
	return float64(sum) / float64(len(s.Trials))
}

// Simulate draws nsim independent replicates of the trial at response rate
// p. Each replicate draws x1 ~ Binomial(n1, p), extends to n(x1) subjects,
// draws x2 ~ Binomial(n(x1)-n1, p), and applies the decision rule.
//
// Replicates are partitioned into fixed-size blocks, each with its own RNG
// stream derived from seed, and every block writes only its own output
// slots. The result is therefore bit-reproducible for a given seed no
// matter how many workers run. All validation happens before the parallel
// section.
func (d *Design) Simulate(p float64, nsim int, seed uint64) (*Simulation, error) {
	if err := checkProbability(p); err != nil {
		return nil, err
	}
	if nsim <= 0 {
		return nil, fmt.Errorf("%w: nsim = %d", ErrSimSize, nsim)
	}

	n1 := d.InterimSampleSize()
	trials := make([]Trial, nsim)

	worker.NewPool(0).Run(nsim, func(b worker.Block) {
		src := rand.NewSource(seed + uint64(b.Index)*blockSeedStride)
		for i := b.Lo; i < b.Hi; i++ {
			x1 := dist.BinomialRand(n1, p, src)
			n := d.n[x1]
			x2 := dist.BinomialRand(n-n1, p, src)
			c := d.c[x1]
			trials[i] = Trial{X1: x1, N: n, C: c, X2: x2, Reject: c.RejectsSum(x1 + x2)}
		}
	})

	return &Simulation{Trials: trials}, nil
}
