package design

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestSimulateValidation(t *testing.T) {
	d := scenario(t)
	if _, err := d.Simulate(1.5, 100, 1); !errors.Is(err, ErrProbability) {
		t.Errorf("bad p error = %v, want ErrProbability", err)
	}
	if _, err := d.Simulate(0.3, 0, 1); !errors.Is(err, ErrSimSize) {
		t.Errorf("nsim=0 error = %v, want ErrSimSize", err)
	}
}

func TestSimulateReplicatesAreConsistent(t *testing.T) {
	d := scenario(t)
	sim, err := d.Simulate(0.4, 5000, 42)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(sim.Trials) != 5000 {
		t.Fatalf("got %d trials, want 5000", len(sim.Trials))
	}
	n1 := d.InterimSampleSize()
	for i, tr := range sim.Trials {
		n, _ := d.SampleSize(tr.X1)
		c, _ := d.CriticalValue(tr.X1)
		if tr.N != n || tr.C != c {
			t.Fatalf("trial %d recorded (n=%d, c=%v), design has (%d, %v)", i, tr.N, tr.C, n, c)
		}
		if tr.X1 < 0 || tr.X1 > n1 || tr.X2 < 0 || tr.X2 > tr.N-n1 {
			t.Fatalf("trial %d outcome (%d, %d) infeasible", i, tr.X1, tr.X2)
		}
		want, err := d.Test(tr.X1, tr.X2)
		if err != nil {
			t.Fatalf("Test: %v", err)
		}
		if tr.Reject != want {
			t.Fatalf("trial %d recorded reject=%v, rule says %v", i, tr.Reject, want)
		}
	}
}

func TestSimulateReproducible(t *testing.T) {
	d := scenario(t)
	a, err := d.Simulate(0.4, 10000, 7)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, err := d.Simulate(0.4, 10000, 7)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !slices.Equal(a.Trials, b.Trials) {
		t.Error("same seed produced different replicates")
	}

	c, err := d.Simulate(0.4, 10000, 8)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if slices.Equal(a.Trials, c.Trials) {
		t.Error("different seeds produced identical replicates")
	}
}

func TestSimulateMatchesPower(t *testing.T) {
	d := scenario(t)
	const nsim = 100000
	for _, p := range []float64{0.3, 0.441} {
		sim, err := d.Simulate(p, nsim, 123)
		if err != nil {
			t.Fatalf("Simulate: %v", err)
		}
		pow, err := d.Power(p)
		if err != nil {
			t.Fatalf("Power: %v", err)
		}
		tol := 4 * math.Sqrt(pow*(1-pow)/nsim)
		if diff := math.Abs(sim.RejectionRate() - pow); diff > tol {
			t.Errorf("p=%v: empirical rate %v vs power %v (diff %v > tol %v)",
				p, sim.RejectionRate(), pow, diff, tol)
		}
	}
}

func TestSimulationSummaries(t *testing.T) {
	d := scenario(t)
	sim, err := d.Simulate(0.441, 20000, 99)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if r := sim.RejectionRate(); r < 0 || r > 1 {
		t.Errorf("rejection rate %v outside [0, 1]", r)
	}
	mean := sim.MeanSampleSize()
	if mean < 16 || mean > 34 {
		t.Errorf("mean sample size %v outside [16, 34]", mean)
	}
	ess, _ := d.ExpectedSampleSize(0.441)
	if math.Abs(mean-ess) > 1 {
		t.Errorf("mean sample size %v far from ESS %v", mean, ess)
	}

	empty := &Simulation{}
	if empty.RejectionRate() != 0 || empty.MeanSampleSize() != 0 {
		t.Error("empty simulation summaries should be 0")
	}
}
