package design

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// cvKind tags the CriticalValue variant.
type cvKind uint8

const (
	cvFinite cvKind = iota
	cvAlways
	cvNever
)

// CriticalValue is the decision threshold attached to one interim outcome.
// Besides a finite threshold it has two sentinel states: always reject (the
// trial stops for efficacy at this x1) and never reject (it stops for
// futility). The sentinels are tagged states rather than IEEE infinities, so
// every comparison stays exact.
type CriticalValue struct {
	kind cvKind
	val  float64
}

// Sentinel critical values. CriticalValue is comparable, so callers match
// these with ==.
var (
	// AlwaysReject marks an interim outcome at which the null is rejected
	// regardless of stage two.
	AlwaysReject = CriticalValue{kind: cvAlways}

	// NeverReject marks an interim outcome at which the null can never be
	// rejected.
	NeverReject = CriticalValue{kind: cvNever}
)

// Finite returns the critical value v: reject iff x1 + x2 > v.
func Finite(v float64) CriticalValue {
	return CriticalValue{kind: cvFinite, val: v}
}

// IsFinite reports whether c carries a finite threshold.
func (c CriticalValue) IsFinite() bool { return c.kind == cvFinite }

// Value returns the finite threshold and true, or 0 and false for a sentinel.
func (c CriticalValue) Value() (float64, bool) {
	if c.kind != cvFinite {
		return 0, false
	}
	return c.val, true
}

// RejectsSum reports whether the response total x = x1 + x2 rejects the null
// under this threshold.
func (c CriticalValue) RejectsSum(x int) bool {
	switch c.kind {
	case cvAlways:
		return true
	case cvNever:
		return false
	default:
		return float64(x) > c.val
	}
}

func (c CriticalValue) String() string {
	switch c.kind {
	case cvAlways:
		return "always"
	case cvNever:
		return "never"
	default:
		return strconv.FormatFloat(c.val, 'g', -1, 64)
	}
}

// MarshalYAML encodes sentinels as the strings "always" and "never" and
// finite thresholds as numbers.
func (c CriticalValue) MarshalYAML() (interface{}, error) {
	if c.kind == cvFinite {
		return c.val, nil
	}
	return c.String(), nil
}

// UnmarshalYAML accepts the encoding produced by MarshalYAML.
func (c *CriticalValue) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		switch s {
		case "always":
			*c = AlwaysReject
			return nil
		case "never":
			*c = NeverReject
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*c = Finite(v)
			return nil
		}
		return fmt.Errorf("%w: %q", ErrCriticalValueSyntax, s)
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("%w: %s", ErrCriticalValueSyntax, node.Value)
	}
	*c = Finite(v)
	return nil
}
