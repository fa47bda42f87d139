package samplespace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params are the tunable constraints of a SampleSpace beyond the interim
// range and the global cap. A zero MaxNFact means "default to
// nmax / min(n1range)" at construction time.
type Params struct {
	// N2Min is the minimum stage-two size whenever the trial continues.
	N2Min int `yaml:"n2min"`

	// MaxNFact caps the overall size at MaxNFact * n1.
	MaxNFact float64 `yaml:"maxnfact"`

	// NMinCont is the minimum total size whenever the trial does not stop
	// for futility.
	NMinCont int `yaml:"nmincont"`

	// MaxVariables softly caps the discretized candidate-set size handed to
	// the solver. Must be at least 100.
	MaxVariables int `yaml:"maxvariables"`

	// GroupSequential marks the space as restricted to group-sequential
	// rules (constant n over the continuation region).
	GroupSequential bool `yaml:"group_sequential"`

	// SpecialN and SpecialC are caller-registered values that discretization
	// must retain even when it thins the candidate lattice.
	SpecialN []int     `yaml:"special_n"`
	SpecialC []float64 `yaml:"special_c"`
}

// DefaultParams returns the default constraint parameters.
func DefaultParams() Params {
	return Params{
		N2Min:        1,
		NMinCont:     1,
		MaxVariables: 100000,
	}
}

// LoadParams reads Params from a YAML file; omitted fields keep their
// defaults.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read params file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params file: %w", err)
	}
	return p, nil
}
