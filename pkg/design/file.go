package design

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a design: parallel n and c sequences indexed by
// x1, with critical-value sentinels spelled "always" and "never".
type File struct {
	N []int           `yaml:"n"`
	C []CriticalValue `yaml:"c"`
}

// Design validates the file contents and builds the design.
func (f File) Design() (*Design, error) {
	return New(f.N, f.C)
}

// FileFor returns the serializable form of d.
func FileFor(d *Design) File {
	return File{N: slices.Clone(d.n), C: slices.Clone(d.c)}
}

// LoadFile reads a design from a YAML file.
func LoadFile(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read design file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse design file: %w", err)
	}
	return f.Design()
}
