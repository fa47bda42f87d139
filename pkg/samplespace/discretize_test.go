package samplespace

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNValuesWithoutThinning(t *testing.T) {
	s, err := New(interimRange(10, 20), 60, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vals, notice, err := s.NValues(16)
	if err != nil {
		t.Fatalf("NValues: %v", err)
	}
	if notice.Thinned {
		t.Errorf("unexpected thinning: %+v", notice)
	}
	// Every integer in [16, 60] survives.
	want := interimRange(16, 60)
	if !slices.Equal(vals, want) {
		t.Errorf("NValues(16) = %v, want all of [16, 60]", vals)
	}
	if notice.Kept != len(vals) {
		t.Errorf("notice.Kept = %d, len = %d", notice.Kept, len(vals))
	}
}

func thinnedSpace(t *testing.T) *SampleSpace {
	t.Helper()
	params := Params{
		N2Min:        1,
		NMinCont:     1,
		MaxVariables: 100, // the hard floor, to force heavy thinning
		SpecialN:     []int{42, 400},
		SpecialC:     []float64{32.5, 400},
	}
	s, err := New([]int{16}, 100, &params)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNValuesThinningRetainsMandatoryValues(t *testing.T) {
	s := thinnedSpace(t)
	vals, notice, err := s.NValues(16)
	if err != nil {
		t.Fatalf("NValues: %v", err)
	}
	if !notice.Thinned {
		t.Fatalf("expected thinning, notice = %+v", notice)
	}
	// width 84, sqrt(100/16) = 2.5, so the stride is ceil(84/2.5) = 34.
	if notice.Stride != 34 {
		t.Errorf("stride = %d, want 34", notice.Stride)
	}
	// n1, n1+n2min, n1+nmincont, the cap, and the in-range special value
	// must all survive; the out-of-range special (400) must not appear.
	for _, want := range []int{16, 17, 100, 42} {
		if !slices.Contains(vals, want) {
			t.Errorf("NValues missing mandatory value %d: %v", want, vals)
		}
	}
	if slices.Contains(vals, 400) {
		t.Errorf("NValues kept out-of-range special: %v", vals)
	}
	if !slices.IsSorted(vals) {
		t.Errorf("NValues not ascending: %v", vals)
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] == vals[i-1] {
			t.Fatalf("NValues has duplicate %d", vals[i])
		}
	}
	if len(vals) >= notice.Span {
		t.Errorf("thinning kept %d of %d values", len(vals), notice.Span)
	}
}

func TestNValuesMandatorySeparateMinimums(t *testing.T) {
	params := Params{N2Min: 5, NMinCont: 12, MaxVariables: 100}
	s, err := New([]int{16}, 100, &params)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vals, _, err := s.NValues(16)
	if err != nil {
		t.Fatalf("NValues: %v", err)
	}
	for _, want := range []int{16, 16 + 5, 16 + 12, 100} {
		if !slices.Contains(vals, want) {
			t.Errorf("NValues missing %d: %v", want, vals)
		}
	}
}

func TestCValuesThinningRetainsSpecials(t *testing.T) {
	s := thinnedSpace(t)
	vals, notice, err := s.CValues(16)
	if err != nil {
		t.Fatalf("CValues: %v", err)
	}
	if !notice.Thinned {
		t.Fatalf("expected thinning, notice = %+v", notice)
	}
	for _, want := range []float64{0, 32.5, 99} {
		if !slices.Contains(vals, want) {
			t.Errorf("CValues missing %v: %v", want, vals)
		}
	}
	if slices.Contains(vals, 400) {
		t.Errorf("CValues kept out-of-range special: %v", vals)
	}
	if !slices.IsSorted(vals) {
		t.Errorf("CValues not ascending: %v", vals)
	}
	for _, v := range vals {
		if v < 0 || v > 99 {
			t.Errorf("candidate %v outside [0, 99]", v)
		}
	}
}

func TestCValuesWithoutThinning(t *testing.T) {
	s, err := New(interimRange(10, 20), 60, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vals, notice, err := s.CValues(10)
	if err != nil {
		t.Fatalf("CValues: %v", err)
	}
	if notice.Thinned {
		t.Errorf("unexpected thinning: %+v", notice)
	}
	if vals[0] != 0 || vals[len(vals)-1] != 59 {
		t.Errorf("CValues endpoints = %v, %v; want 0, 59", vals[0], vals[len(vals)-1])
	}
	if len(vals) != 60 {
		t.Errorf("len(CValues) = %d, want 60", len(vals))
	}
}

func TestDiscretizationOutOfRange(t *testing.T) {
	s, err := New(interimRange(10, 20), 60, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, err := s.NValues(9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NValues(9) error = %v, want ErrOutOfRange", err)
	}
	if _, _, err := s.CValues(21); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("CValues(21) error = %v, want ErrOutOfRange", err)
	}
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "space.yaml")
	doc := "n2min: 3\nnmincont: 8\nspecial_n: [33]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if p.N2Min != 3 || p.NMinCont != 8 {
		t.Errorf("minimums = (%d, %d), want (3, 8)", p.N2Min, p.NMinCont)
	}
	if !slices.Equal(p.SpecialN, []int{33}) {
		t.Errorf("SpecialN = %v", p.SpecialN)
	}
	// Omitted fields keep their defaults.
	if p.MaxVariables != DefaultParams().MaxVariables {
		t.Errorf("MaxVariables = %d, want default", p.MaxVariables)
	}
}

func TestLoadParamsMissingFile(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
