package propensity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

func fixedParamIndex(names map[string]int) attrs.ParamIndex {
	return func(name string) (int, bool) { idx, ok := names[name]; return idx, ok }
}
func fixedSpeciesIndex(names map[string]int) attrs.SpeciesIndex {
	return func(name string) (int, bool) { idx, ok := names[name]; return idx, ok }
}

func TestConstitutive_Scenario1(t *testing.T) {
	// spec.md §8 scenario 1: reaction --X with k=2.0, propensity 2.0 always;
	// volume-aware propensity at V=3 is 6.0.
	params := fixedParamIndex(map[string]int{"k": 0})
	p, err := Bind(Constitutive, attrs.Fields{"k": "k"}, nil, params, nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	paramVec := []float64{2.0}
	assert.Equal(t, 2.0, p.GetPropensity(nil, paramVec, 0))
	assert.Equal(t, 6.0, p.GetVolumePropensity(nil, paramVec, 3, 0))
}

func TestHillPositive_Scenario3(t *testing.T) {
	// spec.md §8 scenario 3: k=10, K=5, n=2, x=5 -> propensity 5.0.
	species := fixedSpeciesIndex(map[string]int{"x": 0})
	params := fixedParamIndex(map[string]int{"k": 0, "K": 1, "n": 2})
	p, err := Bind(HillPositive, attrs.Fields{"k": "k", "K": "K", "n": "n", "s1": "x"}, species, params, nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	paramVec := []float64{10, 5, 2}
	assert.InDelta(t, 5.0, p.GetPropensity([]float64{5}, paramVec, 0), 1e-9)
	assert.Equal(t, 0.0, p.GetPropensity([]float64{0}, paramVec, 0))

	large := p.GetPropensity([]float64{1e9}, paramVec, 0)
	assert.InDelta(t, 10.0, large, 1e-3)
}

func TestBimolecular_VolumeInvariant(t *testing.T) {
	species := fixedSpeciesIndex(map[string]int{"x1": 0, "x2": 1})
	params := fixedParamIndex(map[string]int{"k": 0})
	p, err := Bind(Bimolecular, attrs.Fields{"k": "k", "s1": "x1", "s2": "x2"}, species, params, nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	state := []float64{4, 6}
	paramVec := []float64{1.5}
	nonVol := p.GetPropensity(state, paramVec, 0)
	vol := p.GetVolumePropensity(state, paramVec, 2.0, 0)
	assert.InDelta(t, nonVol/2.0, vol, 1e-9)
}

func TestMassAction_VolumeInvariant(t *testing.T) {
	species := fixedSpeciesIndex(map[string]int{"a": 0, "b": 1, "c": 2})
	params := fixedParamIndex(map[string]int{"k": 0})
	p, err := Bind(MassAction, attrs.Fields{"k": "k", "species": "a*b*c"}, species, params, nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	state := []float64{2, 3, 4}
	paramVec := []float64{0.5}
	nonVol := p.GetPropensity(state, paramVec, 0)
	vol := p.GetVolumePropensity(state, paramVec, 5.0, 0)
	n := 3
	assert.InDelta(t, nonVol, vol*math.Pow(5.0, float64(n-1)), 1e-9)
}

func TestMassAction_InvalidStoichiometry(t *testing.T) {
	_, _, err := GetSpeciesAndParameters(MassAction, attrs.Fields{"k": "k", "species": "a+b"})
	var stoErr *ErrInvalidStoichiometry
	if err == nil {
		t.Fatal("expected an invalid-stoichiometry error")
	}
	if e, ok := err.(*ErrInvalidStoichiometry); ok {
		stoErr = e
	}
	if stoErr == nil {
		t.Fatalf("expected *ErrInvalidStoichiometry, got %T", err)
	}
}

func TestBind_MissingRequiredKey(t *testing.T) {
	_, err := Bind(Constitutive, attrs.Fields{}, nil, fixedParamIndex(nil), nil)
	if err == nil {
		t.Fatal("expected an error for missing required key")
	}
}

func TestGetSpeciesAndParameters_UnknownKind(t *testing.T) {
	_, _, err := GetSpeciesAndParameters(Kind("no-such-kind"), attrs.Fields{})
	if err == nil {
		t.Fatal("expected ErrUnknownKind")
	}
}

func TestAllPropensitiesNonNegative(t *testing.T) {
	// Invariant from spec.md §8: propensities are non-negative for
	// non-negative state/params.
	species := fixedSpeciesIndex(map[string]int{"x": 0, "y": 1, "d": 2})
	params := fixedParamIndex(map[string]int{"k": 0, "K": 1, "n": 2})
	cases := []struct {
		kind Kind
		f    attrs.Fields
	}{
		{Constitutive, attrs.Fields{"k": "k"}},
		{Unimolecular, attrs.Fields{"k": "k", "s1": "x"}},
		{Bimolecular, attrs.Fields{"k": "k", "s1": "x", "s2": "y"}},
		{HillPositive, attrs.Fields{"k": "k", "K": "K", "n": "n", "s1": "x"}},
		{HillNegative, attrs.Fields{"k": "k", "K": "K", "n": "n", "s1": "x"}},
		{ProportionalHillPositive, attrs.Fields{"k": "k", "K": "K", "n": "n", "s1": "x", "d": "d"}},
		{ProportionalHillNegative, attrs.Fields{"k": "k", "K": "K", "n": "n", "s1": "x", "d": "d"}},
	}
	state := []float64{3, 5, 2}
	paramVec := []float64{2, 4, 2}
	for _, tc := range cases {
		p, err := Bind(tc.kind, tc.f, species, params, nil)
		if err != nil {
			t.Fatalf("%s: bind failed: %v", tc.kind, err)
		}
		if v := p.GetPropensity(state, paramVec, 0); v < 0 {
			t.Errorf("%s: GetPropensity = %v, want >= 0", tc.kind, v)
		}
		if v := p.GetVolumePropensity(state, paramVec, 1.5, 0); v < 0 {
			t.Errorf("%s: GetVolumePropensity = %v, want >= 0", tc.kind, v)
		}
	}
}
