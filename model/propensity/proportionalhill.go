package propensity

import (
	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// proportionalHillPropensity implements ProportionalHillPositive/Negative
// (spec §4.3):
//
//	positive: k · d · (x/K)^n / (1+(x/K)^n)
//	negative: k · d / (1+(x/K)^n)
//
// d is unaffected by the volume rescaling applied to x.
type proportionalHillPropensity struct {
	k, K, n, s1, d int
	negative       bool
}

func (p *proportionalHillPropensity) GetPropensity(state, params []float64, _ float64) float64 {
	ratio := hillRatio(state[p.s1], params[p.K], params[p.n])
	if p.negative {
		return params[p.k] * state[p.d] / (1 + ratio)
	}
	return params[p.k] * state[p.d] * ratio / (1 + ratio)
}

func (p *proportionalHillPropensity) GetVolumePropensity(state, params []float64, volume, _ float64) float64 {
	x := state[p.s1] / volume
	ratio := hillRatio(x, params[p.K], params[p.n])
	if p.negative {
		return params[p.k] * state[p.d] / (1 + ratio)
	}
	return params[p.k] * state[p.d] * ratio / (1 + ratio)
}

var proportionalHillKnownKeys = []string{"k", "K", "n", "s1", "d"}

func proportionalHillNames(f attrs.Fields) (species, params []string, err error) {
	for _, key := range []string{"k", "K", "n", "s1", "d"} {
		if _, err := f.RequireString(key); err != nil {
			return nil, nil, malformed("proportionalhill", err)
		}
	}
	k, _ := f.Get("k")
	K, _ := f.Get("K")
	n, _ := f.Get("n")
	s1, _ := f.Get("s1")
	d, _ := f.Get("d")
	return []string{s1, d}, []string{k, K, n}, nil
}

func bindProportionalHill(f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger, negative bool) (Propensity, error) {
	attrs.WarnUnknownKeys(logger, f, proportionalHillKnownKeys, "propensity:proportionalhill")
	names := map[string]string{}
	for _, key := range []string{"k", "K", "n", "s1", "d"} {
		v, err := f.RequireString(key)
		if err != nil {
			return nil, malformed("proportionalhill", err)
		}
		names[key] = v
	}
	kIdx, ok := paramIndex(names["k"])
	if !ok {
		return nil, unboundName("proportionalhill", "parameter", names["k"])
	}
	KIdx, ok := paramIndex(names["K"])
	if !ok {
		return nil, unboundName("proportionalhill", "parameter", names["K"])
	}
	nIdx, ok := paramIndex(names["n"])
	if !ok {
		return nil, unboundName("proportionalhill", "parameter", names["n"])
	}
	s1Idx, ok := speciesIndex(names["s1"])
	if !ok {
		return nil, unboundName("proportionalhill", "species", names["s1"])
	}
	dIdx, ok := speciesIndex(names["d"])
	if !ok {
		return nil, unboundName("proportionalhill", "species", names["d"])
	}
	return &proportionalHillPropensity{k: kIdx, K: KIdx, n: nIdx, s1: s1Idx, d: dIdx, negative: negative}, nil
}
