package propensity

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// hillPropensity implements HillPositive/HillNegative (spec §4.3):
//
//	positive: k · (x/K)^n / (1+(x/K)^n)
//	negative: k / (1+(x/K)^n)
//
// Volume-aware evaluation substitutes x <- x/V before computing the ratio.
type hillPropensity struct {
	k, K, n, s1 int
	negative    bool
}

func hillRatio(x, k, n float64) float64 {
	return math.Pow(x/k, n)
}

func (p *hillPropensity) GetPropensity(state, params []float64, _ float64) float64 {
	ratio := hillRatio(state[p.s1], params[p.K], params[p.n])
	if p.negative {
		return params[p.k] / (1 + ratio)
	}
	return params[p.k] * ratio / (1 + ratio)
}

func (p *hillPropensity) GetVolumePropensity(state, params []float64, volume, _ float64) float64 {
	x := state[p.s1] / volume
	ratio := hillRatio(x, params[p.K], params[p.n])
	if p.negative {
		return params[p.k] / (1 + ratio)
	}
	return params[p.k] * ratio / (1 + ratio)
}

var hillKnownKeys = []string{"k", "K", "n", "s1"}

func hillNames(f attrs.Fields) (species, params []string, err error) {
	k, err := f.RequireString("k")
	if err != nil {
		return nil, nil, malformed("hill", err)
	}
	K, err := f.RequireString("K")
	if err != nil {
		return nil, nil, malformed("hill", err)
	}
	n, err := f.RequireString("n")
	if err != nil {
		return nil, nil, malformed("hill", err)
	}
	s1, err := f.RequireString("s1")
	if err != nil {
		return nil, nil, malformed("hill", err)
	}
	return []string{s1}, []string{k, K, n}, nil
}

func bindHill(f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger, negative bool) (Propensity, error) {
	attrs.WarnUnknownKeys(logger, f, hillKnownKeys, "propensity:hill")
	names := map[string]string{}
	for _, key := range []string{"k", "K", "n", "s1"} {
		v, err := f.RequireString(key)
		if err != nil {
			return nil, malformed("hill", err)
		}
		names[key] = v
	}
	kIdx, ok := paramIndex(names["k"])
	if !ok {
		return nil, unboundName("hill", "parameter", names["k"])
	}
	KIdx, ok := paramIndex(names["K"])
	if !ok {
		return nil, unboundName("hill", "parameter", names["K"])
	}
	nIdx, ok := paramIndex(names["n"])
	if !ok {
		return nil, unboundName("hill", "parameter", names["n"])
	}
	s1Idx, ok := speciesIndex(names["s1"])
	if !ok {
		return nil, unboundName("hill", "species", names["s1"])
	}
	return &hillPropensity{k: kIdx, K: KIdx, n: nIdx, s1: s1Idx, negative: negative}, nil
}
