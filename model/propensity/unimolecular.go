package propensity

import (
	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// unimolecularPropensity implements `k·x` for both non-volume and
// volume-aware forms (spec §4.3 table: unchanged by volume).
type unimolecularPropensity struct {
	k  int
	s1 int
}

func (p *unimolecularPropensity) GetPropensity(state, params []float64, _ float64) float64 {
	return params[p.k] * state[p.s1]
}
func (p *unimolecularPropensity) GetVolumePropensity(state, params []float64, _, _ float64) float64 {
	return params[p.k] * state[p.s1]
}

var unimolecularKnownKeys = []string{"k", "s1"}

func unimolecularNames(f attrs.Fields) (species, params []string, err error) {
	k, err := f.RequireString("k")
	if err != nil {
		return nil, nil, malformed("unimolecular", err)
	}
	s1, err := f.RequireString("s1")
	if err != nil {
		return nil, nil, malformed("unimolecular", err)
	}
	return []string{s1}, []string{k}, nil
}

func bindUnimolecular(f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Propensity, error) {
	attrs.WarnUnknownKeys(logger, f, unimolecularKnownKeys, "propensity:unimolecular")
	kName, err := f.RequireString("k")
	if err != nil {
		return nil, malformed("unimolecular", err)
	}
	s1Name, err := f.RequireString("s1")
	if err != nil {
		return nil, malformed("unimolecular", err)
	}
	kIdx, ok := paramIndex(kName)
	if !ok {
		return nil, unboundName("unimolecular", "parameter", kName)
	}
	s1Idx, ok := speciesIndex(s1Name)
	if !ok {
		return nil, unboundName("unimolecular", "species", s1Name)
	}
	return &unimolecularPropensity{k: kIdx, s1: s1Idx}, nil
}
