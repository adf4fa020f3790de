package propensity

import (
	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// bimolecularPropensity implements `k·x1·x2` and `k·x1·x2/V` (spec §4.3).
type bimolecularPropensity struct {
	k, s1, s2 int
}

func (p *bimolecularPropensity) GetPropensity(state, params []float64, _ float64) float64 {
	return params[p.k] * state[p.s1] * state[p.s2]
}
func (p *bimolecularPropensity) GetVolumePropensity(state, params []float64, volume, _ float64) float64 {
	return params[p.k] * state[p.s1] * state[p.s2] / volume
}

var bimolecularKnownKeys = []string{"k", "s1", "s2"}

func bimolecularNames(f attrs.Fields) (species, params []string, err error) {
	k, err := f.RequireString("k")
	if err != nil {
		return nil, nil, malformed("bimolecular", err)
	}
	s1, err := f.RequireString("s1")
	if err != nil {
		return nil, nil, malformed("bimolecular", err)
	}
	s2, err := f.RequireString("s2")
	if err != nil {
		return nil, nil, malformed("bimolecular", err)
	}
	return []string{s1, s2}, []string{k}, nil
}

func bindBimolecular(f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Propensity, error) {
	attrs.WarnUnknownKeys(logger, f, bimolecularKnownKeys, "propensity:bimolecular")
	kName, err := f.RequireString("k")
	if err != nil {
		return nil, malformed("bimolecular", err)
	}
	s1Name, err := f.RequireString("s1")
	if err != nil {
		return nil, malformed("bimolecular", err)
	}
	s2Name, err := f.RequireString("s2")
	if err != nil {
		return nil, malformed("bimolecular", err)
	}
	kIdx, ok := paramIndex(kName)
	if !ok {
		return nil, unboundName("bimolecular", "parameter", kName)
	}
	s1Idx, ok := speciesIndex(s1Name)
	if !ok {
		return nil, unboundName("bimolecular", "species", s1Name)
	}
	s2Idx, ok := speciesIndex(s2Name)
	if !ok {
		return nil, unboundName("bimolecular", "species", s2Name)
	}
	return &bimolecularPropensity{k: kIdx, s1: s1Idx, s2: s2Idx}, nil
}
