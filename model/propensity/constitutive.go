package propensity

import (
	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// constitutivePropensity implements `k` / `k·V` (spec §4.3 table).
type constitutivePropensity struct {
	k int // parameter index
}

func (p *constitutivePropensity) GetPropensity(_, params []float64, _ float64) float64 {
	return params[p.k]
}
func (p *constitutivePropensity) GetVolumePropensity(_, params []float64, volume, _ float64) float64 {
	return params[p.k] * volume
}

var constitutiveKnownKeys = []string{"k"}

func constitutiveNames(f attrs.Fields) (species, params []string, err error) {
	k, err := f.RequireString("k")
	if err != nil {
		return nil, nil, malformed("constitutive", err)
	}
	return nil, []string{k}, nil
}

func bindConstitutive(f attrs.Fields, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Propensity, error) {
	attrs.WarnUnknownKeys(logger, f, constitutiveKnownKeys, "propensity:constitutive")
	kName, err := f.RequireString("k")
	if err != nil {
		return nil, malformed("constitutive", err)
	}
	kIdx, ok := paramIndex(kName)
	if !ok {
		return nil, unboundName("constitutive", "parameter", kName)
	}
	return &constitutivePropensity{k: kIdx}, nil
}
