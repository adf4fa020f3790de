package propensity

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// massActionPropensity implements the general n-body form `k·∏xᵢ` /
// `k·∏xᵢ/V^(n-1)` (spec §4.3). The n=0,1,2 cases are handled by the
// specialized Constitutive/Unimolecular/Bimolecular variants instead
// (spec §4.7's "propensity selection shortcut"); this type only serves
// n>=3, but works correctly for any n.
type massActionPropensity struct {
	k        int
	species  []int
}

func (p *massActionPropensity) GetPropensity(state, params []float64, _ float64) float64 {
	rate := params[p.k]
	for _, idx := range p.species {
		rate *= state[idx]
	}
	return rate
}

func (p *massActionPropensity) GetVolumePropensity(state, params []float64, volume, _ float64) float64 {
	rate := params[p.k]
	for _, idx := range p.species {
		rate *= state[idx]
	}
	n := len(p.species)
	if n == 0 {
		return params[p.k] * volume
	}
	return rate / math.Pow(volume, float64(n-1))
}

var massActionKnownKeys = []string{"k", "species"}

// splitMassActionSpecies splits the "*"-separated species product string
// and rejects '+'/'-' per spec §4.3/§7.
func splitMassActionSpecies(field string) ([]string, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, nil
	}
	if strings.ContainsAny(field, "+-") {
		return nil, &ErrInvalidStoichiometry{Field: "species"}
	}
	parts := strings.Split(field, "*")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func massActionNames(f attrs.Fields) (species, params []string, err error) {
	k, err := f.RequireString("k")
	if err != nil {
		return nil, nil, malformed("massaction", err)
	}
	speciesField, _ := f.Get("species")
	names, err := splitMassActionSpecies(speciesField)
	if err != nil {
		return nil, nil, err
	}
	return names, []string{k}, nil
}

func bindMassAction(f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Propensity, error) {
	attrs.WarnUnknownKeys(logger, f, massActionKnownKeys, "propensity:massaction")
	kName, err := f.RequireString("k")
	if err != nil {
		return nil, malformed("massaction", err)
	}
	speciesField, _ := f.Get("species")
	names, err := splitMassActionSpecies(speciesField)
	if err != nil {
		return nil, err
	}
	kIdx, ok := paramIndex(kName)
	if !ok {
		return nil, unboundName("massaction", "parameter", kName)
	}
	indices := make([]int, len(names))
	for i, name := range names {
		idx, ok := speciesIndex(name)
		if !ok {
			return nil, unboundName("massaction", "species", name)
		}
		indices[i] = idx
	}
	return &massActionPropensity{k: kIdx, species: indices}, nil
}

// Degree returns the number of reactant species in a mass-action "species"
// product string, used by the model assembler's propensity-selection
// shortcut (spec §4.7) to decide between Constitutive/Unimolecular/
// Bimolecular/MassAction.
func Degree(speciesField string) (int, error) {
	names, err := splitMassActionSpecies(speciesField)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}
