package rule

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// additiveRule implements AdditiveAssignmentRule: writes the sum of named
// species into state[dest] (spec §4.5). The target must be a species.
type additiveRule struct {
	dest     int
	operands []int
}

func (r *additiveRule) Apply(state, _ []float64, _ float64) {
	total := 0.0
	for _, idx := range r.operands {
		total += state[idx]
	}
	state[r.dest] = total
}

var additiveKnownKeys = []string{"equation"}

func additiveOperands(equation string) (dest string, operands []string, err error) {
	eq, err := ParseEquation(equation)
	if err != nil {
		return "", nil, err
	}
	for _, part := range strings.Split(eq.RHS, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		operands = append(operands, part)
	}
	if len(operands) == 0 {
		return "", nil, &ErrMalformed{Variant: "additive", Err: errEmptyRHS}
	}
	return eq.LHS, operands, nil
}

func additiveNames(f attrs.Fields) (species, params []string, err error) {
	equation, err := f.RequireString("equation")
	if err != nil {
		return nil, nil, malformed("additive", err)
	}
	dest, operands, err := additiveOperands(equation)
	if err != nil {
		return nil, nil, err
	}
	if stripped, isParam := stripParamMarker(dest); isParam {
		return nil, nil, &ErrMalformed{Variant: "additive", Err: errDestMustBeSpecies(stripped)}
	}
	return append([]string{dest}, operands...), nil, nil
}

func bindAdditive(f attrs.Fields, speciesIndex attrs.SpeciesIndex, logger logrus.FieldLogger) (Rule, error) {
	attrs.WarnUnknownKeys(logger, f, additiveKnownKeys, "rule:additive")
	equation, err := f.RequireString("equation")
	if err != nil {
		return nil, malformed("additive", err)
	}
	dest, operandNames, err := additiveOperands(equation)
	if err != nil {
		return nil, err
	}
	if _, isParam := stripParamMarker(dest); isParam {
		return nil, &ErrMalformed{Variant: "additive", Err: errDestMustBeSpecies(dest)}
	}
	destIdx, ok := speciesIndex(dest)
	if !ok {
		return nil, unboundName("additive", "species", dest)
	}
	operands := make([]int, len(operandNames))
	for i, name := range operandNames {
		idx, ok := speciesIndex(name)
		if !ok {
			return nil, unboundName("additive", "species", name)
		}
		operands[i] = idx
	}
	return &additiveRule{dest: destIdx, operands: operands}, nil
}
