package rule

import (
	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
	"github.com/sclamons/bioscrape-distr/model/expr"
)

// generalAssignmentRule implements GeneralAssignmentRule: writes
// expr.evaluate(...) into state[dest] or params[dest] depending on
// whether the target was parameter-marked (spec §4.5).
type generalAssignmentRule struct {
	term       expr.Term
	destIsParam bool
	dest       int
}

func (r *generalAssignmentRule) Apply(state, params []float64, time float64) {
	v := r.term.Evaluate(state, params, time)
	if r.destIsParam {
		params[r.dest] = v
	} else {
		state[r.dest] = v
	}
}

var generalAssignmentKnownKeys = []string{"equation"}

func generalAssignmentNames(f attrs.Fields) (species, params []string, err error) {
	equation, err := f.RequireString("equation")
	if err != nil {
		return nil, nil, malformed("assignment", err)
	}
	eq, err := ParseEquation(equation)
	if err != nil {
		return nil, nil, err
	}
	parsed, err := expr.Parse(eq.RHS)
	if err != nil {
		return nil, nil, err
	}
	species = parsed.FreeSpecies
	params = parsed.FreeParameters
	if stripped, isParam := stripParamMarker(eq.LHS); isParam {
		params = append(append([]string{}, params...), stripped)
	} else {
		species = append(append([]string{}, species...), eq.LHS)
	}
	return species, params, nil
}

func bindGeneralAssignment(f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Rule, error) {
	attrs.WarnUnknownKeys(logger, f, generalAssignmentKnownKeys, "rule:assignment")
	equation, err := f.RequireString("equation")
	if err != nil {
		return nil, malformed("assignment", err)
	}
	eq, err := ParseEquation(equation)
	if err != nil {
		return nil, err
	}
	parsed, err := expr.Parse(eq.RHS)
	if err != nil {
		return nil, err
	}
	term, err := parsed.Bind(
		func(name string) (int, bool) { return speciesIndex(name) },
		func(name string) (int, bool) { return paramIndex(name) },
	)
	if err != nil {
		return nil, err
	}

	destName, destIsParam := stripParamMarker(eq.LHS)
	var destIdx int
	if destIsParam {
		idx, ok := paramIndex(destName)
		if !ok {
			return nil, unboundName("assignment", "parameter", destName)
		}
		destIdx = idx
	} else {
		idx, ok := speciesIndex(destName)
		if !ok {
			return nil, unboundName("assignment", "species", destName)
		}
		destIdx = idx
	}
	return &generalAssignmentRule{term: term, destIsParam: destIsParam, dest: destIdx}, nil
}
