package model

import (
	"github.com/sclamons/bioscrape-distr/model/delay"
	"github.com/sclamons/bioscrape-distr/model/expr"
	"github.com/sclamons/bioscrape-distr/model/propensity"
	"github.com/sclamons/bioscrape-distr/model/rule"
)

// This file implements the programmatic surface listed in spec.md §6
// verbatim, as a single facade over *Model (SPEC_FULL.md §C.1), so an
// external simulator loop never has to reach past Model into the
// assembler's internals.

// SpeciesList returns species names in symbol-table index order.
func (m *Model) SpeciesList() []string { return m.Symbols.SpeciesNames() }

// ParamList returns parameter names in symbol-table index order.
func (m *Model) ParamList() []string { return m.Symbols.ParamNames() }

// SpeciesValues returns the model's initial state vector.
func (m *Model) SpeciesValues() StateVector { return m.InitialState }

// ParamValues returns the model's initial parameter vector.
func (m *Model) ParamValues() ParamVector { return m.InitialParams }

// UpdateArray returns the immediate stoichiometry matrix.
func (m *Model) UpdateArray() [][]int { return m.Stoichiometry.Update }

// DelayUpdateArray returns the delayed stoichiometry matrix.
func (m *Model) DelayUpdateArray() [][]int { return m.Stoichiometry.DelayUpdate }

// Propensities returns every reaction's bound Propensity, in declaration
// order.
func (m *Model) Propensities() []propensity.Propensity {
	out := make([]propensity.Propensity, len(m.Reactions))
	for i, r := range m.Reactions {
		out[i] = r.Propensity
	}
	return out
}

// Delays returns every reaction's bound Delay, in declaration order.
func (m *Model) Delays() []delay.Delay {
	out := make([]delay.Delay, len(m.Reactions))
	for i, r := range m.Reactions {
		out[i] = r.Delay
	}
	return out
}

// Rules returns the bound repeated assignment rules, in declaration order
// (spec §5: "applied in insertion order").
func (m *Model) Rules() []rule.Rule { return m.rules }

// SpeciesIndex looks up a species' dense index, returning -1 when absent
// (spec §6).
func (m *Model) SpeciesIndex(name string) int {
	idx, ok := m.Symbols.SpeciesIndex(name)
	if !ok {
		return -1
	}
	return idx
}

// ParamIndex looks up a parameter's dense index, returning -1 when absent
// (spec §6).
func (m *Model) ParamIndex(name string) int {
	idx, ok := m.Symbols.ParamIndex(name)
	if !ok {
		return -1
	}
	return idx
}

// SetParams overwrites named entries of params in place. Unknown names
// are a LookupError (spec §6, §7).
func (m *Model) SetParams(params ParamVector, values map[string]float64) error {
	for name, v := range values {
		idx, ok := m.Symbols.ParamIndex(name)
		if !ok {
			return &ErrLookupError{Kind: "parameter", Name: name}
		}
		params[idx] = v
	}
	return nil
}

// SetSpecies overwrites named entries of state in place. Unknown names
// are a LookupError.
func (m *Model) SetSpecies(state StateVector, values map[string]float64) error {
	for name, v := range values {
		idx, ok := m.Symbols.SpeciesIndex(name)
		if !ok {
			return &ErrLookupError{Kind: "species", Name: name}
		}
		state[idx] = v
	}
	return nil
}

// GetParamValue and GetSpeciesValue support the round-trip invariant from
// spec §8: "after set_params({k:v}), get_param_value(k) == v".
func (m *Model) GetParamValue(params ParamVector, name string) (float64, error) {
	idx, ok := m.Symbols.ParamIndex(name)
	if !ok {
		return 0, &ErrLookupError{Kind: "parameter", Name: name}
	}
	return params[idx], nil
}

func (m *Model) GetSpeciesValue(state StateVector, name string) (float64, error) {
	idx, ok := m.Symbols.SpeciesIndex(name)
	if !ok {
		return 0, &ErrLookupError{Kind: "species", Name: name}
	}
	return state[idx], nil
}

// ParseGeneralExpression parses and binds an arbitrary rate string against
// this model's current symbol table (spec §6: "parse_general_expression").
// Free names that are not already in the symbol table are resolved
// against it as-is (no implicit interning): unresolvable names produce a
// LookupError, since binding after assembly must not silently grow the
// table the stoichiometry matrices were already sized against.
func (m *Model) ParseGeneralExpression(rate string) (expr.Term, error) {
	parsed, err := expr.Parse(rate)
	if err != nil {
		return nil, err
	}
	return parsed.Bind(m.Symbols.SpeciesIndex, m.Symbols.ParamIndex)
}
