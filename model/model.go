// Package model implements the model assembler described in spec.md §4.7:
// it ingests a declarative Document, interns every referenced name into a
// SymbolTable, binds propensities/delays/rules to dense indices, and
// builds the stoichiometry matrices consumed by an external simulator
// loop.
package model

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
	"github.com/sclamons/bioscrape-distr/model/delay"
	"github.com/sclamons/bioscrape-distr/model/propensity"
	"github.com/sclamons/bioscrape-distr/model/rule"
)

// Model is the fully bound, evaluation-ready reaction network (spec §5:
// "owns its symbol table, stoichiometry matrices, and the propensity/
// delay/rule/expression trees").
type Model struct {
	Symbols       *SymbolTable
	Reactions     []*Reaction
	rules         []rule.Rule
	Stoichiometry *StoichiometryMatrix
	InitialState  StateVector
	InitialParams ParamVector
}

// Options configures Assemble.
type Options struct {
	// Logger receives warnings (spec §4.3/§4.7/§4.8). Defaults to
	// logrus.StandardLogger().
	Logger *logrus.Logger
	// StrictMode promotes every warning-level condition to a returned
	// error instead of a log line (spec §9 open question, SPEC_FULL.md
	// §C.3). Default false.
	StrictMode bool
}

type pendingReaction struct {
	reactants, products               []string
	delayedReactants, delayedProducts []string
	propKind                          propensity.Kind
	propFields                        attrs.Fields
	delayKind                         delay.Kind
	delayFields                       attrs.Fields
}

type pendingRule struct {
	kind   rule.Kind
	fields attrs.Fields
}

// Assemble runs the three assembler phases described in spec §4.7 against
// a parsed declarative Document.
func Assemble(doc *Document, opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	var collector *warningCollector
	if opts.StrictMode {
		collector = &warningCollector{}
		logger = strictLogger(logger, collector)
	}

	symtab := NewSymbolTable()

	// --- Phase 1: Discovery ---
	pendingReactions := make([]pendingReaction, len(doc.Reactions))
	for i, el := range doc.Reactions {
		pr, err := discoverReaction(symtab, el)
		if err != nil {
			return nil, &ErrMalformedReaction{ReactionIndex: i, Err: err}
		}
		pendingReactions[i] = pr
	}

	pendingRules := make([]pendingRule, len(doc.Rules))
	for i, el := range doc.Rules {
		if err := rule.CheckFrequency(el.Frequency); err != nil {
			return nil, err
		}
		kind := rule.Kind(strings.ToLower(el.Type))
		if !rule.ValidKinds[kind] {
			return nil, &rule.ErrUnknownKind{Kind: el.Type}
		}
		fields := el.Fields()
		species, params, err := rule.GetSpeciesAndParameters(kind, fields)
		if err != nil {
			return nil, err
		}
		for _, s := range species {
			symtab.InternSpecies(s)
		}
		for _, p := range params {
			symtab.InternParameter(p)
		}
		pendingRules[i] = pendingRule{kind: kind, fields: fields}
	}

	// --- Phase 2: Binding ---
	reactions := make([]*Reaction, len(pendingReactions))
	stoich := NewStoichiometryMatrix(symtab.NumSpecies(), len(pendingReactions))
	for i, pr := range pendingReactions {
		prop, err := propensity.Bind(pr.propKind, pr.propFields, symtab.SpeciesIndex, symtab.ParamIndex, logger)
		if err != nil {
			return nil, &ErrMalformedReaction{ReactionIndex: i, Err: err}
		}
		d, err := delay.Bind(pr.delayKind, pr.delayFields, symtab.ParamIndex, logger)
		if err != nil {
			return nil, &ErrMalformedReaction{ReactionIndex: i, Err: err}
		}

		immediate := indexDelta(symtab, StoichiometryDelta(pr.reactants, pr.products))
		var delayed map[int]int
		if pr.delayedReactants != nil || pr.delayedProducts != nil {
			delayed = indexDelta(symtab, StoichiometryDelta(pr.delayedReactants, pr.delayedProducts))
		}
		stoich.set(i, immediate, delayed)
		reactions[i] = &Reaction{Propensity: prop, Delay: d, Immediate: immediate, Delayed: delayed}
	}

	rules := make([]rule.Rule, len(pendingRules))
	for i, pr := range pendingRules {
		r, err := rule.Bind(pr.kind, pr.fields, symtab.SpeciesIndex, symtab.ParamIndex, logger)
		if err != nil {
			return nil, err
		}
		rules[i] = r
	}

	// --- Phase 3: Valuation ---
	paramVec := make(ParamVector, symtab.NumParams())
	stateVec := make(StateVector, symtab.NumSpecies())
	paramValued := make([]bool, symtab.NumParams())
	speciesValued := make([]bool, symtab.NumSpecies())

	for _, pel := range doc.Parameters {
		idx, ok := symtab.ParamIndex(pel.Name)
		if !ok {
			logger.WithFields(logrus.Fields{"context": "model:valuation", "name": pel.Name}).
				Warn("useless field: parameter valued but never referenced")
			continue
		}
		paramVec[idx] = pel.Value
		paramValued[idx] = true
	}
	for _, sel := range doc.Species {
		idx, ok := symtab.SpeciesIndex(sel.Name)
		if !ok {
			logger.WithFields(logrus.Fields{"context": "model:valuation", "name": sel.Name}).
				Warn("useless field: species valued but never referenced")
			continue
		}
		stateVec[idx] = sel.Value
		speciesValued[idx] = true
	}

	var missingParams []string
	paramNames := symtab.ParamNames()
	for i, valued := range paramValued {
		if !valued {
			missingParams = append(missingParams, paramNames[i])
		}
	}
	if len(missingParams) > 0 {
		return nil, &ErrUnspecifiedParameter{Names: missingParams}
	}

	speciesNames := symtab.SpeciesNames()
	for i, valued := range speciesValued {
		if !valued {
			logger.WithFields(logrus.Fields{"context": "model:valuation", "name": speciesNames[i]}).
				Warn("species referenced but not valued, defaulting to 0")
		}
	}

	if collector != nil && collector.hasWarnings() {
		return nil, &ErrStrictWarnings{Messages: collector.messages}
	}

	return &Model{
		Symbols:       symtab,
		Reactions:     reactions,
		rules:         rules,
		Stoichiometry: stoich,
		InitialState:  stateVec,
		InitialParams: paramVec,
	}, nil
}

func discoverReaction(symtab *SymbolTable, el ReactionElement) (pendingReaction, error) {
	reactants, products, err := ParseReactionSides(el.Text)
	if err != nil {
		return pendingReaction{}, err
	}
	for _, s := range reactants {
		symtab.InternSpecies(s)
	}
	for _, s := range products {
		symtab.InternSpecies(s)
	}

	var delayedReactants, delayedProducts []string
	if strings.TrimSpace(el.After) != "" {
		delayedReactants, delayedProducts, err = ParseReactionSides(el.After)
		if err != nil {
			return pendingReaction{}, err
		}
		for _, s := range delayedReactants {
			symtab.InternSpecies(s)
		}
		for _, s := range delayedProducts {
			symtab.InternSpecies(s)
		}
	}

	propKind := propensity.Kind(strings.ToLower(el.Propensity.Type))
	if !propensity.ValidKinds[propKind] {
		return pendingReaction{}, &propensity.ErrUnknownKind{Kind: el.Propensity.Type}
	}
	propFields := el.Propensity.Fields()
	if propKind == propensity.MassAction {
		var err error
		propKind, propFields, err = massActionShortcut(propFields)
		if err != nil {
			return pendingReaction{}, err
		}
	}
	pSpecies, pParams, err := propensity.GetSpeciesAndParameters(propKind, propFields)
	if err != nil {
		return pendingReaction{}, err
	}
	for _, s := range pSpecies {
		symtab.InternSpecies(s)
	}
	for _, p := range pParams {
		symtab.InternParameter(p)
	}

	delayKind := delay.Kind(strings.ToLower(el.Delay.Type))
	if delayKind == "" {
		delayKind = delay.NoDelay
	}
	if !delay.ValidKinds[delayKind] {
		return pendingReaction{}, &delay.ErrUnknownKind{Kind: el.Delay.Type}
	}
	delayFields := el.Delay.Fields()
	_, dParams, err := delay.GetSpeciesAndParameters(delayKind, delayFields)
	if err != nil {
		return pendingReaction{}, err
	}
	for _, p := range dParams {
		symtab.InternParameter(p)
	}

	return pendingReaction{
		reactants: reactants, products: products,
		delayedReactants: delayedReactants, delayedProducts: delayedProducts,
		propKind: propKind, propFields: propFields,
		delayKind: delayKind, delayFields: delayFields,
	}, nil
}

// massActionShortcut implements spec §4.7's propensity-selection shortcut:
// a massaction reaction with 0/1/2 operand species is rebuilt as the
// equivalent specialized variant, whose hot path skips the generic
// product loop.
func massActionShortcut(fields attrs.Fields) (propensity.Kind, attrs.Fields, error) {
	speciesField, _ := fields.Get("species")
	degree, err := propensity.Degree(speciesField)
	if err != nil {
		return "", nil, err
	}
	kName, _ := fields.Get("k")
	switch degree {
	case 0:
		return propensity.Constitutive, attrs.Fields{"k": kName}, nil
	case 1:
		names := splitStar(speciesField)
		return propensity.Unimolecular, attrs.Fields{"k": kName, "s1": names[0]}, nil
	case 2:
		names := splitStar(speciesField)
		return propensity.Bimolecular, attrs.Fields{"k": kName, "s1": names[0], "s2": names[1]}, nil
	default:
		return propensity.MassAction, fields, nil
	}
}

func splitStar(field string) []string {
	var out []string
	for _, p := range strings.Split(field, "*") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// indexDelta resolves a name-keyed stoichiometry delta into an
// index-keyed one once the symbol table is final.
func indexDelta(symtab *SymbolTable, byName map[string]int) map[int]int {
	byIndex := make(map[int]int, len(byName))
	for name, delta := range byName {
		idx, _ := symtab.SpeciesIndex(name)
		byIndex[idx] += delta
	}
	return byIndex
}
