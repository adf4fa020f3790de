package sbml

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/sclamons/bioscrape-distr/model"
)

// reservedNames mirrors the two identifiers the native rate grammar
// reserves for itself (spec §4.1: "volume" and "t"); an SBML species or
// parameter using either cannot be represented and is skipped with a
// warning.
var reservedNames = map[string]bool{"volume": true, "t": true}

// Import reads a restricted SBML document from path and translates it
// into the model package's native declarative Document (spec §4.8), so
// the result can flow through model.Assemble exactly like a hand-written
// model file. It returns the accumulated non-fatal warnings alongside the
// Document as plain strings; they are not logged here, and
// model.Options.StrictMode on a later Assemble call does not see them (it
// covers only the warnings Assemble itself logs).
func Import(path string) (*model.Document, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("sbml: reading %s: %w", path, err)
	}
	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("sbml: parsing %s: %w", path, err)
	}
	return convert(&doc.Model)
}

type importContext struct {
	warnings   []string
	paramNames map[string]bool
}

func (c *importContext) warn(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func convert(m *sbmlModel) (*model.Document, []string, error) {
	ctx := &importContext{paramNames: map[string]bool{}}

	if len(m.Compartments) > 1 {
		ctx.warn("sbml: model declares %d compartments, only the first is represented; volume dynamics must be configured separately", len(m.Compartments))
	}
	if len(m.Events) > 0 {
		ctx.warn("sbml: %d <event> elements are not supported and were skipped", len(m.Events))
	}

	out := &model.Document{}

	// Global parameters are collected first so every reaction's local
	// parameters are known to be parameters (not species) while their
	// kinetic law math is rendered, and so later entries win on
	// collision per document order (spec §4.8).
	paramValues := map[string]float64{}
	var paramOrder []string
	addParam := func(id string, value float64) {
		if reservedNames[id] {
			ctx.warn("sbml: parameter %q collides with a reserved identifier and was skipped", id)
			return
		}
		if !ctx.paramNames[id] {
			paramOrder = append(paramOrder, id)
		}
		ctx.paramNames[id] = true
		paramValues[id] = value
	}
	for _, p := range m.Parameters {
		addParam(p.ID, p.Value)
	}
	for _, r := range m.Reactions {
		for _, p := range r.KineticLaw.LocalParameters {
			addParam(p.ID, p.Value)
		}
	}
	for _, id := range paramOrder {
		out.Parameters = append(out.Parameters, model.ParameterElement{Name: id, Value: paramValues[id]})
	}

	speciesValues := map[string]float64{}
	var speciesOrder []string
	for _, s := range m.Species {
		if reservedNames[s.ID] {
			ctx.warn("sbml: species %q collides with a reserved identifier and was skipped", s.ID)
			continue
		}
		if ctx.paramNames[s.ID] {
			ctx.warn("sbml: species %q collides with a parameter name and was skipped", s.ID)
			continue
		}
		speciesOrder = append(speciesOrder, s.ID)
		speciesValues[s.ID] = initialValue(s)
	}
	for _, id := range speciesOrder {
		out.Species = append(out.Species, model.SpeciesElement{Name: id, Value: speciesValues[id]})
	}

	isParam := func(name string) bool { return ctx.paramNames[name] }

	for _, r := range m.Reactions {
		el, err := convertReaction(r, ctx, isParam)
		if err != nil {
			return nil, ctx.warnings, fmt.Errorf("sbml: reaction %q: %w", r.ID, err)
		}
		out.Reactions = append(out.Reactions, el)
	}

	for _, rule := range m.OtherRules.All {
		if rule.XMLName.Local != "assignmentRule" {
			ctx.warn("sbml: <%s> rules are not supported and were skipped", rule.XMLName.Local)
			continue
		}
		el, err := convertAssignmentRule(rule, ctx, isParam)
		if err != nil {
			return nil, ctx.warnings, fmt.Errorf("sbml: assignment rule: %w", err)
		}
		out.Rules = append(out.Rules, el)
	}

	return out, ctx.warnings, nil
}

func initialValue(s species) float64 {
	if s.InitialAmount != nil {
		return *s.InitialAmount
	}
	if s.InitialConcentration != nil {
		return *s.InitialConcentration
	}
	return 0
}

func convertReaction(r reaction, ctx *importContext, isParam func(string) bool) (model.ReactionElement, error) {
	if r.Reversible {
		ctx.warn("sbml: reaction %q is marked reversible; only its forward kinetic law was imported", r.ID)
	}

	reactantNames := expandStoichiometry(r.Reactants)
	productNames := expandStoichiometry(r.Products)
	text := joinSide(reactantNames) + " -- " + joinSide(productNames)

	rate, err := RenderMathML(r.KineticLaw.Math, isParam)
	if err != nil {
		return model.ReactionElement{}, err
	}

	return model.ReactionElement{
		Text: text,
		Propensity: model.PropensityElement{
			Type:  "general",
			Attrs: []xml.Attr{{Name: xml.Name{Local: "rate"}, Value: rate}},
		},
		Delay: model.DelayElement{Type: "none"},
	}, nil
}

// expandStoichiometry repeats each speciesReference's ID stoichiometry
// times (rounded to the nearest integer), matching the native schema's
// repeated-name stoichiometry convention (spec §4.2, §6).
func expandStoichiometry(refs []speciesReference) []string {
	var names []string
	for _, ref := range refs {
		n := 1
		if ref.Stoichiometry != nil {
			n = int(*ref.Stoichiometry + 0.5)
		}
		for i := 0; i < n; i++ {
			names = append(names, ref.Species)
		}
	}
	return names
}

func joinSide(names []string) string {
	if len(names) == 0 {
		return ""
	}
	out := names[0]
	for _, n := range names[1:] {
		out += " + " + n
	}
	return out
}

func convertAssignmentRule(e mathElement, ctx *importContext, isParam func(string) bool) (model.RuleElement, error) {
	var variable string
	for _, a := range e.Attrs {
		if a.Name.Local == "variable" {
			variable = a.Value
		}
	}
	if variable == "" {
		return model.RuleElement{}, fmt.Errorf("assignmentRule missing variable attribute")
	}
	var mathChild *mathElement
	for i := range e.Children {
		if e.Children[i].XMLName.Local == "math" {
			mathChild = &e.Children[i]
			break
		}
	}
	if mathChild == nil {
		return model.RuleElement{}, fmt.Errorf("assignmentRule %q missing <math>", variable)
	}
	rhs, err := RenderMathML(*mathChild, isParam)
	if err != nil {
		return model.RuleElement{}, err
	}
	lhs := variable
	if isParam(variable) {
		lhs = "_" + variable
	}
	return model.RuleElement{
		Type:      "assignment",
		Frequency: "repeated",
		Equation:  lhs + " = " + rhs,
	}, nil
}
