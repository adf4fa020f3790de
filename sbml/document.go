// Package sbml implements the SBML-subset importer described in
// spec.md §4.8: it translates a restricted SBML document into the
// model package's native declarative Document (spec.md §6), so the rest
// of the model core never has to know a model file originated as SBML.
package sbml

import "encoding/xml"

// mathElement generically captures one <math>...</math> subtree (and any
// other free-form nested XML) without a fixed schema, since MathML
// content is itself a small recursive grammar rather than a flat
// attribute set.
type mathElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr    `xml:",any,attr"`
	Chardata string        `xml:",chardata"`
	Children []mathElement `xml:",any"`
}

// document is the restricted SBML schema this importer understands:
// one implicit compartment, flat species/parameter lists, reactions with
// a kinetic law, and a subset of rule kinds (spec §4.8).
type document struct {
	XMLName xml.Name `xml:"sbml"`
	Model   sbmlModel `xml:"model"`
}

type sbmlModel struct {
	Compartments []compartment `xml:"listOfCompartments>compartment"`
	Species      []species     `xml:"listOfSpecies>species"`
	Parameters   []parameter   `xml:"listOfParameters>parameter"`
	Reactions    []reaction    `xml:"listOfReactions>reaction"`
	OtherRules   otherRules    `xml:"listOfRules"`
	Events       []mathElement `xml:"listOfEvents>event"`
}

// otherRules captures every <listOfRules> child generically: assignmentRule
// children are imported, and other rule kinds (rateRule, algebraicRule) are
// detected and warned about but never imported (spec §4.8).
type otherRules struct {
	All []mathElement `xml:",any"`
}

type compartment struct {
	ID string `xml:"id,attr"`
}

type species struct {
	ID                   string   `xml:"id,attr"`
	Compartment          string   `xml:"compartment,attr"`
	InitialAmount        *float64 `xml:"initialAmount,attr"`
	InitialConcentration *float64 `xml:"initialConcentration,attr"`
}

type parameter struct {
	ID    string  `xml:"id,attr"`
	Value float64 `xml:"value,attr"`
}

type speciesReference struct {
	Species       string   `xml:"species,attr"`
	Stoichiometry *float64 `xml:"stoichiometry,attr"`
}

type reaction struct {
	ID         string             `xml:"id,attr"`
	Reversible bool               `xml:"reversible,attr"`
	Reactants  []speciesReference `xml:"listOfReactants>speciesReference"`
	Products   []speciesReference `xml:"listOfProducts>speciesReference"`
	KineticLaw kineticLaw         `xml:"kineticLaw"`
}

type kineticLaw struct {
	LocalParameters []parameter `xml:"listOfParameters>parameter"`
	Math            mathElement `xml:"math"`
}
