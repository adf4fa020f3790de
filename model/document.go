package model

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// Document is the native declarative model schema described in spec §6: a
// root <model> element containing any number of <reaction>, <rule>,
// <parameter>, and <species> children. There is no third-party XML
// library anywhere in the reference corpus for this shape, so the schema
// is expressed directly in encoding/xml struct tags (see DESIGN.md).
type Document struct {
	XMLName    xml.Name           `xml:"model"`
	Reactions  []ReactionElement  `xml:"reaction"`
	Rules      []RuleElement      `xml:"rule"`
	Parameters []ParameterElement `xml:"parameter"`
	Species    []SpeciesElement   `xml:"species"`
}

// ReactionElement is one <reaction text="..." after="..."> with exactly one
// <propensity> and one <delay> child (spec §6).
type ReactionElement struct {
	Text       string            `xml:"text,attr"`
	After      string            `xml:"after,attr"`
	Propensity PropensityElement `xml:"propensity"`
	Delay      DelayElement      `xml:"delay"`
}

// PropensityElement carries a type tag plus an open attribute set; which
// attributes are meaningful depends on Type (spec §4.3).
type PropensityElement struct {
	Type  string     `xml:"type,attr"`
	Attrs []xml.Attr `xml:",any,attr"`
}

// Fields materializes the propensity's non-type attributes into the
// dictionary shape the propensity catalog consumes.
func (p PropensityElement) Fields() attrs.Fields {
	return attrsFromXML(p.Attrs)
}

// DelayElement mirrors PropensityElement for <delay type="...">.
type DelayElement struct {
	Type  string     `xml:"type,attr"`
	Attrs []xml.Attr `xml:",any,attr"`
}

func (d DelayElement) Fields() attrs.Fields {
	return attrsFromXML(d.Attrs)
}

// RuleElement is one <rule type="..." frequency="..." equation="...">
// (spec §4.5, §6).
type RuleElement struct {
	Type      string `xml:"type,attr"`
	Frequency string `xml:"frequency,attr"`
	Equation  string `xml:"equation,attr"`
}

func (r RuleElement) Fields() attrs.Fields {
	return attrs.Fields{"equation": r.Equation}
}

// ParameterElement is one <parameter name="..." value="...">.
type ParameterElement struct {
	Name  string  `xml:"name,attr"`
	Value float64 `xml:"value,attr"`
}

// SpeciesElement is one <species name="..." value="...">.
type SpeciesElement struct {
	Name  string  `xml:"name,attr"`
	Value float64 `xml:"value,attr"`
}

func attrsFromXML(raw []xml.Attr) attrs.Fields {
	f := make(attrs.Fields, len(raw))
	for _, a := range raw {
		if a.Name.Local == "type" {
			continue
		}
		f[a.Name.Local] = a.Value
	}
	return f
}

// LoadDocument reads and parses a native declarative model file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model document: %w", err)
	}
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing model document: %w", err)
	}
	return &doc, nil
}
