package model

import (
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseDoc(t *testing.T, docXML string) *Document {
	t.Helper()
	var doc Document
	if err := xml.Unmarshal([]byte(docXML), &doc); err != nil {
		t.Fatalf("unexpected XML error: %v", err)
	}
	return &doc
}

// TestAssemble_Scenario1 reproduces spec.md §8 scenario 1: a constitutive
// production reaction with k=2.0 has propensity 2.0 regardless of state,
// and volume-aware propensity 6.0 at V=3.
func TestAssemble_Scenario1(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="2.0"/>
  <species name="X" value="0"/>
</model>`)

	m, err := Assemble(doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := m.SpeciesValues()
	params := m.ParamValues()
	props := m.Propensities()
	if !assert.Len(t, props, 1) {
		return
	}
	assert.Equal(t, 2.0, props[0].GetPropensity(state, params, 0))
	assert.Equal(t, 6.0, props[0].GetVolumePropensity(state, params, 3, 0))

	assert.Equal(t, 1, m.UpdateArray()[m.SpeciesIndex("X")][0])
}

// TestAssemble_Scenario2GeneExpressionSteadyState reproduces spec.md §8
// scenario 2: at the analytic deterministic steady state, every
// reaction's production and consumption of its target species balance.
func TestAssemble_Scenario2GeneExpressionSteadyState(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- mRNA">
    <propensity type="constitutive" k="beta"/>
    <delay type="none"/>
  </reaction>
  <reaction text="mRNA --">
    <propensity type="unimolecular" k="delta_m" s1="mRNA"/>
    <delay type="none"/>
  </reaction>
  <reaction text="-- protein">
    <propensity type="unimolecular" k="k_tl" s1="mRNA"/>
    <delay type="none"/>
  </reaction>
  <reaction text="protein --">
    <propensity type="unimolecular" k="delta_p" s1="protein"/>
    <delay type="none"/>
  </reaction>
  <parameter name="beta" value="2.0"/>
  <parameter name="delta_m" value="0.2"/>
  <parameter name="k_tl" value="5.0"/>
  <parameter name="delta_p" value="0.05"/>
  <species name="mRNA" value="10"/>
  <species name="protein" value="1000"/>
</model>`)

	m, err := Assemble(doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := m.SpeciesValues()
	params := m.ParamValues()
	props := m.Propensities()
	update := m.UpdateArray()

	mRNAIdx := m.SpeciesIndex("mRNA")
	proteinIdx := m.SpeciesIndex("protein")

	var dmRNA, dProtein float64
	for r, p := range props {
		rate := p.GetPropensity(state, params, 0)
		dmRNA += float64(update[mRNAIdx][r]) * rate
		dProtein += float64(update[proteinIdx][r]) * rate
	}
	assert.InDelta(t, 0.0, dmRNA, 1e-9)
	assert.InDelta(t, 0.0, dProtein, 1e-9)
}

func TestAssemble_MassActionShortcutSelectsSpecializedVariant(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- X">
    <propensity type="massaction" k="k" species=""/>
    <delay type="none"/>
  </reaction>
  <reaction text="X -- Y">
    <propensity type="massaction" k="k2" species="X"/>
    <delay type="none"/>
  </reaction>
  <reaction text="X + Y --">
    <propensity type="massaction" k="k3" species="X*Y"/>
    <delay type="none"/>
  </reaction>
  <reaction text="X + Y + Z --">
    <propensity type="massaction" k="k4" species="X*Y*Z"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <parameter name="k2" value="1"/>
  <parameter name="k3" value="1"/>
  <parameter name="k4" value="1"/>
  <species name="X" value="1"/>
  <species name="Y" value="1"/>
  <species name="Z" value="1"/>
</model>`)

	m, err := Assemble(doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := m.SpeciesValues()
	params := m.ParamValues()
	props := m.Propensities()
	if !assert.Len(t, props, 4) {
		return
	}
	assert.Equal(t, "*propensity.constitutivePropensity", fmt.Sprintf("%T", props[0]))
	assert.Equal(t, "*propensity.unimolecularPropensity", fmt.Sprintf("%T", props[1]))
	assert.Equal(t, "*propensity.bimolecularPropensity", fmt.Sprintf("%T", props[2]))
	assert.Equal(t, "*propensity.massActionPropensity", fmt.Sprintf("%T", props[3]))
	for _, p := range props {
		assert.GreaterOrEqual(t, p.GetPropensity(state, params, 0), 0.0)
	}
}

func TestAssemble_UnspecifiedParameterFails(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <species name="X" value="0"/>
</model>`)

	_, err := Assemble(doc, Options{})
	if err == nil {
		t.Fatal("expected ErrUnspecifiedParameter")
	}
	var target *ErrUnspecifiedParameter
	if !asUnspecified(err, &target) {
		t.Fatalf("expected ErrUnspecifiedParameter, got %T: %v", err, err)
	}
	assert.Equal(t, []string{"k"}, target.Names)
}

func asUnspecified(err error, target **ErrUnspecifiedParameter) bool {
	e, ok := err.(*ErrUnspecifiedParameter)
	if ok {
		*target = e
	}
	return ok
}

func TestAssemble_UnreferencedSpeciesWarnsButDoesNotFail(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <species name="X" value="0"/>
  <species name="unreferenced" value="5"/>
</model>`)

	m, err := Assemble(doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, -1, m.SpeciesIndex("unreferenced"))
}

func TestAssemble_StrictModePromotesWarningsToErrors(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k" bogus="1"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <species name="X" value="0"/>
</model>`)

	_, err := Assemble(doc, Options{StrictMode: true})
	if err == nil {
		t.Fatal("expected strict-mode error for unrecognized attribute")
	}
	var target *ErrStrictWarnings
	if !asStrictWarnings(err, &target) {
		t.Fatalf("expected ErrStrictWarnings, got %T: %v", err, err)
	}
}

func asStrictWarnings(err error, target **ErrStrictWarnings) bool {
	e, ok := err.(*ErrStrictWarnings)
	if ok {
		*target = e
	}
	return ok
}

func TestModel_SetParamsRoundTrip(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <species name="X" value="0"/>
</model>`)

	m, err := Assemble(doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params := m.ParamValues().Clone()
	if err := m.SetParams(params, map[string]float64{"k": 9.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := m.GetParamValue(params, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 9.0, got)
}

func TestModel_ParseGeneralExpression(t *testing.T) {
	doc := parseDoc(t, `
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <species name="X" value="3"/>
</model>`)

	m, err := Assemble(doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	term, err := m.ParseGeneralExpression("2*X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 6.0, term.Evaluate(m.SpeciesValues(), m.ParamValues(), 0))
}
