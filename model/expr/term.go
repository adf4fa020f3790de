// Package expr implements the arithmetic expression AST and evaluator that
// backs every user-supplied rate law, assignment rule, and growth-rate
// expression in the model core.
//
// A Term is the bound, index-only form: once built by Bind, it never touches
// a name again and is safe to evaluate from the simulator's hot loop.
package expr

import "math"

// Term is a node in a bound expression tree. Every Term is immutable once
// built and evaluation is a pure function of its inputs — it never writes
// to state or params.
type Term interface {
	// Evaluate returns the node's value treating volume as 1 (concentration
	// form). It is equivalent to VolumeEvaluate(state, params, 1, time).
	Evaluate(state, params []float64, time float64) float64
	// VolumeEvaluate returns the node's value with an explicit cell volume.
	VolumeEvaluate(state, params []float64, volume, time float64) float64
}

type constantTerm struct{ v float64 }

func (t *constantTerm) Evaluate(_, _ []float64, _ float64) float64                    { return t.v }
func (t *constantTerm) VolumeEvaluate(_, _ []float64, _, _ float64) float64           { return t.v }

// speciesTerm returns state[index] regardless of volume. The expression
// layer treats species fields as opaque counts; any per-reaction volume
// rescaling is the propensity layer's job (spec §4.2).
type speciesTerm struct{ index int }

func (t *speciesTerm) Evaluate(state, _ []float64, _ float64) float64 { return state[t.index] }
func (t *speciesTerm) VolumeEvaluate(state, _ []float64, _, _ float64) float64 {
	return state[t.index]
}

type paramTerm struct{ index int }

func (t *paramTerm) Evaluate(_, params []float64, _ float64) float64 { return params[t.index] }
func (t *paramTerm) VolumeEvaluate(_, params []float64, _, _ float64) float64 {
	return params[t.index]
}

type volumeTerm struct{}

func (t *volumeTerm) Evaluate(_, _ []float64, _ float64) float64 { return 1.0 }
func (t *volumeTerm) VolumeEvaluate(_, _ []float64, volume, _ float64) float64 {
	return volume
}

type timeTerm struct{}

func (t *timeTerm) Evaluate(_, _ []float64, time float64) float64 { return time }
func (t *timeTerm) VolumeEvaluate(_, _ []float64, _, time float64) float64 {
	return time
}

type sumTerm struct{ terms []Term }

func (t *sumTerm) Evaluate(state, params []float64, time float64) float64 {
	total := 0.0
	for _, c := range t.terms {
		total += c.Evaluate(state, params, time)
	}
	return total
}
func (t *sumTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	total := 0.0
	for _, c := range t.terms {
		total += c.VolumeEvaluate(state, params, volume, time)
	}
	return total
}

type productTerm struct{ terms []Term }

func (t *productTerm) Evaluate(state, params []float64, time float64) float64 {
	total := 1.0
	for _, c := range t.terms {
		total *= c.Evaluate(state, params, time)
	}
	return total
}
func (t *productTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	total := 1.0
	for _, c := range t.terms {
		total *= c.VolumeEvaluate(state, params, volume, time)
	}
	return total
}

type powerTerm struct{ base, exp Term }

func (t *powerTerm) Evaluate(state, params []float64, time float64) float64 {
	return math.Pow(t.base.Evaluate(state, params, time), t.exp.Evaluate(state, params, time))
}
func (t *powerTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	return math.Pow(t.base.VolumeEvaluate(state, params, volume, time), t.exp.VolumeEvaluate(state, params, volume, time))
}

type expTerm struct{ x Term }

func (t *expTerm) Evaluate(state, params []float64, time float64) float64 {
	return math.Exp(t.x.Evaluate(state, params, time))
}
func (t *expTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	return math.Exp(t.x.VolumeEvaluate(state, params, volume, time))
}

type logTerm struct{ x Term }

func (t *logTerm) Evaluate(state, params []float64, time float64) float64 {
	return math.Log(t.x.Evaluate(state, params, time))
}
func (t *logTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	return math.Log(t.x.VolumeEvaluate(state, params, volume, time))
}

type absTerm struct{ x Term }

func (t *absTerm) Evaluate(state, params []float64, time float64) float64 {
	return math.Abs(t.x.Evaluate(state, params, time))
}
func (t *absTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	return math.Abs(t.x.VolumeEvaluate(state, params, volume, time))
}

// stepTerm implements the Heaviside step with H(0)=1, per spec §4.2.
type stepTerm struct{ x Term }

func (t *stepTerm) Evaluate(state, params []float64, time float64) float64 {
	return heaviside(t.x.Evaluate(state, params, time))
}
func (t *stepTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	return heaviside(t.x.VolumeEvaluate(state, params, volume, time))
}

func heaviside(x float64) float64 {
	if x >= 0 {
		return 1.0
	}
	return 0.0
}

type maxTerm struct{ terms []Term }

func (t *maxTerm) Evaluate(state, params []float64, time float64) float64 {
	best := t.terms[0].Evaluate(state, params, time)
	for _, c := range t.terms[1:] {
		if v := c.Evaluate(state, params, time); v > best {
			best = v
		}
	}
	return best
}
func (t *maxTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	best := t.terms[0].VolumeEvaluate(state, params, volume, time)
	for _, c := range t.terms[1:] {
		if v := c.VolumeEvaluate(state, params, volume, time); v > best {
			best = v
		}
	}
	return best
}

type minTerm struct{ terms []Term }

func (t *minTerm) Evaluate(state, params []float64, time float64) float64 {
	best := t.terms[0].Evaluate(state, params, time)
	for _, c := range t.terms[1:] {
		if v := c.Evaluate(state, params, time); v < best {
			best = v
		}
	}
	return best
}
func (t *minTerm) VolumeEvaluate(state, params []float64, volume, time float64) float64 {
	best := t.terms[0].VolumeEvaluate(state, params, volume, time)
	for _, c := range t.terms[1:] {
		if v := c.VolumeEvaluate(state, params, volume, time); v < best {
			best = v
		}
	}
	return best
}

// Constant builds a constant-valued Term. Exposed for callers (propensity
// variants, tests) that need to build small bound trees without going
// through the parser.
func Constant(v float64) Term { return &constantTerm{v: v} }

// Species builds a Term that reads state[index].
func Species(index int) Term { return &speciesTerm{index: index} }

// Parameter builds a Term that reads params[index].
func Parameter(index int) Term { return &paramTerm{index: index} }

// Volume builds the reserved volume Term.
func Volume() Term { return &volumeTerm{} }

// TimeRef builds the reserved time Term.
func TimeRef() Term { return &timeTerm{} }
