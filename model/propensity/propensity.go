// Package propensity implements the closed catalog of reaction rate-law
// shapes described in spec.md §4.3. Every variant carries only dense
// indices into the state/parameter vectors after binding; none retain
// owned strings.
package propensity

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
	"github.com/sclamons/bioscrape-distr/model/expr"
)

// Propensity is the instantaneous reaction rate given state, parameters,
// and (optionally) an explicit cell volume (spec §4.3).
type Propensity interface {
	// GetPropensity returns the non-volume-aware rate.
	GetPropensity(state, params []float64, time float64) float64
	// GetVolumePropensity returns the volume-aware rate.
	GetVolumePropensity(state, params []float64, volume, time float64) float64
}

// Kind identifies one of the catalog's closed set of variants.
type Kind string

const (
	Constitutive             Kind = "constitutive"
	Unimolecular             Kind = "unimolecular"
	Bimolecular              Kind = "bimolecular"
	MassAction               Kind = "massaction"
	HillPositive             Kind = "hillpositive"
	HillNegative             Kind = "hillnegative"
	ProportionalHillPositive Kind = "proportionalhillpositive"
	ProportionalHillNegative Kind = "proportionalhillnegative"
	General                  Kind = "general"
)

// ValidKinds is the set of recognized propensity type names (spec §6).
var ValidKinds = map[Kind]bool{
	Constitutive: true, Unimolecular: true, Bimolecular: true, MassAction: true,
	HillPositive: true, HillNegative: true, ProportionalHillPositive: true,
	ProportionalHillNegative: true, General: true,
}

// ErrUnknownKind is returned by GetSpeciesAndParameters/Bind for a type name
// outside ValidKinds (spec §7: UnknownPropensityType).
type ErrUnknownKind struct{ Kind string }

func (e *ErrUnknownKind) Error() string { return fmt.Sprintf("propensity: unknown type %q", e.Kind) }

// GetSpeciesAndParameters surfaces the free species and parameter names an
// unbound attribute dictionary references, without requiring a symbol
// table (spec §4.3 discoverability contract). The model assembler calls
// this during its discovery phase to intern names before Bind.
func GetSpeciesAndParameters(kind Kind, f attrs.Fields) (species, params []string, err error) {
	switch kind {
	case Constitutive:
		return constitutiveNames(f)
	case Unimolecular:
		return unimolecularNames(f)
	case Bimolecular:
		return bimolecularNames(f)
	case MassAction:
		return massActionNames(f)
	case HillPositive, HillNegative:
		return hillNames(f)
	case ProportionalHillPositive, ProportionalHillNegative:
		return proportionalHillNames(f)
	case General:
		return generalNames(f)
	default:
		return nil, nil, &ErrUnknownKind{Kind: string(kind)}
	}
}

// Bind resolves an attribute dictionary against the final symbol table and
// produces an evaluation-ready Propensity (spec §4.3 binding contract).
// Unrecognized attribute keys are logged as warnings, never failures.
func Bind(kind Kind, f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Propensity, error) {
	switch kind {
	case Constitutive:
		return bindConstitutive(f, paramIndex, logger)
	case Unimolecular:
		return bindUnimolecular(f, speciesIndex, paramIndex, logger)
	case Bimolecular:
		return bindBimolecular(f, speciesIndex, paramIndex, logger)
	case MassAction:
		return bindMassAction(f, speciesIndex, paramIndex, logger)
	case HillPositive:
		return bindHill(f, speciesIndex, paramIndex, logger, false)
	case HillNegative:
		return bindHill(f, speciesIndex, paramIndex, logger, true)
	case ProportionalHillPositive:
		return bindProportionalHill(f, speciesIndex, paramIndex, logger, false)
	case ProportionalHillNegative:
		return bindProportionalHill(f, speciesIndex, paramIndex, logger, true)
	case General:
		return bindGeneral(f, speciesIndex, paramIndex, logger)
	default:
		return nil, &ErrUnknownKind{Kind: string(kind)}
	}
}

// generalTerm is shared plumbing for the General variant: it just forwards
// to an already-bound expr.Term.
type generalTerm struct{ term expr.Term }

func (g *generalTerm) GetPropensity(state, params []float64, time float64) float64 {
	return g.term.Evaluate(state, params, time)
}
func (g *generalTerm) GetVolumePropensity(state, params []float64, volume, time float64) float64 {
	return g.term.VolumeEvaluate(state, params, volume, time)
}
