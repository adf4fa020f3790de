// Package rule implements the assignment-rule catalog described in
// spec.md §4.5. Rules run once per simulator step, in declaration order,
// and may mutate either the state or the parameter vector.
package rule

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// Rule is a repeated assignment evaluated once per simulator step. Apply
// writes its result into state or params in place (spec §4.5).
type Rule interface {
	Apply(state, params []float64, time float64)
}

// Kind identifies one of the catalog's closed set of variants.
type Kind string

const (
	Additive   Kind = "additive"
	Assignment Kind = "assignment"
)

var ValidKinds = map[Kind]bool{Additive: true, Assignment: true}

// Frequency is the only rule scheduling mode spec.md recognizes.
type Frequency string

const Repeated Frequency = "repeated"

// ErrUnknownKind is returned for a type name outside ValidKinds (spec §7:
// UnknownRuleType).
type ErrUnknownKind struct{ Kind string }

func (e *ErrUnknownKind) Error() string { return fmt.Sprintf("rule: unknown type %q", e.Kind) }

// ErrUnsupportedFrequency is returned when a rule declares a frequency
// other than "repeated" (spec §4.5, §7).
type ErrUnsupportedFrequency struct{ Frequency string }

func (e *ErrUnsupportedFrequency) Error() string {
	return fmt.Sprintf("rule: unsupported frequency %q (only %q is supported)", e.Frequency, Repeated)
}

// CheckFrequency validates a rule's declared frequency attribute.
func CheckFrequency(freq string) error {
	if Frequency(freq) != Repeated {
		return &ErrUnsupportedFrequency{Frequency: freq}
	}
	return nil
}

// Equation is a parsed "lhs = rhs" rule equation, split once and reused by
// both catalog variants (spec §6: equation="lhs = rhs").
type Equation struct {
	LHS, RHS string
}

// ParseEquation splits a rule's "lhs = rhs" equation attribute on the
// first '=' (spec §4.5, §6).
func ParseEquation(equation string) (Equation, error) {
	idx := strings.IndexByte(equation, '=')
	if idx < 0 {
		return Equation{}, &ErrMalformed{Variant: "equation", Err: fmt.Errorf("missing '=' in %q", equation)}
	}
	lhs := strings.TrimSpace(equation[:idx])
	rhs := strings.TrimSpace(equation[idx+1:])
	if lhs == "" || rhs == "" {
		return Equation{}, &ErrMalformed{Variant: "equation", Err: fmt.Errorf("empty side in %q", equation)}
	}
	return Equation{LHS: lhs, RHS: rhs}, nil
}

func GetSpeciesAndParameters(kind Kind, f attrs.Fields) (species, params []string, err error) {
	switch kind {
	case Additive:
		return additiveNames(f)
	case Assignment:
		return generalAssignmentNames(f)
	default:
		return nil, nil, &ErrUnknownKind{Kind: string(kind)}
	}
}

func Bind(kind Kind, f attrs.Fields, speciesIndex attrs.SpeciesIndex, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Rule, error) {
	switch kind {
	case Additive:
		return bindAdditive(f, speciesIndex, logger)
	case Assignment:
		return bindGeneralAssignment(f, speciesIndex, paramIndex, logger)
	default:
		return nil, &ErrUnknownKind{Kind: string(kind)}
	}
}
