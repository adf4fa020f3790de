package rule

import (
	"errors"
	"fmt"

	"github.com/sclamons/bioscrape-distr/model/expr"
)

type ErrMalformed struct {
	Variant string
	Err     error
}

func (e *ErrMalformed) Error() string { return fmt.Sprintf("rule:%s: %v", e.Variant, e.Err) }
func (e *ErrMalformed) Unwrap() error { return e.Err }

func malformed(variant string, err error) error {
	return &ErrMalformed{Variant: variant, Err: err}
}

type ErrUnboundName struct{ Variant, Kind, Name string }

func (e *ErrUnboundName) Error() string {
	return fmt.Sprintf("rule:%s: %s %q not found in symbol table", e.Variant, e.Kind, e.Name)
}

func unboundName(variant, kind, name string) error {
	return &ErrUnboundName{Variant: variant, Kind: kind, Name: name}
}

var errEmptyRHS = errors.New("right-hand side has no operands")

func errDestMustBeSpecies(name string) error {
	return fmt.Errorf("target %q must be a species, not a parameter", name)
}

// stripParamMarker reports whether name is marked as a parameter target
// (spec §4.5: "the declarative '|' or the internal underscore prefix").
func stripParamMarker(name string) (string, bool) {
	return expr.SplitParameterMarker(name)
}
