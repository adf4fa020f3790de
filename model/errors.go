package model

import (
	"fmt"
	"sort"
	"strings"
)

// ErrUnspecifiedParameter is returned by Assemble when one or more
// parameters are referenced by a reaction, delay, or rule but have no
// <parameter> value declaration (spec §4.7, §7). Fatal: the
// message lists every missing name.
type ErrUnspecifiedParameter struct{ Names []string }

func (e *ErrUnspecifiedParameter) Error() string {
	names := append([]string{}, e.Names...)
	sort.Strings(names)
	return fmt.Sprintf("model: unspecified parameter(s): %s", strings.Join(names, ", "))
}

// ErrLookupError is returned by the name-keyed value accessors on the
// programmatic surface (SetParams, SetSpecies, GetParamValue,
// GetSpeciesValue) for an unknown species or parameter name (spec §6, §7).
// Callers that want the "-1" convention instead should use SpeciesIndex or
// ParamIndex.
type ErrLookupError struct{ Kind, Name string }

func (e *ErrLookupError) Error() string {
	return fmt.Sprintf("model: unknown %s %q", e.Kind, e.Name)
}

// ErrUnparseableReactionText is returned by ParseReactionSides when a
// reaction's text/after field does not match the "reactants -- products"
// grammar (spec §4.7, §6).
type ErrUnparseableReactionText struct{ Text string }

func (e *ErrUnparseableReactionText) Error() string {
	return fmt.Sprintf("model: malformed reaction text %q, expected \"reactants -- products\"", e.Text)
}

// ErrMalformedReaction wraps a missing-attribute or grammar error on a
// single reaction's text/after fields, propensity, or delay declaration
// (spec §7). Errors from rule declarations are returned unwrapped, as the
// rule package's own error types.
type ErrMalformedReaction struct {
	ReactionIndex int
	Err           error
}

func (e *ErrMalformedReaction) Error() string {
	return fmt.Sprintf("model: reaction %d: %v", e.ReactionIndex, e.Err)
}
func (e *ErrMalformedReaction) Unwrap() error { return e.Err }
