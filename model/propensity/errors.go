package propensity

import "fmt"

// ErrMalformed wraps a missing/invalid attribute error with the variant
// that raised it (spec §7: MalformedReaction).
type ErrMalformed struct {
	Variant string
	Err     error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("propensity:%s: %v", e.Variant, e.Err)
}
func (e *ErrMalformed) Unwrap() error { return e.Err }

func malformed(variant string, err error) error {
	return &ErrMalformed{Variant: variant, Err: err}
}

// ErrInvalidStoichiometry is returned when a mass-action species product
// string contains '+' or '-' (spec §4.3, §7).
type ErrInvalidStoichiometry struct{ Field string }

func (e *ErrInvalidStoichiometry) Error() string {
	return fmt.Sprintf("propensity: invalid stoichiometry in field %q: expected '*'-separated species, found '+' or '-'", e.Field)
}

// ErrUnboundName is returned at Bind time when a discovered name did not
// make it into the final symbol table — an assembler invariant violation,
// not expected to occur once discovery has run.
type ErrUnboundName struct {
	Variant, Kind, Name string
}

func (e *ErrUnboundName) Error() string {
	return fmt.Sprintf("propensity:%s: %s %q not found in symbol table", e.Variant, e.Kind, e.Name)
}

func unboundName(variant, kind, name string) error {
	return &ErrUnboundName{Variant: variant, Kind: kind, Name: name}
}
