package delay

import "fmt"

type ErrMalformed struct {
	Variant string
	Err     error
}

func (e *ErrMalformed) Error() string { return fmt.Sprintf("delay:%s: %v", e.Variant, e.Err) }
func (e *ErrMalformed) Unwrap() error { return e.Err }

func malformed(variant string, err error) error {
	return &ErrMalformed{Variant: variant, Err: err}
}

type ErrUnboundName struct{ Variant, Name string }

func (e *ErrUnboundName) Error() string {
	return fmt.Sprintf("delay:%s: parameter %q not found in symbol table", e.Variant, e.Name)
}

func unboundName(variant, name string) error {
	return &ErrUnboundName{Variant: variant, Name: name}
}
