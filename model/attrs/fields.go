// Package attrs defines the small attribute-dictionary contract shared by
// every propensity, delay, and rule variant's initialize/discoverability
// methods (spec §4.3-§4.5).
package attrs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Fields is the small named-attribute dictionary a declarative <propensity>,
// <delay>, or <rule> element carries (spec §4.3: "a small dictionary of
// named attributes").
type Fields map[string]string

// Get returns the raw string value for key and whether it was present.
func (f Fields) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// RequireString returns key's raw value, or a MissingAttribute error if
// absent.
func (f Fields) RequireString(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", &MissingAttribute{Key: key}
	}
	return v, nil
}

// MissingAttribute is returned by Require* when a required key is absent.
// The model assembler wraps this into MalformedReaction (spec §7).
type MissingAttribute struct{ Key string }

func (e *MissingAttribute) Error() string {
	return fmt.Sprintf("missing required attribute %q", e.Key)
}

// WarnUnknownKeys logs a warning for every key in f that is not present in
// known, per spec §4.3's "unrecognized attribute keys emit a warning but do
// not fail" contract. context identifies the caller (e.g. "propensity:hillpositive").
func WarnUnknownKeys(logger logrus.FieldLogger, f Fields, known []string, context string) {
	if logger == nil {
		return
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, k := range known {
		knownSet[k] = struct{}{}
	}
	for k := range f {
		if _, ok := knownSet[k]; !ok {
			logger.WithFields(logrus.Fields{"context": context, "attribute": k}).Warn("useless field: attribute not recognized by this variant")
		}
	}
}

// SpeciesIndex resolves a species name to its dense index in the symbol
// table, returning (_, false) if unknown.
type SpeciesIndex func(name string) (int, bool)

// ParamIndex resolves a parameter name to its dense index in the symbol
// table, returning (_, false) if unknown.
type ParamIndex func(name string) (int, bool)
