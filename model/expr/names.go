package expr

import "strings"

// ParameterMarker is the declarative-document prefix for parameter
// references inside a rate string or rule equation (spec §4.1, §6).
const ParameterMarker = "|"

// InternalParameterPrefix is the rewritten form ParameterMarker is turned
// into once the name reaches assembler internals (spec §4.5: "the
// declarative '|' or the internal underscore prefix").
const InternalParameterPrefix = "_"

// SplitParameterMarker reports whether name is marked as a parameter
// reference (either the declarative '|' form or the internal '_' form) and
// returns the name with the marker stripped.
func SplitParameterMarker(name string) (stripped string, isParam bool) {
	if strings.HasPrefix(name, ParameterMarker) {
		return strings.TrimPrefix(name, ParameterMarker), true
	}
	if strings.HasPrefix(name, InternalParameterPrefix) {
		return strings.TrimPrefix(name, InternalParameterPrefix), true
	}
	return name, false
}
