package model

// SymbolTable holds the two injective name -> dense-index mappings the
// rest of the model core binds against: species_name -> index and
// parameter_name -> index, built monotonically at discovery time
// (spec §3). Once assigned, an index never changes.
type SymbolTable struct {
	speciesIndex map[string]int
	speciesNames []string
	paramIndex   map[string]int
	paramNames   []string
}

// NewSymbolTable returns an empty table ready for interning.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		speciesIndex: make(map[string]int),
		paramIndex:   make(map[string]int),
	}
}

// InternSpecies returns name's index, assigning the next free index on
// first sight (spec §3: "insertion assigns the next free index").
func (t *SymbolTable) InternSpecies(name string) int {
	if idx, ok := t.speciesIndex[name]; ok {
		return idx
	}
	idx := len(t.speciesNames)
	t.speciesIndex[name] = idx
	t.speciesNames = append(t.speciesNames, name)
	return idx
}

// InternParameter returns name's index, assigning the next free index on
// first sight.
func (t *SymbolTable) InternParameter(name string) int {
	if idx, ok := t.paramIndex[name]; ok {
		return idx
	}
	idx := len(t.paramNames)
	t.paramIndex[name] = idx
	t.paramNames = append(t.paramNames, name)
	return idx
}

// SpeciesIndex satisfies attrs.SpeciesIndex: it never interns, only looks
// up names already seen during discovery.
func (t *SymbolTable) SpeciesIndex(name string) (int, bool) {
	idx, ok := t.speciesIndex[name]
	return idx, ok
}

// ParamIndex satisfies attrs.ParamIndex.
func (t *SymbolTable) ParamIndex(name string) (int, bool) {
	idx, ok := t.paramIndex[name]
	return idx, ok
}

// SpeciesNames returns the species names in index order.
func (t *SymbolTable) SpeciesNames() []string { return append([]string{}, t.speciesNames...) }

// ParamNames returns the parameter names in index order.
func (t *SymbolTable) ParamNames() []string { return append([]string{}, t.paramNames...) }

// NumSpecies and NumParams report the current table size.
func (t *SymbolTable) NumSpecies() int { return len(t.speciesNames) }
func (t *SymbolTable) NumParams() int  { return len(t.paramNames) }
