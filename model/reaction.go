package model

import (
	"github.com/sclamons/bioscrape-distr/model/delay"
	"github.com/sclamons/bioscrape-distr/model/propensity"
)

// Reaction binds one declarative <reaction> to its evaluation-ready
// propensity and delay, plus its immediate and delayed stoichiometry
// columns (spec §3). Net change per firing is Immediate applied now plus
// Delayed applied once the sampled delay elapses.
type Reaction struct {
	Propensity propensity.Propensity
	Delay      delay.Delay
	Immediate  map[int]int // species index -> signed stoichiometry
	Delayed    map[int]int
}

// StoichiometryMatrix holds the dense update/delay_update arrays consumed
// by the external simulator loop (spec §3): update[species][reaction] and
// delay_update[species][reaction].
type StoichiometryMatrix struct {
	Update      [][]int
	DelayUpdate [][]int
}

// NewStoichiometryMatrix allocates a zeroed |species| x |reactions| pair of
// matrices.
func NewStoichiometryMatrix(numSpecies, numReactions int) *StoichiometryMatrix {
	m := &StoichiometryMatrix{
		Update:      make([][]int, numSpecies),
		DelayUpdate: make([][]int, numSpecies),
	}
	for i := range m.Update {
		m.Update[i] = make([]int, numReactions)
		m.DelayUpdate[i] = make([]int, numReactions)
	}
	return m
}

// set records reaction index r's immediate/delayed columns from the
// per-species delta maps built by StoichiometryDelta.
func (m *StoichiometryMatrix) set(r int, immediate, delayed map[int]int) {
	for species, delta := range immediate {
		m.Update[species][r] = delta
	}
	for species, delta := range delayed {
		m.DelayUpdate[species][r] = delta
	}
}
