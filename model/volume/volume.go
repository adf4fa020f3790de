// Package volume implements the cell-volume growth/division models
// described in spec.md §4.6, used by the (externally owned) volume-SSA
// simulator loop to grow and split single-cell lineages.
package volume

import "math/rand"

// Volume models a single cell's volume trajectory between divisions.
// Implementations hold per-cell scalar state and must be deep-copied on
// division via Copy (spec §4.6, §5).
type Volume interface {
	// Initialize seeds any pre-sampled state (e.g. a division instant)
	// from the cell's initial conditions.
	Initialize(state, params []float64, time, volume float64, rng *rand.Rand) error
	// GetVolumeStep returns the volume change over [time, time+dt].
	GetVolumeStep(state, params []float64, time, volume, dt float64) float64
	// CellDivided reports whether division occurs within (time-dt, time].
	CellDivided(state, params []float64, time, volume, dt float64) bool
	// Copy returns a deep clone for a daughter cell.
	Copy() Volume
}

// NoiseOverridable is implemented by Volume variants whose noise
// parameter can be replaced after construction, so a RunConfig overlay
// (SPEC_FULL.md §A.3) can sweep noise without rebuilding the model.
type NoiseOverridable interface {
	SetNoise(float64)
}
