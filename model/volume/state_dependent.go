package volume

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sclamons/bioscrape-distr/model/expr"
)

// StateDependentVolume grows at a rate computed each step from an arbitrary
// expression over the current state, rather than a fixed exponential
// schedule (spec §4.6). Division volume is sampled once at Initialize as
// N(1, Noise) · MeanDivisionVolume.
type StateDependentVolume struct {
	GrowthRate          expr.Term
	MeanDivisionVolume  float64
	Noise               float64
	divisionVolume      float64
	divisionVolumeKnown bool
}

// Initialize samples the division volume and rejects cells that could
// never reach it from their starting volume.
func (v *StateDependentVolume) Initialize(_, _ []float64, _, volume float64, rng *rand.Rand) error {
	noiseFactor := 1.0
	if v.Noise > 0 {
		noiseFactor = distuv.Normal{Mu: 1, Sigma: v.Noise, Src: rngSource{rng}}.Rand()
	}
	v.divisionVolume = noiseFactor * v.MeanDivisionVolume
	v.divisionVolumeKnown = true
	if v.divisionVolume <= volume {
		return ErrImpossibleDivision
	}
	return nil
}

// GetVolumeStep takes a first-order Euler step using the growth-rate
// expression evaluated against the current state.
func (v *StateDependentVolume) GetVolumeStep(state, params []float64, time, _, dt float64) float64 {
	return v.GrowthRate.Evaluate(state, params, time) * dt
}

// CellDivided fires once volume has crossed the sampled threshold.
func (v *StateDependentVolume) CellDivided(_, _ []float64, _, volume, _ float64) bool {
	return v.divisionVolumeKnown && volume > v.divisionVolume
}

func (v *StateDependentVolume) Copy() Volume {
	clone := *v
	return &clone
}

// SetNoise implements NoiseOverridable.
func (v *StateDependentVolume) SetNoise(noise float64) { v.Noise = noise }
