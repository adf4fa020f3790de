package volume

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// StochasticTimeThresholdVolume grows exponentially at a fixed rate
// ln2/CycleTime, independent of state, and pre-samples a division instant
// at Initialize so every Schnitz gets a deterministic division time
// regardless of subsequent stochastic firings (spec §4.6).
type StochasticTimeThresholdVolume struct {
	CycleTime       float64
	DivisionVolume  float64
	Noise           float64
	divisionTime    float64
	divisionSampled bool
}

func (v *StochasticTimeThresholdVolume) growthRate() float64 {
	return math.Ln2 / v.CycleTime
}

// Initialize pre-samples the division time, per spec §4.6:
//
//	division_time = time + N(1, Noise) · ln(DivisionVolume/volume) / growth_rate
func (v *StochasticTimeThresholdVolume) Initialize(_, _ []float64, time, volume float64, rng *rand.Rand) error {
	noiseFactor := 1.0
	if v.Noise > 0 {
		noiseFactor = distuv.Normal{Mu: 1, Sigma: v.Noise, Src: rngSource{rng}}.Rand()
	}
	v.divisionTime = time + noiseFactor*math.Log(v.DivisionVolume/volume)/v.growthRate()
	v.divisionSampled = true
	return nil
}

// GetVolumeStep returns the exact exponential-growth increment over dt.
func (v *StochasticTimeThresholdVolume) GetVolumeStep(_, _ []float64, _, volume, dt float64) float64 {
	return volume * (math.Exp(v.growthRate()*dt) - 1)
}

// CellDivided returns true exactly when the pre-sampled division time
// lies in (time-dt, time] (spec §4.6).
func (v *StochasticTimeThresholdVolume) CellDivided(_, _ []float64, time, _, dt float64) bool {
	return v.divisionSampled && v.divisionTime > time-dt && v.divisionTime <= time
}

func (v *StochasticTimeThresholdVolume) Copy() Volume {
	clone := *v
	return &clone
}

// SetNoise implements NoiseOverridable.
func (v *StochasticTimeThresholdVolume) SetNoise(noise float64) { v.Noise = noise }

type rngSource struct{ r *rand.Rand }

func (s rngSource) Uint64() uint64   { return s.r.Uint64() }
func (s rngSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }
