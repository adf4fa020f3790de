package volume

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sclamons/bioscrape-distr/model/expr"
)

func TestStochasticTimeThresholdVolume_Scenario5(t *testing.T) {
	v := &StochasticTimeThresholdVolume{CycleTime: 33, DivisionVolume: 2, Noise: 0}
	rng := rand.New(rand.NewSource(1))

	err := v.Initialize(nil, nil, 0, 1, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.InDelta(t, math.Ln2/33, v.growthRate(), 1e-12)
	assert.InDelta(t, 33.0, v.divisionTime, 1e-9)

	assert.True(t, v.CellDivided(nil, nil, 33.0, 0, 0.1))
	assert.False(t, v.CellDivided(nil, nil, 32.8, 0, 0.1))
}

func TestStochasticTimeThresholdVolume_Copy(t *testing.T) {
	v := &StochasticTimeThresholdVolume{CycleTime: 33, DivisionVolume: 2}
	rng := rand.New(rand.NewSource(1))
	_ = v.Initialize(nil, nil, 0, 1, rng)

	clone := v.Copy().(*StochasticTimeThresholdVolume)
	assert.Equal(t, v.divisionTime, clone.divisionTime)

	// mutating the clone's pre-sampled state must not affect the original
	clone.divisionTime = -1
	assert.NotEqual(t, v.divisionTime, clone.divisionTime)
}

func TestStateDependentVolume_DivisionVolumeSampled(t *testing.T) {
	rate, err := expr.Parse("0.05 * x")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	term, err := rate.Bind(
		func(name string) (int, bool) {
			if name == "x" {
				return 0, true
			}
			return 0, false
		},
		func(string) (int, bool) { return 0, false },
	)
	if err != nil {
		t.Fatalf("unexpected bind error: %v", err)
	}

	v := &StateDependentVolume{GrowthRate: term, MeanDivisionVolume: 2, Noise: 0}
	rng := rand.New(rand.NewSource(1))
	if err := v.Initialize(nil, nil, 0, 1, rng); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 2.0, v.divisionVolume)

	state := []float64{10}
	step := v.GetVolumeStep(state, nil, 0, 1, 1)
	assert.InDelta(t, 0.5, step, 1e-9)

	assert.False(t, v.CellDivided(nil, nil, 0, 1.5, 0))
	assert.True(t, v.CellDivided(nil, nil, 0, 2.5, 0))
}

func TestStateDependentVolume_ImpossibleDivision(t *testing.T) {
	v := &StateDependentVolume{GrowthRate: expr.Constant(1), MeanDivisionVolume: 1, Noise: 0}
	rng := rand.New(rand.NewSource(1))
	err := v.Initialize(nil, nil, 0, 5, rng)
	assert.ErrorIs(t, err, ErrImpossibleDivision)
}
