package model

import (
	"encoding/xml"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sclamons/bioscrape-distr/model/volume"
)

func TestLoadRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	contents := `
seed: 42
param_overrides:
  k: 3.5
volume:
  noise: 0.1
strict_mode: true
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !assert.NotNil(t, cfg.Seed) {
		return
	}
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, 3.5, cfg.ParamOverrides["k"])
	assert.True(t, cfg.StrictMode)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestRunConfig_ValidateRejectsNegativeNoise(t *testing.T) {
	noise := -1.0
	cfg := &RunConfig{Volume: VolumeConfig{Noise: &noise}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for negative noise")
	}
}

func TestRunConfig_ApplyOverridesModel(t *testing.T) {
	var doc Document
	if err := xml.Unmarshal([]byte(`
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <species name="X" value="0"/>
</model>`), &doc); err != nil {
		t.Fatalf("unexpected XML error: %v", err)
	}

	m, err := Assemble(&doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params := m.ParamValues().Clone()
	state := m.SpeciesValues().Clone()
	cfg := &RunConfig{ParamOverrides: map[string]float64{"k": 99}}
	if _, err := cfg.Apply(m, params, state, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 99.0, params[m.ParamIndex("k")])
}

func TestRunConfig_ApplyDerivesDeterministicRNGFromSeed(t *testing.T) {
	var doc Document
	if err := xml.Unmarshal([]byte(`
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <species name="X" value="0"/>
</model>`), &doc); err != nil {
		t.Fatalf("unexpected XML error: %v", err)
	}
	m, err := Assemble(&doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seed := int64(7)
	cfg := &RunConfig{Seed: &seed}
	rngA, err := cfg.Apply(m, m.ParamValues().Clone(), m.SpeciesValues().Clone(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rngB, err := cfg.Apply(m, m.ParamValues().Clone(), m.SpeciesValues().Clone(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, rngA.ForSubsystem(SubsystemDelay).Float64(), rngB.ForSubsystem(SubsystemDelay).Float64())
}

func TestRunConfig_ApplyOverridesVolumeNoise(t *testing.T) {
	noise := 0.25
	cfg := &RunConfig{Volume: VolumeConfig{Noise: &noise}}
	vol := &volume.StochasticTimeThresholdVolume{CycleTime: 30, DivisionVolume: 2}

	var doc Document
	if err := xml.Unmarshal([]byte(`
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="none"/>
  </reaction>
  <parameter name="k" value="1"/>
  <species name="X" value="0"/>
</model>`), &doc); err != nil {
		t.Fatalf("unexpected XML error: %v", err)
	}
	m, err := Assemble(&doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cfg.Apply(m, m.ParamValues().Clone(), m.SpeciesValues().Clone(), vol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 0.25, vol.Noise)
}

func TestRunConfig_ApplyClampsNegativeGaussianDelays(t *testing.T) {
	var doc Document
	if err := xml.Unmarshal([]byte(`
<model>
  <reaction text="-- X">
    <propensity type="constitutive" k="k"/>
    <delay type="gaussian" mean="mean" std="std"/>
  </reaction>
  <parameter name="k" value="1"/>
  <parameter name="mean" value="0"/>
  <parameter name="std" value="1"/>
  <species name="X" value="0"/>
</model>`), &doc); err != nil {
		t.Fatalf("unexpected XML error: %v", err)
	}

	m, err := Assemble(&doc, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := &RunConfig{ClampNegativeDelays: true}
	if _, err := cfg.Apply(m, m.ParamValues().Clone(), m.SpeciesValues().Clone(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	d := m.Delays()[0]
	for i := 0; i < 200; i++ {
		if !assert.GreaterOrEqual(t, d.Sample(m.ParamValues(), rng), 0.0) {
			return
		}
	}
}
