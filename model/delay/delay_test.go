package delay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

func paramIndexOf(names map[string]int) attrs.ParamIndex {
	return func(name string) (int, bool) { idx, ok := names[name]; return idx, ok }
}

func TestNoDelay_AlwaysZero(t *testing.T) {
	d, err := Bind(NoDelay, attrs.Fields{}, paramIndexOf(nil), nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	assert.Equal(t, 0.0, d.Sample(nil, rand.New(rand.NewSource(1))))
}

func TestFixedDelay_ReturnsParamValue(t *testing.T) {
	d, err := Bind(Fixed, attrs.Fields{"delay": "tau"}, paramIndexOf(map[string]int{"tau": 0}), nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	assert.Equal(t, 3.5, d.Sample([]float64{3.5}, rand.New(rand.NewSource(1))))
}

func TestGaussianDelay_Deterministic(t *testing.T) {
	d, err := Bind(Gaussian, attrs.Fields{"mean": "mu", "std": "sigma"}, paramIndexOf(map[string]int{"mu": 0, "sigma": 1}), nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	params := []float64{10, 2}
	a := d.Sample(params, rand.New(rand.NewSource(42)))
	b := d.Sample(params, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b, "same seed must produce identical samples")
}

func TestGammaDelay_NonNegative(t *testing.T) {
	d, err := Bind(Gamma, attrs.Fields{"k": "shape", "theta": "scale"}, paramIndexOf(map[string]int{"shape": 0, "scale": 1}), nil)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	params := []float64{2, 1.5}
	for i := 0; i < 100; i++ {
		if v := d.Sample(params, rng); v < 0 {
			t.Fatalf("gamma sample %v is negative", v)
		}
	}
}

func TestUnknownKind(t *testing.T) {
	_, err := Bind(Kind("bogus"), attrs.Fields{}, paramIndexOf(nil), nil)
	if err == nil {
		t.Fatal("expected ErrUnknownKind")
	}
}
