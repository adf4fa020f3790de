// Package delay implements the closed catalog of reaction-firing delay
// distributions described in spec.md §4.4.
package delay

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sclamons/bioscrape-distr/model/attrs"
)

// Delay samples a waiting time once per reaction firing. NoDelay and Gamma
// draws are non-negative and Fixed returns its parameter value; a Gaussian
// delay returns its raw draw, which can be negative, unless clamping has
// been switched on (see Clampable). Implementations receive a *rand.Rand so sampling stays deterministic
// under the model's PartitionedRNG (spec §5).
type Delay interface {
	Sample(params []float64, rng *rand.Rand) float64
}

// Kind identifies one of the catalog's closed set of variants.
type Kind string

const (
	NoDelay  Kind = "none"
	Fixed    Kind = "fixed"
	Gaussian Kind = "gaussian"
	Gamma    Kind = "gamma"
)

var ValidKinds = map[Kind]bool{NoDelay: true, Fixed: true, Gaussian: true, Gamma: true}

// ErrUnknownKind is returned for a type name outside ValidKinds (spec §7:
// UnknownDelayType).
type ErrUnknownKind struct{ Kind string }

func (e *ErrUnknownKind) Error() string { return fmt.Sprintf("delay: unknown type %q", e.Kind) }

func GetSpeciesAndParameters(kind Kind, f attrs.Fields) (species, params []string, err error) {
	switch kind {
	case NoDelay:
		return nil, nil, nil
	case Fixed:
		return fixedNames(f)
	case Gaussian:
		return gaussianNames(f)
	case Gamma:
		return gammaNames(f)
	default:
		return nil, nil, &ErrUnknownKind{Kind: string(kind)}
	}
}

func Bind(kind Kind, f attrs.Fields, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Delay, error) {
	switch kind {
	case NoDelay:
		attrs.WarnUnknownKeys(logger, f, nil, "delay:none")
		return &noDelay{}, nil
	case Fixed:
		return bindFixed(f, paramIndex, logger)
	case Gaussian:
		return bindGaussian(f, paramIndex, logger)
	case Gamma:
		return bindGamma(f, paramIndex, logger)
	default:
		return nil, &ErrUnknownKind{Kind: string(kind)}
	}
}

type noDelay struct{}

func (*noDelay) Sample(_ []float64, _ *rand.Rand) float64 { return 0.0 }

type fixedDelay struct{ delay int }

func (d *fixedDelay) Sample(params []float64, _ *rand.Rand) float64 { return params[d.delay] }

var fixedKnownKeys = []string{"delay"}

func fixedNames(f attrs.Fields) (species, params []string, err error) {
	d, err := f.RequireString("delay")
	if err != nil {
		return nil, nil, malformed("fixed", err)
	}
	return nil, []string{d}, nil
}

func bindFixed(f attrs.Fields, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Delay, error) {
	attrs.WarnUnknownKeys(logger, f, fixedKnownKeys, "delay:fixed")
	dName, err := f.RequireString("delay")
	if err != nil {
		return nil, malformed("fixed", err)
	}
	dIdx, ok := paramIndex(dName)
	if !ok {
		return nil, unboundName("fixed", dName)
	}
	return &fixedDelay{delay: dIdx}, nil
}

// gaussianDelay samples N(mean, std). ClampNegative is a documented
// convenience (spec §9 open question; SPEC_FULL.md §C.5) and defaults to
// false, matching spec.md's "returns them as-is" behavior.
type gaussianDelay struct {
	mean, std     int
	ClampNegative bool
}

func (d *gaussianDelay) Sample(params []float64, rng *rand.Rand) float64 {
	dist := distuv.Normal{Mu: params[d.mean], Sigma: params[d.std], Src: rngSource{rng}}
	v := dist.Rand()
	if d.ClampNegative && v < 0 {
		return 0
	}
	return v
}

// SetClampNegative lets a caller opt a bound Gaussian delay into clamping
// negative draws to zero after assembly (SPEC_FULL.md §A.3's RunConfig
// overlay), without the declarative document needing a new attribute.
func (d *gaussianDelay) SetClampNegative(clamp bool) { d.ClampNegative = clamp }

// Clampable is implemented by Delay variants whose negative-draw behavior
// can be toggled post-assembly. Only Gaussian delays can draw negative in
// the first place, so Fixed/Gamma/NoDelay do not implement it.
type Clampable interface {
	SetClampNegative(bool)
}

var gaussianKnownKeys = []string{"mean", "std"}

func gaussianNames(f attrs.Fields) (species, params []string, err error) {
	mean, err := f.RequireString("mean")
	if err != nil {
		return nil, nil, malformed("gaussian", err)
	}
	std, err := f.RequireString("std")
	if err != nil {
		return nil, nil, malformed("gaussian", err)
	}
	return nil, []string{mean, std}, nil
}

func bindGaussian(f attrs.Fields, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Delay, error) {
	attrs.WarnUnknownKeys(logger, f, gaussianKnownKeys, "delay:gaussian")
	meanName, err := f.RequireString("mean")
	if err != nil {
		return nil, malformed("gaussian", err)
	}
	stdName, err := f.RequireString("std")
	if err != nil {
		return nil, malformed("gaussian", err)
	}
	meanIdx, ok := paramIndex(meanName)
	if !ok {
		return nil, unboundName("gaussian", meanName)
	}
	stdIdx, ok := paramIndex(stdName)
	if !ok {
		return nil, unboundName("gaussian", stdName)
	}
	return &gaussianDelay{mean: meanIdx, std: stdIdx}, nil
}

// gammaDelay samples Gamma(shape=k, scale=theta).
type gammaDelay struct{ k, theta int }

func (d *gammaDelay) Sample(params []float64, rng *rand.Rand) float64 {
	dist := distuv.Gamma{Alpha: params[d.k], Beta: 1.0 / params[d.theta], Src: rngSource{rng}}
	return dist.Rand()
}

var gammaKnownKeys = []string{"k", "theta"}

func gammaNames(f attrs.Fields) (species, params []string, err error) {
	k, err := f.RequireString("k")
	if err != nil {
		return nil, nil, malformed("gamma", err)
	}
	theta, err := f.RequireString("theta")
	if err != nil {
		return nil, nil, malformed("gamma", err)
	}
	return nil, []string{k, theta}, nil
}

func bindGamma(f attrs.Fields, paramIndex attrs.ParamIndex, logger logrus.FieldLogger) (Delay, error) {
	attrs.WarnUnknownKeys(logger, f, gammaKnownKeys, "delay:gamma")
	kName, err := f.RequireString("k")
	if err != nil {
		return nil, malformed("gamma", err)
	}
	thetaName, err := f.RequireString("theta")
	if err != nil {
		return nil, malformed("gamma", err)
	}
	kIdx, ok := paramIndex(kName)
	if !ok {
		return nil, unboundName("gamma", kName)
	}
	thetaIdx, ok := paramIndex(thetaName)
	if !ok {
		return nil, unboundName("gamma", thetaName)
	}
	return &gammaDelay{k: kIdx, theta: thetaIdx}, nil
}

// rngSource adapts *rand.Rand to the random-source interface (Uint64 and
// Seed) that distuv's Src field expects,
// keeping sampling on the model's PartitionedRNG instead of a package
// global (spec §5: no hidden shared state between concurrent evaluators).
type rngSource struct{ r *rand.Rand }

func (s rngSource) Uint64() uint64     { return s.r.Uint64() }
func (s rngSource) Seed(seed uint64)   { s.r.Seed(int64(seed)) }
