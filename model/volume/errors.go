package volume

import "errors"

// ErrImpossibleDivision is returned by StateDependentVolume.Initialize when
// the sampled division volume does not exceed the cell's current volume, so
// the cell could never reach it under positive growth (spec §4.6).
var ErrImpossibleDivision = errors.New("volume: sampled division volume is not greater than initial volume")
