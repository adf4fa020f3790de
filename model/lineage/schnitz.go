// Package lineage implements the Schnitz tree that records a single-cell
// lineage's volume trajectory across divisions, and the time-windowed
// pruning operation used to bound memory on long-running simulations
// (spec.md §3, §4.6, §8 scenario 6).
package lineage

import "github.com/google/uuid"

// Schnitz is one contiguous stretch of a cell's trajectory between its
// birth and its division (or the end of the simulation). Data holds the
// sampled (time, state) trace; Volume holds the paired volume trace.
type Schnitz struct {
	ID   string
	Time []float64
	Data [][]float64
	Volume []float64

	Parent    *Schnitz
	Daughter1 *Schnitz
	Daughter2 *Schnitz
}

// NewSchnitz allocates a Schnitz with a fresh stable identifier, suitable
// for cross-referencing in exported trees (spec §4.6).
func NewSchnitz(parent *Schnitz) *Schnitz {
	return &Schnitz{
		ID:     uuid.Must(uuid.NewV7()).String(),
		Parent: parent,
	}
}

// Divide splits s into two daughters sharing s as their parent, mirroring
// the volume model's CellDivided contract: the caller appends no further
// samples to s once divided.
func (s *Schnitz) Divide() (d1, d2 *Schnitz) {
	d1 = NewSchnitz(s)
	d2 = NewSchnitz(s)
	s.Daughter1, s.Daughter2 = d1, d2
	return d1, d2
}

// Append records one more (time, state, volume) sample on this Schnitz.
func (s *Schnitz) Append(time float64, state []float64, volume float64) {
	s.Time = append(s.Time, time)
	s.Data = append(s.Data, state)
	s.Volume = append(s.Volume, volume)
}

// StartTime and EndTime report the Schnitz's sampled time window. A
// Schnitz with no samples reports (0, 0).
func (s *Schnitz) StartTime() float64 {
	if len(s.Time) == 0 {
		return 0
	}
	return s.Time[0]
}

func (s *Schnitz) EndTime() float64 {
	if len(s.Time) == 0 {
		return 0
	}
	return s.Time[len(s.Time)-1]
}
