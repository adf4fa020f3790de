package lineage

// Lineage owns a forest of Schnitzes: one root per ancestor cell alive at
// the start of tracking, with divisions threaded through Parent/Daughter1/
// Daughter2 pointers (spec §3).
type Lineage struct {
	Roots []*Schnitz
}

// allNodes walks the forest and returns every reachable Schnitz.
func (l *Lineage) allNodes() []*Schnitz {
	var out []*Schnitz
	var visit func(s *Schnitz)
	visit = func(s *Schnitz) {
		if s == nil {
			return
		}
		out = append(out, s)
		visit(s.Daughter1)
		visit(s.Daughter2)
	}
	for _, r := range l.Roots {
		visit(r)
	}
	return out
}

// clip returns a copy of s's sample arrays restricted to time <= end,
// assuming (as Prune checks before calling it) that s.StartTime() is
// already >= start.
func clip(s *Schnitz, end float64) *Schnitz {
	clone := &Schnitz{ID: s.ID}
	for i, t := range s.Time {
		if t > end {
			break
		}
		clone.Time = append(clone.Time, t)
		clone.Data = append(clone.Data, s.Data[i])
		clone.Volume = append(clone.Volume, s.Volume[i])
	}
	return clone
}

// Prune returns a new Lineage containing only Schnitzes that began within
// the window [start, end], with trailing samples past end trimmed off and
// dangling parent/daughter pointers cleared (spec §4.6, §8 scenario 6).
//
// A Schnitz that began before start is dropped outright rather than
// partially trimmed: its start time is a division event, and shifting it
// would misrepresent when that cell was born. Schnitzes that began within
// the window keep their start time and only lose samples past end.
func (l *Lineage) Prune(start, end float64) *Lineage {
	nodes := l.allNodes()
	kept := make(map[string]*Schnitz, len(nodes))

	for _, s := range nodes {
		if len(s.Time) == 0 || s.StartTime() < start {
			continue
		}
		clone := clip(s, end)
		if len(clone.Time) == 0 {
			continue
		}
		kept[s.ID] = clone
	}

	for _, s := range nodes {
		clone, ok := kept[s.ID]
		if !ok {
			continue
		}
		if s.Parent != nil {
			clone.Parent = kept[s.Parent.ID]
		}
		if s.Daughter1 != nil {
			clone.Daughter1 = kept[s.Daughter1.ID]
		}
		if s.Daughter2 != nil {
			clone.Daughter2 = kept[s.Daughter2.ID]
		}
	}

	pruned := &Lineage{}
	for _, s := range nodes {
		clone, ok := kept[s.ID]
		if !ok {
			continue
		}
		if clone.Parent == nil {
			pruned.Roots = append(pruned.Roots, clone)
		}
	}
	return pruned
}
