package model

import "strings"

// ParseReactionSides parses the "reactants -- products" grammar shared by a
// reaction's text (immediate stoichiometry) and after (delayed
// stoichiometry) fields (spec §4.7, §6). Either side may be empty (e.g.
// "-- X" for a pure production, "X --" for a pure decay). Species on a
// side are '+'-separated; repeats accumulate stoichiometry coefficient > 1.
func ParseReactionSides(text string) (reactants, products []string, err error) {
	idx := strings.Index(text, "--")
	if idx < 0 {
		return nil, nil, &ErrUnparseableReactionText{Text: text}
	}
	reactants = splitSide(text[:idx])
	products = splitSide(text[idx+2:])
	return reactants, products, nil
}

func splitSide(side string) []string {
	side = strings.TrimSpace(side)
	if side == "" {
		return nil
	}
	parts := strings.Split(side, "+")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StoichiometryDelta accumulates reactants (-1 each) and products (+1 each)
// into a per-species net-change map, for one side of a parsed reaction.
func StoichiometryDelta(reactants, products []string) map[string]int {
	delta := make(map[string]int)
	for _, r := range reactants {
		delta[r]--
	}
	for _, p := range products {
		delta[p]++
	}
	return delta
}
