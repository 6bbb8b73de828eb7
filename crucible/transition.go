package crucible

import "github.com/katalvlaran/heatpath/gridgraph"

// DefaultStartHeadings are the first-move headings offered from the origin.
var DefaultStartHeadings = []Heading{East, South}

// Transition is one legal move: the resulting state and the cost of the cell entered.
type Transition struct {
	Next State
	Cost int64
}

// Successors appends to dst every legal transition out of s under p on g and
// returns the extended slice. starts lists the headings offered from the
// virtual origin; when empty, DefaultStartHeadings is used.
//
// Candidate cells outside g are pruned before any cost lookup, so the
// out-of-bounds case never surfaces as an error here.
func Successors(g *gridgraph.Grid, p Policy, s State, starts []Heading, dst []Transition) []Transition {
	if s.IsOrigin() {
		if len(starts) == 0 {
			starts = DefaultStartHeadings
		}
		for _, h := range starts {
			dst = appendMove(dst, g, s, h)
		}
		return dst
	}

	if p.CanContinue(s) {
		dst = appendMove(dst, g, s, s.Heading)
	}
	if p.CanTurn(s) {
		dst = appendMove(dst, g, s, s.Heading.Left())
		dst = appendMove(dst, g, s, s.Heading.Right())
	}

	return dst
}

func appendMove(dst []Transition, g *gridgraph.Grid, s State, h Heading) []Transition {
	next := s.Move(h)
	if !g.Contains(next.Cell) {
		return dst
	}
	// Contains was checked; CostAt cannot fail here.
	cost, _ := g.CostAt(next.Cell)

	return append(dst, Transition{Next: next, Cost: cost})
}

// Allows reports whether the single step from → to is legal under p,
// ignoring grid bounds. starts has the same meaning as in Successors.
func (p Policy) Allows(from, to State, starts []Heading) bool {
	if to.IsOrigin() || !to.Heading.Valid() {
		return false
	}
	if from.IsOrigin() {
		if len(starts) == 0 {
			starts = DefaultStartHeadings
		}
		for _, h := range starts {
			if h == to.Heading {
				return from.Move(h) == to
			}
		}
		return false
	}

	switch to.Heading {
	case from.Heading:
		return p.CanContinue(from) && from.Move(to.Heading) == to
	case from.Heading.Left(), from.Heading.Right():
		return p.CanTurn(from) && from.Move(to.Heading) == to
	default:
		// reversal
		return false
	}
}
