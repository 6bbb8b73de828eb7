package crucible

import (
	"fmt"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// State is the search node: the current cell, the heading of the last move,
// and how many consecutive cells were entered in that heading.
// It is a comparable value and is used directly as a map key; the same cell
// with a different heading or run is a different node.
//
// Run == 0 marks the virtual origin, which has no heading history.
type State struct {
	Cell    gridgraph.Coord
	Heading Heading
	Run     int
}

// Origin returns the virtual start state at cell start.
func Origin(start gridgraph.Coord) State {
	return State{Cell: start}
}

// IsOrigin reports whether s is the virtual start state.
func (s State) IsOrigin() bool { return s.Run == 0 }

// Move returns the state reached by stepping once in h from s.
// Run increments when h continues the current heading and resets to 1 otherwise.
// Move does not check legality; see Policy.Allows.
func (s State) Move(h Heading) State {
	dx, dy := h.Delta()
	run := 1
	if !s.IsOrigin() && h == s.Heading {
		run = s.Run + 1
	}

	return State{Cell: s.Cell.Step(dx, dy), Heading: h, Run: run}
}

func (s State) String() string {
	if s.IsOrigin() {
		return fmt.Sprintf("%v start", s.Cell)
	}

	return fmt.Sprintf("%v %v×%d", s.Cell, s.Heading, s.Run)
}
