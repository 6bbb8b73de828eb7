// Package dijkstra defines core types and configuration options
// for the run-length constrained uniform-cost search over a cost grid.
//
// The search runs Dijkstra's algorithm over crucible.State nodes rather than
// bare cells: a node is (cell, heading, run length), and its legal
// successors come from crucible.Successors.
//
// Complexity:
//
//	– Time:  O(S log S)   where S = W × H × 4 × MaxRun states
//	   • Each state is finalized at most once.
//	   • Each state has at most 3 successors, so pushes are bounded by 3S.
//	– Space: O(S)
//	   • Tentative-cost, finalized and (optional) predecessor maps.
//	   • Up to 3S entries in the frontier under lazy decrease-key.
//
// Options:
//
//	– ReturnPath:     if true, reconstruct the optimal sequence of states.
//	– MaxDistance:    states whose cost would exceed this value are never pushed.
//	– MaxExpansions:  caller-imposed cap on finalized states (0 = none).
//	– Ctx:            cancellation, polled every ctxPollInterval pops.
//	– StartHeadings:  first-move headings from the virtual origin.
//	– Logger:         logrus.FieldLogger for Debug tracing; silent by default.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid pointer is nil.
//	– ErrStartOutOfBounds  if start lies outside the grid.
//	– ErrGoalOutOfBounds   if goal lies outside the grid.
//	– ErrUnreachable       if no goal state is reachable under the policy.
//	– ErrExpansionLimit    if MaxExpansions was reached first.
//	– ErrCostOverflow      if an accumulated cost would exceed math.MaxInt64.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrInvalidPath       from Result.Verify when a path breaks a rule.
//	– crucible.ErrInvalidPolicy is passed through from policy validation.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates that the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start cell out of bounds")

	// ErrGoalOutOfBounds indicates that the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("dijkstra: goal cell out of bounds")

	// ErrUnreachable indicates that the frontier emptied before any goal state
	// was popped. This is an expected outcome for some policy/grid combinations.
	ErrUnreachable = errors.New("dijkstra: goal unreachable under policy")

	// ErrExpansionLimit indicates that the caller-imposed MaxExpansions cap
	// stopped the search before it could decide.
	ErrExpansionLimit = errors.New("dijkstra: expansion limit reached")

	// ErrCostOverflow indicates an accumulated cost that does not fit in int64.
	ErrCostOverflow = errors.New("dijkstra: accumulated cost overflows int64")

	// ErrInvalidPath indicates a Result path that breaks a movement rule.
	ErrInvalidPath = errors.New("dijkstra: path violates movement rules")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// ctxPollInterval is how many frontier pops happen between context checks.
const ctxPollInterval = 1024

// Status is the engine's control state.
type Status int

const (
	// Running is the initial state, held until a search terminates.
	Running Status = iota
	// Solved means a goal state was popped; Result.Cost is minimal.
	Solved
	// Unreachable means the frontier emptied without a goal state.
	Unreachable
	// Aborted means the context or MaxExpansions stopped the search.
	Aborted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Unreachable:
		return "unreachable"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the search.
//
// ReturnPath    – if true, Result.Path holds the optimal states from first move to goal.
// MaxDistance   – states costlier than this are not pushed. Default math.MaxInt64.
// MaxExpansions – stop with ErrExpansionLimit after this many finalized states (0 = no cap).
// Ctx           – cancellation; default context.Background().
// StartHeadings – headings offered from the virtual origin; default crucible.DefaultStartHeadings.
// Logger        – receives Debug entries; default discards everything.
type Options struct {
	ReturnPath    bool
	MaxDistance   int64
	MaxExpansions int
	Ctx           context.Context
	StartHeadings []crucible.Heading
	Logger        logrus.FieldLogger
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithReturnPath enables reconstruction of the optimal path in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum accumulated-cost threshold.
// States whose cost would exceed this value are not explored, so a goal
// beyond it is reported as ErrUnreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithMaxExpansions caps the number of finalized states. Zero or negative disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}

// WithContext sets the context polled for cancellation during the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartHeadings overrides the headings offered from the virtual origin.
// The default, East and South, suits a start in the top-left corner.
func WithStartHeadings(hs ...crucible.Heading) Option {
	return func(o *Options) {
		o.StartHeadings = append([]crucible.Heading(nil), hs...)
	}
}

// WithLogger routes Debug tracing to l. A nil l keeps the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as a starting point for further functional-options overrides.
//
// Defaults:
//   - ReturnPath:    false.
//   - MaxDistance:   math.MaxInt64 (no limit).
//   - MaxExpansions: 0 (no cap; the state space is finite).
//   - Ctx:           context.Background().
//   - StartHeadings: East, South.
//   - Logger:        a logrus logger writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		MaxDistance:   math.MaxInt64,
		MaxExpansions: 0,
		Ctx:           context.Background(),
		StartHeadings: crucible.DefaultStartHeadings,
		Logger:        discardLogger,
	}
}

var discardLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

// Result reports the outcome of a solved search.
//
// Cost     – minimum accumulated cost from start to goal.
// Path     – optimal states from the first move to the goal; nil without WithReturnPath.
// Expanded – states finalized before the goal was accepted.
// Pushed   – frontier entries pushed, stale ones included.
type Result struct {
	Cost     int64
	Path     []crucible.State
	Expanded int
	Pushed   int
}

// Cells returns the visited cells in order, start included. Nil without a path.
func (r *Result) Cells(start gridgraph.Coord) []gridgraph.Coord {
	if r.Path == nil {
		return nil
	}
	cells := make([]gridgraph.Coord, 0, len(r.Path)+1)
	cells = append(cells, start)
	for _, s := range r.Path {
		cells = append(cells, s.Cell)
	}

	return cells
}

// Verify replays Path from start and checks every step against p and g:
// each move must be legal per crucible.Policy.Allows, stay inside g, and the
// entered-cell costs must sum to Cost. The final state must be able to stop.
// starts must match the StartHeadings the search ran with (nil for the default).
func (r *Result) Verify(g *gridgraph.Grid, p crucible.Policy, start gridgraph.Coord, starts []crucible.Heading) error {
	if r.Path == nil {
		return fmt.Errorf("%w: no path recorded", ErrInvalidPath)
	}

	var sum int64
	prev := crucible.Origin(start)
	for i, s := range r.Path {
		if !p.Allows(prev, s, starts) {
			return fmt.Errorf("%w: step %d %v → %v", ErrInvalidPath, i, prev, s)
		}
		cost, err := g.CostAt(s.Cell)
		if err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalidPath, i, err)
		}
		sum += cost
		prev = s
	}
	if !p.CanStop(prev) {
		return fmt.Errorf("%w: final run %d below minimum %d", ErrInvalidPath, prev.Run, p.MinRun)
	}
	if sum != r.Cost {
		return fmt.Errorf("%w: path costs %d, result says %d", ErrInvalidPath, sum, r.Cost)
	}

	return nil
}
