// Package dijkstra implements a uniform-cost (Dijkstra) search over
// run-length constrained movement states on a cost grid.
//
// The search pops the cheapest frontier entry, discards it if its state is
// already finalized, finalizes it otherwise, and returns as soon as a
// finalized state sits on the goal cell with an acceptable run length.
// Because every edge cost is non-negative, the first accepted goal is optimal.
//
// Complexity:
//
//   - Time:  O(S log S), S = W·H·4·MaxRun.
//   - Space: O(S).
//
// Notes on implementation choices:
//
//   - Out-of-grid neighbours are pruned while generating transitions, so the
//     hot loop never sees a bounds error.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The state space is finite, so the loop terminates without any cap;
//     MaxExpansions and Ctx exist only for callers that want a bound.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// FindMinimumCost returns the minimum accumulated cost of travelling from
// start to goal on g under policy p. It returns ErrUnreachable when no goal
// state can be reached, and a validation error for bad inputs.
//
// Example:
//
//	cost, err := dijkstra.FindMinimumCost(g, crucible.LongHaul(), gridgraph.Coord{}, g.Corner())
//	if errors.Is(err, dijkstra.ErrUnreachable) { ... }
func FindMinimumCost(g *gridgraph.Grid, p crucible.Policy, start, goal gridgraph.Coord, opts ...Option) (int64, error) {
	res, err := Search(g, p, start, goal, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search is FindMinimumCost returning the full Result.
func Search(g *gridgraph.Grid, p crucible.Policy, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	e, err := NewEngine(g, p, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run()
}

// Engine holds the validated inputs of one search problem.
// The grid is only read, so engines for different policies may share it and
// run on separate goroutines. A single Engine must not Run concurrently with itself.
type Engine struct {
	grid    *gridgraph.Grid
	policy  crucible.Policy
	start   gridgraph.Coord
	goal    gridgraph.Coord
	options Options
	status  Status
}

// NewEngine validates the inputs and returns an Engine in the Running state.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. p must satisfy 1 ≤ MinRun ≤ MaxRun (crucible.ErrInvalidPolicy).
//  3. start must lie inside g (ErrStartOutOfBounds).
//  4. goal must lie inside g (ErrGoalOutOfBounds).
func NewEngine(g *gridgraph.Grid, p crucible.Policy, start, goal gridgraph.Coord, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}

	return &Engine{
		grid:    g,
		policy:  p,
		start:   start,
		goal:    goal,
		options: cfg,
		status:  Running,
	}, nil
}

// Status reports the control state left by the most recent Run.
func (e *Engine) Status() Status {
	return e.status
}

// Run executes the search. Each call starts from scratch with its own
// frontier and best-cost table, so repeated calls return identical results.
//
// Returns:
//
//   - (*Result, nil) when a goal state was accepted; Status() == Solved.
//   - ErrUnreachable when the frontier emptied; Status() == Unreachable.
//   - ErrExpansionLimit or the context error; Status() == Aborted.
//   - ErrCostOverflow if an accumulated cost would not fit in int64.
func (e *Engine) Run() (*Result, error) {
	log := e.options.Logger.WithFields(logrus.Fields{
		"start":   e.start.String(),
		"goal":    e.goal.String(),
		"min_run": e.policy.MinRun,
		"max_run": e.policy.MaxRun,
	})
	log.Debug("search started")

	e.status = Running
	r := newRunner(e)
	res, status, err := r.process()
	e.status = status

	log = log.WithFields(logrus.Fields{
		"status":   status.String(),
		"expanded": r.expanded,
		"pushed":   r.pushed,
	})
	if err != nil {
		log.WithError(err).Debug("search finished without a path")
		return nil, err
	}
	log.WithField("cost", res.Cost).Debug("search finished")

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.Grid
	policy  crucible.Policy
	start   gridgraph.Coord
	goal    gridgraph.Coord
	options Options

	dist map[crucible.State]int64          // tentative best cost per state
	done map[crucible.State]int64          // finalized cost per state (best-cost table)
	prev map[crucible.State]crucible.State // predecessor on the cheapest known path
	pq   statePQ                           // lazy min-heap frontier
	buf  []crucible.Transition             // reused successor buffer

	expanded int
	pushed   int
}

func newRunner(e *Engine) *runner {
	// W·H·4 is a reasonable starting size; MaxRun multiplies it in the worst case.
	hint := e.grid.Width * e.grid.Height * 4
	r := &runner{
		g:       e.grid,
		policy:  e.policy,
		start:   e.start,
		goal:    e.goal,
		options: e.options,
		dist:    make(map[crucible.State]int64, hint),
		done:    make(map[crucible.State]int64, hint),
		pq:      make(statePQ, 0, hint),
		buf:     make([]crucible.Transition, 0, 4),
	}
	if e.options.ReturnPath {
		r.prev = make(map[crucible.State]crucible.State, hint)
	}

	origin := crucible.Origin(e.start)
	r.dist[origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, stateItem{cost: 0, state: origin})
	r.pushed++

	return r
}

// process is the core loop. It terminates when a goal state is finalized,
// when the frontier empties, or when a caller-imposed bound trips.
func (r *runner) process() (*Result, Status, error) {
	cfg := r.options
	var pops int
	for r.pq.Len() > 0 {
		// 1) Poll cancellation periodically.
		if pops%ctxPollInterval == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return nil, Aborted, err
			}
		}
		pops++

		// 2) Pop the cheapest entry; skip it if a cheaper one already finalized its state.
		item := heap.Pop(&r.pq).(stateItem)
		u, d := item.state, item.cost
		if _, ok := r.done[u]; ok {
			continue
		}

		// 3) Finalize u. Its cost d is now minimal.
		r.done[u] = d

		// 4) Goal acceptance: right cell and long enough run to stop.
		if u.Cell == r.goal && r.policy.CanStop(u) {
			return r.result(u, d), Solved, nil
		}

		if cfg.MaxExpansions > 0 && r.expanded >= cfg.MaxExpansions {
			return nil, Aborted, fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, r.expanded)
		}
		r.expanded++

		// 5) Relax all legal transitions out of u.
		if err := r.relax(u, d); err != nil {
			return nil, Aborted, err
		}
	}

	return nil, Unreachable, fmt.Errorf("%w: %v → %v with %v", ErrUnreachable, r.start, r.goal, r.policy)
}

// relax pushes every non-finalized successor of u whose cost strictly improves
// on the best tentative cost known for it.
func (r *runner) relax(u crucible.State, d int64) error {
	r.buf = crucible.Successors(r.g, r.policy, u, r.options.StartHeadings, r.buf[:0])

	var nd int64
	for _, tr := range r.buf {
		v := tr.Next
		if _, ok := r.done[v]; ok {
			continue
		}

		if tr.Cost > math.MaxInt64-d {
			return fmt.Errorf("%w: at %v", ErrCostOverflow, v)
		}
		nd = d + tr.Cost

		if nd > r.options.MaxDistance {
			continue
		}

		// Strictly better only; equal costs would just add duplicates.
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}

		heap.Push(&r.pq, stateItem{cost: nd, state: v})
		r.pushed++
	}

	return nil
}

// result packages the accepted goal state, reconstructing the path if requested.
func (r *runner) result(goal crucible.State, cost int64) *Result {
	res := &Result{
		Cost:     cost,
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
	if r.prev == nil {
		return res
	}

	var path []crucible.State
	for s := goal; !s.IsOrigin(); s = r.prev[s] {
		path = append(path, s)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}
