// Package dijkstra provides a uniform-cost (Dijkstra) search for grid
// traversal under run-length constraints.
//
// Overview:
//
//   - The search node is crucible.State{Cell, Heading, Run}, not the bare cell.
//     The same cell reached with a different heading or run length has
//     different legal continuations and is searched separately.
//   - Edge costs are the costs of the entered cells, which are non-negative,
//     so the first goal state popped from the min-heap is optimal.
//   - The goal is accepted only when the crucible may stop there:
//     Run ≥ Policy.MinRun.
//
// When to use:
//
//   - Heat-loss style puzzles: minimize the sum of entered-cell costs under
//     "at least k, at most m cells per straight run" rules.
//   - Any vehicle routing on a raster where turning is restricted by
//     momentum and reversing in place is impossible.
//
// Key features:
//
//   - Functional options, as in the rest of the module: WithReturnPath,
//     WithMaxDistance, WithMaxExpansions, WithContext, WithStartHeadings,
//     WithLogger.
//   - A typed Unreachable outcome (ErrUnreachable, Status Unreachable) rather
//     than a sentinel cost.
//   - Result.Verify replays a returned path against the policy and grid.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = W·H·4·MaxRun reachable states.
//   - Space: O(S) for the tentative, finalized and predecessor maps and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds:
//     returned by NewEngine for bad inputs.
//   - crucible.ErrInvalidPolicy:
//     returned by NewEngine when MinRun < 1 or MinRun > MaxRun.
//   - ErrUnreachable:
//     the frontier emptied without an acceptable goal state.
//   - ErrExpansionLimit, context errors:
//     a caller-imposed bound stopped the search (Status Aborted).
//   - ErrCostOverflow:
//     an accumulated cost would exceed math.MaxInt64.
//
// API reference:
//
//	func FindMinimumCost(
//	    g *gridgraph.Grid,
//	    p crucible.Policy,
//	    start, goal gridgraph.Coord,
//	    opts ...Option,
//	) (int64, error)
//
//	func Search(g, p, start, goal, opts...) (*Result, error)
//	func NewEngine(g, p, start, goal, opts...) (*Engine, error)
//	func (e *Engine) Run() (*Result, error)
//	func (e *Engine) Status() Status
//
// Thread safety:
//
//   - A Grid is immutable, so searches with different policies may share it
//     and run on separate goroutines.
//   - Each Run owns its frontier and best-cost table; an Engine itself must not
//     be Run from two goroutines at once.
package dijkstra
