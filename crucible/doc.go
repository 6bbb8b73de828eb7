// Package crucible defines the augmented search state for run-length
// constrained grid traversal and its legal-move function.
//
// A crucible (a vehicle hauling molten lava) moves one cell at a time in one
// of four headings. It may never reverse. It must travel at least MinRun
// cells in a straight line before it may turn or stop, and it must turn
// after MaxRun cells. Because legal continuations depend on the heading and
// the run length, the search node is State{Cell, Heading, Run} rather than
// the bare cell.
//
// Policies:
//
//   - ShortHaul(): MinRun=1, MaxRun=3.
//   - LongHaul():  MinRun=4, MaxRun=10 (the "ultra crucible").
//   - NewPolicy(min, max) for any 1 ≤ min ≤ max.
//
// Transitions (Successors):
//
//  1. Reversal is never offered.
//  2. Straight is legal while Run < MaxRun: (next, h, Run+1).
//  3. Turning 90° is legal once Run ≥ MinRun: (next, h', 1).
//  4. Neighbours outside the grid are pruned.
//  5. The cost of a transition is the cost of the entered cell.
//
// The virtual origin (Run == 0) has no heading history; its first moves are
// the configured start headings (East and South by default) with Run=1,
// regardless of MinRun.
//
// Errors:
//
//   - ErrInvalidPolicy: MinRun < 1 or MinRun > MaxRun.
package crucible
