// Package gridgraph holds the immutable cost field that the crucible search
// runs over: a rectangular 2D grid of non-negative integer entry costs.
//
// What:
//
//   - Grid wraps a rectangular [][]int of costs, deep-copied on construction.
//   - CostAt answers bounds-checked cost lookups; Contains is the total check.
//   - ParseDigits builds a Grid from rows of single decimal digits.
//
// Why:
//
//   - Heat-loss maps, terrain traversal and any "pay to enter a cell" problem
//     where the cost belongs to the destination cell, not the move.
//
// Complexity:
//
//   - NewGrid, ParseDigits: O(W×H) time and memory.
//   - CostAt, Contains, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrOutOfBounds: a lookup outside [0,Width)×[0,Height).
//   - ErrBadDigit: ParseDigits met a character that is not 0-9.
package gridgraph
