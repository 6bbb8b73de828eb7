// Package gridgraph provides a read-only grid of cell entry costs.
//
// A Grid never changes after NewGrid returns, so any number of searches may
// read it concurrently without locking.
package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost (wrapped with the cell) if any cost is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	var maxCost int64
	costs := make([][]int64, h)
	for y := 0; y < h; y++ {
		costs[y] = make([]int64, w)
		for x, v := range values[y] {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, x, y, v)
			}
			costs[y][x] = int64(v)
			if costs[y][x] > maxCost {
				maxCost = costs[y][x]
			}
		}
	}

	return &Grid{
		Width:   w,
		Height:  h,
		costs:   costs,
		maxCost: maxCost,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether c lies within the grid. It never fails.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

// CostAt returns the cost of entering cell c.
// Returns ErrOutOfBounds (wrapped with c) if c lies outside the grid.
// Complexity: O(1).
func (g *Grid) CostAt(c Coord) (int64, error) {
	if !g.Contains(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}

	return g.costs[c.Y][c.X], nil
}

// MaxCost returns the largest single-cell cost in the grid.
func (g *Grid) MaxCost() int64 {
	return g.maxCost
}

// Corner returns the bottom-right cell, the conventional goal.
func (g *Grid) Corner() Coord {
	return Coord{X: g.Width - 1, Y: g.Height - 1}
}

// Index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}
