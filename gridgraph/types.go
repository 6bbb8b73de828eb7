// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/heatpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadDigit indicates a non-digit character in textual grid input.
	ErrBadDigit = errors.New("gridgraph: grid text must contain only digits 0-9")
)

// Coord is a cell coordinate: X grows east (columns), Y grows south (rows).
type Coord struct {
	X, Y int
}

// Step returns the coordinate offset by (dx, dy).
func (c Coord) Step(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable field of non-negative cell costs.
// Width and Height define dimensions; costs[y][x] holds the cost of entering (x, y).
// maxCost is recorded at construction so callers can size accumulators.
type Grid struct {
	Width, Height int
	costs         [][]int64
	maxCost       int64
}
