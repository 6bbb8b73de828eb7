package dijkstra_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// sampleMap is the 13×13 heat-loss map used throughout the crucible puzzle.
const sampleMap = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// ultraMap punishes long-haul runs that try to hug the top row.
const ultraMap = `
111111111111
999999999991
999999999991
999999999991
999999999991
`

// parse builds a Grid from digit rows, failing the test on error.
func parse(t testing.TB, text string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseDigits(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

// uniform builds a w×h grid where every cell costs c.
func uniform(t testing.TB, w, h, c int) *gridgraph.Grid {
	t.Helper()
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = c
		}
	}
	g, err := gridgraph.NewGrid(rows)
	require.NoError(t, err)
	return g
}

// randomGrid builds a deterministic w×h grid with costs in [1,9].
func randomGrid(t testing.TB, rng *rand.Rand, w, h int) *gridgraph.Grid {
	t.Helper()
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewGrid(rows)
	require.NoError(t, err)
	return g
}
