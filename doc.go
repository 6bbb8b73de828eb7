// Package heatpath finds minimum-cost routes across a weighted grid for
// vehicles whose legal moves depend on their recent movement: the heading
// they travel in and how many cells they have covered in it.
//
// 🚀 What is heatpath?
//
//	A small, dependency-light library built from three packages:
//		• gridgraph – immutable cost grid, bounds-checked lookups, digit parsing
//		• crucible  – headings, run-length policies, search states and legal moves
//		• dijkstra  – uniform-cost search over (cell, heading, run) states
//
// ✨ Why a state-augmented search?
//
//   - Entering the same cell heading east after two steps and heading south
//     after one step leads to different futures, so the search node is the
//     triple, not the cell.
//   - Minimum and maximum run lengths are policy values: the short-haul
//     crucible (1..3) and the long-haul ultra crucible (4..10) share one engine.
//
// Quick example:
//
//	g, _ := gridgraph.ParseDigits(strings.NewReader("2413\n3215\n"))
//	cost, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), gridgraph.Coord{}, g.Corner())
//
// The heatpath command in cmd/heatpath prints both variants for a map file.
package heatpath
