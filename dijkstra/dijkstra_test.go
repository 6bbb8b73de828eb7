// Package dijkstra_test contains unit tests for the constrained grid search.
// These tests validate input checks, the documented scenarios, path
// reconstruction, caller-imposed bounds, and logging.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// SearchSuite exercises the search engine under various scenarios.
type SearchSuite struct {
	suite.Suite
	origin gridgraph.Coord
}

func (s *SearchSuite) SetupTest() {
	s.origin = gridgraph.Coord{X: 0, Y: 0}
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned for invalid inputs.
// ------------------------------------------------------------------------

// TestNilGrid rejects a nil grid before anything else.
func (s *SearchSuite) TestNilGrid() {
	_, err := dijkstra.FindMinimumCost(nil, crucible.ShortHaul(), s.origin, s.origin)
	require.ErrorIs(s.T(), err, dijkstra.ErrNilGrid)
}

// TestInvalidPolicy passes the policy error through unchanged in kind.
func (s *SearchSuite) TestInvalidPolicy() {
	g := uniform(s.T(), 5, 1, 1)
	_, err := dijkstra.FindMinimumCost(g, crucible.Policy{MinRun: 4, MaxRun: 3}, s.origin, gridgraph.Coord{X: 4, Y: 0})
	require.ErrorIs(s.T(), err, crucible.ErrInvalidPolicy)

	_, err = crucible.NewPolicy(4, 3)
	require.ErrorIs(s.T(), err, crucible.ErrInvalidPolicy)
}

// TestEndpointsOutOfBounds checks start and goal bounds separately.
func (s *SearchSuite) TestEndpointsOutOfBounds() {
	g := uniform(s.T(), 3, 3, 1)
	_, err := dijkstra.NewEngine(g, crucible.ShortHaul(), gridgraph.Coord{X: -1, Y: 0}, s.origin)
	require.ErrorIs(s.T(), err, dijkstra.ErrStartOutOfBounds)

	_, err = dijkstra.NewEngine(g, crucible.ShortHaul(), s.origin, gridgraph.Coord{X: 3, Y: 3})
	require.ErrorIs(s.T(), err, dijkstra.ErrGoalOutOfBounds)
}

// TestNegativeMaxDistancePanics mirrors the option-constructor contract.
func (s *SearchSuite) TestNegativeMaxDistancePanics() {
	g := uniform(s.T(), 3, 3, 1)
	require.Panics(s.T(), func() {
		_, _ = dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithMaxDistance(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Scenarios with known answers.
// ------------------------------------------------------------------------

// TestUniform3x3 walks a 3×3 grid of ones: 4 cells entered.
func (s *SearchSuite) TestUniform3x3() {
	g := uniform(s.T(), 3, 3, 1)
	cost, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, gridgraph.Coord{X: 2, Y: 2})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), cost)
}

// TestStraightRowLongHaul accepts a straight run of exactly MinRun.
func (s *SearchSuite) TestStraightRowLongHaul() {
	g := uniform(s.T(), 5, 1, 1)
	res, err := dijkstra.Search(g, crucible.LongHaul(), s.origin, gridgraph.Coord{X: 4, Y: 0}, dijkstra.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), res.Cost)
	require.Len(s.T(), res.Path, 4)
	for i, st := range res.Path {
		require.Equal(s.T(), crucible.East, st.Heading)
		require.Equal(s.T(), i+1, st.Run)
	}
	require.NoError(s.T(), res.Verify(g, crucible.LongHaul(), s.origin, nil))
}

// TestSampleShortHaul pins the classic answer for the standard crucible.
func (s *SearchSuite) TestSampleShortHaul() {
	g := parse(s.T(), sampleMap)
	cost, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, g.Corner())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(102), cost)
}

// TestSampleLongHaul pins the classic answer for the ultra crucible.
func (s *SearchSuite) TestSampleLongHaul() {
	g := parse(s.T(), sampleMap)
	cost, err := dijkstra.FindMinimumCost(g, crucible.LongHaul(), s.origin, g.Corner())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(94), cost)
}

// TestUltraMapLongHaul forces the long-haul crucible to stop only after MinRun.
func (s *SearchSuite) TestUltraMapLongHaul() {
	g := parse(s.T(), ultraMap)
	res, err := dijkstra.Search(g, crucible.LongHaul(), s.origin, g.Corner(), dijkstra.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(71), res.Cost)
	require.NoError(s.T(), res.Verify(g, crucible.LongHaul(), s.origin, nil))
}

// TestStartEqualsGoal requires a real loop back to the start cell.
func (s *SearchSuite) TestStartEqualsGoal() {
	g := uniform(s.T(), 2, 2, 1)
	cost, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, s.origin)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), cost, "E, S, W, N around the 2×2 block")

	single := uniform(s.T(), 1, 1, 7)
	_, err = dijkstra.FindMinimumCost(single, crucible.ShortHaul(), s.origin, s.origin)
	require.ErrorIs(s.T(), err, dijkstra.ErrUnreachable, "a zero-length path never satisfies the run check")
}

// TestZeroCostCells handles free cells without special cases.
func (s *SearchSuite) TestZeroCostCells() {
	g := uniform(s.T(), 4, 4, 0)
	cost, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, g.Corner())
	require.NoError(s.T(), err)
	require.Zero(s.T(), cost)
}

// ------------------------------------------------------------------------
// 3. Unreachability and engine status.
// ------------------------------------------------------------------------

// TestUnreachableShortRow cannot cover MinRun cells before the row ends.
func (s *SearchSuite) TestUnreachableShortRow() {
	g := uniform(s.T(), 3, 1, 1)
	e, err := dijkstra.NewEngine(g, crucible.LongHaul(), s.origin, gridgraph.Coord{X: 2, Y: 0})
	require.NoError(s.T(), err)
	require.Equal(s.T(), dijkstra.Running, e.Status())

	_, err = e.Run()
	require.ErrorIs(s.T(), err, dijkstra.ErrUnreachable)
	require.Equal(s.T(), dijkstra.Unreachable, e.Status())
}

// TestEngineIdempotent runs the same engine twice.
func (s *SearchSuite) TestEngineIdempotent() {
	g := parse(s.T(), sampleMap)
	e, err := dijkstra.NewEngine(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithReturnPath())
	require.NoError(s.T(), err)

	first, err := e.Run()
	require.NoError(s.T(), err)
	require.Equal(s.T(), dijkstra.Solved, e.Status())
	second, err := e.Run()
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// ------------------------------------------------------------------------
// 4. Options: bounds, cancellation, start headings, logging.
// ------------------------------------------------------------------------

// TestMaxDistance hides goals that cost more than the cap.
func (s *SearchSuite) TestMaxDistance() {
	g := uniform(s.T(), 3, 3, 1)
	_, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithMaxDistance(3))
	require.ErrorIs(s.T(), err, dijkstra.ErrUnreachable)

	cost, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithMaxDistance(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), cost)
}

// TestMaxExpansions aborts with a typed error and status.
func (s *SearchSuite) TestMaxExpansions() {
	g := parse(s.T(), sampleMap)
	e, err := dijkstra.NewEngine(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithMaxExpansions(10))
	require.NoError(s.T(), err)

	_, err = e.Run()
	require.ErrorIs(s.T(), err, dijkstra.ErrExpansionLimit)
	require.Equal(s.T(), dijkstra.Aborted, e.Status())
}

// TestContextCanceled stops before the first pop.
func (s *SearchSuite) TestContextCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := parse(s.T(), sampleMap)
	e, err := dijkstra.NewEngine(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithContext(ctx))
	require.NoError(s.T(), err)

	_, err = e.Run()
	require.True(s.T(), errors.Is(err, context.Canceled), "got %v", err)
	require.Equal(s.T(), dijkstra.Aborted, e.Status())
}

// TestStartHeadings lets a centre start leave northward.
func (s *SearchSuite) TestStartHeadings() {
	g, err := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{9, 9, 9},
		{9, 9, 9},
	})
	require.NoError(s.T(), err)
	start := gridgraph.Coord{X: 1, Y: 2}
	goal := gridgraph.Coord{X: 1, Y: 0}

	// Default headings must detour east first: (2,2)=9 (2,1)=9 (2,0)=1 (1,0)=1.
	cost, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), start, goal)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(20), cost)

	// Heading north directly: (1,1)=9 (1,0)=1.
	res, err := dijkstra.Search(g, crucible.ShortHaul(), start, goal,
		dijkstra.WithStartHeadings(crucible.Headings[:]...), dijkstra.WithReturnPath())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), res.Cost)
	require.Equal(s.T(), []gridgraph.Coord{start, {X: 1, Y: 1}, goal}, res.Cells(start))
	require.NoError(s.T(), res.Verify(g, crucible.ShortHaul(), start, crucible.Headings[:]))
}

// TestCostOverflow reports instead of wrapping around.
func (s *SearchSuite) TestCostOverflow() {
	g, err := gridgraph.NewGrid([][]int{{0, math.MaxInt, math.MaxInt}})
	require.NoError(s.T(), err)
	_, err = dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, gridgraph.Coord{X: 2, Y: 0})
	require.ErrorIs(s.T(), err, dijkstra.ErrCostOverflow)
}

// TestLogger records start and finish entries with the outcome fields.
func (s *SearchSuite) TestLogger() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := uniform(s.T(), 3, 3, 1)
	_, err := dijkstra.FindMinimumCost(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithLogger(logger))
	require.NoError(s.T(), err)

	entries := hook.AllEntries()
	require.Len(s.T(), entries, 2)
	require.Equal(s.T(), "search started", entries[0].Message)
	last := hook.LastEntry()
	require.Equal(s.T(), "search finished", last.Message)
	require.Equal(s.T(), int64(4), last.Data["cost"])
	require.Equal(s.T(), "solved", last.Data["status"])
	require.Equal(s.T(), 3, last.Data["max_run"])
}

// TestVerifyRejectsTamperedPath makes sure Verify actually checks something.
func (s *SearchSuite) TestVerifyRejectsTamperedPath() {
	g := uniform(s.T(), 3, 3, 1)
	res, err := dijkstra.Search(g, crucible.ShortHaul(), s.origin, g.Corner(), dijkstra.WithReturnPath())
	require.NoError(s.T(), err)

	bad := *res
	bad.Cost++
	require.ErrorIs(s.T(), bad.Verify(g, crucible.ShortHaul(), s.origin, nil), dijkstra.ErrInvalidPath)

	bad = *res
	bad.Path = append([]crucible.State(nil), res.Path...)
	bad.Path[0].Run = 2
	require.ErrorIs(s.T(), bad.Verify(g, crucible.ShortHaul(), s.origin, nil), dijkstra.ErrInvalidPath)

	noPath := dijkstra.Result{Cost: 4}
	require.ErrorIs(s.T(), noPath.Verify(g, crucible.ShortHaul(), s.origin, nil), dijkstra.ErrInvalidPath)
	require.Nil(s.T(), noPath.Cells(s.origin))
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}
