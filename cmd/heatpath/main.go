// Command heatpath reads a digit heat-loss map and prints the minimum heat
// loss from the top-left block to the bottom-right block.
//
// Usage:
//
//	heatpath [-v] [-min N -max M] FILE
//
// Without -min/-max it solves both crucible variants concurrently and prints
// "Part one" (short haul, runs of 1..3) and "Part two" (long haul, 4..10).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

var log = logrus.New()

func main() {
	verbose := flag.Bool("v", false, "log search progress")
	minRun := flag.Int("min", 0, "minimum run before turning (with -max)")
	maxRun := flag.Int("max", 0, "maximum run before a forced turn (with -min)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] [-min N -max M] FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	g, err := loadGrid(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("cannot load grid")
	}
	log.WithFields(logrus.Fields{"width": g.Width, "height": g.Height}).Debug("grid loaded")

	if *minRun != 0 || *maxRun != 0 {
		p, err := crucible.NewPolicy(*minRun, *maxRun)
		if err != nil {
			log.WithError(err).Fatal("bad policy")
		}
		fmt.Println(report(solve(g, p)))
		return
	}

	labels := []string{"Part one", "Part two"}
	policies := []crucible.Policy{crucible.ShortHaul(), crucible.LongHaul()}
	outcomes := make([]outcome, len(policies))

	// Each search owns its frontier; the grid is read-only and shared.
	var wg sync.WaitGroup
	for i, p := range policies {
		wg.Add(1)
		go func(i int, p crucible.Policy) {
			defer wg.Done()
			outcomes[i] = solve(g, p)
		}(i, p)
	}
	wg.Wait()

	for i, o := range outcomes {
		fmt.Printf("%s: %s\n", labels[i], report(o))
	}
}

type outcome struct {
	cost int64
	err  error
}

func solve(g *gridgraph.Grid, p crucible.Policy) outcome {
	cost, err := dijkstra.FindMinimumCost(g, p, gridgraph.Coord{}, g.Corner(), dijkstra.WithLogger(log))

	return outcome{cost: cost, err: err}
}

func report(o outcome) string {
	switch {
	case o.err == nil:
		return fmt.Sprint(o.cost)
	case errors.Is(o.err, dijkstra.ErrUnreachable):
		return "unreachable"
	default:
		log.WithError(o.err).Fatal("search failed")
		return ""
	}
}

func loadGrid(path string) (*gridgraph.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gridgraph.ParseDigits(f)
}
