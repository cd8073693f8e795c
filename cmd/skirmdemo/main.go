// Command skirmdemo builds an influence map, stamps a threat onto it, and
// prints a pathfinding summary to stdout. Grounded on the flag-driven
// headless entrypoint of Alisa-Novik-bots-arena's main.go and game.go's
// RunHeadless, minus the ASCII board rendering the graphical build needs.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"skirmfield/geometry"
	"skirmfield/gridfield"
	"skirmfield/influence"
	"skirmfield/internal/scenario"
	"skirmfield/internal/telemetry"
)

func main() {
	width := flag.Int("w", 10, "grid width")
	height := flag.Int("h", 10, "grid height")
	random := flag.Bool("random", false, "punch random walls and stamps into the grid")
	wallFraction := flag.Float64("wall-fraction", 0.15, "fraction of all cells walled (start and goal never) when -random is set")
	stamps := flag.Int("stamps", 3, "number of random influence stamps when -random is set")
	seed := flag.Uint64("seed", 1, "random seed used with -random")
	large := flag.Bool("large", false, "path as a large unit")
	flag.Parse()

	start := geometry.Point2{X: 0.5, Y: 0.5}
	goal := geometry.Point2{X: float64(*width) - 0.5, Y: float64(*height) - 0.5}

	base := gridfield.NewBaseGrid(*width, *height, 1)
	m, err := influence.FromGrid(base)
	if err != nil {
		telemetry.Log.WithError(err).Fatal("skirmdemo: failed to build map")
	}

	if *random {
		rng := rand.New(rand.NewSource(*seed))
		base = scenario.RandomBaseGrid(rng, *width, *height, *wallFraction, start.Floor(), goal.Floor())
		m.Reset(base)
		scenario.ApplyStamps(m, scenario.RandomStampBatch(rng, *width, *height, *stamps, 1, 4, 15))
	}

	path, ok := m.PathfindPath(start, goal, *large)
	if !ok {
		fmt.Fprintf(os.Stderr, "no path from %v to %v\n", start, goal)
		os.Exit(1)
	}

	dir, _ := m.PathfindDirection(start, goal, *large)
	fmt.Printf("grid %dx%d, path length %d, next step %v\n", *width, *height, len(path), dir.Next)

	if spot, ok := m.FindClosestSafeSpot(goal, 5); ok {
		fmt.Printf("closest safe spot to goal: %v\n", spot)
	}
}
