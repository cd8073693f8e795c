// Package scenario builds randomized base grids and influence stamp
// batches for exercising a Map without hand-authoring fixtures. The
// distance-sort helper mirrors the pair/sort.Slice shape of
// Alisa-Novik-bots-arena's internal/tasking.SortedByDist, and rand draws
// come from golang.org/x/exp/rand the way the teacher's board.go seeds
// random positions from math/rand.
package scenario

import (
	"sort"

	"golang.org/x/exp/rand"

	"skirmfield/geometry"
	"skirmfield/gridfield"
	"skirmfield/influence"
)

// Stamp is one AddInfluence call worth of parameters, generated ahead of
// time so a batch can be replayed deterministically against a Map.
type Stamp struct {
	Center geometry.Point2
	Radius float64
	Amount float64
	Decay  influence.Decay
}

// RandomBaseGrid builds a width x height grid seeded fully passable, then
// punches out wallFraction of its cells as walls, never walling the start
// or goal cell itself.
func RandomBaseGrid(rng *rand.Rand, width, height int, wallFraction float64, start, goal geometry.GridPoint) *gridfield.BaseGrid {
	base := gridfield.NewBaseGrid(width, height, 1)
	total := width * height
	target := int(float64(total) * wallFraction)

	startIdx := start.X + start.Y*width
	goalIdx := goal.X + goal.Y*width

	var candidates []int
	for i := 0; i < total; i++ {
		if i == startIdx || i == goalIdx {
			continue
		}
		candidates = append(candidates, i)
	}
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	if target > len(candidates) {
		target = len(candidates)
	}
	base.SetValues(candidates[:target], 0)
	return base
}

// RandomStampBatch generates n influence stamps with centers uniformly
// distributed over the grid, radii in [minRadius,maxRadius), and amounts
// in [-maxAmount,maxAmount). Half the stamps get a linear decay to zero.
func RandomStampBatch(rng *rand.Rand, width, height int, n int, minRadius, maxRadius, maxAmount float64) []Stamp {
	stamps := make([]Stamp, n)
	for i := range stamps {
		center := geometry.Point2{
			X: rng.Float64() * float64(width),
			Y: rng.Float64() * float64(height),
		}
		radius := minRadius + rng.Float64()*(maxRadius-minRadius)
		amount := (rng.Float64()*2 - 1) * maxAmount

		decay := influence.NoDecay()
		if i%2 == 0 {
			decay = influence.LinearDecay(0)
		}

		stamps[i] = Stamp{Center: center, Radius: radius, Amount: amount, Decay: decay}
	}
	return stamps
}

// ApplyStamps replays a stamp batch against m in order.
func ApplyStamps(m *influence.Map, stamps []Stamp) {
	for _, s := range stamps {
		m.AddInfluence(s.Center, s.Radius, s.Amount, s.Decay)
	}
}

// SortedByDist returns points sorted by squared distance to target,
// nearest first.
func SortedByDist(points []geometry.Point2, target geometry.Point2) []geometry.Point2 {
	type pair struct {
		p    geometry.Point2
		dist float64
	}

	pairs := make([]pair, len(points))
	for i, p := range points {
		pairs[i] = pair{p: p, dist: p.SquaredDistanceTo(target)}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })

	out := make([]geometry.Point2, len(pairs))
	for i, pr := range pairs {
		out[i] = pr.p
	}
	return out
}
