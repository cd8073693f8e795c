// Package influence is the core of this module: a per-cell floating-point
// field that mixes base-grid terrain passability with dynamic influence
// stamps, plus the weighted A* pathfinder that searches it. Adapted from
// the heap-based A* in Alisa-Novik-bots-arena's internal/tasking package
// and its util.Position arithmetic; the stamping and safe-spot logic is
// new, grounded in the read/decay shape of
// other_examples/phuhao00-Pathweaver__influence_map.go.
package influence

import (
	"fmt"
	"math"

	"skirmfield/geometry"
	"skirmfield/gridfield"
	"skirmfield/internal/geoassert"
	"skirmfield/internal/telemetry"
)

// Wall is the sentinel value for an impassable cell.
var Wall = math.Inf(1)

// Map is a row-major floating-point influence field over the same
// dimensions as the base grid it was built from. Impassable (Wall) cells
// are permanent for the lifetime of a Map instance; rebuild or Reset to
// change passability.
type Map struct {
	width, height int
	field         []float64
}

// FromGrid allocates a new Map from base: cells become 1.0 where base is
// passable, Wall where base is 0. Surfaces allocation failure as an error
// rather than the "no-result" collapse used by pathfinding, since a
// failed construction leaves the caller with no map to fall back on.
func FromGrid(base *gridfield.BaseGrid) (m *Map, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("influence: failed to allocate %dx%d field: %v", base.Width, base.Height, r)
		}
	}()

	field := make([]float64, base.Len())
	m = &Map{width: base.Width, height: base.Height, field: field}
	m.rebuildFrom(base)

	telemetry.Log.WithFields(map[string]interface{}{
		"width": base.Width, "height": base.Height,
	}).Debug("influence: map built from grid")
	return m, nil
}

// Reset rewrites m in place from base, which must have identical
// dimensions to m. A precondition violation (not a recoverable error) if
// dimensions differ.
func (m *Map) Reset(base *gridfield.BaseGrid) {
	geoassert.Assert(base.Width == m.width && base.Height == m.height, "influence: Reset dimension mismatch")
	m.rebuildFrom(base)
	telemetry.Log.Debug("influence: map reset")
}

func (m *Map) rebuildFrom(base *gridfield.BaseGrid) {
	for i := 0; i < base.Len(); i++ {
		if base.At(i) > 0 {
			m.field[i] = 1.0
		} else {
			m.field[i] = Wall
		}
	}
}

func (m *Map) index(c geometry.GridPoint) int { return c.X + c.Y*m.width }

func (m *Map) inBounds(c geometry.GridPoint) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

func geoassertInBounds(m *Map, c geometry.GridPoint) {
	geoassert.Assert(m.inBounds(c), "influence: cell out of range")
}

// boundingBox clips the disc of the given radius around center to
// [0,width-1] x [0,height-1], matching AddInfluence's and
// FindClosestSafeSpot's shared bounding-box rule.
func (m *Map) boundingBox(center geometry.Point2, radius float64) (loX, loY, hiX, hiY int) {
	loX = int(math.Floor(math.Max(center.X-radius, 0)))
	loY = int(math.Floor(math.Max(center.Y-radius, 0)))
	hiX = int(math.Floor(math.Min(center.X+radius, float64(m.width-1))))
	hiY = int(math.Floor(math.Min(center.Y+radius, float64(m.height-1))))
	return
}

// AddInfluence stamps a filled disc of the given radius around center.
// Cells whose center lies strictly within radius (dist^2 < radius^2) get
// amount added (DecayNone) or a value linearly interpolated between
// amount at the center and decay.EndAmount at the rim (DecayLinear).
// After the write, every touched cell is clamped to be at least 1.0 —
// this holds even for Wall cells caught by the bounding box, since
// Wall +/- finite is still Wall.
func (m *Map) AddInfluence(center geometry.Point2, radius, amount float64, decay Decay) {
	loX, loY, hiX, hiY := m.boundingBox(center, radius)
	radiusSq := radius * radius

	touched := 0
	for y := loY; y <= hiY; y++ {
		for x := loX; x <= hiX; x++ {
			cellCenter := geometry.GridPoint{X: x, Y: y}.Center()
			distSq := cellCenter.SquaredDistanceTo(center)
			if distSq >= radiusSq {
				continue
			}

			idx := x + y*m.width
			var delta float64
			switch decay.Kind {
			case DecayLinear:
				t := math.Sqrt(distSq) / radius
				delta = (1-t)*amount + t*decay.EndAmount
			default:
				delta = amount
			}

			v := m.field[idx] + delta
			if v < 1.0 {
				v = 1.0
			}
			m.field[idx] = v
			touched++
		}
	}

	if telemetry.DebugEnabled() {
		telemetry.Log.WithFields(map[string]interface{}{
			"center": center, "radius": radius, "amount": amount, "touched": touched,
		}).Debug("influence: stamped disc")
	}
}

// AddInfluenceHollow stamps an annulus: the outer disc (radius, amount,
// decay) followed by a flat negative counter-stamp over the inner disc
// (hollowRadius, -amount, NoDecay). Cells strictly inside hollowRadius
// receive zero net contribution before the >=1.0 clamp.
func (m *Map) AddInfluenceHollow(center geometry.Point2, radius, hollowRadius, amount float64, decay Decay) {
	m.AddInfluence(center, radius, amount, decay)
	m.AddInfluence(center, hollowRadius, -amount, NoDecay())
}

// FindClosestSafeSpot returns the cell center minimizing influence value
// among cells strictly within radius of pos that are not walls, breaking
// ties by squared distance to pos. Scans in row-major order (x outer, y
// inner); the tie-break is strict — value must be <= the current best and
// distance must be < the current best for a candidate to replace it — so
// scan order determines the winner between exact ties. Returns ok=false
// if no candidate cell exists.
func (m *Map) FindClosestSafeSpot(pos geometry.Point2, radius float64) (best geometry.Point2, ok bool) {
	loX, loY, hiX, hiY := m.boundingBox(pos, radius)
	radiusSq := radius * radius

	var bestValue, bestDistSq float64
	found := false

	for x := loX; x <= hiX; x++ {
		for y := loY; y <= hiY; y++ {
			cellCenter := geometry.GridPoint{X: x, Y: y}.Center()
			distSq := cellCenter.SquaredDistanceTo(pos)
			if distSq >= radiusSq {
				continue
			}

			value := m.field[x+y*m.width]
			if value >= Wall {
				continue
			}

			if !found || (value <= bestValue && distSq < bestDistSq) {
				best, bestValue, bestDistSq = cellCenter, value, distSq
				found = true
			}
		}
	}

	return best, found
}
