package influence

import "skirmfield/geometry"

// DirectionResult is the compact result of PathfindDirection, sized for
// hot-loop use: total path length plus a short-horizon waypoint.
type DirectionResult struct {
	PathLen int
	Next    geometry.Point2
}
