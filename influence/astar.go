package influence

import (
	"container/heap"

	"skirmfield/geometry"
	"skirmfield/internal/geoassert"
	"skirmfield/internal/mapconfig"
	"skirmfield/internal/telemetry"
)

// neighborOffset describes one of the eight neighbor directions in the
// fixed enumeration order SW, S, SE, W, E, NW, N, NE, along with the
// admissibility checks that apply to it.
type neighborOffset struct {
	dx, dy   int
	diagonal bool
	// flankA/flankB are the two offsets that must be checked for
	// this neighbor: for a diagonal, both flanking cardinals must be
	// non-wall (corner-cut prevention); for a cardinal, at least one of
	// its two flanking diagonals must be non-wall when large is set
	// (no slipping through a one-cell gap).
	flankA, flankB [2]int
}

var neighborOffsets = [8]neighborOffset{
	{dx: -1, dy: -1, diagonal: true, flankA: [2]int{0, -1}, flankB: [2]int{-1, 0}},  // SW: needs S, W
	{dx: 0, dy: -1, diagonal: false, flankA: [2]int{-1, -1}, flankB: [2]int{1, -1}}, // S: needs SW or SE
	{dx: 1, dy: -1, diagonal: true, flankA: [2]int{0, -1}, flankB: [2]int{1, 0}},    // SE: needs S, E
	{dx: -1, dy: 0, diagonal: false, flankA: [2]int{-1, 1}, flankB: [2]int{-1, -1}}, // W: needs NW or SW
	{dx: 1, dy: 0, diagonal: false, flankA: [2]int{1, 1}, flankB: [2]int{1, -1}},    // E: needs NE or SE
	{dx: -1, dy: 1, diagonal: true, flankA: [2]int{0, 1}, flankB: [2]int{-1, 0}},    // NW: needs N, W
	{dx: 0, dy: 1, diagonal: false, flankA: [2]int{-1, 1}, flankB: [2]int{1, 1}},    // N: needs NW or NE
	{dx: 1, dy: 1, diagonal: true, flankA: [2]int{0, 1}, flankB: [2]int{1, 0}},      // NE: needs N, E
}

const sqrt2 = 1.4142135623730951

// searchNode is one entry in the open heap. index is a row-major field
// index; g and f are cost-so-far and total priority.
type searchNode struct {
	index   int
	g, f    float64
	heapIdx int
}

// openHeap is a binary min-heap on f, in the same shape as the
// hand-rolled heap.Interface in Alisa-Novik-bots-arena's
// internal/tasking/pathfinding.go and sohankshirsagar-lsproxy's
// golang_astar/search.go — two independent repos in the retrieval pack
// converge on the exact same container/heap usage for A*.
type openHeap []*searchNode

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].heapIdx = i; h[j].heapIdx = j }
func (h *openHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*searchNode)
	node.heapIdx = n
	*h = append(*h, node)
}
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// cameFromEntry is the first-reached predecessor of a discovered cell.
// pathLen is the number of edges from start to this cell; once written,
// an entry is never overwritten, so the search keeps the first-reached
// predecessor rather than the cheapest one.
type cameFromEntry struct {
	prev    int
	pathLen int
}

// PathfindPath returns the cell centers of the path from start's
// immediate successor through goal, or ok=false if no path exists. large
// applies the one-cell-gap rule to cardinal moves.
func (m *Map) PathfindPath(start, goal geometry.Point2, large bool) (path []geometry.Point2, ok bool) {
	cameFrom, goalIdx, found := m.runPathfind(start, goal, large)
	if !found {
		return nil, false
	}
	return m.reconstructPath(cameFrom, goalIdx), true
}

// PathfindDirection returns the total path length and the cell center of
// step pathLen-4 of the path (the element PathfindPath would hold at
// index pathLen-5), or of the first step if the path has fewer than five
// steps, or ok=false if unreachable. Sized for hot-loop re-planning: it
// walks the predecessor chain once, backward from goal to that step,
// rather than materializing the full path.
func (m *Map) PathfindDirection(start, goal geometry.Point2, large bool) (result DirectionResult, ok bool) {
	cameFrom, goalIdx, found := m.runPathfind(start, goal, large)
	if !found {
		return DirectionResult{}, false
	}

	pathLen := cameFrom[goalIdx].pathLen
	targetStep := pathLen - 4
	if targetStep < 1 {
		targetStep = 1
	}

	cur := goalIdx
	for cameFrom[cur].pathLen != targetStep {
		cur = cameFrom[cur].prev
	}

	return DirectionResult{PathLen: pathLen, Next: m.centerOf(cur)}, true
}

func (m *Map) centerOf(idx int) geometry.Point2 {
	return geometry.GridPoint{X: idx % m.width, Y: idx / m.width}.Center()
}

// runPathfind is the search shared by both entry points. It returns the
// first-reached predecessor map, the goal's field index, and whether the
// goal was reached. On allocation failure it collapses to not-found,
// matching spec's error model for pathfinding (unlike FromGrid, which
// surfaces allocation errors).
func (m *Map) runPathfind(start, goal geometry.Point2, large bool) (cameFrom map[int]cameFromEntry, goalIdx int, found bool) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Log.WithField("panic", r).Debug("influence: pathfind allocation failed, collapsing to no-result")
			cameFrom, found = nil, false
		}
	}()

	opts := mapconfig.DefaultOptions()

	startCell := start.Floor()
	goalCell := goal.Floor()
	geoassert.Assert(m.inBounds(startCell), "influence: start out of range")
	geoassert.Assert(m.inBounds(goalCell), "influence: goal out of range")

	startIdx := m.index(startCell)
	goalIdx = m.index(goalCell)
	if startIdx == goalIdx {
		return nil, goalIdx, false
	}

	goalCenter := goalCell.Center()

	open := make(openHeap, 0, opts.OpenHeapCapacity)
	heap.Init(&open)
	heap.Push(&open, &searchNode{index: startIdx, g: 0, f: startCell.Center().OctileDistanceTo(goalCenter)})

	cameFrom = make(map[int]cameFromEntry, opts.CameFromCapacity)

	for open.Len() > 0 {
		curr := heap.Pop(&open).(*searchNode)
		if curr.index == goalIdx {
			return cameFrom, goalIdx, true
		}

		currPathLen := 0
		if entry, has := cameFrom[curr.index]; has {
			currPathLen = entry.pathLen
		}

		cx, cy := curr.index%m.width, curr.index/m.width
		for _, off := range neighborOffsets {
			nx, ny := cx+off.dx, cy+off.dy
			neighborCell := geometry.GridPoint{X: nx, Y: ny}
			if !m.inBounds(neighborCell) {
				continue
			}
			neighborIdx := nx + ny*m.width
			if m.field[neighborIdx] >= Wall {
				continue
			}
			if !m.neighborAdmissible(cx, cy, off, large) {
				continue
			}
			if neighborIdx == startIdx {
				continue
			}
			if _, seen := cameFrom[neighborIdx]; seen {
				continue
			}

			moveCost := 1.0
			if off.diagonal {
				moveCost = sqrt2
			}
			gNext := curr.g + moveCost*m.field[neighborIdx]

			cameFrom[neighborIdx] = cameFromEntry{prev: curr.index, pathLen: currPathLen + 1}
			heap.Push(&open, &searchNode{
				index: neighborIdx,
				g:     gNext,
				f:     gNext + geometry.GridPoint{X: nx, Y: ny}.Center().OctileDistanceTo(goalCenter),
			})
		}
	}

	return cameFrom, goalIdx, false
}

// neighborAdmissible applies the corner-cut and large-unit gap rules for
// the neighbor described by off, relative to the cell at (cx, cy).
func (m *Map) neighborAdmissible(cx, cy int, off neighborOffset, large bool) bool {
	if off.diagonal {
		return m.cellPassable(cx+off.flankA[0], cy+off.flankA[1]) && m.cellPassable(cx+off.flankB[0], cy+off.flankB[1])
	}
	if !large {
		return true
	}
	return m.cellPassable(cx+off.flankA[0], cy+off.flankA[1]) || m.cellPassable(cx+off.flankB[0], cy+off.flankB[1])
}

func (m *Map) cellPassable(x, y int) bool {
	c := geometry.GridPoint{X: x, Y: y}
	if !m.inBounds(c) {
		return false
	}
	return m.field[x+y*m.width] < Wall
}

// reconstructPath fills a slice of length cameFrom[goalIdx].pathLen with
// the cell centers from start's immediate successor through goal,
// filling from the tail as it walks the predecessor chain backward.
func (m *Map) reconstructPath(cameFrom map[int]cameFromEntry, goalIdx int) []geometry.Point2 {
	pathLen := cameFrom[goalIdx].pathLen
	path := make([]geometry.Point2, pathLen)

	cur := goalIdx
	for i := pathLen - 1; i >= 0; i-- {
		path[i] = m.centerOf(cur)
		cur = cameFrom[cur].prev
	}
	return path
}
