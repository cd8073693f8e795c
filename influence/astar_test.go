package influence

import (
	"testing"

	"skirmfield/geometry"
	"skirmfield/gridfield"
)

// TestDiagonalCornerCutPrevention checks that a diagonal move is refused
// when either flanking cardinal cell is a wall, even for a normal (not
// large) unit — corner-cutting is never allowed, unlike the large-unit
// gap rule which only applies to cardinal moves.
func TestDiagonalCornerCutPrevention(t *testing.T) {
	base := gridfield.NewBaseGrid(3, 3, 1)
	// Wall the cell directly north of start and directly east of start,
	// leaving only the diagonal NE cell open. The corner-cut rule must
	// forbid using it since both flanking cardinals are walls.
	base.SetValues([]int{0 + 1*3, 1 + 0*3}, 0) // (0,1)=N of start, (1,0)=E of start
	m := mustFromGrid(t, base)

	start := geometry.Point2{X: 0.5, Y: 0.5}
	goal := geometry.Point2{X: 2.5, Y: 1.5} // NE-ish, reachable only by cutting the corner if allowed

	if _, ok := m.PathfindPath(start, goal, false); ok {
		t.Fatal("expected corner-cut diagonal move to be rejected even for a normal unit")
	}
}

// TestPathfindDirectionConsistency checks the two documented invariants:
// PathfindDirection's PathLen matches len(PathfindPath), and Next equals
// path[path_len-5] when path_len >= 5, else path[0].
func TestPathfindDirectionConsistency(t *testing.T) {
	base := gridfield.NewBaseGrid(20, 20, 1)
	m := mustFromGrid(t, base)

	cases := []struct {
		name       string
		start, end geometry.Point2
	}{
		{"short (1 step)", geometry.Point2{X: 0.5, Y: 0.5}, geometry.Point2{X: 1.5, Y: 0.5}},
		{"short (3 steps)", geometry.Point2{X: 0.5, Y: 0.5}, geometry.Point2{X: 3.5, Y: 0.5}},
		{"exactly 5 steps", geometry.Point2{X: 0.5, Y: 0.5}, geometry.Point2{X: 5.5, Y: 0.5}},
		{"long diagonal", geometry.Point2{X: 0.5, Y: 0.5}, geometry.Point2{X: 15.5, Y: 15.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := m.PathfindPath(tc.start, tc.end, false)
			if !ok {
				t.Fatal("expected a path on a clear grid")
			}
			dir, ok := m.PathfindDirection(tc.start, tc.end, false)
			if !ok {
				t.Fatal("expected PathfindDirection to succeed")
			}
			if dir.PathLen != len(path) {
				t.Fatalf("PathLen = %d, want %d", dir.PathLen, len(path))
			}

			wantIdx := 0
			if len(path) >= 5 {
				wantIdx = len(path) - 5
			}
			if dir.Next != path[wantIdx] {
				t.Fatalf("Next = %v, want path[%d] = %v", dir.Next, wantIdx, path[wantIdx])
			}
		})
	}
}
