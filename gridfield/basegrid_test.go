package gridfield

import (
	"skirmfield/geometry"
	"testing"
)

func TestPointToIndexFloor(t *testing.T) {
	g := NewBaseGrid(10, 10, 1)
	idx := g.PointToIndex(geometry.Point2{X: 3.9, Y: 2.1})
	if want := 3 + 2*10; idx != want {
		t.Fatalf("PointToIndex = %d, want %d", idx, want)
	}
}

func TestIndexToPointIsCorner(t *testing.T) {
	g := NewBaseGrid(10, 10, 1)
	got := g.IndexToPoint(23)
	if got != (geometry.GridPoint{X: 3, Y: 2}) {
		t.Fatalf("IndexToPoint(23) = %v, want (3,2)", got)
	}
}

func TestRoundTripPointIndex(t *testing.T) {
	g := NewBaseGrid(10, 10, 1)
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			cell := geometry.GridPoint{X: x, Y: y}
			idx := g.PointToIndex(cell.Center())
			if got := g.IndexToPoint(idx); got != cell {
				t.Fatalf("round trip failed for (%d,%d): got %v", x, y, got)
			}
		}
	}
}

func TestSetValuesAndAllEqual(t *testing.T) {
	g := NewBaseGrid(5, 5, 1)
	idxs := []int{0, 1, 2, 3}
	g.SetValues(idxs, 0)
	if !g.AllEqual(idxs, 0) {
		t.Fatal("expected all indices to equal 0 after SetValues")
	}
	if g.AllEqual([]int{0, 1, 2, 4}, 0) {
		t.Fatal("AllEqual should be false when one index differs")
	}
}

func TestCountSumsUnsigned(t *testing.T) {
	g := NewBaseGridFromBytes(3, 1, []byte{200, 100, 0})
	if got := g.Count([]int{0, 1, 2}); got != 300 {
		t.Fatalf("Count = %d, want 300", got)
	}
}
