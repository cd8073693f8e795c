// Package gridfield holds the base terrain grid the influence map is built
// from: a flat, row-major byte field where zero means impassable and any
// positive value is a passable terrain weight. Adapted from the point/
// index bookkeeping in Alisa-Novik-bots-arena's board and util packages,
// which used a sparse map[Position]Occupant board; this grid is the dense
// weighted field the spec's influence map actually needs underneath it.
package gridfield

import (
	"skirmfield/geometry"
	"skirmfield/internal/geoassert"
)

// BaseGrid is a fixed-size row-major byte field. Cell 0 is impassable; any
// positive value is passable terrain weight.
type BaseGrid struct {
	Width, Height int
	cells         []byte
}

// NewBaseGrid allocates a Width x Height grid with every cell set to v.
func NewBaseGrid(width, height int, v byte) *BaseGrid {
	geoassert.Assert(width > 0 && height > 0, "gridfield: non-positive dimension")
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = v
	}
	return &BaseGrid{Width: width, Height: height, cells: cells}
}

// NewBaseGridFromBytes wraps an existing row-major byte slice, taking
// ownership of it.
func NewBaseGridFromBytes(width, height int, cells []byte) *BaseGrid {
	geoassert.Assert(len(cells) == width*height, "gridfield: cells length does not match dimensions")
	return &BaseGrid{Width: width, Height: height, cells: cells}
}

func (g *BaseGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// PointToIndex maps a continuous point to a row-major cell index by
// flooring both coordinates.
func (g *BaseGrid) PointToIndex(p geometry.Point2) int {
	cell := p.Floor()
	geoassert.Assert(g.inBounds(cell.X, cell.Y), "gridfield: point out of range")
	return cell.X + cell.Y*g.Width
}

// IndexToPoint returns the integer corner (not the center) of the cell at
// index idx.
func (g *BaseGrid) IndexToPoint(idx int) geometry.GridPoint {
	geoassert.Assert(idx >= 0 && idx < len(g.cells), "gridfield: index out of range")
	return geometry.GridPoint{X: idx % g.Width, Y: idx / g.Width}
}

// GetValue returns the byte value of the cell containing p.
func (g *BaseGrid) GetValue(p geometry.Point2) byte {
	return g.cells[g.PointToIndex(p)]
}

// At returns the byte value at row-major index idx.
func (g *BaseGrid) At(idx int) byte {
	geoassert.Assert(idx >= 0 && idx < len(g.cells), "gridfield: index out of range")
	return g.cells[idx]
}

// Len returns the number of cells (Width * Height).
func (g *BaseGrid) Len() int { return len(g.cells) }

// SetValues sets every cell named in indices to v.
func (g *BaseGrid) SetValues(indices []int, v byte) {
	for _, idx := range indices {
		geoassert.Assert(idx >= 0 && idx < len(g.cells), "gridfield: index out of range")
		g.cells[idx] = v
	}
}

// AllEqual reports whether every cell named in indices equals v.
func (g *BaseGrid) AllEqual(indices []int, v byte) bool {
	for _, idx := range indices {
		geoassert.Assert(idx >= 0 && idx < len(g.cells), "gridfield: index out of range")
		if g.cells[idx] != v {
			return false
		}
	}
	return true
}

// Count sums the byte values named in indices, interpreted as unsigned.
func (g *BaseGrid) Count(indices []int) int {
	total := 0
	for _, idx := range indices {
		geoassert.Assert(idx >= 0 && idx < len(g.cells), "gridfield: index out of range")
		total += int(g.cells[idx])
	}
	return total
}
