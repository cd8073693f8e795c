package influence

import "skirmfield/geometry"

// Snapshot is a read-only view over a Map's field, for callers that want
// to inspect influence values without issuing a safe-spot or pathfind
// query. Grounded in Pathweaver's GetInfluenceAt/GetLayerInfluenceAt
// read accessors (other_examples/phuhao00-Pathweaver__influence_map.go);
// unlike that map, this one has a single layer, so there is one value
// per cell rather than a value per layer.
type Snapshot struct {
	m *Map
}

// Snapshot returns a read-only view of m's current field.
func (m *Map) Snapshot() Snapshot { return Snapshot{m: m} }

// Dims returns the field's width and height.
func (s Snapshot) Dims() (width, height int) { return s.m.width, s.m.height }

// Value returns the influence value at cell c. Panics if c is out of
// bounds.
func (s Snapshot) Value(c geometry.GridPoint) float64 {
	geoassertInBounds(s.m, c)
	return s.m.field[c.X+c.Y*s.m.width]
}
