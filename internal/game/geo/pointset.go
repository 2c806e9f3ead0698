package geo

import "github.com/zyedidia/generic/mapset"

// PointSet is an insertion-ordered set of points. Appending while iterating
// by index is allowed, which makes it usable as a flood-fill frontier.
type PointSet struct {
	pts  []Point
	seen mapset.Set[Point]
}

// NewPointSet returns an empty set with room for capacity points.
func NewPointSet(capacity int) *PointSet {
	return &PointSet{
		pts:  make([]Point, 0, capacity),
		seen: mapset.New[Point](),
	}
}

// Add appends p unless it is already present. Reports whether p was added.
func (s *PointSet) Add(p Point) bool {
	if s.seen.Has(p) {
		return false
	}
	s.seen.Put(p)
	s.pts = append(s.pts, p)
	return true
}

// Contains reports whether p is in the set.
func (s *PointSet) Contains(p Point) bool {
	return s.seen.Has(p)
}

// Len returns the number of points.
func (s *PointSet) Len() int {
	return len(s.pts)
}

// At returns the i-th point in insertion order.
func (s *PointSet) At(i int) Point {
	return s.pts[i]
}

// Points returns the points in insertion order. The slice is shared.
func (s *PointSet) Points() []Point {
	return s.pts
}
