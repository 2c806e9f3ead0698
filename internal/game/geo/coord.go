package geo

import "fmt"

// Point is a cell coordinate, row first.
type Point struct {
	Y, X int
}

// Pt builds a Point.
func Pt(y, x int) Point {
	return Point{Y: y, X: x}
}

// Add returns p shifted by (dy, dx).
func (p Point) Add(dy, dx int) Point {
	return Point{Y: p.Y + dy, X: p.X + dx}
}

// Neighbor returns the neighbour of p in direction dir (see DDY/DDX).
func (p Point) Neighbor(dir int) Point {
	return Point{Y: p.Y + DDY[dir], X: p.X + DDX[dir]}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// Distance approximates the euclidean distance between two cells as
// max(dy,dx) + min(dy,dx)/2. It overestimates diagonals slightly.
func Distance(y1, x1, y2, x2 int) int {
	ay := abs(y2 - y1)
	ax := abs(x2 - x1)
	if ay > ax {
		return ay + ax>>1
	}
	return ax + ay>>1
}

// DistanceTo is Distance between two points.
func (p Point) DistanceTo(q Point) int {
	return Distance(p.Y, p.X, q.Y, q.X)
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// StepToward returns v moved one unit toward target (unchanged when equal).
func StepToward(v, target int) int {
	return v + Sign(target-v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
