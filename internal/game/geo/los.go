package geo

import "fmt"

// Projector reports whether sight passes through a cell.
type Projector interface {
	IsProjectable(y, x int) bool
}

// ProjectorFunc adapts a function to Projector.
type ProjectorFunc func(y, x int) bool

// IsProjectable calls f(y, x).
func (f ProjectorFunc) IsProjectable(y, x int) bool { return f(y, x) }

// Los reports whether a line can be traced from the centre of (y1,x1) to the
// centre of (y2,x2) with every cell in between projectable. Endpoints are
// never tested.
//
// The walk is exact integer fixed-point: travel one cell at a time along the
// longer axis, with the fraction along the shorter axis scaled by 2*ax*ay.
// A line passing exactly through a tile corner does not test the two cells
// that share that corner. The result is symmetric except for knight's-move
// offsets, where the cell next to the origin along the longer axis is
// enough to grant sight.
func Los(p Projector, y1, x1, y2, x2 int) bool {
	dy := y2 - y1
	dx := x2 - x1
	ay := abs(dy)
	ax := abs(dx)

	if ax < 2 && ay < 2 {
		return true
	}
	if ax > MaxLosDelta || ay > MaxLosDelta {
		panic(fmt.Sprintf("geo: los delta (%d,%d) exceeds %d", dy, dx, MaxLosDelta))
	}

	// Directly north/south.
	if dx == 0 {
		if dy > 0 {
			for ty := y1 + 1; ty < y2; ty++ {
				if !p.IsProjectable(ty, x1) {
					return false
				}
			}
		} else {
			for ty := y1 - 1; ty > y2; ty-- {
				if !p.IsProjectable(ty, x1) {
					return false
				}
			}
		}
		return true
	}

	// Directly east/west.
	if dy == 0 {
		if dx > 0 {
			for tx := x1 + 1; tx < x2; tx++ {
				if !p.IsProjectable(y1, tx) {
					return false
				}
			}
		} else {
			for tx := x1 - 1; tx > x2; tx-- {
				if !p.IsProjectable(y1, tx) {
					return false
				}
			}
		}
		return true
	}

	sx := 1
	if dx < 0 {
		sx = -1
	}
	sy := 1
	if dy < 0 {
		sy = -1
	}

	// Knight's moves.
	if ax == 1 {
		if ay == 2 && p.IsProjectable(y1+sy, x1) {
			return true
		}
	} else if ay == 1 {
		if ax == 2 && p.IsProjectable(y1, x1+sx) {
			return true
		}
	}

	f2 := ax * ay
	f1 := f2 << 1

	if ax >= ay {
		return walkHorizontal(p, y1, x1, x2, sy, sx, ay*ay, f1, f2)
	}
	return walkVertical(p, y1, x1, y2, sy, sx, ax*ax, f1, f2)
}

// walkHorizontal traces an x-major line. qy starts at ay*ay and the slope
// m is 2*ay*ay, both in units of 1/(2*ax*ay) of a cell.
func walkHorizontal(p Projector, y1, x1, x2, sy, sx, qy, f1, f2 int) bool {
	m := qy << 1
	tx := x1 + sx
	ty := y1

	// Slope of exactly one.
	if qy == f2 {
		ty += sy
		qy -= f1
	}

	for tx != x2 {
		if !p.IsProjectable(ty, tx) {
			return false
		}

		qy += m

		switch {
		case qy < f2:
			tx += sx
		case qy > f2:
			ty += sy
			if !p.IsProjectable(ty, tx) {
				return false
			}
			qy -= f1
			tx += sx
		default:
			// Line meets the tile corner exactly.
			ty += sy
			qy -= f1
			tx += sx
		}
	}
	return true
}

// walkVertical is walkHorizontal with the axes swapped.
func walkVertical(p Projector, y1, x1, y2, sy, sx, qx, f1, f2 int) bool {
	m := qx << 1
	ty := y1 + sy
	tx := x1

	if qx == f2 {
		tx += sx
		qx -= f1
	}

	for ty != y2 {
		if !p.IsProjectable(ty, tx) {
			return false
		}

		qx += m

		switch {
		case qx < f2:
			ty += sy
		case qx > f2:
			tx += sx
			if !p.IsProjectable(ty, tx) {
				return false
			}
			qx -= f1
			ty += sy
		default:
			tx += sx
			qx -= f1
			ty += sy
		}
	}
	return true
}
