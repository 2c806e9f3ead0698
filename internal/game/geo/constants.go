package geo

// Sight limits.
const (
	// MaxSight is the default maximum distance at which a cell can be in view.
	MaxSight = 20

	// MaxLosDelta bounds |dy| and |dx| accepted by Los. The fixed-point
	// products stay below 2*MaxLosDelta^2, which fits an int32.
	MaxLosDelta = 1 << 15
)

// Direction indexes into DDY/DDX.
const (
	DirSouth = iota
	DirNorth
	DirEast
	DirWest
	DirSouthEast
	DirSouthWest
	DirNorthEast
	DirNorthWest
	DirCenter
)

// DDY and DDX are the row and column offsets of the eight neighbours,
// cardinals first, followed by the centre cell.
var (
	DDY = [9]int{1, -1, 0, 0, 1, 1, -1, -1, 0}
	DDX = [9]int{0, 0, 1, -1, 1, -1, 1, -1, 0}
)
