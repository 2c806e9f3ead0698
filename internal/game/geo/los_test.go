package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// asciiMap is a Projector over rows of '#' (wall) and anything else (open).
type asciiMap []string

func (m asciiMap) IsProjectable(y, x int) bool {
	return m[y][x] != '#'
}

func openMap(h, w int) asciiMap {
	rows := make(asciiMap, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return rows
}

func (m asciiMap) with(y, x int, c byte) asciiMap {
	out := make(asciiMap, len(m))
	copy(out, m)
	row := []byte(out[y])
	row[x] = c
	out[y] = string(row)
	return out
}

func isKnight(dy, dx int) bool {
	ay, ax := abs(dy), abs(dx)
	return (ay == 1 && ax == 2) || (ay == 2 && ax == 1)
}

func TestLosAdjacentAlwaysVisible(t *testing.T) {
	m := asciiMap{
		"###",
		"###",
		"###",
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			assert.True(t, Los(m, 1, 1, 1+dy, 1+dx), "offset (%d,%d)", dy, dx)
		}
	}
}

func TestLosOrthogonalBlocking(t *testing.T) {
	m := openMap(1, 9)
	assert.True(t, Los(m, 0, 0, 0, 8))
	assert.True(t, Los(m, 0, 8, 0, 0))

	blocked := m.with(0, 4, '#')
	assert.False(t, Los(blocked, 0, 0, 0, 8))
	assert.False(t, Los(blocked, 0, 8, 0, 0))

	// Endpoints are never tested.
	assert.True(t, Los(blocked, 0, 4, 0, 8))
	assert.True(t, Los(blocked, 0, 0, 0, 4))

	col := openMap(9, 1)
	assert.True(t, Los(col, 0, 0, 8, 0))
	col = col.with(3, 0, '#')
	assert.False(t, Los(col, 0, 0, 8, 0))
	assert.False(t, Los(col, 8, 0, 0, 0))
}

func TestLosKnightsMove(t *testing.T) {
	// Origin at (2,2). For (3,4) the cell next to the origin along the
	// longer axis is (2,3); for (4,3) it is (3,2).
	tests := []struct {
		name     string
		walls    [][2]int
		y2, x2   int
		expected bool
	}{
		{"open", nil, 3, 4, true},
		{"diagonal neighbour blocked", [][2]int{{3, 3}}, 3, 4, true},
		{"longer axis blocked", [][2]int{{2, 3}}, 3, 4, false},
		{"vertical open", nil, 4, 3, true},
		{"vertical diagonal neighbour blocked", [][2]int{{3, 3}}, 4, 3, true},
		{"vertical longer axis blocked", [][2]int{{3, 2}}, 4, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := openMap(5, 5)
			for _, w := range tt.walls {
				m = m.with(w[0], w[1], '#')
			}
			assert.Equal(t, tt.expected, Los(m, 2, 2, tt.y2, tt.x2))
		})
	}
}

func TestLosKnightsMoveAsymmetry(t *testing.T) {
	// (2,3) is open so (2,2)->(3,4) succeeds through the knight shortcut.
	// The reverse walk starts at (3,4), whose longer-axis cell (3,3) is a
	// wall, and its general walk hits the same wall.
	m := openMap(5, 6).with(3, 3, '#')
	assert.True(t, Los(m, 2, 2, 3, 4))
	assert.False(t, Los(m, 3, 4, 2, 2))
}

func TestLosDiagonalCorner(t *testing.T) {
	// A perfect diagonal passes through tile corners only, so the cells
	// beside the diagonal never block it.
	m := asciiMap{
		".#...",
		"#.#..",
		".#.#.",
		"..#.#",
		"...#.",
	}
	assert.True(t, Los(m, 0, 0, 4, 4))
	assert.True(t, Los(m, 4, 4, 0, 0))

	assert.False(t, Los(m.with(2, 2, '#'), 0, 0, 4, 4))
}

func TestLosShallowLine(t *testing.T) {
	m := openMap(3, 9)
	assert.True(t, Los(m, 0, 0, 1, 8))

	// A wall on the row the line starts in, near the origin.
	assert.False(t, Los(m.with(0, 1, '#'), 0, 0, 1, 8))
	// A wall on the row the line ends in, near the target.
	assert.False(t, Los(m.with(1, 7, '#'), 0, 0, 1, 8))
	// The far row is never touched.
	assert.True(t, Los(m.with(2, 4, '#'), 0, 0, 1, 8))
}

func TestLosReflexive(t *testing.T) {
	m := asciiMap{
		"..........",
		"..#....#..",
		"....#.....",
		".#.....#..",
		"......#...",
		"..#.......",
		".....#..#.",
		"...#......",
		"........#.",
		".#........",
	}
	h, w := len(m), len(m[0])
	for y1 := range h {
		for x1 := range w {
			for y2 := range h {
				for x2 := range w {
					if isKnight(y2-y1, x2-x1) {
						continue
					}
					ab := Los(m, y1, x1, y2, x2)
					ba := Los(m, y2, x2, y1, x1)
					if ab != ba {
						t.Fatalf("los(%d,%d -> %d,%d)=%v but reverse=%v", y1, x1, y2, x2, ab, ba)
					}
				}
			}
		}
	}
}

func TestLosRejectsHugeDelta(t *testing.T) {
	m := ProjectorFunc(func(int, int) bool { return true })
	assert.Panics(t, func() { Los(m, 0, 0, 1, MaxLosDelta+1) })
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		y1, x1, y2, x2 int
		want           int
	}{
		{"same", 3, 3, 3, 3, 0},
		{"orthogonal", 0, 0, 0, 7, 7},
		{"diagonal", 0, 0, 4, 4, 6},
		{"y major", 0, 0, 5, 3, 6},
		{"x major", 0, 0, -3, -5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.y1, tt.x1, tt.y2, tt.x2))
			assert.Equal(t, tt.want, Distance(tt.y2, tt.x2, tt.y1, tt.x1))
		})
	}
}
