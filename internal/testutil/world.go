package testutil

import (
	"testing"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/terrain"
)

// BuildChunk creates a live chunk from rows of built-in catalog glyphs.
// '@' places a player (light radius 1) on a floor cell; the player is
// returned, or nil when the rows have no '@'.
func BuildChunk(t testing.TB, rows ...string) (*cave.Chunk, *cave.Player) {
	t.Helper()

	if len(rows) == 0 {
		t.Fatalf("BuildChunk: no rows")
	}

	cat := terrain.Default()
	c := cave.New(len(rows), len(rows[0]), cat, nil)

	var p *cave.Player
	for y, row := range rows {
		if len(row) != c.Width() {
			t.Fatalf("BuildChunk: row %d has width %d, want %d", y, len(row), c.Width())
		}
		for x, r := range row {
			if r == '@' {
				c.SetFeat(y, x, terrain.FeatFloor)
				p = &cave.Player{Light: 1}
				if err := c.PlacePlayer(p, y, x); err != nil {
					t.Fatalf("BuildChunk: %v", err)
				}
				continue
			}
			id, ok := cat.ByGlyph(r)
			if !ok {
				t.Fatalf("BuildChunk: unknown glyph %q at (%d,%d)", r, y, x)
			}
			c.SetFeat(y, x, id)
		}
	}

	c.SetLive(true)
	return c, p
}

// OpenRoom builds an h x w floor area surrounded by granite, flagged ROOM
// including its walls, with the player at (py, px) in chunk coordinates.
func OpenRoom(t testing.TB, h, w, py, px int) (*cave.Chunk, *cave.Player) {
	t.Helper()

	rows := make([]string, h+2)
	for y := range rows {
		row := make([]byte, w+2)
		for x := range row {
			switch {
			case y == 0 || y == h+1 || x == 0 || x == w+1:
				row[x] = '#'
			case y == py && x == px:
				row[x] = '@'
			default:
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}

	c, p := BuildChunk(t, rows...)
	c.FlagRect(0, 0, h+1, w+1, cave.SquareRoom)
	return c, p
}

// Snapshot copies the flag set of every cell.
func Snapshot(c *cave.Chunk) []cave.SquareInfo {
	out := make([]cave.SquareInfo, 0, c.Height()*c.Width())
	c.ForEachCell(func(y, x int) {
		out = append(out, c.Info(y, x))
	})
	return out
}
