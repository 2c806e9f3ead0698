// Package level loads hand-written dungeon levels: an ASCII map in terrain
// glyphs plus rooms, vaults, feeling areas, monsters and objects.
package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/terrain"
)

var (
	ErrNoPlayer    = errors.New("level has no player start")
	ErrManyPlayers = errors.New("level has more than one player start")
	ErrEmptyMap    = errors.New("level map is empty")
	ErrRaggedMap   = errors.New("level map rows differ in width")
	ErrUnknownRune = errors.New("unknown map glyph")
	ErrBadRect     = errors.New("rectangle out of bounds")
	ErrBadIntel    = errors.New("unknown monster intelligence")
)

// Level is a loaded level ready to play.
type Level struct {
	Name   string
	Chunk  *cave.Chunk
	Player *cave.Player
	// Town levels are lit by day or night instead of by rooms.
	Town    bool
	Daytime bool
}

// Rect is an inclusive rectangle: [y1, x1, y2, x2].
type Rect [4]int

type file struct {
	Name   string            `yaml:"name" toml:"name"`
	Map    string            `yaml:"map" toml:"map"`
	Legend map[string]string `yaml:"legend" toml:"legend"`

	Player playerEntry `yaml:"player" toml:"player"`
	Town   *townEntry  `yaml:"town" toml:"town"`

	Rooms    []roomEntry    `yaml:"rooms" toml:"rooms"`
	Vaults   []Rect         `yaml:"vaults" toml:"vaults"`
	Feel     []Rect         `yaml:"feel" toml:"feel"`
	Monsters []monsterEntry `yaml:"monsters" toml:"monsters"`
	Objects  []objectEntry  `yaml:"objects" toml:"objects"`
}

type playerEntry struct {
	Light int  `yaml:"light" toml:"light"`
	Blind bool `yaml:"blind" toml:"blind"`
}

type townEntry struct {
	Daytime bool `yaml:"daytime" toml:"daytime"`
}

type roomEntry struct {
	Rect Rect `yaml:"rect" toml:"rect"`
	Lit  bool `yaml:"lit" toml:"lit"`
}

type monsterEntry struct {
	Y     int    `yaml:"y" toml:"y"`
	X     int    `yaml:"x" toml:"x"`
	Race  string `yaml:"race" toml:"race"`
	Light bool   `yaml:"light" toml:"light"`
	Intel string `yaml:"intel" toml:"intel"`
	Sleep int    `yaml:"sleep" toml:"sleep"`
}

type objectEntry struct {
	Y     int    `yaml:"y" toml:"y"`
	X     int    `yaml:"x" toml:"x"`
	Kind  string `yaml:"kind" toml:"kind"`
	Money bool   `yaml:"money" toml:"money"`
}

// build turns a decoded file into a live chunk.
func (f *file) build(cat *terrain.Catalog) (*Level, error) {
	rows := mapRows(f.Map)
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	width := len([]rune(rows[0]))
	for i, row := range rows {
		if n := len([]rune(row)); n != width {
			return nil, fmt.Errorf("row %d: width %d, want %d: %w", i, n, width, ErrRaggedMap)
		}
	}

	legend, err := f.legend(cat)
	if err != nil {
		return nil, err
	}

	c := cave.New(len(rows), width, cat, nil)
	p := &cave.Player{Light: f.Player.Light, Blind: f.Player.Blind}
	starts := 0

	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == '@' {
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("(%d,%d): %w", y, x, ErrManyPlayers)
				}
				c.SetFeat(y, x, terrain.FeatFloor)
				if err := c.PlacePlayer(p, y, x); err != nil {
					return nil, err
				}
				continue
			}
			id, ok := legend[r]
			if !ok {
				id, ok = cat.ByGlyph(r)
			}
			if !ok {
				return nil, fmt.Errorf("%q at (%d,%d): %w", r, y, x, ErrUnknownRune)
			}
			c.SetFeat(y, x, id)
		}
	}
	if starts == 0 {
		return nil, ErrNoPlayer
	}

	for i, room := range f.Rooms {
		if err := flagRect(c, room.Rect, cave.SquareRoom); err != nil {
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
		if room.Lit {
			_ = flagRect(c, room.Rect, cave.SquareGlow)
		}
	}
	for i, r := range f.Vaults {
		if err := flagRect(c, r, cave.SquareVault); err != nil {
			return nil, fmt.Errorf("vault %d: %w", i, err)
		}
	}
	for i, r := range f.Feel {
		if err := flagRect(c, r, cave.SquareFeel); err != nil {
			return nil, fmt.Errorf("feel %d: %w", i, err)
		}
	}

	for i, m := range f.Monsters {
		intel, err := parseIntel(m.Intel)
		if err != nil {
			return nil, fmt.Errorf("monster %d: %w", i, err)
		}
		if !c.InBounds(m.Y, m.X) {
			return nil, fmt.Errorf("monster %d at (%d,%d): %w", i, m.Y, m.X, ErrBadRect)
		}
		mon := &cave.Monster{Race: m.Race, Light: m.Light, Intel: intel, Sleep: m.Sleep}
		if _, err := c.PlaceMonster(mon, m.Y, m.X); err != nil {
			return nil, fmt.Errorf("monster %d: %w", i, err)
		}
	}

	for i, o := range f.Objects {
		if !c.InBounds(o.Y, o.X) {
			return nil, fmt.Errorf("object %d at (%d,%d): %w", i, o.Y, o.X, ErrBadRect)
		}
		c.PlaceObject(&cave.Object{Kind: o.Kind, Money: o.Money}, o.Y, o.X)
	}

	c.SetLive(true)

	lvl := &Level{Name: f.Name, Chunk: c, Player: p}
	if f.Town != nil {
		lvl.Town = true
		lvl.Daytime = f.Town.Daytime
	}
	return lvl, nil
}

func (f *file) legend(cat *terrain.Catalog) (map[rune]terrain.ID, error) {
	out := make(map[rune]terrain.ID, len(f.Legend))
	for glyph, name := range f.Legend {
		r := []rune(glyph)
		if len(r) != 1 {
			return nil, fmt.Errorf("legend %q: glyph must be one character", glyph)
		}
		id, err := cat.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("legend %q: %w", glyph, err)
		}
		out[r[0]] = id
	}
	return out, nil
}

// mapRows splits a map block into rows, dropping blank leading and
// trailing lines.
func mapRows(m string) []string {
	lines := strings.Split(strings.ReplaceAll(m, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func flagRect(c *cave.Chunk, r Rect, f cave.SquareFlag) error {
	y1, x1, y2, x2 := r[0], r[1], r[2], r[3]
	if y1 > y2 || x1 > x2 || !c.InBounds(y1, x1) || !c.InBounds(y2, x2) {
		return fmt.Errorf("%v: %w", r, ErrBadRect)
	}
	c.FlagRect(y1, x1, y2, x2, f)
	return nil
}

func parseIntel(s string) (cave.Intelligence, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return cave.IntelNormal, nil
	case "smart":
		return cave.IntelSmart, nil
	case "stupid":
		return cave.IntelStupid, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrBadIntel)
}
