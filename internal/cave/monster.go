package cave

import (
	"errors"
	"fmt"

	"github.com/udisondev/cavesight/internal/game/geo"
)

// MonsterID is a cell occupant reference. Zero means empty.
type MonsterID int16

// PlayerOccupant is the occupant reference of the cell the player stands on.
const PlayerOccupant MonsterID = -1

var (
	ErrOccupied        = errors.New("cell occupied")
	ErrNoSuchMonster   = errors.New("no such monster")
	ErrNoSuchObject    = errors.New("no such object")
	ErrPlayerNotPlaced = errors.New("player not placed")
	ErrInconsistent    = errors.New("occupancy inconsistent")
)

// Intelligence decides how easily a sleeping monster is woken by light.
type Intelligence uint8

const (
	IntelNormal Intelligence = iota
	IntelSmart
	IntelStupid
)

func (i Intelligence) String() string {
	switch i {
	case IntelSmart:
		return "smart"
	case IntelStupid:
		return "stupid"
	}
	return "normal"
}

// Monster is a live monster on a chunk. Its position is owned by the chunk
// and changes only through PlaceMonster/MoveMonster.
type Monster struct {
	id   MonsterID
	y, x int

	Race  string
	Light bool
	Intel Intelligence
	// Sleep is the remaining sleep timer; zero means awake.
	Sleep int
	// Visible is set when the player can perceive the monster.
	Visible bool
}

func (m *Monster) ID() MonsterID  { return m.id }
func (m *Monster) Loc() geo.Point { return geo.Pt(m.y, m.x) }
func (m *Monster) Asleep() bool   { return m.Sleep > 0 }
func (m *Monster) Wake()          { m.Sleep = 0 }
func (m *Monster) String() string { return fmt.Sprintf("%s#%d@%v", m.Race, m.id, m.Loc()) }

// PlaceMonster puts m on an empty cell and registers it.
func (c *Chunk) PlaceMonster(m *Monster, y, x int) (MonsterID, error) {
	i := c.idx(y, x)
	if c.mon[i] != 0 {
		return 0, fmt.Errorf("placing %s at (%d,%d): %w", m.Race, y, x, ErrOccupied)
	}

	id := MonsterID(len(c.monsters))
	for k := 1; k < len(c.monsters); k++ {
		if c.monsters[k] == nil {
			id = MonsterID(k)
			break
		}
	}
	if int(id) == len(c.monsters) {
		c.monsters = append(c.monsters, nil)
	}

	m.id = id
	m.y, m.x = y, x
	c.monsters[id] = m
	c.mon[i] = id
	return id, nil
}

// MoveMonster moves a monster to an empty cell.
func (c *Chunk) MoveMonster(id MonsterID, y, x int) error {
	m, ok := c.Monster(id)
	if !ok {
		return fmt.Errorf("moving monster %d: %w", id, ErrNoSuchMonster)
	}
	to := c.idx(y, x)
	if c.mon[to] != 0 {
		return fmt.Errorf("moving %s to (%d,%d): %w", m, y, x, ErrOccupied)
	}

	c.mon[c.idx(m.y, m.x)] = 0
	c.mon[to] = id
	m.y, m.x = y, x
	return nil
}

// RemoveMonster unregisters a monster and empties its cell.
func (c *Chunk) RemoveMonster(id MonsterID) error {
	m, ok := c.Monster(id)
	if !ok {
		return fmt.Errorf("removing monster %d: %w", id, ErrNoSuchMonster)
	}
	c.mon[c.idx(m.y, m.x)] = 0
	c.monsters[id] = nil
	m.id = 0
	return nil
}

// Monster returns a registered monster.
func (c *Chunk) Monster(id MonsterID) (*Monster, bool) {
	if id <= 0 || int(id) >= len(c.monsters) || c.monsters[id] == nil {
		return nil, false
	}
	return c.monsters[id], true
}

// Occupant returns the occupant reference of a cell.
func (c *Chunk) Occupant(y, x int) MonsterID {
	return c.mon[c.idx(y, x)]
}

// MonsterAt returns the monster standing on a cell, or nil.
func (c *Chunk) MonsterAt(y, x int) *Monster {
	id := c.Occupant(y, x)
	if id <= 0 {
		return nil
	}
	return c.monsters[id]
}

// ForEachMonster calls fn for every live monster in id order until fn
// returns false.
func (c *Chunk) ForEachMonster(fn func(*Monster) bool) {
	for _, m := range c.monsters[1:] {
		if m == nil {
			continue
		}
		if !fn(m) {
			return
		}
	}
}

// MonsterCount returns the number of live monsters.
func (c *Chunk) MonsterCount() int {
	n := 0
	c.ForEachMonster(func(*Monster) bool {
		n++
		return true
	})
	return n
}
