package cave

import (
	"fmt"

	"github.com/udisondev/cavesight/internal/game/geo"
)

// Player holds the player state the grid engine reads.
type Player struct {
	y, x   int
	placed bool

	// Light is the current light radius; zero means no light.
	Light int
	Blind bool
}

// Loc returns the player's cell.
func (p *Player) Loc() geo.Point { return geo.Pt(p.y, p.x) }

// Y returns the player's row.
func (p *Player) Y() int { return p.y }

// X returns the player's column.
func (p *Player) X() int { return p.x }

// Player returns the player placed on the chunk, or nil.
func (c *Chunk) Player() *Player { return c.player }

// PlacePlayer puts p on a cell free of monsters. A player already on the
// chunk is taken off its old cell first.
func (c *Chunk) PlacePlayer(p *Player, y, x int) error {
	i := c.idx(y, x)
	if occ := c.mon[i]; occ != 0 && occ != PlayerOccupant {
		return fmt.Errorf("placing player at (%d,%d): %w", y, x, ErrOccupied)
	}

	if c.player != nil && c.player.placed {
		c.mon[c.idx(c.player.y, c.player.x)] = 0
	}
	p.y, p.x = y, x
	p.placed = true
	c.player = p
	c.mon[i] = PlayerOccupant
	return nil
}

// MovePlayer moves the placed player to a cell free of monsters.
func (c *Chunk) MovePlayer(y, x int) error {
	if c.player == nil {
		return ErrPlayerNotPlaced
	}
	return c.PlacePlayer(c.player, y, x)
}
