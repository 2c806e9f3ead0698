package cave

import (
	"errors"
	"fmt"
)

// CheckOccupancy verifies that the cell occupant arrays and the registries'
// own positions describe the same relation. It returns every mismatch.
func (c *Chunk) CheckOccupancy() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInconsistent}, args...)...))
	}

	players := 0
	for i, occ := range c.mon {
		y, x := i/c.width, i%c.width
		switch {
		case occ == PlayerOccupant:
			players++
			if c.player == nil || c.player.y != y || c.player.x != x {
				fail("cell (%d,%d) claims the player", y, x)
			}
		case occ > 0:
			m, ok := c.Monster(occ)
			if !ok {
				fail("cell (%d,%d) references dead monster %d", y, x, occ)
			} else if m.y != y || m.x != x {
				fail("cell (%d,%d) holds %s", y, x, m)
			}
		}
	}

	if c.player != nil && c.player.placed {
		if c.Occupant(c.player.y, c.player.x) != PlayerOccupant {
			fail("player at %v not on its cell", c.player.Loc())
		}
		if players != 1 {
			fail("%d cells claim the player", players)
		}
	} else if players != 0 {
		fail("%d cells claim an unplaced player", players)
	}

	c.ForEachMonster(func(m *Monster) bool {
		if c.Occupant(m.y, m.x) != m.id {
			fail("%s not on its cell", m)
		}
		return true
	})

	onPiles := 0
	for i, head := range c.obj {
		y, x := i/c.width, i%c.width
		for id, steps := head, 0; id != 0; id, steps = c.objects[id].next, steps+1 {
			o, ok := c.Object(id)
			if !ok {
				fail("pile at (%d,%d) references dead object %d", y, x, id)
				break
			}
			if steps > len(c.objects) {
				fail("pile at (%d,%d) loops", y, x)
				break
			}
			if o.y != y || o.x != x {
				fail("object %d at %v found in pile at (%d,%d)", id, o.Loc(), y, x)
			}
			onPiles++
		}
	}

	registered := 0
	c.ForEachObject(func(*Object) bool {
		registered++
		return true
	})
	if registered != onPiles {
		fail("%d objects registered but %d on piles", registered, onPiles)
	}

	return errors.Join(errs...)
}
