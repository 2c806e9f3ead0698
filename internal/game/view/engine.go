package view

import (
	"go.uber.org/zap"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/config"
	"github.com/udisondev/cavesight/internal/game/geo"
	"github.com/udisondev/cavesight/internal/logging"
)

// Engine computes the player's field of view over a chunk. It holds no
// per-level state and may be shared between levels owned by different
// goroutines.
type Engine struct {
	maxSight         int
	feelingThreshold int
	torchLighting    bool
	log              *zap.Logger
}

// New creates a view engine.
func New(cfg config.ViewConfig, log *zap.Logger) *Engine {
	return &Engine{
		maxSight:         cfg.MaxSight,
		feelingThreshold: cfg.FeelingThreshold,
		torchLighting:    cfg.TorchLighting,
		log:              logging.OrNop(log),
	}
}

// MaxSight returns the view distance limit.
func (e *Engine) MaxSight() int { return e.maxSight }

// Stats summarizes one UpdateView pass.
type Stats struct {
	View      int
	Seen      int
	NewlySeen int
	Forgotten int
}

// UpdateView recomputes VIEW and SEEN for every cell of c from the player's
// position, light radius and blindness, then memorizes newly seen cells and
// requests redraws for every cell whose SEEN state changed.
func (e *Engine) UpdateView(c *cave.Chunk, p *cave.Player) Stats {
	py, px := p.Y(), p.X()

	markWasSeen(c)

	// Light spills one cell past its nominal radius.
	radius := p.Light
	if radius > 0 {
		radius++
	}

	e.addMonsterLights(c, py, px)

	c.On(py, px, cave.SquareView)
	if radius > 0 || c.IsGlow(py, px) {
		c.On(py, px, cave.SquareSeen)
	}

	c.ForEachCell(func(y, x int) {
		e.updateOne(c, y, x, radius, py, px)
	})

	var st Stats
	c.ForEachCell(func(y, x int) {
		e.commit(c, y, x, p.Blind, &st)
	})

	e.log.Debug("view updated",
		zap.Stringer("player", p.Loc()),
		zap.Int("radius", radius),
		zap.Int("view", st.View),
		zap.Int("seen", st.Seen),
		zap.Int("newly_seen", st.NewlySeen),
		zap.Int("forgotten", st.Forgotten))

	return st
}

// ForgetView clears VIEW and SEEN on every cell in view and redraws it.
func (e *Engine) ForgetView(c *cave.Chunk) {
	c.ForEachCell(func(y, x int) {
		if !c.IsView(y, x) {
			return
		}
		c.Off(y, x, cave.SquareView)
		c.Off(y, x, cave.SquareSeen)
		c.LightSpot(y, x)
	})
}

// Refresh forgets the current view and computes it again. Used after
// illumination changes.
func (e *Engine) Refresh(c *cave.Chunk, p *cave.Player) Stats {
	e.ForgetView(c)
	return e.UpdateView(c, p)
}

// PlayerHasLOS reports whether a cell is in the player's line of sight.
func PlayerHasLOS(c *cave.Chunk, y, x int) bool {
	return c.IsView(y, x)
}

// PlayerCanSee reports whether the player currently sees a cell.
func PlayerCanSee(c *cave.Chunk, y, x int) bool {
	return c.IsSeen(y, x)
}

// NoLight reports whether the player's own cell is dark.
func NoLight(c *cave.Chunk, p *cave.Player) bool {
	return !PlayerCanSee(c, p.Y(), p.X())
}

func markWasSeen(c *cave.Chunk) {
	c.ForEachCell(func(y, x int) {
		if c.IsSeen(y, x) {
			c.On(y, x, cave.SquareWasSeen)
		}
		c.Off(y, x, cave.SquareView)
		c.Off(y, x, cave.SquareSeen)
	})
}

// addMonsterLights marks the 3x3 block around every light-carrying monster
// as seen where the player has line of sight to it. When the monster itself
// is out of sight only projectable cells of the block are lit.
func (e *Engine) addMonsterLights(c *cave.Chunk, py, px int) {
	c.ForEachMonster(func(m *cave.Monster) bool {
		if !m.Light {
			return true
		}

		loc := m.Loc()
		inLOS := geo.Los(c, py, px, loc.Y, loc.X)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				sy, sx := loc.Y+dy, loc.X+dx
				if !c.InBounds(sy, sx) {
					continue
				}
				if !inLOS && !c.IsProjectable(sy, sx) {
					continue
				}
				if geo.Distance(py, px, sy, sx) > e.maxSight {
					continue
				}
				if !geo.Los(c, py, px, sy, sx) {
					continue
				}
				c.On(sy, sx, cave.SquareView)
				c.On(sy, sx, cave.SquareSeen)
			}
		}
		return true
	})
}

// updateOne decides whether the player can view (y, x).
//
// A wall is tested through the cell one step toward the player, so the
// face of a wall along a corridor is visible even when the line to the wall
// cell itself grazes the neighbouring wall. The shift is skipped when that
// cell is itself a wall (the far face of a thick wall stays hidden) and when
// the wall was reached by a knight's move around a corner.
func (e *Engine) updateOne(c *cave.Chunk, y, x, radius, py, px int) {
	d := geo.Distance(y, x, py, px)
	if d > e.maxSight {
		return
	}
	lit := d < radius

	yc, xc := y, x
	if c.IsWall(y, x) {
		dy, dx := y-py, x-px
		ay, ax := abs(dy), abs(dx)
		sy, sx := -1, -1
		if dy > 0 {
			sy = 1
		}
		if dx > 0 {
			sx = 1
		}

		yc, xc = geo.StepToward(y, py), geo.StepToward(x, px)

		if c.IsWall(yc, xc) {
			yc, xc = y, x
		}

		if ax == 2 && ay == 1 {
			if !c.IsWall(y, x-sx) && c.IsWall(y-sy, x-sx) {
				yc, xc = y, x
			}
		} else if ax == 1 && ay == 2 {
			if !c.IsWall(y-sy, x) && c.IsWall(y-sy, x-sx) {
				yc, xc = y, x
			}
		}
	}

	if geo.Los(c, py, px, yc, xc) {
		becomeViewable(c, y, x, lit, py, px)
	}
}

// becomeViewable marks a cell VIEW, and SEEN when it is lit by the player
// or glows. A glowing wall is only seen when the cell in front of it, on the
// player's side, glows as well.
func becomeViewable(c *cave.Chunk, y, x int, lit bool, py, px int) {
	if c.IsView(y, x) {
		return
	}
	c.On(y, x, cave.SquareView)

	if lit {
		c.On(y, x, cave.SquareSeen)
	}

	if c.IsGlow(y, x) {
		yc, xc := y, x
		if c.IsWall(y, x) {
			yc, xc = geo.StepToward(y, py), geo.StepToward(x, px)
		}
		if c.IsGlow(yc, xc) {
			c.On(y, x, cave.SquareSeen)
		}
	}
}

// commit applies blindness, fires the side effects of SEEN transitions and
// drops the WASSEEN snapshot.
func (e *Engine) commit(c *cave.Chunk, y, x int, blind bool, st *Stats) {
	if blind {
		c.Off(y, x, cave.SquareSeen)
	}

	seen := c.IsSeen(y, x)
	was := c.WasSeen(y, x)

	if seen && !was {
		if c.IsFeel(y, x) {
			n := c.AddFeelingSquare()
			c.Off(y, x, cave.SquareFeel)
			if n == e.feelingThreshold {
				e.log.Info("level feeling", zap.Int("squares", n))
				c.Sink().LevelFeeling(n)
			}
		}
		c.NoteSpot(y, x)
		c.LightSpot(y, x)
		st.NewlySeen++
	}

	if !seen && was {
		c.LightSpot(y, x)
		st.Forgotten++
	}

	if c.IsView(y, x) {
		st.View++
	}
	if seen {
		st.Seen++
	}

	c.Off(y, x, cave.SquareWasSeen)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
