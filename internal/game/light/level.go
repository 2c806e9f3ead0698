package light

import (
	"go.uber.org/zap"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/game/geo"
)

// WizLight lights and maps the whole level. Every cell that does not look
// like a wall lights its 3x3 block; non-floor cells and visible traps in
// those blocks are memorized. Floor objects become seen when full is set,
// otherwise merely sensed.
func (l *Lighter) WizLight(c *cave.Chunk, p *cave.Player, full bool) {
	mark := cave.MarkAware
	if full {
		mark = cave.MarkSeen
	}
	c.ForEachObject(func(o *cave.Object) bool {
		if o.Marked < cave.MarkSeen {
			o.Marked = mark
		}
		return true
	})

	for y := 1; y < c.Height()-1; y++ {
		for x := 1; x < c.Width()-1; x++ {
			if c.SeemsLikeWall(y, x) {
				continue
			}
			for dir := range geo.DirCenter + 1 {
				yy, xx := y+geo.DDY[dir], x+geo.DDX[dir]
				c.On(yy, xx, cave.SquareGlow)
				if !c.IsFloor(yy, xx) || c.IsVisibleTrap(yy, xx) {
					c.On(yy, xx, cave.SquareMark)
				}
			}
		}
	}

	l.view.Refresh(c, p)
	l.log.Info("level mapped", zap.Bool("full", full))
}

// WizDark makes the player forget the level map, trap detection and every
// object.
func (l *Lighter) WizDark(c *cave.Chunk, p *cave.Player) {
	c.ForEachCell(func(y, x int) {
		c.Off(y, x, cave.SquareMark)
		c.Off(y, x, cave.SquareDtrap)
		c.Off(y, x, cave.SquareDedge)
	})
	c.ForEachObject(func(o *cave.Object) bool {
		o.Marked = cave.MarkUnaware
		return true
	})

	l.view.Refresh(c, p)
	l.log.Info("level forgotten")
}

// Illuminate applies town lighting. By day every cell is lit and
// memorized; at night only non-floor cells are, and floor cells go dark and
// are forgotten. Shop entrances always light up their surroundings.
func (l *Lighter) Illuminate(c *cave.Chunk, p *cave.Player, daytime bool) {
	c.ForEachCell(func(y, x int) {
		if daytime || !c.IsFloor(y, x) {
			c.On(y, x, cave.SquareGlow)
			c.On(y, x, cave.SquareMark)
		} else {
			c.Off(y, x, cave.SquareGlow)
			c.Off(y, x, cave.SquareMark)
		}
	})

	c.ForEachCell(func(y, x int) {
		if !c.IsShop(y, x) {
			return
		}
		for dir := range geo.DirCenter {
			yy, xx := y+geo.DDY[dir], x+geo.DDX[dir]
			if !c.InBounds(yy, xx) {
				continue
			}
			c.On(yy, xx, cave.SquareGlow)
			c.On(yy, xx, cave.SquareMark)
		}
	})

	l.view.Refresh(c, p)
	l.log.Info("town illuminated", zap.Bool("daytime", daytime))
}
