// Package light changes permanent illumination: lighting and darkening
// rooms, magic mapping, forgetting the map and town day/night.
package light

import (
	"go.uber.org/zap"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/config"
	"github.com/udisondev/cavesight/internal/game/geo"
	"github.com/udisondev/cavesight/internal/game/view"
	"github.com/udisondev/cavesight/internal/logging"
)

// Wake-up chance, in percent, for a sleeping monster caught in a room as it
// is lit.
const (
	WakeChance       = 25
	WakeChanceStupid = 10
	WakeChanceSmart  = 100
)

// roomSpread is the order in which a room cell hands light to its
// neighbours: cardinals first, then diagonals.
var roomSpread = [8]geo.Point{
	{Y: 1, X: 0}, {Y: -1, X: 0}, {Y: 0, X: 1}, {Y: 0, X: -1},
	{Y: 1, X: 1}, {Y: -1, X: -1}, {Y: -1, X: 1}, {Y: 1, X: -1},
}

// Lighter applies illumination changes and refreshes the player's view
// afterwards.
type Lighter struct {
	view         *view.Engine
	rng          cave.Rand
	roomCapacity int
	log          *zap.Logger
}

// New creates a Lighter. rng decides which sleeping monsters wake when a
// room is lit.
func New(v *view.Engine, rng cave.Rand, cfg config.LightConfig, log *zap.Logger) *Lighter {
	return &Lighter{
		view:         v,
		rng:          rng,
		roomCapacity: cfg.RoomCapacity,
		log:          logging.OrNop(log),
	}
}

// Room collects the room containing (y, x): every ROOM cell connected to it
// through projectable ROOM cells. Walls of the room are included but light
// does not pass through them. The result is empty when (y, x) is not part
// of a room.
func (l *Lighter) Room(c *cave.Chunk, y, x int) *geo.PointSet {
	ps := geo.NewPointSet(l.roomCapacity)
	addRoomCell(c, ps, y, x)

	for i := 0; i < ps.Len(); i++ {
		cur := ps.At(i)
		if !c.IsProjectable(cur.Y, cur.X) {
			continue
		}
		for _, d := range roomSpread {
			addRoomCell(c, ps, cur.Y+d.Y, cur.X+d.X)
		}
	}
	return ps
}

func addRoomCell(c *cave.Chunk, ps *geo.PointSet, y, x int) {
	if !c.InBounds(y, x) || !c.IsRoom(y, x) {
		return
	}
	ps.Add(geo.Pt(y, x))
}

// LightRoom lights (light=true) or darkens the room containing (y, x) and
// returns the number of cells changed.
func (l *Lighter) LightRoom(c *cave.Chunk, p *cave.Player, y, x int, light bool) int {
	ps := l.Room(c, y, x)
	if ps.Len() == 0 {
		return 0
	}

	if light {
		l.lightCells(c, p, ps)
	} else {
		l.unlightCells(c, p, ps)
	}

	l.log.Debug("room lighting changed",
		zap.Stringer("origin", geo.Pt(y, x)),
		zap.Bool("lit", light),
		zap.Int("cells", ps.Len()))
	return ps.Len()
}

func (l *Lighter) lightCells(c *cave.Chunk, p *cave.Player, ps *geo.PointSet) {
	for _, pt := range ps.Points() {
		c.On(pt.Y, pt.X, cave.SquareGlow)
	}

	l.view.Refresh(c, p)

	for _, pt := range ps.Points() {
		c.LightSpot(pt.Y, pt.X)

		m := c.MonsterAt(pt.Y, pt.X)
		if m == nil || !m.Asleep() {
			continue
		}
		if l.rng.IntN(100) < wakeChance(m.Intel) {
			m.Wake()
			l.log.Debug("monster woken by light", zap.Stringer("monster", m))
		}
	}
}

func (l *Lighter) unlightCells(c *cave.Chunk, p *cave.Player, ps *geo.PointSet) {
	for _, pt := range ps.Points() {
		c.Off(pt.Y, pt.X, cave.SquareGlow)
		if !c.IsInteresting(pt.Y, pt.X) {
			c.Off(pt.Y, pt.X, cave.SquareMark)
		}
	}

	l.view.Refresh(c, p)

	for _, pt := range ps.Points() {
		c.LightSpot(pt.Y, pt.X)
	}
}

func wakeChance(intel cave.Intelligence) int {
	switch intel {
	case cave.IntelStupid:
		return WakeChanceStupid
	case cave.IntelSmart:
		return WakeChanceSmart
	}
	return WakeChance
}
