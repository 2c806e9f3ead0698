// Package flow maintains the breadth-first cost map monsters use to
// track the player.
package flow

import (
	"go.uber.org/zap"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/config"
	"github.com/udisondev/cavesight/internal/game/geo"
	"github.com/udisondev/cavesight/internal/logging"
)

// Field owns the flow generation of one level and the queue used to
// propagate it. Costs and timestamps live in the chunk.
//
// A Field belongs to the goroutine that owns its chunk.
type Field struct {
	depth int
	queue *Ring[geo.Point]
	gen   Generation
	log   *zap.Logger
}

// Stats summarizes one Update.
type Stats struct {
	Generation uint8
	// Reached counts cells stamped with the new generation, the player's
	// included.
	Reached int
	// Dropped counts stamped cells that did not fit in the queue and so were
	// not expanded.
	Dropped int
	Rebased bool
}

// New creates a flow field.
func New(cfg config.FlowConfig, log *zap.Logger) *Field {
	return &Field{
		depth: cfg.Depth,
		queue: NewRing[geo.Point](cfg.QueueSize),
		log:   logging.OrNop(log),
	}
}

// Generation returns the stamp written by the latest Update.
func (f *Field) Generation() uint8 { return f.gen.Current() }

// Update recomputes the cost to reach the player from every cell within the
// flow depth. Cells whose timestamp differs from Generation afterwards hold
// stale costs.
func (f *Field) Update(c *cave.Chunk, p *cave.Player) Stats {
	gen, rebase := f.gen.Next()
	if rebase {
		c.RebaseWhen(Rebase)
	}
	st := Stats{Generation: gen, Rebased: rebase}

	f.queue.Reset()
	c.SetFlow(p.Y(), p.X(), 0, gen)
	f.queue.Push(p.Loc())
	st.Reached++

	for {
		cur, ok := f.queue.Pop()
		if !ok {
			break
		}

		n := int(c.Cost(cur.Y, cur.X)) + 1
		if n == f.depth {
			continue
		}

		for dir := range geo.DirCenter {
			y, x := cur.Y+geo.DDY[dir], cur.X+geo.DDX[dir]
			if !c.InBounds(y, x) {
				continue
			}
			if c.When(y, x) == gen {
				continue
			}
			if c.BlocksFlow(y, x) {
				continue
			}

			c.SetFlow(y, x, uint8(n), gen)
			st.Reached++

			if !f.queue.Push(geo.Pt(y, x)) {
				st.Dropped++
			}
		}
	}

	if rebase {
		f.log.Info("flow generation rebased", zap.Uint8("generation", gen))
	}
	if st.Dropped > 0 {
		f.log.Warn("flow queue full, propagation truncated",
			zap.Int("dropped", st.Dropped),
			zap.Int("queue_size", f.queue.Cap()))
	}
	f.log.Debug("flow update",
		zap.Uint8("generation", gen),
		zap.Int("reached", st.Reached),
		zap.Int("dropped", st.Dropped))

	return st
}

// Forget zeroes every cost and timestamp and restarts the generation. It
// does nothing when the field has never been updated.
func (f *Field) Forget(c *cave.Chunk) {
	if f.gen.Current() == 0 {
		return
	}
	c.ClearFlow()
	f.gen.Reset()
}

// Fresh reports whether (y, x) was reached by the latest Update.
func (f *Field) Fresh(c *cave.Chunk, y, x int) bool {
	g := f.gen.Current()
	return g != 0 && c.When(y, x) == g
}

// Step returns the neighbour of (y, x) with the lowest fresh cost that is
// lower than the cost of (y, x) itself, for a monster closing in on the
// player. Occupied cells other than the player's are skipped.
func (f *Field) Step(c *cave.Chunk, y, x int) (geo.Point, bool) {
	best := geo.Point{}
	bestCost := -1
	if f.Fresh(c, y, x) {
		bestCost = int(c.Cost(y, x))
	}

	found := false
	for dir := range geo.DirCenter {
		ny, nx := y+geo.DDY[dir], x+geo.DDX[dir]
		if !c.InBounds(ny, nx) || !f.Fresh(c, ny, nx) {
			continue
		}
		if occ := c.Occupant(ny, nx); occ > 0 {
			continue
		}
		cost := int(c.Cost(ny, nx))
		if bestCost >= 0 && cost >= bestCost {
			continue
		}
		best, bestCost, found = geo.Pt(ny, nx), cost, true
	}
	return best, found
}
