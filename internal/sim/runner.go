// Package sim drives levels turn by turn: the player walks, the view and
// flow field follow, rooms light up as they are entered and awake monsters
// close in along the flow.
package sim

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/config"
	"github.com/udisondev/cavesight/internal/game/flow"
	"github.com/udisondev/cavesight/internal/game/geo"
	"github.com/udisondev/cavesight/internal/game/light"
	"github.com/udisondev/cavesight/internal/game/view"
	"github.com/udisondev/cavesight/internal/level"
	"github.com/udisondev/cavesight/internal/logging"
)

// Report summarizes a run.
type Report struct {
	Level    string
	Turns    int
	Moves    int
	Blocked  int
	RoomsLit int
	Seen     int
	Marked   int
	Dropped  int
	Feelings int
}

// Runner plays one level. It owns the level's chunk for the duration of Run.
type Runner struct {
	lvl   *level.Level
	view  *view.Engine
	flow  *flow.Field
	light *light.Lighter
	rng   *rand.Rand
	turns int
	// script, when set, replaces the random walk with fixed directions.
	script []int
	log    *zap.Logger

	feelings int
}

// New creates a runner for lvl. seed makes the walk and the wake-up rolls
// reproducible.
func New(lvl *level.Level, cfg config.Engine, seed uint64, log *zap.Logger) *Runner {
	log = logging.OrNop(log).With(zap.String("level", lvl.Name))
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	v := view.New(cfg.View, log)

	r := &Runner{
		lvl:   lvl,
		view:  v,
		flow:  flow.New(cfg.Flow, log),
		light: light.New(v, rng, cfg.Light, log),
		rng:   rng,
		turns: cfg.Sim.Turns,
		log:   log,
	}
	lvl.Chunk.SetSink(r)
	return r
}

// Script makes the player follow dirs (indexes into geo.DDY/DDX) instead of
// walking at random. The run stops when the script ends.
func (r *Runner) Script(dirs []int) {
	r.script = dirs
	r.turns = len(dirs)
}

// View returns the view engine the runner updates.
func (r *Runner) View() *view.Engine { return r.view }

// Flow returns the runner's flow field.
func (r *Runner) Flow() *flow.Field { return r.flow }

// Lighter returns the runner's lighter.
func (r *Runner) Lighter() *light.Lighter { return r.light }

// RedrawSpot implements cave.Sink. Batch runs have nothing to redraw.
func (r *Runner) RedrawSpot(int, int) {}

// LevelFeeling implements cave.Sink.
func (r *Runner) LevelFeeling(squares int) {
	r.feelings++
	r.log.Info("the level feels different", zap.Int("squares", squares))
}

// Start prepares the level: town lighting, the first view and flow.
func (r *Runner) Start() {
	c, p := r.lvl.Chunk, r.lvl.Player
	if r.lvl.Town {
		r.light.Illuminate(c, p, r.lvl.Daytime)
	} else if c.IsRoom(p.Y(), p.X()) && !c.IsGlow(p.Y(), p.X()) {
		r.light.LightRoom(c, p, p.Y(), p.X(), true)
	}
	r.view.UpdateView(c, p)
	r.flow.Update(c, p)
}

// Run plays the configured number of turns. Cancellation is honoured
// between turns; a cancelled run returns the report so far with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Report, error) {
	rep := Report{Level: r.lvl.Name}
	r.Start()

	for turn := range r.turns {
		if err := ctx.Err(); err != nil {
			r.log.Info("run cancelled", zap.Int("turn", turn))
			r.finish(&rep)
			return rep, err
		}
		r.Turn(turn, &rep)
	}

	r.finish(&rep)
	r.log.Info("run finished",
		zap.Int("turns", rep.Turns),
		zap.Int("moves", rep.Moves),
		zap.Int("rooms_lit", rep.RoomsLit),
		zap.Int("marked", rep.Marked))
	return rep, nil
}

// Turn plays one turn of the scripted or random walk.
func (r *Runner) Turn(turn int, rep *Report) {
	r.Step(r.nextDir(turn), rep)
}

// Step tries to move the player one cell in dir, then updates the view,
// the flow field and the monsters.
func (r *Runner) Step(dir int, rep *Report) {
	c, p := r.lvl.Chunk, r.lvl.Player

	to := p.Loc().Neighbor(dir)
	moved := false
	if c.InBounds(to.Y, to.X) && c.IsPassable(to.Y, to.X) && c.Occupant(to.Y, to.X) == 0 {
		if err := c.MovePlayer(to.Y, to.X); err == nil {
			moved = true
			rep.Moves++
		}
	}
	if !moved {
		rep.Blocked++
	}

	if moved && c.IsRoom(to.Y, to.X) && !c.IsGlow(to.Y, to.X) {
		r.light.LightRoom(c, p, to.Y, to.X, true)
		rep.RoomsLit++
	}

	r.view.UpdateView(c, p)
	st := r.flow.Update(c, p)
	rep.Dropped += st.Dropped

	r.moveMonsters(c)
	rep.Turns++
}

func (r *Runner) nextDir(turn int) int {
	if r.script != nil {
		return r.script[turn]
	}
	return r.rng.IntN(geo.DirCenter)
}

// moveMonsters steps every awake monster one cell along the flow toward the
// player and refreshes monster visibility.
func (r *Runner) moveMonsters(c *cave.Chunk) {
	var movers []*cave.Monster
	c.ForEachMonster(func(m *cave.Monster) bool {
		if !m.Asleep() {
			movers = append(movers, m)
		}
		return true
	})

	for _, m := range movers {
		loc := m.Loc()
		next, ok := r.flow.Step(c, loc.Y, loc.X)
		if !ok || c.IsPlayer(next.Y, next.X) {
			continue
		}
		if err := c.MoveMonster(m.ID(), next.Y, next.X); err != nil {
			r.log.Debug("monster blocked", zap.Stringer("monster", m), zap.Error(err))
		}
	}

	c.ForEachMonster(func(m *cave.Monster) bool {
		loc := m.Loc()
		m.Visible = c.IsSeen(loc.Y, loc.X)
		return true
	})
}

func (r *Runner) finish(rep *Report) {
	c := r.lvl.Chunk
	c.ForEachCell(func(y, x int) {
		if c.IsSeen(y, x) {
			rep.Seen++
		}
		if c.IsMark(y, x) {
			rep.Marked++
		}
	})
	rep.Feelings = r.feelings
}
