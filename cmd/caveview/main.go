package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/udisondev/cavesight/internal/config"
	"github.com/udisondev/cavesight/internal/game/geo"
	"github.com/udisondev/cavesight/internal/game/view"
	"github.com/udisondev/cavesight/internal/level"
	"github.com/udisondev/cavesight/internal/logging"
	"github.com/udisondev/cavesight/internal/sim"
	"github.com/udisondev/cavesight/internal/terrain"
)

const ConfigPath = "config/cavesight.yaml"

const help = "arrows move  l light  d darken  m map  x forget  f flow  q quit"

// Viewer is an interactive session on one level.
type Viewer struct {
	screen tcell.Screen
	lvl    *level.Level
	runner *sim.Runner
	rep    sim.Report

	showFlow bool
	status   string
	log      *zap.Logger
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "caveview:", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: caveview <level file>")
	}

	cfgPath := ConfigPath
	if p := os.Getenv("CAVESIGHT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The terminal belongs to the viewer: log only to a file.
	log := zap.NewNop()
	if cfg.Log.File != "" {
		if log, err = logging.New(cfg.Log); err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = log.Sync() }()
	}

	cat := terrain.Default()
	if cfg.TerrainFile != "" {
		if cat, err = terrain.Load(cfg.TerrainFile); err != nil {
			return fmt.Errorf("loading terrain: %w", err)
		}
	}

	lvl, err := level.Load(os.Args[1], cat)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &Viewer{
		screen: screen,
		lvl:    lvl,
		runner: sim.New(lvl, cfg, cfg.Sim.Seed, log),
		status: help,
		log:    log,
	}
	lvl.Chunk.SetSink(v)
	v.runner.Start()
	v.loop()
	return nil
}

// RedrawSpot implements cave.Sink. The whole map is redrawn after every
// key, so single cells need no work.
func (v *Viewer) RedrawSpot(int, int) {}

// LevelFeeling implements cave.Sink.
func (v *Viewer) LevelFeeling(squares int) {
	v.status = fmt.Sprintf("You feel something about this level (%d squares seen).", squares)
}

func (v *Viewer) loop() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		if ev == nil || !v.handleInput(ev) {
			return
		}
	}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if dir, ok := arrowDir(ev.Key()); ok {
			v.status = help
			v.runner.Step(dir, &v.rep)
			return true
		}
		if ev.Key() == tcell.KeyRune {
			return v.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleRune(r rune) bool {
	c, p := v.lvl.Chunk, v.lvl.Player
	l := v.runner.Lighter()

	switch r {
	case 'q':
		return false
	case 'l', 'd':
		lit := r == 'l'
		n := l.LightRoom(c, p, p.Y(), p.X(), lit)
		if n == 0 {
			v.status = "You are not in a room."
		} else {
			v.status = fmt.Sprintf("%d squares changed.", n)
		}
	case 'm':
		l.WizLight(c, p, true)
		v.status = "You sense the layout of the level."
	case 'x':
		l.WizDark(c, p)
		v.status = "Your memories fade away."
	case 'f':
		v.showFlow = !v.showFlow
	}
	return true
}

func arrowDir(k tcell.Key) (int, bool) {
	switch k {
	case tcell.KeyUp:
		return geo.DirNorth, true
	case tcell.KeyDown:
		return geo.DirSouth, true
	case tcell.KeyLeft:
		return geo.DirWest, true
	case tcell.KeyRight:
		return geo.DirEast, true
	}
	return 0, false
}

func (v *Viewer) draw() {
	c := v.lvl.Chunk
	eng := v.runner.View()
	v.screen.Clear()

	for y := range c.Height() {
		for x := range c.Width() {
			if v.showFlow {
				v.screen.SetContent(x, y, sim.FlowGlyph(c, v.runner.Flow(), y, x), nil, tcell.StyleDefault.Foreground(tcell.ColorTeal))
				continue
			}
			g := eng.MapInfo(c, y, x)
			v.screen.SetContent(x, y, sim.Glyph(c, g), nil, cellStyle(g))
		}
	}

	row := c.Height() + 1
	for i, r := range []rune(v.status) {
		v.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func cellStyle(g view.GridData) tcell.Style {
	switch {
	case g.IsPlayer:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case g.Monster != 0:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	switch g.Lighting {
	case view.LightingTorch:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case view.LightingLOS:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case view.LightingLit:
		return tcell.StyleDefault.Foreground(tcell.ColorSilver)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}
