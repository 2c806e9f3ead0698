package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/cavesight/internal/config"
	"github.com/udisondev/cavesight/internal/level"
	"github.com/udisondev/cavesight/internal/logging"
	"github.com/udisondev/cavesight/internal/sim"
	"github.com/udisondev/cavesight/internal/terrain"
)

const ConfigPath = "config/cavesight.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "cavesim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("CAVESIGHT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cat := terrain.Default()
	if cfg.TerrainFile != "" {
		if cat, err = terrain.Load(cfg.TerrainFile); err != nil {
			return fmt.Errorf("loading terrain: %w", err)
		}
	}
	log.Info("terrain catalog ready", zap.Int("features", cat.Len()))

	levels, err := level.LoadDir(cfg.LevelsDir, cat, log)
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	if len(levels) == 0 {
		return fmt.Errorf("no levels in %s", cfg.LevelsDir)
	}

	// Each level is owned by exactly one goroutine for the whole run.
	reports := make([]sim.Report, len(levels))
	maps := make([]string, len(levels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Sim.Workers)
	for i, lvl := range levels {
		g.Go(func() error {
			r := sim.New(lvl, cfg, cfg.Sim.Seed+uint64(i), log)
			rep, err := r.Run(gctx)
			reports[i] = rep
			maps[i] = sim.Render(lvl.Chunk, r.View())
			if err != nil {
				return fmt.Errorf("level %s: %w", lvl.Name, err)
			}
			return nil
		})
	}

	err = g.Wait()
	for i := range levels {
		printReport(reports[i], maps[i])
	}
	if errors.Is(err, context.Canceled) {
		log.Info("simulation interrupted")
		return nil
	}
	return err
}

func printReport(rep sim.Report, m string) {
	fmt.Printf("== %s: %d turns, %d moves, %d blocked, %d rooms lit, %d seen, %d remembered",
		rep.Level, rep.Turns, rep.Moves, rep.Blocked, rep.RoomsLit, rep.Seen, rep.Marked)
	if rep.Dropped > 0 {
		fmt.Printf(", %d flow cells dropped", rep.Dropped)
	}
	if rep.Feelings > 0 {
		fmt.Print(", feeling reached")
	}
	fmt.Println()
	fmt.Print(m)
}
