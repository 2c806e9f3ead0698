package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/config"
	"github.com/udisondev/cavesight/internal/game/geo"
	"github.com/udisondev/cavesight/internal/level"
	"github.com/udisondev/cavesight/internal/testutil"
)

func newLevel(t *testing.T, rows ...string) *level.Level {
	t.Helper()
	c, p := testutil.BuildChunk(t, rows...)
	return &level.Level{Name: "test", Chunk: c, Player: p}
}

func repeat(dir, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = dir
	}
	return out
}

func TestRunLightsRoomOnEntry(t *testing.T) {
	lvl := newLevel(t,
		"###########",
		"#@..'.....#",
		"###########",
	)
	lvl.Chunk.FlagRect(0, 4, 2, 10, cave.SquareRoom)
	r := New(lvl, config.DefaultEngine(), 1, nil)
	r.Script(repeat(geo.DirEast, 4))

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Turns)
	assert.Equal(t, 4, rep.Moves)
	assert.Zero(t, rep.Blocked)
	assert.Equal(t, 1, rep.RoomsLit)
	assert.Equal(t, geo.Pt(1, 5), lvl.Player.Loc())

	c := lvl.Chunk
	assert.True(t, c.IsGlow(1, 9))
	assert.True(t, c.IsSeen(1, 9))
	assert.True(t, c.IsMark(1, 9))
	assert.False(t, c.IsGlow(1, 2), "corridor stays dark")
	testutil.AssertSeenImpliesView(t, c)
}

func TestRunCountsBlockedMoves(t *testing.T) {
	lvl := newLevel(t,
		"#####",
		"#@..#",
		"#####",
	)
	r := New(lvl, config.DefaultEngine(), 1, nil)
	r.Script([]int{geo.DirWest, geo.DirNorth, geo.DirEast})

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Blocked)
	assert.Equal(t, 1, rep.Moves)
	assert.Equal(t, geo.Pt(1, 2), lvl.Player.Loc())
}

func TestRunCancelled(t *testing.T) {
	lvl := newLevel(t,
		"#####",
		"#@..#",
		"#####",
	)
	cfg := config.DefaultEngine()
	cfg.Sim.Turns = 100
	r := New(lvl, cfg, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rep.Turns)
	assert.Equal(t, "test", rep.Level)
}

func TestRunRandomWalkIsReproducible(t *testing.T) {
	rows := []string{
		"##############",
		"#@.....#.....#",
		"#......'.....#",
		"#......#.....#",
		"##.#########.#",
		"#............#",
		"##############",
	}
	cfg := config.DefaultEngine()
	cfg.Sim.Turns = 60

	play := func() (Report, string) {
		lvl := newLevel(t, rows...)
		lvl.Chunk.FlagRect(0, 7, 4, 13, cave.SquareRoom)
		r := New(lvl, cfg, 42, nil)
		rep, err := r.Run(context.Background())
		require.NoError(t, err)
		testutil.AssertSeenImpliesView(t, lvl.Chunk)
		testutil.AssertOccupancy(t, lvl.Chunk)
		return rep, Render(lvl.Chunk, r.View())
	}

	rep1, map1 := play()
	rep2, map2 := play()
	assert.Equal(t, rep1, rep2)
	assert.Equal(t, map1, map2)
	assert.Equal(t, 60, rep1.Moves+rep1.Blocked)
}

func TestRunMonstersFollowFlow(t *testing.T) {
	lvl := newLevel(t,
		"##########",
		"#@.......#",
		"#........#",
		"##########",
	)
	c := lvl.Chunk
	_, err := c.PlaceMonster(&cave.Monster{Race: "jackal"}, 1, 8)
	require.NoError(t, err)
	sleeper := &cave.Monster{Race: "snake", Sleep: 100}
	_, err = c.PlaceMonster(sleeper, 2, 8)
	require.NoError(t, err)

	r := New(lvl, config.DefaultEngine(), 1, nil)
	r.Script(repeat(geo.DirWest, 3))

	rep, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Blocked)

	jackal := c.MonsterAt(1, 5)
	require.NotNil(t, jackal, "three steps toward the player")
	assert.Equal(t, "jackal", jackal.Race)
	assert.Equal(t, geo.Pt(2, 8), sleeper.Loc())
	testutil.AssertOccupancy(t, c)
}

func TestStartTownDaylight(t *testing.T) {
	lvl := newLevel(t,
		"#######",
		"#.1.@.#",
		"#######",
	)
	lvl.Town, lvl.Daytime = true, true
	lvl.Player.Light = 0
	r := New(lvl, config.DefaultEngine(), 1, nil)

	r.Start()

	lvl.Chunk.ForEachCell(func(y, x int) {
		assert.True(t, lvl.Chunk.IsSeen(y, x), "(%d,%d)", y, x)
	})
}

func TestLevelFeelingReported(t *testing.T) {
	lvl := newLevel(t,
		"#######",
		"#..@..#",
		"#######",
	)
	lvl.Chunk.FlagRect(1, 1, 1, 5, cave.SquareFeel)
	cfg := config.DefaultEngine()
	cfg.View.FeelingThreshold = 2
	r := New(lvl, cfg, 1, nil)
	r.Script(repeat(geo.DirEast, 2))

	rep, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Feelings)
}
