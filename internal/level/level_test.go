package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/terrain"
	"github.com/udisondev/cavesight/internal/testutil"
)

const cryptYAML = `
name: crypt
map: |
  ##########
  #@...#...#
  #....+...#
  #....#.<.#
  ##########
legend:
  "+": secret_door
player:
  light: 2
rooms:
  - rect: [0, 0, 4, 5]
    lit: true
  - rect: [0, 5, 4, 9]
vaults:
  - [1, 6, 3, 8]
feel:
  - [1, 1, 3, 4]
monsters:
  - {y: 2, x: 7, race: ghoul, intel: smart, sleep: 20}
  - {y: 3, x: 2, race: lantern bearer, light: true}
objects:
  - {y: 1, x: 3, kind: sword}
  - {y: 1, x: 3, kind: gold, money: true}
`

const townTOML = `
map = '''
#######
#.1.@.#
#######
'''

[town]
daytime = true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "crypt.yaml", cryptYAML)

	lvl, err := Load(path, terrain.Default())
	require.NoError(t, err)

	c := lvl.Chunk
	assert.Equal(t, "crypt", lvl.Name)
	assert.False(t, lvl.Town)
	assert.Equal(t, 5, c.Height())
	assert.Equal(t, 10, c.Width())
	assert.True(t, c.Live())

	require.NotNil(t, lvl.Player)
	assert.Equal(t, 2, lvl.Player.Light)
	assert.Equal(t, 1, lvl.Player.Y())
	assert.Equal(t, 1, lvl.Player.X())
	assert.True(t, c.IsPlayer(1, 1))
	assert.True(t, c.IsFloor(1, 1))

	assert.True(t, c.IsSecretDoor(2, 5), "legend overrides the built-in glyph")
	assert.True(t, c.IsUpStairs(3, 7))

	assert.True(t, c.IsRoom(0, 0))
	assert.True(t, c.IsGlow(2, 2))
	assert.True(t, c.IsRoom(2, 7))
	assert.False(t, c.IsGlow(2, 7))
	assert.True(t, c.IsVault(2, 6))
	assert.True(t, c.IsFeel(3, 4))
	assert.False(t, c.IsFeel(1, 6))

	ghoul := c.MonsterAt(2, 7)
	require.NotNil(t, ghoul)
	assert.Equal(t, cave.IntelSmart, ghoul.Intel)
	assert.True(t, ghoul.Asleep())
	bearer := c.MonsterAt(3, 2)
	require.NotNil(t, bearer)
	assert.True(t, bearer.Light)
	assert.Equal(t, cave.IntelNormal, bearer.Intel)

	var kinds []string
	c.ForEachObjectAt(1, 3, func(o *cave.Object) bool {
		kinds = append(kinds, o.Kind)
		return true
	})
	assert.Equal(t, []string{"gold", "sword"}, kinds)

	testutil.AssertOccupancy(t, c)
}

func TestLoadTOMLTown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "town.toml", townTOML)

	lvl, err := Load(path, terrain.Default())
	require.NoError(t, err)

	assert.Equal(t, "town", lvl.Name, "named after the file")
	assert.True(t, lvl.Town)
	assert.True(t, lvl.Daytime)
	assert.True(t, lvl.Chunk.IsShop(1, 2))
	assert.Equal(t, 1, lvl.Chunk.ShopNum(1, 2))
	assert.Zero(t, lvl.Player.Light)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"no player", "map: |\n  ###\n  #.#\n  ###\n", ErrNoPlayer},
		{"two players", "map: |\n  ####\n  #@@#\n  ####\n", ErrManyPlayers},
		{"empty map", "name: void\n", ErrEmptyMap},
		{"ragged", "map: |\n  ####\n  #@#\n  ####\n", ErrRaggedMap},
		{"unknown glyph", "map: |\n  ###\n  #@?\n  ###\n", ErrUnknownRune},
		{"room outside", "map: |\n  ###\n  #@#\n  ###\nrooms:\n  - rect: [0, 0, 5, 5]\n", ErrBadRect},
		{"bad intel", "map: |\n  ####\n  #@.#\n  ####\nmonsters:\n  - {y: 1, x: 2, intel: clever}\n", ErrBadIntel},
		{"monster on player", "map: |\n  ###\n  #@#\n  ###\nmonsters:\n  - {y: 1, x: 1}\n", cave.ErrOccupied},
		{"unknown legend", "map: |\n  ###\n  #@#\n  ###\nlegend:\n  \"x\": lava\n", terrain.ErrUnknownFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.yaml", tt.body)
			_, err := Load(path, terrain.Default())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "level.json", "{}")
	_, err := Load(path, terrain.Default())
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_crypt.yaml", cryptYAML)
	writeFile(t, dir, "a_town.toml", townTOML)
	writeFile(t, dir, "README.md", "not a level")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0o755))

	levels, err := LoadDir(dir, terrain.Default(), nil)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "a_town", levels[0].Name)
	assert.Equal(t, "crypt", levels[1].Name)
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"), terrain.Default(), nil)
	assert.Error(t, err)
}
