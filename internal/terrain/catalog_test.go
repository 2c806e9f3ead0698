package terrain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.True(t, c.IsProjectable(FeatFloor))
	assert.False(t, c.IsProjectable(FeatGranite))
	assert.False(t, c.IsProjectable(FeatClosed))
	assert.True(t, c.BlocksFlow(FeatGranite))
	assert.True(t, c.BlocksFlow(FeatRubble))
	assert.False(t, c.BlocksFlow(FeatClosed), "monsters open doors")
	assert.False(t, c.IsInteresting(FeatFloor))
	assert.True(t, c.IsInteresting(FeatLess))

	assert.Equal(t, FeatGranite, c.Display(FeatSecret))
	assert.Equal(t, FeatFloor, c.Display(FeatFloor))

	id, ok := c.ByGlyph('#')
	require.True(t, ok)
	assert.Equal(t, FeatGranite, id)

	id, err := c.Lookup("home")
	require.NoError(t, err)
	assert.Equal(t, FeatShop8, id)
	assert.Equal(t, 8, c.Feature(id).ShopNum)

	_, err = c.Lookup("lava")
	assert.ErrorIs(t, err, ErrUnknownFeature)
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]Feature{
		{ID: 1, Name: "floor"},
		{ID: 1, Name: "other"},
	})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = NewCatalog([]Feature{
		{ID: 1, Name: "floor"},
		{ID: 2, Name: "floor"},
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestParseFlag(t *testing.T) {
	f, err := ParseFlag("no_flow")
	require.NoError(t, err)
	assert.Equal(t, NoFlow, f)

	_, err = ParseFlag("GLOWING")
	assert.ErrorIs(t, err, ErrUnknownFlag)

	assert.Equal(t, "PROJECT|PASSABLE", (Project | Passable).String())
}

const yamlCatalog = `
features:
  - id: 0
    name: none
    glyph: " "
  - id: 1
    name: floor
    glyph: "."
    flags: [PROJECT, PASSABLE, FLOOR]
  - id: 2
    name: wall
    glyph: "#"
    flags: [WALL, ROCK, NO_FLOW]
  - id: 3
    name: hidden_door
    mimic: wall
    flags: [WALL, ROCK, DOOR_ANY, NO_FLOW]
`

const tomlCatalog = `
[[features]]
id = 1
name = "floor"
glyph = "."
flags = ["PROJECT", "PASSABLE", "FLOOR"]

[[features]]
id = 2
name = "door"
glyph = "+"
flags = ["DOOR_ANY", "DOOR_CLOSED", "INTERESTING"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	c, err := Load(writeFile(t, "terrain.yaml", yamlCatalog))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.True(t, c.IsProjectable(1))
	assert.True(t, c.BlocksFlow(2))
	assert.Equal(t, ID(2), c.Display(3))
}

func TestLoadTOML(t *testing.T) {
	c, err := Load(writeFile(t, "terrain.toml", tomlCatalog))
	require.NoError(t, err)

	id, err := c.Lookup("door")
	require.NoError(t, err)
	assert.True(t, c.IsInteresting(id))
	assert.False(t, c.IsProjectable(id))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown flag", "a.yaml", "features:\n  - {id: 1, name: x, flags: [SHINY]}\n"},
		{"unknown mimic", "b.yaml", "features:\n  - {id: 1, name: x, mimic: y}\n"},
		{"id out of range", "c.yaml", "features:\n  - {id: 300, name: x}\n"},
		{"long glyph", "d.yaml", "features:\n  - {id: 1, name: x, glyph: ab}\n"},
		{"bad extension", "e.json", "{}"},
		{"bad syntax", "f.toml", "[[features]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
