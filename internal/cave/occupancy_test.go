package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cavesight/internal/game/geo"
)

func openChunk(t *testing.T) *Chunk {
	t.Helper()
	return buildChunk(t,
		".....",
		".....",
		".....",
	)
}

func TestMonsterPlacement(t *testing.T) {
	c := openChunk(t)

	orc := &Monster{Race: "orc", Sleep: 10}
	id, err := c.PlaceMonster(orc, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, MonsterID(1), id)
	assert.Equal(t, id, c.Occupant(1, 1))
	assert.Same(t, orc, c.MonsterAt(1, 1))
	require.NoError(t, c.CheckOccupancy())

	_, err = c.PlaceMonster(&Monster{Race: "kobold"}, 1, 1)
	assert.ErrorIs(t, err, ErrOccupied)

	require.NoError(t, c.MoveMonster(id, 2, 4))
	assert.Equal(t, geo.Pt(2, 4), orc.Loc())
	assert.Equal(t, MonsterID(0), c.Occupant(1, 1))
	assert.Equal(t, id, c.Occupant(2, 4))
	require.NoError(t, c.CheckOccupancy())

	require.NoError(t, c.RemoveMonster(id))
	assert.Nil(t, c.MonsterAt(2, 4))
	assert.Equal(t, 0, c.MonsterCount())
	assert.ErrorIs(t, c.RemoveMonster(id), ErrNoSuchMonster)
	assert.ErrorIs(t, c.MoveMonster(id, 0, 0), ErrNoSuchMonster)
	require.NoError(t, c.CheckOccupancy())

	// Freed slots are reused.
	id2, err := c.PlaceMonster(&Monster{Race: "jackal"}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, id, id2)
}

func TestPlayerPlacement(t *testing.T) {
	c := openChunk(t)
	p := &Player{Light: 1}

	assert.ErrorIs(t, c.MovePlayer(0, 0), ErrPlayerNotPlaced)

	require.NoError(t, c.PlacePlayer(p, 1, 2))
	assert.True(t, c.IsPlayer(1, 2))
	assert.Nil(t, c.MonsterAt(1, 2))

	_, err := c.PlaceMonster(&Monster{Race: "orc"}, 1, 2)
	assert.ErrorIs(t, err, ErrOccupied)

	_, err = c.PlaceMonster(&Monster{Race: "orc"}, 0, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, c.MovePlayer(0, 0), ErrOccupied)

	require.NoError(t, c.MovePlayer(2, 2))
	assert.False(t, c.IsPlayer(1, 2))
	assert.True(t, c.IsPlayer(2, 2))
	assert.Equal(t, geo.Pt(2, 2), p.Loc())
	require.NoError(t, c.CheckOccupancy())
}

func TestObjectPiles(t *testing.T) {
	c := openChunk(t)

	a := c.PlaceObject(&Object{Kind: "arrow"}, 1, 1)
	b := c.PlaceObject(&Object{Kind: "bolt"}, 1, 1)
	d := c.PlaceObject(&Object{Kind: "dart"}, 1, 1)
	c.PlaceObject(&Object{Kind: "gold", Money: true}, 2, 3)
	require.NoError(t, c.CheckOccupancy())

	var kinds []string
	c.ForEachObjectAt(1, 1, func(o *Object) bool {
		kinds = append(kinds, o.Kind)
		return true
	})
	assert.Equal(t, []string{"dart", "bolt", "arrow"}, kinds)

	require.NoError(t, c.RemoveObject(b))
	require.NoError(t, c.RemoveObject(d))
	assert.Equal(t, a, c.ObjectHead(1, 1))
	assert.ErrorIs(t, c.RemoveObject(b), ErrNoSuchObject)
	require.NoError(t, c.CheckOccupancy())

	assert.False(t, c.IsEmpty(1, 1))
	assert.True(t, c.IsEmpty(0, 0))
}

func TestCheckOccupancyDetectsDrift(t *testing.T) {
	c := openChunk(t)
	m := &Monster{Race: "orc"}
	_, err := c.PlaceMonster(m, 1, 1)
	require.NoError(t, err)

	// Corrupt one side of the relation directly.
	m.y = 2
	err = c.CheckOccupancy()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistent)

	m.y = 1
	o := &Object{Kind: "rock"}
	c.PlaceObject(o, 0, 0)
	o.x = 4
	assert.ErrorIs(t, c.CheckOccupancy(), ErrInconsistent)
}
