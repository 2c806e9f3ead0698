package terrain

import (
	"fmt"
	"strings"
)

// ID identifies a feature in a Catalog.
type ID uint8

// FeatNone is the "unknown grid" feature shown for cells the player knows
// nothing about.
const FeatNone ID = 0

// Flag is a terrain capability bit.
type Flag uint32

const (
	Project Flag = 1 << iota
	Passable
	NoFlow
	Interesting
	Floor
	Wall
	Rock
	Granite
	Permanent
	Magma
	Quartz
	Gold
	DoorAny
	DoorClosed
	DoorLocked
	DoorJammed
	Closable
	Stair
	UpStair
	DownStair
	Shop
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{Project, "PROJECT"},
	{Passable, "PASSABLE"},
	{NoFlow, "NO_FLOW"},
	{Interesting, "INTERESTING"},
	{Floor, "FLOOR"},
	{Wall, "WALL"},
	{Rock, "ROCK"},
	{Granite, "GRANITE"},
	{Permanent, "PERMANENT"},
	{Magma, "MAGMA"},
	{Quartz, "QUARTZ"},
	{Gold, "GOLD"},
	{DoorAny, "DOOR_ANY"},
	{DoorClosed, "DOOR_CLOSED"},
	{DoorLocked, "DOOR_LOCKED"},
	{DoorJammed, "DOOR_JAMMED"},
	{Closable, "CLOSABLE"},
	{Stair, "STAIR"},
	{UpStair, "UPSTAIR"},
	{DownStair, "DOWNSTAIR"},
	{Shop, "SHOP"},
}

// ParseFlag converts a flag name such as "NO_FLOW" to its Flag.
func ParseFlag(name string) (Flag, error) {
	up := strings.ToUpper(strings.TrimSpace(name))
	for _, fn := range flagNames {
		if fn.name == up {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
}

// Has reports whether every bit of want is set.
func (f Flag) Has(want Flag) bool {
	return f&want == want
}

func (f Flag) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Feature is one terrain type.
type Feature struct {
	ID    ID
	Name  string
	Desc  string
	Glyph rune
	// Mimic is the feature shown to the player instead of this one
	// (secret doors look like granite). Zero means no substitution.
	Mimic ID
	Flags Flag
	// ShopNum is 1-based for shop entrances, 0 otherwise.
	ShopNum int
}

// Has reports whether the feature carries flag.
func (f Feature) Has(flag Flag) bool {
	return f.Flags.Has(flag)
}
