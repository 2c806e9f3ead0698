package view

import (
	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/terrain"
)

// Lighting is how a known cell is lit for display.
type Lighting uint8

const (
	LightingDark Lighting = iota
	LightingLit
	LightingTorch
	LightingLOS
)

func (l Lighting) String() string {
	switch l {
	case LightingLit:
		return "lit"
	case LightingTorch:
		return "torch"
	case LightingLOS:
		return "los"
	}
	return "dark"
}

// GridData is what the player knows about one cell.
type GridData struct {
	// Feat is the displayed feature: mimics are substituted and unknown
	// cells out of view are terrain.FeatNone.
	Feat     terrain.ID
	Lighting Lighting
	InView   bool
	IsPlayer bool
	// Monster is a visible monster on the cell, or zero.
	Monster cave.MonsterID
	// FirstObject is the top seen, non-ignored object, or nil.
	FirstObject     *cave.Object
	MultipleObjects bool
	UnseenObject    bool
	UnseenMoney     bool
	// Trap is set for a remembered trap.
	Trap       bool
	TrapBorder bool
}

// MapInfo extracts the player's knowledge of (y, x).
func (e *Engine) MapInfo(c *cave.Chunk, y, x int) GridData {
	g := GridData{
		Feat:       c.Catalog().Display(c.Feat(y, x)),
		InView:     c.IsSeen(y, x),
		IsPlayer:   c.IsPlayer(y, x),
		TrapBorder: c.IsDedge(y, x),
		Lighting:   LightingDark,
	}

	switch {
	case g.InView:
		g.Lighting = LightingLOS
		if !c.IsGlow(y, x) && e.torchLighting {
			g.Lighting = LightingTorch
		}
	case !c.IsMark(y, x):
		g.Feat = terrain.FeatNone
	case c.IsGlow(y, x):
		g.Lighting = LightingLit
	}

	g.Trap = c.IsTrap(y, x) && c.IsMark(y, x)

	c.ForEachObjectAt(y, x, func(o *cave.Object) bool {
		switch {
		case o.Marked == cave.MarkAware:
			if o.Money {
				g.UnseenMoney = true
			} else {
				g.UnseenObject = true
			}
		case o.Marked == cave.MarkSeen && !o.Ignored:
			if g.FirstObject != nil {
				g.MultipleObjects = true
				return false
			}
			g.FirstObject = o
		}
		return true
	})

	if m := c.MonsterAt(y, x); m != nil && m.Visible {
		g.Monster = m.ID()
	}

	return g
}
