package sim

import (
	"strings"

	"github.com/udisondev/cavesight/internal/cave"
	"github.com/udisondev/cavesight/internal/game/flow"
	"github.com/udisondev/cavesight/internal/game/view"
	"github.com/udisondev/cavesight/internal/terrain"
)

// Glyphs for things drawn over terrain.
const (
	GlyphPlayer       = '@'
	GlyphUnknown      = ' '
	GlyphTrap         = '^'
	GlyphObject       = '!'
	GlyphPile         = '&'
	GlyphUnseenObject = '?'
	GlyphUnseenMoney  = '$'
)

// Glyph picks the character for one cell of the player's map.
func Glyph(c *cave.Chunk, g view.GridData) rune {
	switch {
	case g.IsPlayer:
		return GlyphPlayer
	case g.Monster != 0:
		if m, ok := c.Monster(g.Monster); ok && m.Race != "" {
			return []rune(m.Race)[0]
		}
		return 'm'
	case g.MultipleObjects:
		return GlyphPile
	case g.FirstObject != nil:
		if g.FirstObject.Money {
			return GlyphUnseenMoney
		}
		return GlyphObject
	case g.UnseenMoney:
		return GlyphUnseenMoney
	case g.UnseenObject:
		return GlyphUnseenObject
	case g.Trap:
		return GlyphTrap
	case g.Feat == terrain.FeatNone:
		return GlyphUnknown
	}
	if r := c.Catalog().Feature(g.Feat).Glyph; r != 0 {
		return r
	}
	return GlyphUnknown
}

// Render draws what the player knows of the level, one line per row.
func Render(c *cave.Chunk, eng *view.Engine) string {
	var b strings.Builder
	b.Grow(c.Height() * (c.Width() + 1))
	for y := range c.Height() {
		for x := range c.Width() {
			b.WriteRune(Glyph(c, eng.MapInfo(c, y, x)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

const costDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// FlowGlyph draws the fresh flow cost of a cell in base 36, '+' past that
// and '.' for cells the latest update did not reach.
func FlowGlyph(c *cave.Chunk, f *flow.Field, y, x int) rune {
	if !f.Fresh(c, y, x) {
		return '.'
	}
	cost := int(c.Cost(y, x))
	if cost >= len(costDigits) {
		return '+'
	}
	return rune(costDigits[cost])
}

// RenderFlow draws the flow field of the level.
func RenderFlow(c *cave.Chunk, f *flow.Field) string {
	var b strings.Builder
	for y := range c.Height() {
		for x := range c.Width() {
			b.WriteRune(FlowGlyph(c, f, y, x))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
