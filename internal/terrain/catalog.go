package terrain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFeature = errors.New("unknown feature")
	ErrUnknownFlag    = errors.New("unknown terrain flag")
	ErrDuplicate      = errors.New("duplicate feature")
)

// Catalog maps feature ids to features. It is read-only after construction
// and safe for concurrent use.
type Catalog struct {
	features [256]Feature
	defined  [256]bool
	byName   map[string]ID
	byGlyph  map[rune]ID
}

// NewCatalog builds a catalog from features. Ids and names must be unique;
// when several features share a glyph the first one owns it.
func NewCatalog(features []Feature) (*Catalog, error) {
	c := &Catalog{
		byName:  make(map[string]ID, len(features)),
		byGlyph: make(map[rune]ID, len(features)),
	}
	for _, f := range features {
		if c.defined[f.ID] {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicate, f.ID)
		}
		if _, ok := c.byName[f.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicate, f.Name)
		}
		c.features[f.ID] = f
		c.defined[f.ID] = true
		c.byName[f.Name] = f.ID
		if _, ok := c.byGlyph[f.Glyph]; !ok && f.Glyph != 0 {
			c.byGlyph[f.Glyph] = f.ID
		}
	}
	for _, f := range features {
		if f.Mimic != 0 && !c.defined[f.Mimic] {
			return nil, fmt.Errorf("feature %q mimics id %d: %w", f.Name, f.Mimic, ErrUnknownFeature)
		}
	}
	return c, nil
}

// Feature returns the feature with the given id. Undefined ids yield a
// zero feature with no flags.
func (c *Catalog) Feature(id ID) Feature {
	return c.features[id]
}

// Defined reports whether id has a feature.
func (c *Catalog) Defined(id ID) bool {
	return c.defined[id]
}

// Has reports whether feature id carries flag.
func (c *Catalog) Has(id ID, flag Flag) bool {
	return c.features[id].Flags.Has(flag)
}

// IsProjectable reports whether sight passes through feature id.
func (c *Catalog) IsProjectable(id ID) bool {
	return c.Has(id, Project)
}

// BlocksFlow reports whether the flow field stops at feature id.
func (c *Catalog) BlocksFlow(id ID) bool {
	return c.Has(id, NoFlow)
}

// IsInteresting reports whether feature id stays remembered when its
// room is darkened.
func (c *Catalog) IsInteresting(id ID) bool {
	return c.Has(id, Interesting)
}

// Display returns the id shown to the player for feature id.
func (c *Catalog) Display(id ID) ID {
	if m := c.features[id].Mimic; m != 0 {
		return m
	}
	return id
}

// Lookup finds a feature by name.
func (c *Catalog) Lookup(name string) (ID, error) {
	id, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
	}
	return id, nil
}

// ByGlyph finds the feature drawn with glyph.
func (c *Catalog) ByGlyph(glyph rune) (ID, bool) {
	id, ok := c.byGlyph[glyph]
	return id, ok
}

// Len returns the number of defined features.
func (c *Catalog) Len() int {
	return len(c.byName)
}
