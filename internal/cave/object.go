package cave

import (
	"fmt"

	"github.com/udisondev/cavesight/internal/game/geo"
)

// ObjectID references an object on a chunk. Zero means none.
type ObjectID int32

// MarkState is how much the player knows about an object.
type MarkState uint8

const (
	MarkUnaware MarkState = iota
	// MarkAware: the player knows something lies there but not what.
	MarkAware
	MarkSeen
)

// Object is an item lying on the floor. Objects on one cell form a pile.
type Object struct {
	id   ObjectID
	y, x int
	next ObjectID

	Kind   string
	Money  bool
	Marked MarkState
	// Ignored objects are never shown, even once seen.
	Ignored bool
}

func (o *Object) ID() ObjectID   { return o.id }
func (o *Object) Loc() geo.Point { return geo.Pt(o.y, o.x) }

// PlaceObject puts o on top of the pile at (y, x).
func (c *Chunk) PlaceObject(o *Object, y, x int) ObjectID {
	i := c.idx(y, x)

	id := ObjectID(len(c.objects))
	for k := 1; k < len(c.objects); k++ {
		if c.objects[k] == nil {
			id = ObjectID(k)
			break
		}
	}
	if int(id) == len(c.objects) {
		c.objects = append(c.objects, nil)
	}

	o.id = id
	o.y, o.x = y, x
	o.next = c.obj[i]
	c.objects[id] = o
	c.obj[i] = id
	return id
}

// RemoveObject takes an object off its pile and unregisters it.
func (c *Chunk) RemoveObject(id ObjectID) error {
	o, ok := c.Object(id)
	if !ok {
		return fmt.Errorf("removing object %d: %w", id, ErrNoSuchObject)
	}

	i := c.idx(o.y, o.x)
	if c.obj[i] == id {
		c.obj[i] = o.next
	} else {
		prev := c.obj[i]
		for prev != 0 && c.objects[prev].next != id {
			prev = c.objects[prev].next
		}
		if prev == 0 {
			return fmt.Errorf("object %d missing from pile at %v: %w", id, o.Loc(), ErrInconsistent)
		}
		c.objects[prev].next = o.next
	}

	c.objects[id] = nil
	o.id, o.next = 0, 0
	return nil
}

// Object returns a registered object.
func (c *Chunk) Object(id ObjectID) (*Object, bool) {
	if id <= 0 || int(id) >= len(c.objects) || c.objects[id] == nil {
		return nil, false
	}
	return c.objects[id], true
}

// ObjectHead returns the top object of the pile on a cell.
func (c *Chunk) ObjectHead(y, x int) ObjectID {
	return c.obj[c.idx(y, x)]
}

// ForEachObjectAt walks the pile on a cell from the top until fn returns
// false.
func (c *Chunk) ForEachObjectAt(y, x int, fn func(*Object) bool) {
	for id := c.ObjectHead(y, x); id != 0; id = c.objects[id].next {
		if !fn(c.objects[id]) {
			return
		}
	}
}

// ForEachObject calls fn for every object on the chunk in id order.
func (c *Chunk) ForEachObject(fn func(*Object) bool) {
	for _, o := range c.objects[1:] {
		if o == nil {
			continue
		}
		if !fn(o) {
			return
		}
	}
}
