package cave

import (
	"fmt"

	"github.com/udisondev/cavesight/internal/game/geo"
	"github.com/udisondev/cavesight/internal/terrain"
)

// Chunk is the grid of one dungeon level. It owns the per-cell arrays and
// the monster, object and player registries that occupy it.
//
// A Chunk is not safe for concurrent use. Exactly one goroutine may own it.
// Every accessor panics on coordinates outside [0,height)x[0,width).
type Chunk struct {
	height, width int
	catalog       *terrain.Catalog
	sink          Sink

	feat []terrain.ID
	info []SquareInfo
	mon  []MonsterID
	obj  []ObjectID
	cost []uint8
	when []uint8

	featCount [256]int

	monsters []*Monster // index 0 unused
	objects  []*Object  // index 0 unused
	player   *Player

	live           bool
	feelingSquares int
}

// New allocates a height x width chunk filled with terrain.FeatNone.
func New(height, width int, catalog *terrain.Catalog, sink Sink) *Chunk {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("cave: invalid chunk size %dx%d", height, width))
	}
	if sink == nil {
		sink = NopSink{}
	}
	n := height * width
	return &Chunk{
		height:   height,
		width:    width,
		catalog:  catalog,
		sink:     sink,
		feat:     make([]terrain.ID, n),
		info:     make([]SquareInfo, n),
		mon:      make([]MonsterID, n),
		obj:      make([]ObjectID, n),
		cost:     make([]uint8, n),
		when:     make([]uint8, n),
		monsters: make([]*Monster, 1, 32),
		objects:  make([]*Object, 1, 32),
	}
}

// Height returns the number of rows.
func (c *Chunk) Height() int { return c.height }

// Width returns the number of columns.
func (c *Chunk) Width() int { return c.width }

// Catalog returns the terrain catalog the chunk resolves features with.
func (c *Chunk) Catalog() *terrain.Catalog { return c.catalog }

// Sink returns the notification sink.
func (c *Chunk) Sink() Sink { return c.sink }

// SetSink replaces the notification sink; nil installs NopSink.
func (c *Chunk) SetSink(s Sink) {
	if s == nil {
		s = NopSink{}
	}
	c.sink = s
}

// SetLive marks the level as being played. Terrain changes on a live level
// are memorized and redrawn; before that they are generation edits.
func (c *Chunk) SetLive(live bool) { c.live = live }

// Live reports whether the level is being played.
func (c *Chunk) Live() bool { return c.live }

// InBounds reports whether (y, x) is a cell of the chunk.
func (c *Chunk) InBounds(y, x int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

// InBoundsFully reports whether (y, x) is a cell not on the outer border.
func (c *Chunk) InBoundsFully(y, x int) bool {
	return y > 0 && y < c.height-1 && x > 0 && x < c.width-1
}

func (c *Chunk) idx(y, x int) int {
	if !c.InBounds(y, x) {
		panic(fmt.Sprintf("cave: cell (%d,%d) out of bounds %dx%d", y, x, c.height, c.width))
	}
	return y*c.width + x
}

// Info returns the flag set of a cell.
func (c *Chunk) Info(y, x int) SquareInfo {
	return c.info[c.idx(y, x)]
}

// Has reports whether a cell carries flag f.
func (c *Chunk) Has(y, x int, f SquareFlag) bool {
	return c.info[c.idx(y, x)].Has(f)
}

// On sets flag f on a cell.
func (c *Chunk) On(y, x int, f SquareFlag) {
	c.info[c.idx(y, x)].On(f)
}

// Off clears flag f on a cell.
func (c *Chunk) Off(y, x int, f SquareFlag) {
	c.info[c.idx(y, x)].Off(f)
}

// Feat returns the terrain of a cell.
func (c *Chunk) Feat(y, x int) terrain.ID {
	return c.feat[c.idx(y, x)]
}

// Feature returns the catalog entry for the terrain of a cell.
func (c *Chunk) Feature(y, x int) terrain.Feature {
	return c.catalog.Feature(c.Feat(y, x))
}

// SetFeat changes the terrain of a cell. On a live level the new terrain is
// memorized (when seen) and redrawn; during generation the wall placement
// flags are cleared instead.
func (c *Chunk) SetFeat(y, x int, feat terrain.ID) {
	i := c.idx(y, x)

	if cur := c.feat[i]; cur != terrain.FeatNone {
		c.featCount[cur]--
	}
	if feat != terrain.FeatNone {
		c.featCount[feat]++
	}
	c.feat[i] = feat

	if c.live {
		c.NoteSpot(y, x)
		c.LightSpot(y, x)
		return
	}
	c.info[i].Off(SquareWallInner)
	c.info[i].Off(SquareWallOuter)
	c.info[i].Off(SquareWallSolid)
}

// FeatCount returns how many cells hold feat. FeatNone is not counted.
func (c *Chunk) FeatCount(feat terrain.ID) int {
	return c.featCount[feat]
}

// Fill sets every cell of the rectangle [y1,y2]x[x1,x2] to feat.
func (c *Chunk) Fill(y1, x1, y2, x2 int, feat terrain.ID) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.SetFeat(y, x, feat)
		}
	}
}

// FlagRect sets flag f on every cell of the rectangle [y1,y2]x[x1,x2].
func (c *Chunk) FlagRect(y1, x1, y2, x2 int, f SquareFlag) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.On(y, x, f)
		}
	}
}

// Cost returns the flow cost stored in a cell.
func (c *Chunk) Cost(y, x int) uint8 {
	return c.cost[c.idx(y, x)]
}

// When returns the flow generation that last stamped a cell.
func (c *Chunk) When(y, x int) uint8 {
	return c.when[c.idx(y, x)]
}

// SetFlow stamps a cell with a flow cost and generation.
func (c *Chunk) SetFlow(y, x int, cost, when uint8) {
	i := c.idx(y, x)
	c.cost[i] = cost
	c.when[i] = when
}

// RebaseWhen rewrites every flow timestamp with fn.
func (c *Chunk) RebaseWhen(fn func(uint8) uint8) {
	for i, w := range c.when {
		c.when[i] = fn(w)
	}
}

// ClearFlow zeroes every flow cost and timestamp.
func (c *Chunk) ClearFlow() {
	clear(c.cost)
	clear(c.when)
}

// ForEachCell calls fn for every cell in row-major order.
func (c *Chunk) ForEachCell(fn func(y, x int)) {
	for y := range c.height {
		for x := range c.width {
			fn(y, x)
		}
	}
}

// LightSpot asks the sink to redraw a cell.
func (c *Chunk) LightSpot(y, x int) {
	c.idx(y, x)
	c.sink.RedrawSpot(y, x)
}

// NoteSpot memorizes a cell the player currently sees: every object on it
// becomes seen and the terrain gets MARK. Cells not SEEN are ignored.
// Reports whether MARK was newly set.
func (c *Chunk) NoteSpot(y, x int) bool {
	i := c.idx(y, x)
	if !c.info[i].Has(SquareSeen) {
		return false
	}

	for id := c.obj[i]; id != 0; id = c.objects[id].next {
		c.objects[id].Marked = MarkSeen
	}

	if c.info[i].Has(SquareMark) {
		return false
	}
	c.info[i].On(SquareMark)
	return true
}

// AddFeelingSquare counts one more newly seen FEEL cell and returns the
// running total.
func (c *Chunk) AddFeelingSquare() int {
	c.feelingSquares++
	return c.feelingSquares
}

// FeelingSquares returns how many FEEL cells the player has seen.
func (c *Chunk) FeelingSquares() int {
	return c.feelingSquares
}

// DtrapEdge reports whether a trap-detected cell borders a cell outside the
// detected area.
func (c *Chunk) DtrapEdge(y, x int) bool {
	if !c.Has(y, x, SquareDtrap) {
		return false
	}
	for dir := range geo.DirSouthEast {
		ny, nx := y+geo.DDY[dir], x+geo.DDX[dir]
		if c.InBoundsFully(ny, nx) && !c.Has(ny, nx, SquareDtrap) {
			return true
		}
	}
	return false
}

const maxScatterTries = 1000

// Scatter picks a random fully-in-bounds cell within distance d of (y, x),
// optionally requiring line of sight from the origin. It gives up after a
// bounded number of attempts.
func (c *Chunk) Scatter(rng Rand, y, x, d int, needLOS bool) (geo.Point, bool) {
	for range maxScatterTries {
		ny := y + rng.IntN(2*d+1) - d
		nx := x + rng.IntN(2*d+1) - d

		if !c.InBoundsFully(ny, nx) {
			continue
		}
		if d > 1 && geo.Distance(y, x, ny, nx) > d {
			continue
		}
		if needLOS && !geo.Los(c, y, x, ny, nx) {
			continue
		}
		return geo.Pt(ny, nx), true
	}
	return geo.Point{}, false
}
