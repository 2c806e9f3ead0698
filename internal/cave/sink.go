package cave

// Sink receives notifications produced while the grid changes. Calls are
// fire-and-forget and happen on the goroutine that owns the chunk.
type Sink interface {
	// RedrawSpot asks the display to redraw one cell.
	RedrawSpot(y, x int)
	// LevelFeeling announces that enough of the level has been seen.
	LevelFeeling(squares int)
}

// NopSink discards every notification.
type NopSink struct{}

func (NopSink) RedrawSpot(int, int) {}
func (NopSink) LevelFeeling(int)    {}

// Rand is the random source used by grid operations. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}
