package flow

// Generation is the flow timestamp counter. Cells stamped with the current
// value were reached by the latest update; anything else is stale.
//
// The counter is eight bits wide. When it is about to pass 255 the stamps
// already written are rebased into the lower half and counting resumes at
// RebaseTo, so stale data ages out without clearing the grid.
type Generation struct {
	cur uint8
}

const (
	// RebaseTo is where the counter restarts after a rebase.
	RebaseTo uint8 = 128
	maxGen   uint8 = 255
)

// Next advances the counter and returns the new value. rebase is true when
// existing stamps must be passed through Rebase before the value is used.
func (g *Generation) Next() (gen uint8, rebase bool) {
	if g.cur == maxGen {
		g.cur = RebaseTo
		return g.cur, true
	}
	g.cur++
	return g.cur, false
}

// Current returns the last value handed out, zero before the first Next.
func (g *Generation) Current() uint8 { return g.cur }

// Reset restarts the counter from zero.
func (g *Generation) Reset() { g.cur = 0 }

// Rebase maps a stamp written before a rebase into the new range.
func Rebase(w uint8) uint8 {
	if w >= RebaseTo {
		return w - RebaseTo
	}
	return 0
}
