package testutil

import (
	"testing"

	"github.com/udisondev/cavesight/internal/cave"
)

// AssertSeenImpliesView fails the test for every cell that is SEEN but not
// in VIEW.
func AssertSeenImpliesView(t testing.TB, c *cave.Chunk) {
	t.Helper()

	c.ForEachCell(func(y, x int) {
		if c.IsSeen(y, x) && !c.IsView(y, x) {
			t.Errorf("cell (%d,%d) is SEEN without VIEW", y, x)
		}
	})
}

// AssertNoWasSeen fails the test for every cell left with WASSEEN.
func AssertNoWasSeen(t testing.TB, c *cave.Chunk) {
	t.Helper()

	c.ForEachCell(func(y, x int) {
		if c.WasSeen(y, x) {
			t.Errorf("cell (%d,%d) kept WASSEEN", y, x)
		}
	})
}

// AssertOccupancy fails the test when the occupancy relation has drifted.
func AssertOccupancy(t testing.TB, c *cave.Chunk) {
	t.Helper()

	if err := c.CheckOccupancy(); err != nil {
		t.Errorf("occupancy: %v", err)
	}
}
