package testutil

import "github.com/udisondev/cavesight/internal/game/geo"

// RecordSink records every notification it receives.
type RecordSink struct {
	Redraws  []geo.Point
	Feelings []int
}

func (s *RecordSink) RedrawSpot(y, x int) {
	s.Redraws = append(s.Redraws, geo.Pt(y, x))
}

func (s *RecordSink) LevelFeeling(squares int) {
	s.Feelings = append(s.Feelings, squares)
}

// Redrawn reports whether p was redrawn at least once.
func (s *RecordSink) Redrawn(p geo.Point) bool {
	for _, r := range s.Redraws {
		if r == p {
			return true
		}
	}
	return false
}

// Reset forgets everything recorded so far.
func (s *RecordSink) Reset() {
	s.Redraws = s.Redraws[:0]
	s.Feelings = s.Feelings[:0]
}
