package cave

import "strings"

// SquareFlag indexes a bit of SquareInfo.
type SquareFlag uint8

const (
	SquareView SquareFlag = iota
	SquareSeen
	SquareWasSeen
	SquareGlow
	SquareMark
	SquareRoom
	SquareVault
	SquareTrap
	SquareInvis
	SquareDtrap
	SquareDedge
	SquareFeel
	SquareWallInner
	SquareWallOuter
	SquareWallSolid
	SquareMonRestrict
	SquareNoTeleport
	SquareNoMap
	SquareNoEsp

	squareFlagCount
)

var squareFlagNames = [squareFlagCount]string{
	"VIEW", "SEEN", "WASSEEN", "GLOW", "MARK", "ROOM", "VAULT", "TRAP",
	"INVIS", "DTRAP", "DEDGE", "FEEL", "WALL_INNER", "WALL_OUTER",
	"WALL_SOLID", "MON_RESTRICT", "NO_TELEPORT", "NO_MAP", "NO_ESP",
}

func (f SquareFlag) String() string {
	if f >= squareFlagCount {
		return "UNKNOWN"
	}
	return squareFlagNames[f]
}

// ParseSquareFlag converts a name such as "ROOM" to its flag.
func ParseSquareFlag(name string) (SquareFlag, bool) {
	up := strings.ToUpper(name)
	for i, n := range squareFlagNames {
		if n == up {
			return SquareFlag(i), true
		}
	}
	return 0, false
}

// SquareInfo is the per-cell flag set.
type SquareInfo uint32

// Has reports whether f is set.
func (s SquareInfo) Has(f SquareFlag) bool {
	return s&(1<<f) != 0
}

// On sets f.
func (s *SquareInfo) On(f SquareFlag) {
	*s |= 1 << f
}

// Off clears f.
func (s *SquareInfo) Off(f SquareFlag) {
	*s &^= 1 << f
}

func (s SquareInfo) String() string {
	var parts []string
	for f := range squareFlagCount {
		if s.Has(f) {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, "|")
}
