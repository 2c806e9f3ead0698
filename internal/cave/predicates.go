package cave

import "github.com/udisondev/cavesight/internal/terrain"

func (c *Chunk) featHas(y, x int, flag terrain.Flag) bool {
	return c.catalog.Has(c.Feat(y, x), flag)
}

// IsProjectable reports whether sight passes through a cell.
func (c *Chunk) IsProjectable(y, x int) bool { return c.featHas(y, x, terrain.Project) }

// IsWall reports whether a cell blocks sight. It is the negation of
// IsProjectable.
func (c *Chunk) IsWall(y, x int) bool { return !c.IsProjectable(y, x) }

// IsPassable reports whether the player can walk onto a cell.
func (c *Chunk) IsPassable(y, x int) bool { return c.featHas(y, x, terrain.Passable) }

// BlocksFlow reports whether the flow field stops at a cell.
func (c *Chunk) BlocksFlow(y, x int) bool { return c.featHas(y, x, terrain.NoFlow) }

// IsInteresting reports whether the terrain of a cell stays remembered when
// its room goes dark.
func (c *Chunk) IsInteresting(y, x int) bool { return c.featHas(y, x, terrain.Interesting) }

func (c *Chunk) IsBoring(y, x int) bool { return !c.IsInteresting(y, x) }

func (c *Chunk) IsFloor(y, x int) bool { return c.featHas(y, x, terrain.Floor) }

// IsRock reports a granite wall that is not a secret door.
func (c *Chunk) IsRock(y, x int) bool {
	return c.featHas(y, x, terrain.Granite) && !c.featHas(y, x, terrain.DoorAny)
}

func (c *Chunk) IsPerm(y, x int) bool {
	return c.featHas(y, x, terrain.Permanent|terrain.Rock)
}

func (c *Chunk) IsMagma(y, x int) bool  { return c.featHas(y, x, terrain.Magma) }
func (c *Chunk) IsQuartz(y, x int) bool { return c.featHas(y, x, terrain.Quartz) }

func (c *Chunk) IsMineral(y, x int) bool {
	return c.IsRock(y, x) || c.IsMagma(y, x) || c.IsQuartz(y, x)
}

func (c *Chunk) IsRubble(y, x int) bool {
	return !c.featHas(y, x, terrain.Wall) && c.featHas(y, x, terrain.Rock)
}

func (c *Chunk) IsSecretDoor(y, x int) bool {
	return c.featHas(y, x, terrain.DoorAny|terrain.Rock)
}

func (c *Chunk) IsOpenDoor(y, x int) bool   { return c.featHas(y, x, terrain.Closable) }
func (c *Chunk) IsClosedDoor(y, x int) bool { return c.featHas(y, x, terrain.DoorClosed) }

func (c *Chunk) IsLockedDoor(y, x int) bool {
	return c.featHas(y, x, terrain.DoorLocked) || c.featHas(y, x, terrain.DoorJammed)
}

func (c *Chunk) IsDoor(y, x int) bool       { return c.featHas(y, x, terrain.DoorAny) }
func (c *Chunk) IsStairs(y, x int) bool     { return c.featHas(y, x, terrain.Stair) }
func (c *Chunk) IsUpStairs(y, x int) bool   { return c.featHas(y, x, terrain.UpStair) }
func (c *Chunk) IsDownStairs(y, x int) bool { return c.featHas(y, x, terrain.DownStair) }
func (c *Chunk) IsShop(y, x int) bool       { return c.featHas(y, x, terrain.Shop) }

// ShopNum returns the 1-based shop number of an entrance, or -1.
func (c *Chunk) ShopNum(y, x int) int {
	if !c.IsShop(y, x) {
		return -1
	}
	return c.Feature(y, x).ShopNum
}

// SeemsLikeWall reports terrain that looks like rock to the player.
func (c *Chunk) SeemsLikeWall(y, x int) bool { return c.featHas(y, x, terrain.Rock) }

// IsPlayer reports whether the player stands on a cell.
func (c *Chunk) IsPlayer(y, x int) bool { return c.Occupant(y, x) == PlayerOccupant }

// IsOpen reports a floor cell with no monster or player on it.
func (c *Chunk) IsOpen(y, x int) bool {
	return c.IsFloor(y, x) && c.Occupant(y, x) == 0
}

// IsEmpty reports an open cell without objects.
func (c *Chunk) IsEmpty(y, x int) bool {
	return c.IsOpen(y, x) && c.ObjectHead(y, x) == 0
}

// IsVisibleTrap reports a trap the player knows about.
func (c *Chunk) IsVisibleTrap(y, x int) bool {
	return c.IsTrap(y, x) && !c.IsInvis(y, x)
}

func (c *Chunk) IsView(y, x int) bool        { return c.Has(y, x, SquareView) }
func (c *Chunk) IsSeen(y, x int) bool        { return c.Has(y, x, SquareSeen) }
func (c *Chunk) WasSeen(y, x int) bool       { return c.Has(y, x, SquareWasSeen) }
func (c *Chunk) IsGlow(y, x int) bool        { return c.Has(y, x, SquareGlow) }
func (c *Chunk) IsMark(y, x int) bool        { return c.Has(y, x, SquareMark) }
func (c *Chunk) IsRoom(y, x int) bool        { return c.Has(y, x, SquareRoom) }
func (c *Chunk) IsVault(y, x int) bool       { return c.Has(y, x, SquareVault) }
func (c *Chunk) IsTrap(y, x int) bool        { return c.Has(y, x, SquareTrap) }
func (c *Chunk) IsInvis(y, x int) bool       { return c.Has(y, x, SquareInvis) }
func (c *Chunk) IsDtrap(y, x int) bool       { return c.Has(y, x, SquareDtrap) }
func (c *Chunk) IsDedge(y, x int) bool       { return c.Has(y, x, SquareDedge) }
func (c *Chunk) IsFeel(y, x int) bool        { return c.Has(y, x, SquareFeel) }
func (c *Chunk) IsWallInner(y, x int) bool   { return c.Has(y, x, SquareWallInner) }
func (c *Chunk) IsWallOuter(y, x int) bool   { return c.Has(y, x, SquareWallOuter) }
func (c *Chunk) IsWallSolid(y, x int) bool   { return c.Has(y, x, SquareWallSolid) }
func (c *Chunk) IsMonRestrict(y, x int) bool { return c.Has(y, x, SquareMonRestrict) }
func (c *Chunk) IsNoTeleport(y, x int) bool  { return c.Has(y, x, SquareNoTeleport) }
func (c *Chunk) IsNoMap(y, x int) bool       { return c.Has(y, x, SquareNoMap) }
func (c *Chunk) IsNoEsp(y, x int) bool       { return c.Has(y, x, SquareNoEsp) }
