package terrain

// Ids of the built-in catalog.
const (
	FeatFloor ID = iota + 1
	FeatClosed
	FeatOpen
	FeatBroken
	FeatLess
	FeatMore
	FeatShop1
	FeatShop2
	FeatShop3
	FeatShop4
	FeatShop5
	FeatShop6
	FeatShop7
	FeatShop8
	FeatSecret
	FeatRubble
	FeatMagma
	FeatQuartz
	FeatMagmaHidden
	FeatQuartzHidden
	FeatMagmaTreasure
	FeatQuartzTreasure
	FeatGranite
	FeatPerm
)

const (
	walkable = Project | Passable
	solid    = Wall | Rock | NoFlow
)

// Default returns the built-in dungeon terrain catalog.
func Default() *Catalog {
	features := []Feature{
		{ID: FeatNone, Name: "none", Desc: "unknown grid", Glyph: ' '},
		{ID: FeatFloor, Name: "floor", Desc: "open floor", Glyph: '.', Flags: walkable | Floor},
		{ID: FeatClosed, Name: "closed_door", Desc: "closed door", Glyph: '+', Flags: DoorAny | DoorClosed | Interesting},
		{ID: FeatOpen, Name: "open_door", Desc: "open door", Glyph: '\'', Flags: walkable | DoorAny | Closable | Interesting},
		{ID: FeatBroken, Name: "broken_door", Desc: "broken door", Glyph: '\'', Flags: walkable | DoorAny | Interesting},
		{ID: FeatLess, Name: "up_staircase", Desc: "up staircase", Glyph: '<', Flags: walkable | Stair | UpStair | Interesting},
		{ID: FeatMore, Name: "down_staircase", Desc: "down staircase", Glyph: '>', Flags: walkable | Stair | DownStair | Interesting},
		{ID: FeatSecret, Name: "secret_door", Desc: "secret door", Mimic: FeatGranite, Flags: solid | Granite | DoorAny},
		{ID: FeatRubble, Name: "rubble", Desc: "pile of rubble", Glyph: ':', Flags: Rock | NoFlow | Interesting},
		{ID: FeatMagma, Name: "magma", Desc: "magma vein", Glyph: '%', Flags: solid | Magma},
		{ID: FeatQuartz, Name: "quartz", Desc: "quartz vein", Glyph: '%', Flags: solid | Quartz},
		{ID: FeatMagmaHidden, Name: "magma_hidden", Desc: "magma vein", Mimic: FeatMagma, Flags: solid | Magma | Gold},
		{ID: FeatQuartzHidden, Name: "quartz_hidden", Desc: "quartz vein", Mimic: FeatQuartz, Flags: solid | Quartz | Gold},
		{ID: FeatMagmaTreasure, Name: "magma_treasure", Desc: "magma vein with treasure", Glyph: '*', Flags: solid | Magma | Gold | Interesting},
		{ID: FeatQuartzTreasure, Name: "quartz_treasure", Desc: "quartz vein with treasure", Glyph: '*', Flags: solid | Quartz | Gold | Interesting},
		{ID: FeatGranite, Name: "granite", Desc: "granite wall", Glyph: '#', Flags: solid | Granite},
		{ID: FeatPerm, Name: "permanent", Desc: "permanent wall", Glyph: '#', Flags: solid | Permanent},
	}

	shops := []string{"general_store", "armoury", "weapon_smith", "bookseller", "alchemist", "magic_shop", "black_market", "home"}
	for i, name := range shops {
		features = append(features, Feature{
			ID:      FeatShop1 + ID(i),
			Name:    name,
			Desc:    "shop entrance",
			Glyph:   rune('1' + i),
			Flags:   walkable | Shop | Interesting,
			ShopNum: i + 1,
		})
	}

	c, err := NewCatalog(features)
	if err != nil {
		panic("terrain: built-in catalog: " + err.Error())
	}
	return c
}
