package mahc

// WinConditions are the situational flags of a single win. They are not part of the
// tile set but constrain which yaku may apply.
type WinConditions struct {
	Tsumo        bool // Won by self-draw
	Riichi       bool // Declared riichi
	DoubleRiichi bool // Declared riichi on the first uninterrupted discard
	Ippatsu      bool // Won within one go-around after riichi
	Haitei       bool // Won on the last tile: haitei on tsumo, houtei on ron
	Chankan      bool // Ron on a tile added to another player's kan
	Rinshan      bool // Tsumo on the replacement tile drawn after a kan
}

// IsRiichiDeclared is true for either form of riichi.
func (c WinConditions) IsRiichiDeclared() bool {
	return c.Riichi || c.DoubleRiichi
}

// windName returns the English name of a wind rank, or "" for anything else.
func windName(r Rank) string {
	switch r {
	case WindEast:
		return "East"
	case WindSouth:
		return "South"
	case WindWest:
		return "West"
	case WindNorth:
		return "North"
	}
	return ""
}

// dragonName returns the English name of a dragon rank, or "" for anything else.
func dragonName(r Rank) string {
	switch r {
	case DragonWhite:
		return "White Dragon"
	case DragonGreen:
		return "Green Dragon"
	case DragonRed:
		return "Red Dragon"
	}
	return ""
}

// isValueRank reports whether a group of this suit and rank is worth yakuhai for the
// given seat and prevalent winds.
func isValueRank(s Suit, r Rank, seat, prevalent Rank) bool {
	switch s {
	case Dragon:
		return true
	case Wind:
		return r == seat || r == prevalent
	}
	return false
}
