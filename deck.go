package mahc

// CopiesPerTile is the number of physical copies of each tile kind in a set.
const CopiesPerTile = 4

// TotalTiles is the size of a full set: 4 * (9*3 + 7).
const TotalTiles = 136

// tileKind identifies one of the 34 distinct tiles, ignoring which copy it is.
type tileKind struct {
	Suit Suit
	Rank Rank
}

// AllTileKinds returns the 34 distinct tiles in suit then rank order, one Single group each.
func AllTileKinds() []TileGroup {
	kinds := make([]TileGroup, 0, 34)
	for _, suit := range []Suit{Manzu, Pinzu, Souzu} {
		for r := Rank('1'); r <= '9'; r++ {
			kinds = append(kinds, singleTile(r, suit))
		}
	}
	for _, r := range []Rank{WindEast, WindSouth, WindWest, WindNorth} {
		kinds = append(kinds, singleTile(r, Wind))
	}
	for _, r := range []Rank{DragonWhite, DragonGreen, DragonRed} {
		kinds = append(kinds, singleTile(r, Dragon))
	}
	return kinds
}

func singleTile(r Rank, s Suit) TileGroup {
	return TileGroup{Value: r, Suit: s, Shape: Single, IsTerminal: r.IsTerminalOrHonor()}
}

// countTiles counts every physical tile across the groups by kind.
func countTiles(groups []TileGroup) map[tileKind]int {
	counts := make(map[tileKind]int)
	for _, g := range groups {
		for _, r := range g.Ranks() {
			counts[tileKind{Suit: g.Suit, Rank: r}]++
		}
	}
	return counts
}

// exceedsCopies reports whether any tile kind is used more often than the set holds.
func exceedsCopies(groups []TileGroup) bool {
	for _, n := range countTiles(groups) {
		if n > CopiesPerTile {
			return true
		}
	}
	return false
}

// tileCount is the number of physical tiles in the groups, counting a kan as four.
func tileCount(groups []TileGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Ranks())
	}
	return n
}
