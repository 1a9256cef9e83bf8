package mahc

// Suit is the tile family a group belongs to.
type Suit int

const (
	Manzu Suit = iota // Characters
	Pinzu             // Circles
	Souzu             // Bamboo
	Wind
	Dragon
)

// IsHonor reports whether the suit is Wind or Dragon.
func (s Suit) IsHonor() bool {
	return s == Wind || s == Dragon
}

// GroupType is the shape of a parsed tile group.
type GroupType int

const (
	Sequence GroupType = iota // Chi
	Triplet                   // Pon / Ankou
	Kan                       // Four of a kind
	Pair
	Single // One tile. Only used for the winning tile.
)

// Rank is the face of a tile: '1'-'9', a wind (E S W N) or a dragon (r g w).
type Rank byte

// Winds and dragons. Note DragonWhite shares its letter with the wind suit marker.
const (
	NoRank      Rank = 0
	WindEast    Rank = 'E'
	WindSouth   Rank = 'S'
	WindWest    Rank = 'W'
	WindNorth   Rank = 'N'
	DragonRed   Rank = 'r'
	DragonGreen Rank = 'g'
	DragonWhite Rank = 'w'
)

// IsNumber reports whether the rank is a digit 1-9.
func (r Rank) IsNumber() bool {
	return r >= '1' && r <= '9'
}

// IsWind reports whether the rank is one of E, S, W, N.
func (r Rank) IsWind() bool {
	return r == WindEast || r == WindSouth || r == WindWest || r == WindNorth
}

// IsDragon reports whether the rank is one of r, g, w.
func (r Rank) IsDragon() bool {
	return r == DragonRed || r == DragonGreen || r == DragonWhite
}

// IsTerminalOrHonor reports whether a single tile of this rank is a 1, a 9 or an honor.
func (r Rank) IsTerminalOrHonor() bool {
	return r == '1' || r == '9' || r.IsWind() || r.IsDragon()
}

// TileGroup is one parsed group of the hand notation, e.g. "234m" or "rrrdo".
type TileGroup struct {
	Value      Rank // Rank of the first tile in the group
	Suit       Suit
	IsOpen     bool // Formed by calling a discard
	Shape      GroupType
	IsTerminal bool // Contains a terminal or honor tile
}

// IsHonor reports whether the group is made of wind or dragon tiles.
func (g TileGroup) IsHonor() bool {
	return g.Suit.IsHonor()
}

// Ranks returns the ranks of every tile in the group, in order.
func (g TileGroup) Ranks() []Rank {
	switch g.Shape {
	case Sequence:
		return []Rank{g.Value, g.Value + 1, g.Value + 2}
	case Triplet:
		return []Rank{g.Value, g.Value, g.Value}
	case Kan:
		return []Rank{g.Value, g.Value, g.Value, g.Value}
	case Pair:
		return []Rank{g.Value, g.Value}
	case Single:
		return []Rank{g.Value}
	}
	panic("unreachable: unknown group shape")
}

// Contains reports whether the group holds a tile of the same suit and rank as t.
func (g TileGroup) Contains(t TileGroup) bool {
	if g.Suit != t.Suit {
		return false
	}
	return contains(g.Ranks(), t.Value)
}

// sameTiles reports whether two groups consist of the same tiles, ignoring openness.
func (g TileGroup) sameTiles(other TileGroup) bool {
	return g.Shape == other.Shape && g.Suit == other.Suit && g.Value == other.Value
}

// isTripletLike is true for triplets and kans, which score alike for most yaku.
func (g TileGroup) isTripletLike() bool {
	return g.Shape == Triplet || g.Shape == Kan
}

// hasTerminalNumber reports whether a numeric group contains a 1 or a 9.
func (g TileGroup) hasTerminalNumber() bool {
	return !g.IsHonor() && g.IsTerminal
}
