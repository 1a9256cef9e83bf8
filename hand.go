package mahc

import "slices"

// Hand is a validated, complete hand: four melds and a pair, or seven pairs, together
// with the winning tile, the winds and the win conditions. It is never modified after
// NewHand returns.
type Hand struct {
	groups     []TileGroup
	winTile    TileGroup
	seatWind   Rank
	prevWind   Rank
	conditions WinConditions
}

// NewHand parses and validates a hand.
//
// tiles holds the group strings in notation form ("123m", "rrrdo", ...), win is the
// winning tile ("7m"), seat and prev are the seat and prevalent winds ("e", "S", ...).
// The first failure is returned unchanged.
func NewHand(tiles []string, win string, seat string, prev string, cond WinConditions) (*Hand, error) {
	if len(tiles) == 0 {
		return nil, ErrNoHandTiles
	}
	if win == "" {
		return nil, ErrNoWinTile
	}

	groups := make([]TileGroup, 0, len(tiles))
	for _, s := range tiles {
		g, err := ParseTileGroup(s)
		if err != nil {
			return nil, err
		}
		if g.Shape == Single {
			return nil, ErrInvalidGroup
		}
		groups = append(groups, g)
	}
	if err := checkShape(groups); err != nil {
		return nil, err
	}

	winTile, err := ParseTileGroup(win)
	if err != nil {
		return nil, err
	}
	if winTile.Shape != Single || winTile.IsOpen {
		return nil, ErrInvalidGroup
	}

	h := &Hand{
		groups:     groups,
		winTile:    winTile,
		seatWind:   ParseWind(seat),
		prevWind:   ParseWind(prev),
		conditions: cond,
	}
	if exceedsCopies(groups) || len(h.winAttributions()) == 0 {
		return nil, ErrInvalidShape
	}
	if err := cond.validate(len(h.Kans()) > 0); err != nil {
		return nil, err
	}
	return h, nil
}

// Groups returns every group in input order.
func (h *Hand) Groups() []TileGroup {
	return slices.Clone(h.groups)
}

// Pairs returns the pair groups in input order.
func (h *Hand) Pairs() []TileGroup {
	return h.groupsOfShape(Pair)
}

// Triplets returns the triplet groups in input order. Kans are not included.
func (h *Hand) Triplets() []TileGroup {
	return h.groupsOfShape(Triplet)
}

// Kans returns the kan groups in input order.
func (h *Hand) Kans() []TileGroup {
	return h.groupsOfShape(Kan)
}

// Sequences returns the sequence groups in input order.
func (h *Hand) Sequences() []TileGroup {
	return h.groupsOfShape(Sequence)
}

func (h *Hand) groupsOfShape(shape GroupType) []TileGroup {
	var out []TileGroup
	for _, g := range h.groups {
		if g.Shape == shape {
			out = append(out, g)
		}
	}
	return out
}

// tripletsAndKans returns triplets and kans together, in input order.
func (h *Hand) tripletsAndKans() []TileGroup {
	var out []TileGroup
	for _, g := range h.groups {
		if g.isTripletLike() {
			out = append(out, g)
		}
	}
	return out
}

// WinTile returns the tile that completed the hand.
func (h *Hand) WinTile() TileGroup { return h.winTile }

// SeatWind returns the player's seat wind, or NoRank if none was given.
func (h *Hand) SeatWind() Rank { return h.seatWind }

// PrevalentWind returns the round wind, or NoRank if none was given.
func (h *Hand) PrevalentWind() Rank { return h.prevWind }

// Conditions returns the win condition flags the hand was built with.
func (h *Hand) Conditions() WinConditions { return h.conditions }

// IsOpen reports whether any group was formed by calling a discard.
func (h *Hand) IsOpen() bool {
	for _, g := range h.groups {
		if g.IsOpen {
			return true
		}
	}
	return false
}

// IsChiitoitsu reports whether the hand has the seven pairs shape.
func (h *Hand) IsChiitoitsu() bool {
	return len(h.groups) == chiitoitsuGroups
}

// pair returns the single pair of a standard hand.
func (h *Hand) pair() (TileGroup, bool) {
	if h.IsChiitoitsu() {
		return TileGroup{}, false
	}
	pairs := h.Pairs()
	if len(pairs) != 1 {
		return TileGroup{}, false
	}
	return pairs[0], true
}

// ----------------------------------------------------------
// Wait analysis
// ----------------------------------------------------------

// waitKind is how the winning tile completed its group.
type waitKind int

const (
	waitRyanmen waitKind = iota // Two-sided sequence wait
	waitKanchan                 // Closed wait, e.g. 4-6 on 5
	waitPenchan                 // Edge wait, 1-2 on 3 or 8-9 on 7
	waitTanki                   // Pair wait
	waitShanpon                 // Triplet completed from a pair
)

// isSingleWait is true for the waits that earn the SingleWait fu.
func (w waitKind) isSingleWait() bool {
	return w == waitKanchan || w == waitPenchan || w == waitTanki
}

// winAttribution is one way of reading which group the winning tile completed.
type winAttribution struct {
	index int // Index into Hand.groups
	wait  waitKind
}

// winAttributions lists every closed group the winning tile could have completed, in
// input order. Called groups and kans are never completed by the winning tile.
func (h *Hand) winAttributions() []winAttribution {
	var out []winAttribution
	for i, g := range h.groups {
		if g.IsOpen || g.Shape == Kan || !g.Contains(h.winTile) {
			continue
		}
		out = append(out, winAttribution{index: i, wait: classifyWait(g, h.winTile.Value)})
	}
	return out
}

// classifyWait reads the wait of a group completed by a tile of rank win.
func classifyWait(g TileGroup, win Rank) waitKind {
	switch g.Shape {
	case Pair:
		return waitTanki
	case Triplet:
		return waitShanpon
	case Sequence:
		switch {
		case win == g.Value+1:
			return waitKanchan
		case win == g.Value && g.Value == '7':
			return waitPenchan
		case win == g.Value+2 && g.Value == '1':
			return waitPenchan
		}
	}
	return waitRyanmen
}

// concealedTriplets counts triplets and kans that were not called and, for a ron,
// not completed by the winning tile under attribution a.
func (h *Hand) concealedTriplets(a winAttribution) int {
	n := 0
	for i, g := range h.groups {
		if !g.isTripletLike() || g.IsOpen {
			continue
		}
		if !h.conditions.Tsumo && i == a.index && a.wait == waitShanpon {
			continue
		}
		n++
	}
	return n
}
