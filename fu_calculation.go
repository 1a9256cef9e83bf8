package mahc

import "fmt"

// Fu is one itemized minipoint contribution.
type Fu int

const (
	BasePoints Fu = iota
	BasePointsChitoi
	ClosedRon
	Tsumo
	SimpleOpenTriplet
	SimpleClosedTriplet
	NonSimpleOpenTriplet
	NonSimpleClosedTriplet
	SimpleOpenKan
	SimpleClosedKan
	NonSimpleOpenKan
	NonSimpleClosedKan
	Toitsu
	SingleWait
)

var fuTable = [...]struct {
	name  string
	value int
}{
	BasePoints:             {"BasePoints", 20},
	BasePointsChitoi:       {"BasePointsChitoi", 25},
	ClosedRon:              {"ClosedRon", 10},
	Tsumo:                  {"Tsumo", 2},
	SimpleOpenTriplet:      {"SimpleOpenTriplet", 2},
	SimpleClosedTriplet:    {"SimpleClosedTriplet", 4},
	NonSimpleOpenTriplet:   {"NonSimpleOpenTriplet", 4},
	NonSimpleClosedTriplet: {"NonSimpleClosedTriplet", 8},
	SimpleOpenKan:          {"SimpleOpenKan", 8},
	SimpleClosedKan:        {"SimpleClosedKan", 16},
	NonSimpleOpenKan:       {"NonSimpleOpenKan", 16},
	NonSimpleClosedKan:     {"NonSimpleClosedKan", 32},
	Toitsu:                 {"Toitsu", 2},
	SingleWait:             {"SingleWait", 2},
}

// Value returns the minipoints the item is worth.
func (f Fu) Value() int {
	if int(f) < 0 || int(f) >= len(fuTable) {
		panic("unreachable: unknown fu item")
	}
	return fuTable[f].value
}

// String renders the item with its value, e.g. "BasePoints: 20".
func (f Fu) String() string {
	if int(f) < 0 || int(f) >= len(fuTable) {
		return fmt.Sprintf("Fu(%d)", int(f))
	}
	return fmt.Sprintf("%s: %d", fuTable[f].name, fuTable[f].value)
}

// meldFu selects the triplet or kan item from its three properties.
func meldFu(kan, terminal, open bool) Fu {
	switch {
	case !kan && !terminal && open:
		return SimpleOpenTriplet
	case !kan && !terminal && !open:
		return SimpleClosedTriplet
	case !kan && terminal && open:
		return NonSimpleOpenTriplet
	case !kan && terminal && !open:
		return NonSimpleClosedTriplet
	case kan && !terminal && open:
		return SimpleOpenKan
	case kan && !terminal && !open:
		return SimpleClosedKan
	case kan && terminal && open:
		return NonSimpleOpenKan
	default:
		return NonSimpleClosedKan
	}
}

// CalculateFu itemizes the hand's minipoints and returns the total rounded up to a
// multiple of 10 together with the ordered breakdown.
//
// When the winning tile could have completed more than one group, the breakdown is
// taken from the reading that scores highest, the same one Yaku is judged on.
func (h *Hand) CalculateFu(isTsumo bool) (int, []Fu) {
	r := h.bestReading(isTsumo, 0)
	return r.fu, r.items
}

// itemizeFu builds the breakdown for one reading of the winning tile.
func (h *Hand) itemizeFu(a winAttribution, isTsumo bool) []Fu {
	items := make([]Fu, 0, 8)

	// 1. Base
	if h.IsChiitoitsu() {
		items = append(items, BasePointsChitoi)
	} else {
		items = append(items, BasePoints)
	}

	// 2. Win method
	switch {
	case isTsumo:
		items = append(items, Tsumo)
	case !h.IsOpen():
		items = append(items, ClosedRon)
	}

	if h.IsChiitoitsu() {
		return items
	}

	// 3. Triplets and kans. A triplet completed by ron scores as open.
	for i, g := range h.groups {
		if !g.isTripletLike() {
			continue
		}
		open := g.IsOpen || (!isTsumo && i == a.index && a.wait == waitShanpon)
		items = append(items, meldFu(g.Shape == Kan, g.IsTerminal, open))
	}

	// 4. Value pair
	if p, ok := h.pair(); ok && isValueRank(p.Suit, p.Value, h.seatWind, h.prevWind) {
		items = append(items, Toitsu)
	}

	// 5. Wait
	if a.wait.isSingleWait() {
		items = append(items, SingleWait)
	}
	return items
}

func sumFu(items []Fu) int {
	sum := 0
	for _, f := range items {
		sum += f.Value()
	}
	return sum
}

// CalculateTotalFu sums a breakdown and rounds it up to a multiple of 10.
func CalculateTotalFu(items []Fu) int {
	return roundUpTo(sumFu(items), 10)
}
