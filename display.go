package mahc

import (
	"fmt"
	"strings"
)

var suitLetters = [...]byte{Manzu: 'm', Pinzu: 'p', Souzu: 's', Wind: 'w', Dragon: 'd'}

var suitNames = [...]string{Manzu: "Manzu", Pinzu: "Pinzu", Souzu: "Souzu", Wind: "Wind", Dragon: "Dragon"}

func (s Suit) String() string {
	if int(s) < 0 || int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

var groupTypeNames = [...]string{Sequence: "Sequence", Triplet: "Triplet", Kan: "Kan", Pair: "Pair", Single: "Single"}

func (t GroupType) String() string {
	if int(t) < 0 || int(t) >= len(groupTypeNames) {
		return fmt.Sprintf("GroupType(%d)", int(t))
	}
	return groupTypeNames[t]
}

// String renders the group back into notation, e.g. "rrrdo".
func (g TileGroup) String() string {
	var b strings.Builder
	for _, r := range g.Ranks() {
		b.WriteByte(byte(r))
	}
	b.WriteByte(suitLetters[g.Suit])
	if g.IsOpen {
		b.WriteByte('o')
	}
	return b.String()
}

// FormatGroups joins groups in notation, separated by spaces.
func FormatGroups(groups []TileGroup) string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	return strings.Join(names, " ")
}

var limitNames = [...]string{
	Mangan:       "Mangan",
	Haneman:      "Haneman",
	Baiman:       "Baiman",
	Sanbaiman:    "Sanbaiman",
	KazoeYakuman: "Kazoe Yakuman",
}

func (l LimitHand) String() string {
	if int(l) < 0 || int(l) >= len(limitNames) {
		return fmt.Sprintf("LimitHand(%d)", int(l))
	}
	return limitNames[l]
}

// String renders the payments as the two-line dealer / non-dealer summary.
func (p Payments) String() string {
	return fmt.Sprintf("Dealer: %d (%d)\nnon-dealer: %d (%d/%d)",
		p.DealerRon, p.DealerTsumo,
		p.NonDealerRon, p.NonDealerTsumoToNonDealer, p.NonDealerTsumoToDealer)
}

// FormatYaku lists the yaku one per line as "Name: han".
func FormatYaku(results []YakuResult) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("%s: %d", r.Name, r.Han)
	}
	return strings.Join(lines, "\n")
}

// FormatFu lists the fu breakdown one item per line.
func FormatFu(items []Fu) string {
	lines := make([]string, len(items))
	for i, f := range items {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}

func (s HandScore) String() string {
	var b strings.Builder
	b.WriteString("Yaku:\n")
	for _, r := range s.Yaku {
		fmt.Fprintf(&b, "  %s: %d\n", r.Name, r.Han)
	}
	if s.Dora > 0 {
		fmt.Fprintf(&b, "Dora: %d\n", s.Dora)
	}
	fmt.Fprintf(&b, "Han: %d Fu: %d", s.Han, s.Fu)
	if s.IsLimit {
		fmt.Fprintf(&b, " (%s)", s.Limit)
	}
	b.WriteString("\nFu:\n")
	for _, f := range s.FuItems {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	b.WriteString(s.Payments.String())
	return b.String()
}
