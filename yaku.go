// yaku.go
package mahc

import "fmt"

// Yaku identifies one scoring pattern.
type Yaku int

const (
	YakuRiichi Yaku = iota
	YakuDoubleRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuTanyao
	YakuYakuhai
	YakuIipeikou
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuChiitoitsu
	YakuToitoi
	YakuSanankou
	YakuSankantsu
	YakuSanshokuDoujun
	YakuSanshokuDoukou
	YakuIttsu
	YakuChanta
	YakuHonroutou
	YakuShousangen
	YakuJunchan
	YakuHonitsu
	YakuRyanpeikou
	YakuChinitsu

	// Yakuman
	YakuDaisangen
	YakuSuuankou
	YakuShousuushii
	YakuDaisuushii
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuSuukantsu
	YakuChuurenPoutou
)

// YakumanHan is the han one yakuman counts for.
const YakumanHan = 13

type yakuInfo struct {
	name      string
	closedHan int
	openHan   int // 0 when the yaku needs a closed hand
	yakuman   bool
}

var yakuTable = [...]yakuInfo{
	YakuRiichi:         {"Riichi", 1, 0, false},
	YakuDoubleRiichi:   {"Double Riichi", 2, 0, false},
	YakuIppatsu:        {"Ippatsu", 1, 0, false},
	YakuMenzenTsumo:    {"Menzen Tsumo", 1, 0, false},
	YakuPinfu:          {"Pinfu", 1, 0, false},
	YakuTanyao:         {"Tanyao", 1, 1, false},
	YakuYakuhai:        {"Yakuhai", 1, 1, false},
	YakuIipeikou:       {"Iipeikou", 1, 0, false},
	YakuHaitei:         {"Haitei Raoyue", 1, 1, false},
	YakuHoutei:         {"Houtei Raoyui", 1, 1, false},
	YakuRinshan:        {"Rinshan Kaihou", 1, 1, false},
	YakuChankan:        {"Chankan", 1, 1, false},
	YakuChiitoitsu:     {"Chiitoitsu", 2, 0, false},
	YakuToitoi:         {"Toitoi", 2, 2, false},
	YakuSanankou:       {"Sanankou", 2, 2, false},
	YakuSankantsu:      {"Sankantsu", 2, 2, false},
	YakuSanshokuDoujun: {"Sanshoku Doujun", 2, 1, false},
	YakuSanshokuDoukou: {"Sanshoku Doukou", 2, 2, false},
	YakuIttsu:          {"Ittsu", 2, 1, false},
	YakuChanta:         {"Chanta", 2, 1, false},
	YakuHonroutou:      {"Honroutou", 2, 2, false},
	YakuShousangen:     {"Shousangen", 2, 2, false},
	YakuJunchan:        {"Junchan", 3, 2, false},
	YakuHonitsu:        {"Honitsu", 3, 2, false},
	YakuRyanpeikou:     {"Ryanpeikou", 3, 0, false},
	YakuChinitsu:       {"Chinitsu", 6, 5, false},
	YakuDaisangen:      {"Daisangen", YakumanHan, YakumanHan, true},
	YakuSuuankou:       {"Suuankou", YakumanHan, 0, true},
	YakuShousuushii:    {"Shousuushii", YakumanHan, YakumanHan, true},
	YakuDaisuushii:     {"Daisuushii", YakumanHan, YakumanHan, true},
	YakuTsuuiisou:      {"Tsuuiisou", YakumanHan, YakumanHan, true},
	YakuChinroutou:     {"Chinroutou", YakumanHan, YakumanHan, true},
	YakuRyuuiisou:      {"Ryuuiisou", YakumanHan, YakumanHan, true},
	YakuSuukantsu:      {"Suukantsu", YakumanHan, YakumanHan, true},
	YakuChuurenPoutou:  {"Chuuren Poutou", YakumanHan, 0, true},
}

func (y Yaku) String() string {
	if int(y) < 0 || int(y) >= len(yakuTable) {
		return fmt.Sprintf("Yaku(%d)", int(y))
	}
	return yakuTable[y].name
}

// Han returns the yaku's value for a closed or open hand. Zero means the yaku is not
// available to an open hand.
func (y Yaku) Han(open bool) int {
	if open {
		return yakuTable[y].openHan
	}
	return yakuTable[y].closedHan
}

// IsYakuman reports whether the yaku is a limit pattern.
func (y Yaku) IsYakuman() bool {
	return yakuTable[y].yakuman
}

// YakuResult holds the name and Han value of an identified Yaku.
type YakuResult struct {
	Yaku Yaku
	Name string
	Han  int
}

// Yaku collects every yaku the hand satisfies. Yakuman replace all ordinary yaku, and
// Ryanpeikou replaces Iipeikou. Dora are not yaku and are never included.
//
// Wait-dependent yaku are judged on the same reading of the winning tile that
// CalculateFu itemizes.
func (h *Hand) Yaku() []YakuResult {
	return h.bestReading(h.conditions.Tsumo, 0).yaku
}

// yakuFor collects the yaku under one reading of the winning tile.
func (h *Hand) yakuFor(a winAttribution) []YakuResult {
	open := h.IsOpen()
	var results []YakuResult
	add := func(y Yaku, ok bool) {
		if !ok {
			return
		}
		if han := y.Han(open); han > 0 {
			results = append(results, YakuResult{Yaku: y, Name: y.String(), Han: han})
		}
	}

	// --- Yakuman ---
	add(YakuDaisangen, h.IsDaisangen())
	add(YakuSuuankou, h.isSuuankou(a))
	add(YakuShousuushii, h.IsShousuushii())
	add(YakuDaisuushii, h.IsDaisuushii())
	add(YakuTsuuiisou, h.IsTsuuiisou())
	add(YakuChinroutou, h.IsChinroutou())
	add(YakuRyuuiisou, h.IsRyuuiisou())
	add(YakuSuukantsu, h.IsSuukantsu())
	add(YakuChuurenPoutou, h.IsChuurenPoutou())
	if len(results) > 0 {
		return results
	}

	// --- 1 Han ---
	add(YakuRiichi, h.IsRiichi())
	add(YakuDoubleRiichi, h.IsDoubleRiichi())
	add(YakuIppatsu, h.IsIppatsu())
	add(YakuMenzenTsumo, h.IsMenzenTsumo())
	add(YakuPinfu, h.isPinfu(a))
	add(YakuTanyao, h.IsTanyao())
	results = append(results, h.yakuhaiSources()...)
	add(YakuIipeikou, h.IsIipeikou() && !h.IsRyanpeikou())
	add(YakuHaitei, h.IsHaitei())
	add(YakuHoutei, h.IsHoutei())
	add(YakuRinshan, h.IsRinshan())
	add(YakuChankan, h.IsChankan())

	// --- 2 Han ---
	add(YakuChiitoitsu, h.IsChiitoitsu())
	add(YakuToitoi, h.IsToitoi())
	add(YakuSanankou, h.isSanankou(a))
	add(YakuSankantsu, h.IsSankantsu())
	add(YakuSanshokuDoujun, h.IsSanshokuDoujun())
	add(YakuSanshokuDoukou, h.IsSanshokuDoukou())
	add(YakuIttsu, h.IsIttsu())
	add(YakuChanta, h.IsChanta())
	add(YakuHonroutou, h.IsHonroutou())
	add(YakuShousangen, h.IsShousangen())

	// --- 3+ Han ---
	add(YakuJunchan, h.IsJunchan())
	add(YakuHonitsu, h.IsHonitsu())
	add(YakuRyanpeikou, h.IsRyanpeikou())
	add(YakuChinitsu, h.IsChinitsu())

	return results
}

// TotalHan sums the han of a yaku list.
func TotalHan(results []YakuResult) int {
	han := 0
	for _, r := range results {
		han += r.Han
	}
	return han
}

// --- Luck & declarations ---

// IsRiichi reports a riichi win. An open hand cannot riichi.
func (h *Hand) IsRiichi() bool {
	return h.conditions.Riichi && !h.IsOpen()
}

// IsDoubleRiichi reports a double riichi win with a closed hand.
func (h *Hand) IsDoubleRiichi() bool {
	return h.conditions.DoubleRiichi && !h.IsOpen()
}

// IsIppatsu reports a win within one go-around of a riichi declaration.
func (h *Hand) IsIppatsu() bool {
	return h.conditions.Ippatsu && h.conditions.IsRiichiDeclared() && !h.IsOpen()
}

// IsMenzenTsumo reports a self-drawn win with a closed hand.
func (h *Hand) IsMenzenTsumo() bool {
	return h.conditions.Tsumo && !h.IsOpen()
}

// IsHaitei is a tsumo on the last wall tile.
func (h *Hand) IsHaitei() bool {
	return h.conditions.Haitei && h.conditions.Tsumo
}

// IsHoutei is a ron on the last discard.
func (h *Hand) IsHoutei() bool {
	return h.conditions.Haitei && !h.conditions.Tsumo
}

// IsRinshan reports a win on a kan replacement tile.
func (h *Hand) IsRinshan() bool {
	return h.conditions.Rinshan
}

// IsChankan reports a win by robbing a kan.
func (h *Hand) IsChankan() bool {
	return h.conditions.Chankan
}

// --- Sequences ---

// IsPinfu requires a closed hand of four sequences, a pair that is not a value tile
// and a two-sided wait on the scored reading of the winning tile.
func (h *Hand) IsPinfu() bool {
	return h.isPinfu(h.scoredAttribution())
}

func (h *Hand) isPinfu(a winAttribution) bool {
	if a.wait != waitRyanmen || h.IsOpen() || h.IsChiitoitsu() || len(h.Sequences()) != 4 {
		return false
	}
	p, ok := h.pair()
	return ok && !isValueRank(p.Suit, p.Value, h.seatWind, h.prevWind)
}

// IsIipeikou reports two identical sequences in a closed hand.
func (h *Hand) IsIipeikou() bool {
	if h.IsOpen() {
		return false
	}
	seqs := h.Sequences()
	for i := range seqs {
		for j := i + 1; j < len(seqs); j++ {
			if seqs[i].sameTiles(seqs[j]) {
				return true
			}
		}
	}
	return false
}

// IsRyanpeikou reports a closed hand whose four melds are two pairs of identical
// sequences.
func (h *Hand) IsRyanpeikou() bool {
	if h.IsOpen() {
		return false
	}
	seqs := h.Sequences()
	if len(seqs) != 4 {
		return false
	}
	// Try every way of splitting the four sequences into two couples.
	for _, split := range [3][4]int{{0, 1, 2, 3}, {0, 2, 1, 3}, {0, 3, 1, 2}} {
		if seqs[split[0]].sameTiles(seqs[split[1]]) && seqs[split[2]].sameTiles(seqs[split[3]]) {
			return true
		}
	}
	return false
}

// IsSanshokuDoujun reports the same sequence in all three numeric suits.
func (h *Hand) IsSanshokuDoujun() bool {
	return inAllSuits(h.Sequences())
}

// IsIttsu reports 123, 456 and 789 of one suit.
func (h *Hand) IsIttsu() bool {
	seqs := h.Sequences()
	for _, suit := range []Suit{Manzu, Pinzu, Souzu} {
		if hasGroup(seqs, suit, '1') && hasGroup(seqs, suit, '4') && hasGroup(seqs, suit, '7') {
			return true
		}
	}
	return false
}

// --- Triplets ---

// IsYakuhai returns the number of value-tile triplets and kans. A triplet of a wind
// that is both seat and prevalent wind counts twice.
func (h *Hand) IsYakuhai() int {
	return TotalHan(h.yakuhaiSources())
}

// yakuhaiSources returns one result per value-tile triplet or kan.
func (h *Hand) yakuhaiSources() []YakuResult {
	var out []YakuResult
	for _, g := range h.tripletsAndKans() {
		han := 0
		switch g.Suit {
		case Dragon:
			han = 1
		case Wind:
			if g.Value == h.seatWind {
				han++
			}
			if g.Value == h.prevWind {
				han++
			}
		}
		if han > 0 {
			out = append(out, YakuResult{
				Yaku: YakuYakuhai,
				Name: fmt.Sprintf("Yakuhai (%s)", honorName(g.Value)),
				Han:  han,
			})
		}
	}
	return out
}

// IsToitoi reports four triplets or kans.
func (h *Hand) IsToitoi() bool {
	return !h.IsChiitoitsu() && len(h.tripletsAndKans()) == 4
}

// IsSanankou reports exactly three concealed triplets or kans.
func (h *Hand) IsSanankou() bool {
	return h.isSanankou(h.scoredAttribution())
}

func (h *Hand) isSanankou(a winAttribution) bool {
	return !h.IsChiitoitsu() && h.concealedTriplets(a) == 3
}

// IsSankantsu reports three kans.
func (h *Hand) IsSankantsu() bool {
	return len(h.Kans()) == 3
}

// IsSanshokuDoukou reports the same numbered triplet in all three numeric suits.
func (h *Hand) IsSanshokuDoukou() bool {
	return inAllSuits(h.tripletsAndKans())
}

// --- Terminals & honors ---

// IsTanyao is true iff no group holds a terminal or an honor.
func (h *Hand) IsTanyao() bool {
	return all(h.groups, func(g TileGroup) bool { return !g.IsTerminal && !g.IsHonor() })
}

// IsChanta requires a terminal or honor in every group, at least one sequence and at
// least one honor group.
func (h *Hand) IsChanta() bool {
	if h.IsChiitoitsu() || len(h.Sequences()) == 0 {
		return false
	}
	return all(h.groups, func(g TileGroup) bool { return g.IsTerminal }) &&
		countWhere(h.groups, TileGroup.IsHonor) > 0
}

// IsJunchan requires a 1 or 9 in every group, with no honors and at least one sequence.
func (h *Hand) IsJunchan() bool {
	if h.IsChiitoitsu() || len(h.Sequences()) == 0 {
		return false
	}
	return all(h.groups, TileGroup.hasTerminalNumber)
}

// IsHonroutou requires every tile to be a terminal or an honor, mixing both.
func (h *Hand) IsHonroutou() bool {
	if len(h.Sequences()) > 0 || !all(h.groups, func(g TileGroup) bool { return g.IsTerminal }) {
		return false
	}
	honors := countWhere(h.groups, TileGroup.IsHonor)
	return honors > 0 && honors < len(h.groups)
}

// IsShousangen reports two dragon triplets with a pair of the third dragon.
func (h *Hand) IsShousangen() bool {
	p, ok := h.pair()
	return ok && p.Suit == Dragon && countWhere(h.tripletsAndKans(), isSuit(Dragon)) == 2
}

// --- Suits ---

// IsHonitsu reports one numeric suit mixed with honors.
func (h *Hand) IsHonitsu() bool {
	return len(h.numericSuits()) == 1 && countWhere(h.groups, TileGroup.IsHonor) > 0
}

// IsChinitsu reports one numeric suit and no honors.
func (h *Hand) IsChinitsu() bool {
	return len(h.numericSuits()) == 1 && countWhere(h.groups, TileGroup.IsHonor) == 0
}

// numericSuits returns the distinct numeric suits present in the hand.
func (h *Hand) numericSuits() []Suit {
	var suits []Suit
	for _, g := range h.groups {
		if !g.IsHonor() && !contains(suits, g.Suit) {
			suits = append(suits, g.Suit)
		}
	}
	return suits
}

// --- Yakuman ---

// IsDaisangen reports triplets or kans of all three dragons.
func (h *Hand) IsDaisangen() bool {
	return countWhere(h.tripletsAndKans(), isSuit(Dragon)) == 3
}

// IsSuuankou reports four concealed triplets or kans.
func (h *Hand) IsSuuankou() bool {
	return h.isSuuankou(h.scoredAttribution())
}

func (h *Hand) isSuuankou(a winAttribution) bool {
	return !h.IsOpen() && !h.IsChiitoitsu() && h.concealedTriplets(a) == 4
}

// IsShousuushii reports three wind triplets with a pair of the fourth wind.
func (h *Hand) IsShousuushii() bool {
	p, ok := h.pair()
	return ok && p.Suit == Wind && countWhere(h.tripletsAndKans(), isSuit(Wind)) == 3
}

// IsDaisuushii reports triplets or kans of all four winds.
func (h *Hand) IsDaisuushii() bool {
	return countWhere(h.tripletsAndKans(), isSuit(Wind)) == 4
}

// IsTsuuiisou reports a hand made only of honors.
func (h *Hand) IsTsuuiisou() bool {
	return all(h.groups, TileGroup.IsHonor)
}

// IsChinroutou reports a hand made only of 1s and 9s.
func (h *Hand) IsChinroutou() bool {
	return all(h.groups, func(g TileGroup) bool {
		return g.Shape != Sequence && g.hasTerminalNumber()
	})
}

// IsRyuuiisou reports a hand made only of green tiles: 2, 3, 4, 6, 8 of souzu and the
// green dragon.
func (h *Hand) IsRyuuiisou() bool {
	for kind := range countTiles(h.groups) {
		if !isGreen(kind) {
			return false
		}
	}
	return true
}

func isGreen(k tileKind) bool {
	switch k.Suit {
	case Souzu:
		return k.Rank == '2' || k.Rank == '3' || k.Rank == '4' || k.Rank == '6' || k.Rank == '8'
	case Dragon:
		return k.Rank == DragonGreen
	}
	return false
}

// IsSuukantsu reports four kans.
func (h *Hand) IsSuukantsu() bool {
	return len(h.Kans()) == 4
}

// IsChuurenPoutou reports the nine gates: a closed single-suit hand holding
// 1112345678999 plus one more tile of that suit.
func (h *Hand) IsChuurenPoutou() bool {
	if h.IsOpen() || h.IsChiitoitsu() || len(h.Kans()) > 0 || !h.IsChinitsu() {
		return false
	}
	suit := h.numericSuits()[0]
	counts := countTiles(h.groups)
	for r := Rank('1'); r <= '9'; r++ {
		need := 1
		if r == '1' || r == '9' {
			need = 3
		}
		if counts[tileKind{Suit: suit, Rank: r}] < need {
			return false
		}
	}
	return true
}

// --- Helpers ---

func isSuit(s Suit) func(TileGroup) bool {
	return func(g TileGroup) bool { return g.Suit == s }
}

// hasGroup reports whether groups holds one of the given suit starting at rank r.
func hasGroup(groups []TileGroup, s Suit, r Rank) bool {
	for _, g := range groups {
		if g.Suit == s && g.Value == r {
			return true
		}
	}
	return false
}

// inAllSuits reports whether some rank appears as a group in manzu, pinzu and souzu.
func inAllSuits(groups []TileGroup) bool {
	for _, g := range groups {
		if g.Suit != Manzu {
			continue
		}
		if hasGroup(groups, Pinzu, g.Value) && hasGroup(groups, Souzu, g.Value) {
			return true
		}
	}
	return false
}

// honorName names a wind or dragon rank for display.
func honorName(r Rank) string {
	if name := windName(r); name != "" {
		return name
	}
	return dragonName(r)
}
