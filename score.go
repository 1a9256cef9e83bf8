package mahc

// HandScore is the full evaluation of one hand.
type HandScore struct {
	Yaku     []YakuResult
	Dora     int
	Han      int // Yaku han plus dora
	Fu       int
	FuItems  []Fu
	Limit    LimitHand
	IsLimit  bool
	Payments Payments
}

// PaymentFunc prices a han/fu pair. Calculate is the reference implementation.
type PaymentFunc func(han, fu, honba int) (Payments, error)

// GetHandScore finds the hand's yaku, itemizes its fu and prices the result. A hand
// without yaku fails with ErrNoYaku, however much dora it holds.
func GetHandScore(h *Hand, dora, honba int) (HandScore, error) {
	return GetHandScoreWith(h, dora, honba, Calculate)
}

// GetHandScoreWith is GetHandScore with a caller-supplied pricing step.
func GetHandScoreWith(h *Hand, dora, honba int, price PaymentFunc) (HandScore, error) {
	if dora < 0 {
		dora = 0
	}
	r := h.bestReading(h.conditions.Tsumo, dora)
	yaku, fu, items := r.yaku, r.fu, r.items
	if len(yaku) == 0 {
		return HandScore{}, ErrNoYaku
	}

	han := TotalHan(yaku) + dora
	payments, err := price(han, fu, honba)
	if err != nil {
		return HandScore{}, err
	}
	limit, isLimit := GetLimitHand(han, fu)

	return HandScore{
		Yaku:     yaku,
		Dora:     dora,
		Han:      han,
		Fu:       fu,
		FuItems:  items,
		Limit:    limit,
		IsLimit:  isLimit,
		Payments: payments,
	}, nil
}

// reading is the hand scored under one attribution of the winning tile.
type reading struct {
	attr  winAttribution
	yaku  []YakuResult
	items []Fu
	rawFu int
	fu    int
}

// value is the non-dealer ron price of the reading with dora added, or 0 when it has
// no yaku.
func (r reading) value(dora int) int {
	if len(r.yaku) == 0 {
		return 0
	}
	p, err := Calculate(TotalHan(r.yaku)+dora, r.fu, 0)
	if err != nil {
		return 0
	}
	return p.NonDealerRon
}

// bestReading scores every attribution of the winning tile and keeps the one that pays
// the most, then the one with the higher unrounded fu. Ties keep the earliest group.
func (h *Hand) bestReading(isTsumo bool, dora int) reading {
	var best reading
	bestValue := -1
	for _, a := range h.winAttributions() {
		items := h.itemizeFu(a, isTsumo)
		r := reading{attr: a, yaku: h.yakuFor(a), items: items, rawFu: sumFu(items)}
		r.fu = roundUpTo(r.rawFu, 10)
		v := r.value(dora)
		if v > bestValue || (v == bestValue && r.rawFu > best.rawFu) {
			best, bestValue = r, v
		}
	}
	return best
}

// scoredAttribution is the reading of the winning tile that the hand is scored on.
func (h *Hand) scoredAttribution() winAttribution {
	return h.bestReading(h.conditions.Tsumo, 0).attr
}
