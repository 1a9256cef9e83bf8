package mahc

// LimitHand is a capped scoring tier.
type LimitHand int

const (
	Mangan LimitHand = iota
	Haneman
	Baiman
	Sanbaiman
	KazoeYakuman
)

// Payments holds what each side receives for one win, honba included.
type Payments struct {
	DealerRon                 int // Paid by the discarder when the dealer wins by ron
	DealerTsumo               int // Paid by each non-dealer when the dealer wins by tsumo
	NonDealerRon              int // Paid by the discarder when a non-dealer wins by ron
	NonDealerTsumoToNonDealer int // Paid by each other non-dealer on a non-dealer tsumo
	NonDealerTsumoToDealer    int // Paid by the dealer on a non-dealer tsumo
}

// Honba bonuses: the ron payer covers all three shares.
const (
	HonbaRon   = 300
	HonbaTsumo = 100
)

var manganPayments = Payments{
	DealerRon:                 12000,
	DealerTsumo:               4000,
	NonDealerRon:              8000,
	NonDealerTsumoToNonDealer: 2000,
	NonDealerTsumoToDealer:    4000,
}

// limitPayments are the fixed tuples of each tier, Mangan scaled by 1.5, 2, 3 and 4.
var limitPayments = [...]Payments{
	Mangan:       manganPayments,
	Haneman:      manganPayments.scale(3, 2),
	Baiman:       manganPayments.scale(2, 1),
	Sanbaiman:    manganPayments.scale(3, 1),
	KazoeYakuman: manganPayments.scale(4, 1),
}

func (p Payments) scale(num, den int) Payments {
	return Payments{
		DealerRon:                 p.DealerRon * num / den,
		DealerTsumo:               p.DealerTsumo * num / den,
		NonDealerRon:              p.NonDealerRon * num / den,
		NonDealerTsumoToNonDealer: p.NonDealerTsumoToNonDealer * num / den,
		NonDealerTsumoToDealer:    p.NonDealerTsumoToDealer * num / den,
	}
}

func (p Payments) withHonba(honba int) Payments {
	p.DealerRon += HonbaRon * honba
	p.NonDealerRon += HonbaRon * honba
	p.DealerTsumo += HonbaTsumo * honba
	p.NonDealerTsumoToNonDealer += HonbaTsumo * honba
	p.NonDealerTsumoToDealer += HonbaTsumo * honba
	return p
}

// GetLimitHand reports the limit tier of a han/fu pair. han 4 with 40+ fu and han 3
// with 70+ fu are scored as Mangan.
func GetLimitHand(han, fu int) (LimitHand, bool) {
	switch {
	case han >= 13:
		return KazoeYakuman, true
	case han >= 11:
		return Sanbaiman, true
	case han >= 8:
		return Baiman, true
	case han >= 6:
		return Haneman, true
	case han == 5 || (han == 4 && fu >= 40) || (han == 3 && fu >= 70):
		return Mangan, true
	}
	return 0, false
}

// MaxFu is the largest fu total a hand can itemize: four closed terminal or honor kans,
// a value pair and a single wait on a closed ron, rounded up.
const MaxFu = 170

// Calculate converts han and fu into payments and adds honba. fu above MaxFu fails
// with ErrFuOutOfRange.
func Calculate(han, fu, honba int) (Payments, error) {
	if han <= 0 {
		return Payments{}, ErrNoHan
	}
	if fu <= 0 {
		return Payments{}, ErrNoFu
	}
	if fu > MaxFu {
		return Payments{}, ErrFuOutOfRange
	}
	if honba < 0 {
		honba = 0
	}

	if limit, ok := GetLimitHand(han, fu); ok {
		return limitPayments[limit].withHonba(honba), nil
	}

	// Base Points = Fu * 2^(Han + 2). han is at most 4 here.
	basic := fu << (han + 2)
	p := Payments{
		DealerRon:                 roundUpHundred(basic * 6),
		DealerTsumo:               roundUpHundred(basic * 2),
		NonDealerRon:              roundUpHundred(basic * 4),
		NonDealerTsumoToNonDealer: roundUpHundred(basic),
		NonDealerTsumoToDealer:    roundUpHundred(basic * 2),
	}
	return p.withHonba(honba), nil
}

// roundUpHundred rounds points up to the nearest 100.
func roundUpHundred(points int) int {
	return roundUpTo(points, 100)
}
