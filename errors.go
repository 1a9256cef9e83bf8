package mahc

import "fmt"

// HandErr is a structural or input error found while building or scoring a hand.
type HandErr int

const (
	ErrInvalidGroup HandErr = iota + 1
	ErrInvalidSuit
	ErrInvalidShape
	ErrNoYaku
	ErrNoHandTiles
	ErrNoWinTile
	ErrDuplicateRiichi
	ErrIppatsuWithoutRiichi
	ErrDoubleRiichiHaiteiIppatsu
	ErrDoubleRiichiHaiteiChankan
	ErrChankanTsumo
	ErrRinshanKanWithoutKan
	ErrRinshanWithoutTsumo
	ErrRinshanIppatsu
)

func (e HandErr) Error() string {
	switch e {
	case ErrInvalidGroup:
		return "invalid group found"
	case ErrInvalidSuit:
		return "invalid suit found"
	case ErrInvalidShape:
		return "invalid hand shape found"
	case ErrNoYaku:
		return "no yaku"
	case ErrNoHandTiles:
		return "no hand tiles given"
	case ErrNoWinTile:
		return "no win tile given"
	case ErrDuplicateRiichi:
		return "cannot riichi and double riichi simultaneously"
	case ErrIppatsuWithoutRiichi:
		return "cannot ippatsu without riichi"
	case ErrDoubleRiichiHaiteiIppatsu:
		return "cannot double riichi, ippatsu and haitei"
	case ErrDoubleRiichiHaiteiChankan:
		return "cannot double riichi, chankan and haitei"
	case ErrChankanTsumo:
		return "cannot tsumo and chankan"
	case ErrRinshanKanWithoutKan:
		return "cannot rinshan without kan"
	case ErrRinshanWithoutTsumo:
		return "cannot rinshan without tsumo"
	case ErrRinshanIppatsu:
		return "cannot rinshan and ippatsu"
	}
	return fmt.Sprintf("HandErr(%d)", int(e))
}

// CalculatorError is returned by the score engine for unusable han/fu input.
type CalculatorError int

const (
	ErrNoHan CalculatorError = iota + 1
	ErrNoFu
	ErrFuOutOfRange
)

func (e CalculatorError) Error() string {
	switch e {
	case ErrNoHan:
		return "no han provided"
	case ErrNoFu:
		return "no fu provided"
	case ErrFuOutOfRange:
		return "fu out of range"
	}
	return fmt.Sprintf("CalculatorError(%d)", int(e))
}
