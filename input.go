package mahc

import "strings"

// rankChars lists every character allowed in a rank run.
const rankChars = "123456789ESWNrgw"

// validRuns are the seven sequences a numeric suit can form.
var validRuns = []string{"123", "234", "345", "456", "567", "678", "789"}

// SuitFromString maps a suit letter (m, p, s, w, d) to its Suit.
func SuitFromString(s string) (Suit, error) {
	switch s {
	case "m":
		return Manzu, nil
	case "p":
		return Pinzu, nil
	case "s":
		return Souzu, nil
	case "w":
		return Wind, nil
	case "d":
		return Dragon, nil
	}
	return 0, ErrInvalidSuit
}

// splitGroup separates a group string into its rank run, suit letter and open marker.
func splitGroup(group string) (run string, suit string, isOpen bool, err error) {
	body := group
	if strings.HasSuffix(group, "o") {
		isOpen = true
		body = group[:len(group)-1]
	}
	if len(body) < 2 {
		return "", "", false, ErrInvalidGroup
	}
	return body[:len(body)-1], body[len(body)-1:], isOpen, nil
}

// GroupTypeFromString classifies the shape of a group string such as "789s" or "EEEEwo".
// The suit letter is not validated here.
func GroupTypeFromString(group string) (GroupType, error) {
	run, _, _, err := splitGroup(group)
	if err != nil {
		return 0, err
	}
	for _, c := range run {
		if !strings.ContainsRune(rankChars, c) {
			return 0, ErrInvalidGroup
		}
	}

	switch len(run) {
	case 1:
		return Single, nil
	case 2:
		if run[0] == run[1] {
			return Pair, nil
		}
	case 3:
		if run[0] == run[1] && run[1] == run[2] {
			return Triplet, nil
		}
		if contains(validRuns, run) {
			return Sequence, nil
		}
	case 4:
		if strings.Count(run, run[:1]) == 4 {
			return Kan, nil
		}
	}
	return 0, ErrInvalidGroup
}

// ParseTileGroup parses one group of the hand notation: a rank run, a suit letter and
// an optional trailing "o" for an open (called) group.
func ParseTileGroup(group string) (TileGroup, error) {
	_, suitStr, isOpen, err := splitGroup(group)
	if err != nil {
		return TileGroup{}, err
	}
	suit, err := SuitFromString(suitStr)
	if err != nil {
		return TileGroup{}, err
	}
	shape, err := GroupTypeFromString(group)
	if err != nil {
		return TileGroup{}, err
	}

	value := Rank(group[0])
	if !rankFitsSuit(value, suit) {
		return TileGroup{}, ErrInvalidGroup
	}

	isTerminal := value.IsTerminalOrHonor()
	if shape == Sequence {
		isTerminal = value == '1' || value == '7'
	}

	return TileGroup{
		Value:      value,
		Suit:       suit,
		IsOpen:     isOpen,
		Shape:      shape,
		IsTerminal: isTerminal,
	}, nil
}

// rankFitsSuit keeps digits in the numeric suits, winds in "w" and dragons in "d".
func rankFitsSuit(r Rank, s Suit) bool {
	switch s {
	case Manzu, Pinzu, Souzu:
		return r.IsNumber()
	case Wind:
		return r.IsWind()
	case Dragon:
		return r.IsDragon()
	}
	return false
}

// ParseWind reads a seat or prevalent wind such as "e", "E" or "Ew".
// Only the first character counts; anything that is not a wind yields NoRank.
func ParseWind(s string) Rank {
	if s == "" {
		return NoRank
	}
	r := Rank(strings.ToUpper(s[:1])[0])
	if !r.IsWind() {
		return NoRank
	}
	return r
}
