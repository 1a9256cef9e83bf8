package mahc

// ==========================================================
// Hand shape & win condition checks
// ==========================================================

// standardGroups is four melds plus the pair.
const standardGroups = 5

// chiitoitsuGroups is the seven pairs of the special shape.
const chiitoitsuGroups = 7

// handTiles is the tile count of any complete hand, before kan extras.
const handTiles = 14

// checkShape validates the group count and pair structure of a parsed hand.
func checkShape(groups []TileGroup) error {
	pairs := 0
	kans := 0
	for _, g := range groups {
		switch g.Shape {
		case Pair:
			pairs++
		case Kan:
			kans++
		}
	}

	switch len(groups) {
	case standardGroups:
		if pairs != 1 {
			return ErrInvalidShape
		}
	case chiitoitsuGroups:
		if pairs != chiitoitsuGroups {
			return ErrInvalidShape
		}
		// Seven pairs must be seven different pairs.
		for i := range groups {
			for j := i + 1; j < len(groups); j++ {
				if groups[i].sameTiles(groups[j]) {
					return ErrInvalidShape
				}
			}
		}
	default:
		return ErrInvalidShape
	}

	// Each kan holds one tile more than the meld it replaces.
	if tileCount(groups)-kans != handTiles {
		return ErrInvalidShape
	}
	return nil
}

// validate cross-checks the win condition flags against each other and the hand.
func (c WinConditions) validate(hasKan bool) error {
	if c.Riichi && c.DoubleRiichi {
		return ErrDuplicateRiichi
	}
	if c.Ippatsu && !c.IsRiichiDeclared() {
		return ErrIppatsuWithoutRiichi
	}
	if c.Chankan && c.Tsumo {
		return ErrChankanTsumo
	}
	if c.Rinshan {
		if !hasKan {
			return ErrRinshanKanWithoutKan
		}
		if !c.Tsumo {
			return ErrRinshanWithoutTsumo
		}
		if c.Ippatsu {
			return ErrRinshanIppatsu
		}
	}
	if c.DoubleRiichi && c.Haitei {
		if c.Ippatsu {
			return ErrDoubleRiichiHaiteiIppatsu
		}
		if c.Chankan {
			return ErrDoubleRiichiHaiteiChankan
		}
	}
	return nil
}
