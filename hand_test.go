package mahc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHand builds a hand from space separated groups with seat South, prevalent East.
func newTestHand(t *testing.T, tiles, win string, cond WinConditions) *Hand {
	t.Helper()
	return newTestHandWinds(t, tiles, win, "s", "e", cond)
}

func newTestHandWinds(t *testing.T, tiles, win, seat, prev string, cond WinConditions) *Hand {
	t.Helper()
	h, err := NewHand(strings.Fields(tiles), win, seat, prev, cond)
	require.NoError(t, err, "hand %q win %q", tiles, win)
	return h
}

func TestNewHand_Partitions(t *testing.T) {
	h := newTestHand(t, "123mo rrrrdo EEEEw WWw 456p", "5p", WinConditions{Tsumo: true})

	assert.Len(t, h.Groups(), 5)
	assert.Len(t, h.Sequences(), 2)
	assert.Len(t, h.Kans(), 2)
	assert.Empty(t, h.Triplets())
	require.Len(t, h.Pairs(), 1)
	assert.Equal(t, WindWest, h.Pairs()[0].Value)
	assert.Equal(t, TileGroup{Value: '5', Suit: Pinzu, Shape: Single}, h.WinTile())
	assert.Equal(t, WindSouth, h.SeatWind())
	assert.Equal(t, WindEast, h.PrevalentWind())
	assert.True(t, h.IsOpen())
	assert.False(t, h.IsChiitoitsu())
	assert.True(t, h.Conditions().Tsumo)
}

func TestNewHand_GroupsAreCopied(t *testing.T) {
	h := newTestHand(t, "123m 456p 789s 234m 55s", "5s", WinConditions{})
	groups := h.Groups()
	groups[0].IsOpen = true
	assert.False(t, h.IsOpen())
}

func TestNewHand_Chiitoitsu(t *testing.T) {
	h := newTestHand(t, "11m 22m 33p 44p 55s 66s 77s", "7s", WinConditions{})
	assert.True(t, h.IsChiitoitsu())
	assert.Len(t, h.Pairs(), 7)
}

func TestNewHand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		tiles string
		win   string
		cond  WinConditions
		want  error
	}{
		{"no tiles", "", "1m", WinConditions{}, ErrNoHandTiles},
		{"no win tile", "123m 456p 789s 234m 55s", "", WinConditions{}, ErrNoWinTile},
		{"unordered run", "135m 456p 789s 234m 55s", "5s", WinConditions{}, ErrInvalidGroup},
		{"undefined suit", "123x 456p 789s 234m 55s", "5s", WinConditions{}, ErrInvalidSuit},
		{"single group in hand", "1m 456p 789s 234m 55s", "5s", WinConditions{}, ErrInvalidGroup},
		{"one group", "123m", "1m", WinConditions{}, ErrInvalidShape},
		{"seven non-pairs", "123m 456m 789m 123p 456p 789p 123s", "1m", WinConditions{}, ErrInvalidShape},
		{"two pairs", "123m 456p 789s 22m 55s", "5s", WinConditions{}, ErrInvalidShape},
		{"no pair", "123m 456p 789s 234m 555s", "5s", WinConditions{}, ErrInvalidShape},
		{"repeated chiitoitsu pair", "11m 11m 33p 44p 55s 66s 77s", "7s", WinConditions{}, ErrInvalidShape},
		{"too many copies", "111m 111mo 123m 456p 99s", "9s", WinConditions{}, ErrInvalidShape},
		{"one wind in every group", "SSSw SSSw SSSw SSSw SSw", "Sw", WinConditions{}, ErrInvalidShape},
		{"win tile not in hand", "123m 456p 789s 234m 55s", "9m", WinConditions{}, ErrInvalidShape},
		{"win tile only in open group", "123mo 456p 789s 234m 55s", "1m", WinConditions{}, ErrInvalidShape},
		{"win tile is a pair", "123m 456p 789s 234m 55s", "55s", WinConditions{}, ErrInvalidGroup},
		{"win tile open", "123m 456p 789s 234m 55s", "5so", WinConditions{}, ErrInvalidGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHand(strings.Fields(tt.tiles), tt.win, "e", "e", tt.cond)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewHand_ConditionErrors(t *testing.T) {
	const plain = "123m 456p 789s 234m 55s"
	const withKan = "1111m 456p 789s 234m 55s"

	tests := []struct {
		name  string
		tiles string
		cond  WinConditions
		want  error
	}{
		{"riichi twice", plain, WinConditions{Riichi: true, DoubleRiichi: true}, ErrDuplicateRiichi},
		{"ippatsu alone", plain, WinConditions{Ippatsu: true}, ErrIppatsuWithoutRiichi},
		{"chankan on tsumo", plain, WinConditions{Chankan: true, Tsumo: true}, ErrChankanTsumo},
		{"rinshan without kan", plain, WinConditions{Rinshan: true, Tsumo: true}, ErrRinshanKanWithoutKan},
		{"rinshan on ron", withKan, WinConditions{Rinshan: true}, ErrRinshanWithoutTsumo},
		{"rinshan with ippatsu", withKan, WinConditions{Rinshan: true, Tsumo: true, Riichi: true, Ippatsu: true}, ErrRinshanIppatsu},
		{"double riichi haitei ippatsu", plain, WinConditions{DoubleRiichi: true, Haitei: true, Ippatsu: true, Tsumo: true}, ErrDoubleRiichiHaiteiIppatsu},
		{"double riichi haitei chankan", plain, WinConditions{DoubleRiichi: true, Haitei: true, Chankan: true}, ErrDoubleRiichiHaiteiChankan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHand(strings.Fields(tt.tiles), "5s", "e", "e", tt.cond)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewHand_ValidConditions(t *testing.T) {
	tests := []struct {
		name  string
		tiles string
		cond  WinConditions
	}{
		{"riichi ippatsu tsumo", "123m 456p 789s 234m 55s", WinConditions{Riichi: true, Ippatsu: true, Tsumo: true}},
		{"double riichi ippatsu", "123m 456p 789s 234m 55s", WinConditions{DoubleRiichi: true, Ippatsu: true}},
		{"rinshan after kan", "1111m 456p 789s 234m 55s", WinConditions{Rinshan: true, Tsumo: true}},
		{"houtei", "123m 456p 789s 234m 55s", WinConditions{Haitei: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHand(strings.Fields(tt.tiles), "5s", "e", "e", tt.cond)
			assert.NoError(t, err)
		})
	}
}

func TestClassifyWait(t *testing.T) {
	seq := func(s string) TileGroup {
		g, err := ParseTileGroup(s)
		require.NoError(t, err)
		return g
	}
	tests := []struct {
		name  string
		group string
		win   Rank
		want  waitKind
	}{
		{"ryanmen low end", "345s", '3', waitRyanmen},
		{"ryanmen high end", "345s", '5', waitRyanmen},
		{"kanchan", "345s", '4', waitKanchan},
		{"penchan on 3", "123m", '3', waitPenchan},
		{"penchan on 7", "789m", '7', waitPenchan},
		{"ryanmen on 1", "123m", '1', waitRyanmen},
		{"ryanmen on 9", "789m", '9', waitRyanmen},
		{"tanki", "55p", '5', waitTanki},
		{"shanpon", "555p", '5', waitShanpon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyWait(seq(tt.group), tt.win))
		})
	}
}

func TestConcealedTriplets(t *testing.T) {
	tsumo := newTestHand(t, "111m 222p 333s EEEw 55p", "1m", WinConditions{Tsumo: true})
	assert.Equal(t, 4, tsumo.concealedTriplets(tsumo.winAttributions()[0]))

	ron := newTestHand(t, "111m 222p 333s EEEw 55p", "1m", WinConditions{})
	assert.Equal(t, 3, ron.concealedTriplets(ron.winAttributions()[0]))

	tanki := newTestHand(t, "111m 222p 333s EEEw 55p", "5p", WinConditions{})
	assert.Equal(t, 4, tanki.concealedTriplets(tanki.winAttributions()[0]))
}

func TestWinAttributions_Ambiguous(t *testing.T) {
	h := newTestHand(t, "234m 345m 11p 678s 567p", "4m", WinConditions{Riichi: true})
	assert.Equal(t, []winAttribution{
		{index: 0, wait: waitRyanmen},
		{index: 1, wait: waitKanchan},
	}, h.winAttributions())

	// The two-sided reading pays more (riichi pinfu 2 han 30 fu over riichi 1 han 40 fu).
	assert.Equal(t, winAttribution{index: 0, wait: waitRyanmen}, h.scoredAttribution())
}

func TestScoredAttribution_HigherFuBreaksTie(t *testing.T) {
	// No reading has yaku, so the closed wait with SingleWait fu is kept.
	h := newTestHand(t, "234m 345m 11p 678s 999s", "4m", WinConditions{})
	assert.Equal(t, winAttribution{index: 1, wait: waitKanchan}, h.scoredAttribution())
}
