package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RiverPoker/internal/game/card"
)

func cards(ss ...string) [5]card.Card {
	if len(ss) != 5 {
		panic("need exactly 5 cards")
	}
	var out [5]card.Card
	for i, s := range ss {
		out[i] = card.MustParse(s)
	}
	return out
}

func evalOf(ss ...string) Hand {
	return Evaluate(cards(ss...))
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		kind  Kind
	}{
		{"high card", []string{"Ah", "Kd", "9c", "5s", "2h"}, HighCard},
		{"pair", []string{"Ah", "Ad", "9c", "5s", "2h"}, Pair},
		{"two pair", []string{"Ah", "Ad", "9c", "9s", "2h"}, TwoPair},
		{"trips", []string{"Ah", "Ad", "Ac", "9s", "2h"}, ThreeOfAKind},
		{"straight", []string{"9h", "8d", "7c", "6s", "5h"}, Straight},
		{"broadway offsuit", []string{"Ah", "Kd", "Qc", "Js", "Th"}, Straight},
		{"wheel", []string{"Ah", "5d", "4c", "3s", "2h"}, Straight},
		{"flush", []string{"Kh", "Th", "Qh", "8h", "9h"}, Flush},
		{"full house", []string{"Kh", "Kd", "Kc", "9s", "9h"}, FullHouse},
		{"full house 2+3", []string{"Kh", "Kd", "9c", "9s", "9h"}, FullHouse},
		{"quads", []string{"Kh", "Kd", "Kc", "Ks", "9h"}, FourOfAKind},
		{"straight flush", []string{"7h", "5h", "6h", "8h", "9h"}, StraightFlush},
		{"king-high straight flush", []string{"Kh", "Qh", "Jh", "Th", "9h"}, StraightFlush},
		{"queen-high straight flush", []string{"Jh", "Th", "Qh", "8h", "9h"}, StraightFlush},
		{"wheel straight flush", []string{"Ah", "5h", "4h", "3h", "2h"}, StraightFlush},
		{"royal flush", []string{"Jh", "Kh", "Ah", "Qh", "Th"}, RoyalFlush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := evalOf(tt.cards...)
			assert.Equal(t, tt.kind, h.Kind, "got %s", h)
		})
	}
}

func TestEvaluateDeterministicOverPermutations(t *testing.T) {
	base := cards("Kh", "Kd", "9c", "9s", "9h")
	want := Evaluate(base)

	// a handful of rotations is enough to catch order sensitivity
	for shift := 1; shift < 5; shift++ {
		var perm [5]card.Card
		for i := range base {
			perm[i] = base[(i+shift)%5]
		}
		got := Evaluate(perm)
		assert.Equal(t, want, got, "shift %d", shift)
	}
}

func TestEvaluateTiebreakFields(t *testing.T) {
	h := evalOf("Kh", "Kd", "9c", "9s", "9h")
	require.Equal(t, FullHouse, h.Kind)
	assert.Equal(t, card.Rank(9), h.High, "triplet rank")
	assert.Equal(t, card.King, h.Low, "pair rank")

	h = evalOf("Ah", "Ad", "9c", "9s", "2h")
	require.Equal(t, TwoPair, h.Kind)
	assert.Equal(t, card.Ace, h.High)
	assert.Equal(t, card.Rank(9), h.Low)

	h = evalOf("Ah", "5d", "4c", "3s", "2h")
	require.Equal(t, Straight, h.Kind)
	assert.Equal(t, card.Ace, h.High)
	assert.Equal(t, AceLow, h.Ace)

	h = evalOf("Ah", "Kd", "Qc", "Js", "Th")
	require.Equal(t, Straight, h.Kind)
	assert.Equal(t, AceHigh, h.Ace)
}

func TestCompareAcrossKinds(t *testing.T) {
	quads := evalOf("2h", "2d", "2c", "2s", "9h")
	full := evalOf("Ah", "Ad", "Ac", "Ks", "Kh")
	flush := evalOf("Ah", "Kh", "Qh", "9h", "2h")
	straight := evalOf("Ah", "Kd", "Qc", "Js", "Th")

	assert.Positive(t, Compare(quads, full), "any quads beat any full house")
	assert.Positive(t, Compare(full, flush), "any full house beats any flush")
	assert.Positive(t, Compare(flush, straight), "any flush beats any straight")
}

func TestCompareStraights(t *testing.T) {
	wheel := evalOf("Ah", "5d", "4c", "3s", "2h")
	six := evalOf("6h", "5d", "4c", "3s", "2h")
	broadway := evalOf("Ah", "Kd", "Qc", "Js", "Th")

	assert.Negative(t, Compare(wheel, six), "wheel is the lowest straight")
	assert.Negative(t, Compare(wheel, evalOf("Kh", "Qd", "Jc", "Ts", "9h")),
		"a literal rank comparison would put the wheel's ace on top")
	assert.Positive(t, Compare(broadway, wheel), "broadway beats the wheel")
	assert.Zero(t, Compare(wheel, evalOf("As", "5h", "4d", "3c", "2s")))
	assert.Zero(t, Compare(six, evalOf("6s", "5h", "4d", "3c", "2s")))
}

func TestCompareStraightFlushes(t *testing.T) {
	steelWheel := evalOf("Ah", "5h", "4h", "3h", "2h")
	nineHigh := evalOf("9s", "8s", "7s", "6s", "5s")
	kingHigh := evalOf("Kd", "Qd", "Jd", "Td", "9d")
	royal := evalOf("Ac", "Kc", "Qc", "Jc", "Tc")

	assert.Negative(t, Compare(steelWheel, nineHigh), "ace-high wheel ranks below every other straight flush")
	assert.Positive(t, Compare(kingHigh, nineHigh))
	assert.Positive(t, Compare(royal, kingHigh), "royal flush beats every straight flush")
	assert.Zero(t, Compare(royal, evalOf("Ad", "Kd", "Qd", "Jd", "Td")))
}

func TestCompareFullHouses(t *testing.T) {
	kingsOverNines := evalOf("Kh", "Kd", "Kc", "9s", "9h")
	ninesOverKings := evalOf("9d", "9c", "9s", "Kh", "Ks")
	kingsOverTens := evalOf("Ks", "Kc", "Kh", "Th", "Td")

	assert.Positive(t, Compare(kingsOverNines, ninesOverKings), "triplet decides first")
	assert.Negative(t, Compare(kingsOverNines, kingsOverTens), "pair breaks equal triplets")
}

func TestCompareFlushKickers(t *testing.T) {
	aceHigh := evalOf("Ah", "Jh", "9h", "7h", "2h")
	kingHigh := evalOf("Ks", "Js", "9s", "7s", "2s")
	aceHighBetter := evalOf("Ad", "Jd", "9d", "8d", "2d")

	assert.Positive(t, Compare(aceHigh, kingHigh))
	assert.Negative(t, Compare(aceHigh, aceHighBetter), "all five cards break flush ties")
}

func TestCompareHighCardKickers(t *testing.T) {
	a := evalOf("Ah", "Kd", "9c", "5s", "2h")
	b := evalOf("As", "Kh", "9d", "5c", "3h")
	assert.Negative(t, Compare(a, b), "last kicker decides")
}

func TestComparePairsAndTrips(t *testing.T) {
	assert.Positive(t, Compare(
		evalOf("Ah", "Ad", "9c", "5s", "2h"),
		evalOf("Kh", "Kd", "9c", "5s", "2h"),
	))
	assert.Positive(t, Compare(
		evalOf("Qh", "Qd", "Qc", "5s", "2h"),
		evalOf("Jh", "Jd", "Jc", "As", "Kh"),
	))
	assert.Positive(t, Compare(
		evalOf("Ah", "Ad", "9c", "9s", "2h"),
		evalOf("Ac", "As", "8c", "8s", "Kh"),
	), "second pair breaks equal first pairs")
}

func TestQuadsOverPossibleStraightInput(t *testing.T) {
	// pattern precedence: quads must win even when the input also holds
	// flush-adjacent shapes
	h := evalOf("9h", "9d", "9c", "9s", "8h")
	assert.Equal(t, FourOfAKind, h.Kind)
	assert.Equal(t, card.Rank(9), h.High)
}

func TestHandString(t *testing.T) {
	h := evalOf("Kh", "Kd", "Kc", "9s", "9h")
	assert.Contains(t, h.String(), "Full House")
}
