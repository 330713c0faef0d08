package dealer

import (
	"math/rand"

	"RiverPoker/internal/game/card"
)

// Dealer owns one game's deck and randomness. Each game gets its own
// *rand.Rand so shuffles never interfere across games and a fixed seed
// reproduces the exact same deal.
type Dealer struct {
	deck []card.Card
	rnd  *rand.Rand
}

func New(seed int64) *Dealer {
	return &Dealer{
		deck: make([]card.Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDeck rebuilds the full 52-card deck and shuffles it. Called at the
// start of every hand so leftover cards never leak between hands.
func (d *Dealer) NewDeck() {
	d.deck = d.deck[:0]
	for s := card.Clubs; s <= card.Spades; s++ {
		for r := card.Rank(2); r <= card.Ace; r++ {
			d.deck = append(d.deck, card.Card{Rank: r, Suit: s})
		}
	}
	d.rnd.Shuffle(len(d.deck), func(i, j int) {
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	})
}

// DealHole deals two cards to each of n seats, one card per seat per pass.
// Result is indexed by seat.
func (d *Dealer) DealHole(n int) [][2]card.Card {
	out := make([][2]card.Card, n)
	for pass := 0; pass < 2; pass++ {
		for seat := 0; seat < n; seat++ {
			out[seat][pass] = d.Draw()
		}
	}
	return out
}

// DealCommunity deals n shared cards.
func (d *Dealer) DealCommunity(n int) []card.Card {
	out := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.Draw())
	}
	return out
}

// Draw consumes one card from the end of the deck. The engine guarantees
// enough cards remain for a full hand, so an empty deck is a bug.
func (d *Dealer) Draw() card.Card {
	if len(d.deck) == 0 {
		panic("dealer: draw from empty deck")
	}
	c := d.deck[len(d.deck)-1]
	d.deck = d.deck[:len(d.deck)-1]
	return c
}

// Remaining reports how many cards are left in the deck.
func (d *Dealer) Remaining() int {
	return len(d.deck)
}
