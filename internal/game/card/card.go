package card

import "fmt"

// Suit 0-3. Suits carry no strength; only equality matters for flushes.
// The numeric value exists so 5-card arrays can be sorted deterministically.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	suits := []string{"♣", "♦", "♥", "♠"}
	if s < 0 || int(s) >= len(suits) {
		return "?"
	}
	return suits[s]
}

// Rank 2-14 so numeric cards carry their face value. Ace is always stored
// high; the wheel straight is handled by the evaluator, not here.
type Rank int

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Valid reports whether r is a playable rank (2..Ace).
func (r Rank) Valid() bool {
	return r >= 2 && r <= Ace
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Parse reads a two-character card like "Ah" or "Ts" ("T" for ten).
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var r Rank
	switch s[0] {
	case 'T', 't':
		r = 10
	case 'J', 'j':
		r = Jack
	case 'Q', 'q':
		r = Queen
	case 'K', 'k':
		r = King
	case 'A', 'a':
		r = Ace
	default:
		if s[0] < '2' || s[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank %q", s[0])
		}
		r = Rank(s[0] - '0')
	}

	var su Suit
	switch s[1] {
	case 'c', 'C':
		su = Clubs
	case 'd', 'D':
		su = Diamonds
	case 'h', 'H':
		su = Hearts
	case 's', 'S':
		su = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit %q", s[1])
	}

	return Card{Rank: r, Suit: su}, nil
}

// MustParse is Parse for tests and fixtures; it panics on bad input.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Less orders cards by rank first; suit is only a tiebreak so that sorted
// 5-card arrays compare deterministically. It never affects hand strength.
func Less(a, b Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Suit < b.Suit
}

// Compare returns -1, 0 or +1 ordering a against b by rank, then suit.
func Compare(a, b Card) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
