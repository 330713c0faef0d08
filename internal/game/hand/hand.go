package hand

import (
	"fmt"
	"sort"
	"strings"

	"RiverPoker/internal/game/card"
)

// Kind is the poker category of a 5-card hand, ordered weakest to strongest.
type Kind int

const (
	HighCard Kind = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (k Kind) String() string {
	switch k {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// AceFlag disambiguates ace straights: the wheel (A-5-4-3-2) stores the ace
// as its high card but plays low, while broadway (A-K-Q-J-T) plays high.
type AceFlag int

const (
	AceNone AceFlag = iota
	AceLow
	AceHigh
)

// Hand is a categorized 5-card combination. It is derived and immutable:
// Evaluate builds a fresh value, nothing mutates one in place.
//
// The tiebreak fields are interpreted per Kind:
//
//	Pair/ThreeOfAKind/FourOfAKind  High = the matched rank
//	TwoPair                        High/Low = higher/lower pair
//	FullHouse                      High = triplet, Low = pair
//	Straight/StraightFlush         High = top card, Ace per AceFlag
//
// Comparisons must switch on Kind before touching High/Low; the fields mean
// nothing across mismatched kinds.
type Hand struct {
	Kind  Kind
	High  card.Rank
	Low   card.Rank
	Ace   AceFlag
	Cards [5]card.Card // sorted descending by rank, then suit
}

// Evaluate classifies five cards. It is total and deterministic: any
// permutation of the same five cards yields the same Hand.
//
// The pattern checks run in precedence order — quads and full house before
// any straight or flush shape — so a hand that could match several patterns
// lands on the strongest one.
func Evaluate(cards [5]card.Card) Hand {
	sorted := cards
	sort.Slice(sorted[:], func(i, j int) bool {
		return card.Less(sorted[j], sorted[i])
	})

	var rs [5]card.Rank
	for i, c := range sorted {
		rs[i] = c.Rank
	}

	sameSuit := true
	for _, c := range sorted {
		if c.Suit != sorted[0].Suit {
			sameSuit = false
		}
	}

	h := Hand{Cards: sorted}

	switch {
	case isBroadway(rs):
		if sameSuit {
			h.Kind = RoyalFlush
		} else {
			h.Kind = Straight
			h.High = card.Ace
			h.Ace = AceHigh
		}

	case rs[0] == rs[1] && rs[0] == rs[2] && rs[0] == rs[3]:
		h.Kind = FourOfAKind
		h.High = rs[0]
	case rs[1] == rs[2] && rs[1] == rs[3] && rs[1] == rs[4]:
		h.Kind = FourOfAKind
		h.High = rs[1]

	case rs[0] == rs[1] && rs[0] == rs[2] && rs[3] == rs[4]:
		h.Kind = FullHouse
		h.High = rs[0]
		h.Low = rs[3]
	case rs[0] == rs[1] && rs[2] == rs[3] && rs[2] == rs[4]:
		h.Kind = FullHouse
		h.High = rs[2]
		h.Low = rs[0]

	case sameSuit:
		switch {
		case isWheel(rs):
			h.Kind = StraightFlush
			h.High = card.Ace
			h.Ace = AceLow
		case isRun(rs):
			h.Kind = StraightFlush
			h.High = rs[0]
		default:
			h.Kind = Flush
		}

	case isWheel(rs):
		h.Kind = Straight
		h.High = card.Ace
		h.Ace = AceLow
	case isRun(rs):
		h.Kind = Straight
		h.High = rs[0]

	case rs[0] == rs[1] && rs[0] == rs[2],
		rs[1] == rs[2] && rs[1] == rs[3],
		rs[2] == rs[3] && rs[2] == rs[4]:
		h.Kind = ThreeOfAKind
		h.High = rs[2] // the middle card is always part of the triplet

	case rs[0] == rs[1] && rs[2] == rs[3]:
		h.Kind = TwoPair
		h.High = rs[0]
		h.Low = rs[2]
	case rs[0] == rs[1] && rs[3] == rs[4]:
		h.Kind = TwoPair
		h.High = rs[0]
		h.Low = rs[3]
	case rs[1] == rs[2] && rs[3] == rs[4]:
		h.Kind = TwoPair
		h.High = rs[1]
		h.Low = rs[3]

	case rs[0] == rs[1]:
		h.Kind = Pair
		h.High = rs[0]
	case rs[1] == rs[2]:
		h.Kind = Pair
		h.High = rs[1]
	case rs[2] == rs[3]:
		h.Kind = Pair
		h.High = rs[2]
	case rs[3] == rs[4]:
		h.Kind = Pair
		h.High = rs[3]

	default:
		h.Kind = HighCard
	}

	return h
}

// isBroadway matches A-K-Q-J-T regardless of suit.
func isBroadway(rs [5]card.Rank) bool {
	return rs[0] == card.Ace && rs[1] == card.King &&
		rs[2] == card.Queen && rs[3] == card.Jack && rs[4] == 10
}

// isWheel matches A-5-4-3-2, the only straight where the ace plays low.
func isWheel(rs [5]card.Rank) bool {
	return rs[0] == card.Ace && rs[1] == 5 && rs[2] == 4 && rs[3] == 3 && rs[4] == 2
}

// isRun matches any five descending-by-one ranks (K-9 down to 6-2).
// Broadway and the wheel are checked separately before this.
func isRun(rs [5]card.Rank) bool {
	for i := 0; i < 4; i++ {
		if rs[i] != rs[i+1]+1 {
			return false
		}
	}
	return true
}

// Compare totally orders two hands: negative if a is weaker, positive if
// stronger, zero on an exact tie. Kind decides first; equal kinds fall
// through to category-specific tiebreaks.
func Compare(a, b Hand) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}

	switch a.Kind {
	case HighCard, Flush:
		// Lexicographic over the sorted cards, rank first. Suits only
		// break exact rank ties so the order stays total.
		for i := range a.Cards {
			if d := card.Compare(a.Cards[i], b.Cards[i]); d != 0 {
				return d
			}
		}
		return 0

	case Pair, ThreeOfAKind, FourOfAKind:
		return compareRanks(a.High, b.High)

	case TwoPair, FullHouse:
		if d := compareRanks(a.High, b.High); d != 0 {
			return d
		}
		return compareRanks(a.Low, b.Low)

	case Straight:
		// The wheel stores Ace as its high card but plays as the lowest
		// straight; only broadway plays the ace high.
		aWheel := a.Ace == AceLow
		bWheel := b.Ace == AceLow
		if aWheel || bWheel {
			if aWheel == bWheel {
				return 0
			}
			if aWheel {
				return -1
			}
			return 1
		}
		return compareRanks(a.High, b.High)

	case StraightFlush:
		// The wheel stores Ace as its high card but is the lowest
		// straight flush, so it must lose any mixed comparison.
		aWheel := a.High == card.Ace
		bWheel := b.High == card.Ace
		if aWheel && !bWheel {
			return -1
		}
		if !aWheel && bWheel {
			return 1
		}
		return compareRanks(a.High, b.High)

	default: // RoyalFlush: there is only one
		return 0
	}
}

func compareRanks(a, b card.Rank) int {
	return int(a) - int(b)
}

// String renders the hand for notifications, e.g.
// "Full House (K♠ K♥ K♦ 9♣ 9♠)".
func (h Hand) String() string {
	parts := make([]string, 0, 5)
	for _, c := range h.Cards {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("%s (%s)", h.Kind, strings.Join(parts, " "))
}
