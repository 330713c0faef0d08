package dealer

import (
	"testing"
	"time"

	"RiverPoker/internal/game/card"
)

func hasDuplicates(cards []card.Card) bool {
	seen := make(map[card.Card]bool)
	for _, c := range cards {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

func TestNewDeck(t *testing.T) {
	d := New(time.Now().UnixNano())
	d.NewDeck()

	if len(d.deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(d.deck))
	}
	if hasDuplicates(d.deck) {
		t.Fatalf("deck should not contain duplicates")
	}

	suits := make(map[card.Suit]bool)
	ranks := make(map[card.Rank]bool)
	for _, c := range d.deck {
		suits[c.Suit] = true
		ranks[c.Rank] = true
	}
	if len(suits) != 4 {
		t.Fatalf("expected 4 suits, got %d", len(suits))
	}
	if len(ranks) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(ranks))
	}
}

func TestShuffleDeterministicPerSeed(t *testing.T) {
	d1 := New(42)
	d1.NewDeck()
	d2 := New(42)
	d2.NewDeck()

	for i := range d1.deck {
		if d1.deck[i] != d2.deck[i] {
			t.Fatalf("expected identical decks for same seed")
		}
	}

	d3 := New(99)
	d3.NewDeck()
	diff := false
	for i := range d1.deck {
		if d1.deck[i] != d3.deck[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Fatalf("expected deck with different seed to differ")
	}
}

func TestDrawConsumesFromEnd(t *testing.T) {
	d := New(7)
	d.NewDeck()

	want := d.deck[len(d.deck)-1]
	got := d.Draw()
	if got != want {
		t.Fatalf("expected draw from the end of the deck, got %v want %v", got, want)
	}
	if d.Remaining() != 51 {
		t.Fatalf("expected 51 remaining, got %d", d.Remaining())
	}
}

func TestDealHole(t *testing.T) {
	d := New(1)
	d.NewDeck()
	hole := d.DealHole(3)

	if len(hole) != 3 {
		t.Fatalf("expected 3 seats, got %d", len(hole))
	}

	all := []card.Card{}
	for _, h := range hole {
		all = append(all, h[0], h[1])
	}
	if hasDuplicates(all) {
		t.Fatalf("hole cards contain duplicates")
	}
	if d.Remaining() != 52-6 {
		t.Fatalf("expected remaining deck 46, got %d", d.Remaining())
	}
}

func TestDealCommunity(t *testing.T) {
	d := New(2)
	d.NewDeck()

	flop := d.DealCommunity(3)
	turn := d.DealCommunity(1)
	river := d.DealCommunity(1)

	if len(flop) != 3 || len(turn) != 1 || len(river) != 1 {
		t.Fatalf("expected 3+1+1 cards, got %d %d %d", len(flop), len(turn), len(river))
	}

	all := append(append(flop, turn...), river...)
	if hasDuplicates(all) {
		t.Fatalf("community cards contain duplicates")
	}
	if d.Remaining() != 52-5 {
		t.Fatalf("expected 47 remaining, got %d", d.Remaining())
	}
}

func TestDrawFromEmptyDeckPanics(t *testing.T) {
	d := New(3)
	d.NewDeck()
	for i := 0; i < 52; i++ {
		d.Draw()
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty deck")
		}
	}()
	d.Draw()
}
