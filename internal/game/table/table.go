package table

import (
	"errors"
	"time"

	"RiverPoker/internal/game/card"
)

// ErrInsufficientChips is returned when a transfer would drive a stack
// negative. The stack and commitment are left untouched.
var ErrInsufficientChips = errors.New("insufficient chips")

// Player is one seat's mutable state. The id is assigned exactly once at
// registration and never changes. A nil Hole means the player folded or
// has not been dealt in; that is the only "no hand" representation.
type Player struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Chips     int64  `json:"chips"`
	Committed int64  `json:"committed"` // chips moved toward the pot this betting round
	Hole      *[2]card.Card
}

// Commit moves amount from the stack into the round commitment. Chips are
// transferred, never invented: stack_before == stack_after + amount.
func (p *Player) Commit(amount int64) error {
	if amount > p.Chips {
		return ErrInsufficientChips
	}
	p.Chips -= amount
	p.Committed += amount
	return nil
}

// HasHand reports whether the player is still live in the current hand.
func (p *Player) HasHand() bool {
	return p.Hole != nil
}

// Fold drops the player's hole cards; folded players are skipped by turn
// rotation and excluded from showdown.
func (p *Player) Fold() {
	p.Hole = nil
}

// Status of a table.
type Status int

const (
	Waiting Status = iota // created, no hand dealt yet
	Running               // hand in progress
	Stopped               // terminal
)

func (s Status) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// NoSeat marks the last-to-act pointer as unset for the betting round.
const NoSeat = -1

// Table is one game's state. Seat order is fixed at creation; rotation
// happens only through DealerIdx advancing between hands.
type Table struct {
	ID        int64
	Seats     []*Player
	CreatedAt time.Time

	Pot        int64
	Flop       *[3]card.Card
	TurnCard   *card.Card
	RiverCard  *card.Card
	DealerIdx  int
	TurnIdx    int
	CurrentBet int64 // bet-to-match for the round
	LastToAct  int   // seat index whose turn closes the round, NoSeat if unset
	Status     Status
}

func New(id int64, seats []*Player) *Table {
	return &Table{
		ID:        id,
		Seats:     seats,
		CreatedAt: time.Now(),
		LastToAct: NoSeat,
	}
}

// SeatOf returns the seat index of a player id, or -1.
func (t *Table) SeatOf(playerID int64) int {
	for i, p := range t.Seats {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// NextLiveSeat walks clockwise from the seat after `from`, skipping folded
// seats. With a single live seat it wraps back to that same seat.
func (t *Table) NextLiveSeat(from int) int {
	n := len(t.Seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if t.Seats[idx].HasHand() {
			return idx
		}
	}
	return from
}

// Community returns the dealt shared cards in order, up to five.
func (t *Table) Community() []card.Card {
	out := make([]card.Card, 0, 5)
	if t.Flop != nil {
		out = append(out, t.Flop[0], t.Flop[1], t.Flop[2])
	}
	if t.TurnCard != nil {
		out = append(out, *t.TurnCard)
	}
	if t.RiverCard != nil {
		out = append(out, *t.RiverCard)
	}
	return out
}

// ResetHand clears per-hand state before a fresh deal.
func (t *Table) ResetHand() {
	t.Flop = nil
	t.TurnCard = nil
	t.RiverCard = nil
	t.Pot = 0
	t.CurrentBet = 0
	t.LastToAct = NoSeat
	for _, p := range t.Seats {
		p.Hole = nil
		p.Committed = 0
	}
}

// SweepBets moves every commitment into the pot at round close.
func (t *Table) SweepBets() {
	for _, p := range t.Seats {
		t.Pot += p.Committed
		p.Committed = 0
	}
	t.CurrentBet = 0
	t.LastToAct = NoSeat
}

// PlayerIDs lists seated player ids in seat order.
func (t *Table) PlayerIDs() []int64 {
	ids := make([]int64, len(t.Seats))
	for i, p := range t.Seats {
		ids[i] = p.ID
	}
	return ids
}
