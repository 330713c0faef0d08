package engine

import (
	"errors"

	"RiverPoker/internal/game/card"
	"RiverPoker/internal/game/dealer"
	"RiverPoker/internal/game/hand"
	"RiverPoker/internal/game/table"
)

var (
	// ErrNotYourTurn rejects an action from any seat but the active one.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrCannotCheck rejects a check while the seat has not matched the bet.
	ErrCannotCheck = errors.New("cannot check, there is a bet to match")
	// ErrInvalidBet rejects a non-positive raise amount.
	ErrInvalidBet = errors.New("bet amount must be positive")
	// ErrNotRunning rejects actions while no hand is in progress.
	ErrNotRunning = errors.New("no hand in progress")
	// ErrGameStopped rejects starting a finished game.
	ErrGameStopped = errors.New("game already stopped")
	// ErrNotEnoughPlayers rejects starting with fewer than two seats.
	ErrNotEnoughPlayers = errors.New("need at least two players")
)

// ActionKind is what a player can do on their turn.
type ActionKind string

const (
	Fold  ActionKind = "fold"
	Check ActionKind = "check"
	Call  ActionKind = "call"
	Bet   ActionKind = "bet"
)

// Action is a submitted player move. Amount is the raise on top of the
// current bet-to-match and only meaningful for Bet.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Amount int64      `json:"amount,omitempty"`
}

// Engine drives one table through deal, betting rounds and showdown.
// All methods are synchronous and must be serialized per game by the
// caller; the engine holds no lock of its own.
//
// Failed actions leave the table untouched. Successful ones apply fully;
// there is no partial application.
type Engine struct {
	Table  *table.Table
	Dealer *dealer.Dealer

	SmallBlind int64
	BigBlind   int64
}

func New(t *table.Table, d *dealer.Dealer, smallBlind, bigBlind int64) *Engine {
	return &Engine{
		Table:      t,
		Dealer:     d,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
	}
}

// StartHand shuffles a fresh deck, deals hole cards, posts blinds and hands
// the turn to the seat after the big blind. Starting over a running hand
// discards it; starting a stopped game fails.
func (e *Engine) StartHand() ([]Event, error) {
	t := e.Table
	if t.Status == table.Stopped {
		return nil, ErrGameStopped
	}
	if len(t.Seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	n := len(t.Seats)
	sb := (t.DealerIdx + 1) % n
	bb := (t.DealerIdx + 2) % n
	// both blinds must be postable before anything mutates; a failed start
	// leaves the table exactly as it was
	if t.Seats[sb].Chips < e.SmallBlind || t.Seats[bb].Chips < e.BigBlind {
		return nil, table.ErrInsufficientChips
	}

	t.ResetHand()
	e.Dealer.NewDeck()

	events := make([]Event, 0, n+1)

	hole := e.Dealer.DealHole(n)
	for i, p := range t.Seats {
		cards := hole[i]
		p.Hole = &cards
		events = append(events, to(p.ID, EventDealHole, HoleCardsData{
			GameID: t.ID,
			Cards:  cards,
		}))
	}

	t.CurrentBet = e.BigBlind
	if err := t.Seats[sb].Commit(e.SmallBlind); err != nil {
		return nil, err
	}
	if err := t.Seats[bb].Commit(e.BigBlind); err != nil {
		return nil, err
	}

	t.TurnIdx = (bb + 1) % n
	t.Status = table.Running

	actor := t.Seats[t.TurnIdx]
	events = append(events, to(actor.ID, EventYourTurn, YourTurnData{
		GameID: t.ID,
		ToCall: t.CurrentBet - actor.Committed,
	}))
	return events, nil
}

// HandleAction validates and applies one player action. On success it
// returns the notifications to deliver; on failure the table state is
// unchanged and the error describes why.
func (e *Engine) HandleAction(playerID int64, act Action) ([]Event, error) {
	t := e.Table
	if t.Status != table.Running {
		return nil, ErrNotRunning
	}

	seat := t.SeatOf(playerID)
	if seat != t.TurnIdx {
		return nil, ErrNotYourTurn
	}
	p := t.Seats[seat]

	closeNow := false
	foldedOut := false
	switch act.Kind {
	case Fold:
		p.Fold()
		live := 0
		for _, s := range t.Seats {
			if s.HasHand() {
				live++
			}
		}
		foldedOut = live == 0

	case Check:
		if p.Committed < t.CurrentBet {
			return nil, ErrCannotCheck
		}
		switch t.LastToAct {
		case seat:
			// action came back around uncontested
			closeNow = true
		case table.NoSeat:
			t.LastToAct = seat
		}

	case Call:
		if err := p.Commit(t.CurrentBet - p.Committed); err != nil {
			return nil, err
		}

	case Bet:
		if act.Amount <= 0 {
			return nil, ErrInvalidBet
		}
		if err := p.Commit(t.CurrentBet - p.Committed + act.Amount); err != nil {
			return nil, err
		}
		t.CurrentBet += act.Amount
		t.LastToAct = seat

	default:
		return nil, ErrInvalidBet
	}

	events := []Event{{
		Kind: EventPlayerAction,
		To:   othersThan(t, playerID),
		Data: ActionData{
			GameID: t.ID,
			Player: playerID,
			Action: string(act.Kind),
			Amount: act.Amount,
		},
	}}

	if foldedOut {
		// every other seat abandoned earlier; the pot has no contender
		// left and defaults to the last seat standing
		t.SweepBets()
		events = append(events, broadcast(EventRoundOver, RoundOverData{
			GameID: t.ID,
			Pot:    t.Pot,
		}))
		return append(events, e.finishHand(p, "uncontested")...), nil
	}

	if closeNow {
		return append(events, e.closeRound()...), nil
	}

	t.TurnIdx = t.NextLiveSeat(seat)
	if t.LastToAct != table.NoSeat && t.TurnIdx == t.LastToAct {
		return append(events, e.closeRound()...), nil
	}

	actor := t.Seats[t.TurnIdx]
	events = append(events, to(actor.ID, EventYourTurn, YourTurnData{
		GameID: t.ID,
		ToCall: t.CurrentBet - actor.Committed,
	}))
	return events, nil
}

// closeRound sweeps bets into the pot and either deals the next street or,
// after the river, runs the showdown and rolls straight into the next hand.
func (e *Engine) closeRound() []Event {
	t := e.Table
	t.SweepBets()

	events := []Event{broadcast(EventRoundOver, RoundOverData{
		GameID: t.ID,
		Pot:    t.Pot,
	})}

	switch {
	case t.Flop == nil:
		dealt := e.Dealer.DealCommunity(3)
		flop := [3]card.Card{dealt[0], dealt[1], dealt[2]}
		t.Flop = &flop
		events = append(events, broadcast(EventDealFlop, CommunityData{
			GameID: t.ID, New: dealt, Community: t.Community(),
		}))

	case t.TurnCard == nil:
		c := e.Dealer.Draw()
		t.TurnCard = &c
		events = append(events, broadcast(EventDealTurn, CommunityData{
			GameID: t.ID, New: []card.Card{c}, Community: t.Community(),
		}))

	case t.RiverCard == nil:
		c := e.Dealer.Draw()
		t.RiverCard = &c
		events = append(events, broadcast(EventDealRiver, CommunityData{
			GameID: t.ID, New: []card.Card{c}, Community: t.Community(),
		}))

	default:
		return append(events, e.showdown()...)
	}

	// new street: action starts at the first live seat after the dealer
	t.TurnIdx = t.NextLiveSeat(t.DealerIdx)
	actor := t.Seats[t.TurnIdx]
	events = append(events, to(actor.ID, EventYourTurn, YourTurnData{
		GameID: t.ID,
		ToCall: t.CurrentBet - actor.Committed,
	}))
	return events
}

// showdown awards the whole pot to the best 5-of-7 hand among live seats.
// Ties go to the earliest seat in iteration order; pots are never split.
// The fold-out path in HandleAction guarantees at least one live seat
// reaches here.
func (e *Engine) showdown() []Event {
	t := e.Table
	community := t.Community()

	var winner *table.Player
	var best hand.Hand
	for _, p := range t.Seats {
		if !p.HasHand() {
			continue
		}
		h := bestOfSeven(*p.Hole, community)
		if winner == nil || hand.Compare(h, best) > 0 {
			winner = p
			best = h
		}
	}
	return e.finishHand(winner, best.String())
}

// finishHand pays the winner, announces the result and rolls into the next
// hand with the dealer advanced one seat. The payout and its events survive
// even when the next hand cannot start: if a blind poster busted, the table
// parks in Waiting with the finished hand fully applied and reported.
func (e *Engine) finishHand(winner *table.Player, desc string) []Event {
	t := e.Table

	amount := t.Pot
	winner.Chips += amount
	t.Pot = 0

	events := []Event{broadcast(EventHandWon, HandWonData{
		GameID: t.ID,
		Winner: winner.ID,
		Amount: amount,
		Hand:   desc,
	})}

	t.DealerIdx = (t.DealerIdx + 1) % len(t.Seats)
	next, err := e.StartHand()
	if err != nil {
		t.ResetHand()
		t.Status = table.Waiting
		return events
	}
	return append(events, next...)
}

// bestOfSeven evaluates all 21 five-card subsets of hole+community and
// keeps the strongest. The subset order is fixed so repeated runs pick the
// same hand.
func bestOfSeven(hole [2]card.Card, community []card.Card) hand.Hand {
	all := make([]card.Card, 0, 7)
	all = append(all, hole[0], hole[1])
	all = append(all, community...)

	var best hand.Hand
	first := true
	// drop two of the seven cards in every possible way
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			var pick [5]card.Card
			k := 0
			for m, c := range all {
				if m == i || m == j {
					continue
				}
				pick[k] = c
				k++
			}
			h := hand.Evaluate(pick)
			if first || hand.Compare(h, best) > 0 {
				best = h
				first = false
			}
		}
	}
	return best
}

func othersThan(t *table.Table, playerID int64) []int64 {
	out := make([]int64, 0, len(t.Seats)-1)
	for _, p := range t.Seats {
		if p.ID != playerID {
			out = append(out, p.ID)
		}
	}
	return out
}
