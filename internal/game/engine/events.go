package engine

import "RiverPoker/internal/game/card"

// EventKind names the notifications the engine produces.
type EventKind string

const (
	EventDealHole     EventKind = "deal_hole"
	EventDealFlop     EventKind = "deal_flop"
	EventDealTurn     EventKind = "deal_turn"
	EventDealRiver    EventKind = "deal_river"
	EventPlayerAction EventKind = "player_action"
	EventYourTurn     EventKind = "your_turn"
	EventRoundOver    EventKind = "round_over"
	EventHandWon      EventKind = "hand_won"
)

// Event is a notification the engine wants delivered. The engine never
// talks to a transport itself; it returns events and the caller (the
// registry, backed by the websocket hub) delivers them. A nil To means
// every seated player.
type Event struct {
	Kind EventKind
	To   []int64
	Data any
}

// HoleCardsData accompanies deal_hole, sent privately to one seat.
type HoleCardsData struct {
	GameID int64       `json:"gameId"`
	Cards  [2]card.Card `json:"cards"`
}

// CommunityData accompanies deal_flop/deal_turn/deal_river.
type CommunityData struct {
	GameID    int64       `json:"gameId"`
	New       []card.Card `json:"new"`
	Community []card.Card `json:"community"`
}

// ActionData accompanies player_action, sent to everyone but the actor.
type ActionData struct {
	GameID int64  `json:"gameId"`
	Player int64  `json:"player"`
	Action string `json:"action"`
	Amount int64  `json:"amount,omitempty"`
}

// YourTurnData accompanies your_turn, sent privately to the seat to act.
type YourTurnData struct {
	GameID int64 `json:"gameId"`
	ToCall int64 `json:"toCall"`
}

// RoundOverData accompanies round_over.
type RoundOverData struct {
	GameID int64 `json:"gameId"`
	Pot    int64 `json:"pot"`
}

// HandWonData accompanies hand_won.
type HandWonData struct {
	GameID int64  `json:"gameId"`
	Winner int64  `json:"winner"`
	Amount int64  `json:"amount"`
	Hand   string `json:"hand"`
}

func broadcast(kind EventKind, data any) Event {
	return Event{Kind: kind, Data: data}
}

func to(playerID int64, kind EventKind, data any) Event {
	return Event{Kind: kind, To: []int64{playerID}, Data: data}
}
