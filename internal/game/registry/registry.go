package registry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"RiverPoker/internal/game/card"
	"RiverPoker/internal/game/dealer"
	"RiverPoker/internal/game/engine"
	"RiverPoker/internal/game/table"
)

var (
	// ErrNotFound is returned for unknown player or game ids.
	ErrNotFound = errors.New("not found")
	// ErrAlreadySeated is returned when a player would be seated twice.
	ErrAlreadySeated = errors.New("player already seated at a game")
)

// Notifier delivers events to players. The websocket hub implements it in
// production; tests use an in-memory mock. Delivery is best-effort and must
// not block the caller.
type Notifier interface {
	SendToPlayer(playerID int64, event string, data any)
	BroadcastToPlayers(playerIDs []int64, event string, data any)
}

// ResultSink receives finished-hand results, e.g. for persistence.
type ResultSink interface {
	RecordHandResult(ctx context.Context, gameID, winnerID, amount int64, hand string) error
}

// Options configures table stakes for all games created by the registry.
type Options struct {
	StartingChips int64
	SmallBlind    int64
	BigBlind      int64
}

type gameEntry struct {
	mu  sync.Mutex // serializes all state transitions of this game
	eng *engine.Engine
}

// Registry owns every player and game, keyed by monotonically increasing
// ids that are assigned exactly once and never reused. Id allocation is
// atomic so registration is safe from any goroutine; mutation of a single
// game is serialized by that game's own mutex.
type Registry struct {
	mu      sync.RWMutex
	players map[int64]*table.Player
	games   map[int64]*gameEntry
	seated  map[int64]int64 // player id -> game id while at a table

	playerSeq atomic.Int64
	gameSeq   atomic.Int64

	notifier Notifier
	results  ResultSink
	opts     Options
}

func New(notifier Notifier, opts Options) *Registry {
	return &Registry{
		players:  make(map[int64]*table.Player),
		games:    make(map[int64]*gameEntry),
		seated:   make(map[int64]int64),
		notifier: notifier,
		opts:     opts,
	}
}

// SetResultSink attaches an optional persistence hook for finished hands.
func (r *Registry) SetResultSink(sink ResultSink) {
	r.results = sink
}

// RegisterPlayer creates a player with the configured starting stack and
// returns its freshly allocated id.
func (r *Registry) RegisterPlayer(name string) int64 {
	id := r.playerSeq.Add(1)
	p := &table.Player{
		ID:    id,
		Name:  name,
		Chips: r.opts.StartingChips,
	}
	r.mu.Lock()
	r.players[id] = p
	r.mu.Unlock()
	return id
}

// RemovePlayer drops a player between games. Removing a seated player is
// unsupported and rejected.
func (r *Registry) RemovePlayer(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return ErrNotFound
	}
	if _, ok := r.seated[id]; ok {
		return ErrAlreadySeated
	}
	delete(r.players, id)
	return nil
}

// Player returns a snapshot of a player's public state.
func (r *Registry) Player(id int64) (table.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return table.Player{}, ErrNotFound
	}
	snap := *p
	snap.Hole = nil // hole cards only travel over deal_hole events
	return snap, nil
}

// CreateGame seats the given players, in order, at a new table. A nil seed
// lets the game shuffle from the clock; a fixed seed reproduces the deal.
func (r *Registry) CreateGame(playerIDs []int64, seed *int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seats := make([]*table.Player, 0, len(playerIDs))
	seen := make(map[int64]bool, len(playerIDs))
	for _, pid := range playerIDs {
		p, ok := r.players[pid]
		if !ok {
			return 0, ErrNotFound
		}
		if seen[pid] {
			return 0, ErrAlreadySeated
		}
		if _, taken := r.seated[pid]; taken {
			return 0, ErrAlreadySeated
		}
		seen[pid] = true
		seats = append(seats, p)
	}

	id := r.gameSeq.Add(1)
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}

	t := table.New(id, seats)
	eng := engine.New(t, dealer.New(s), r.opts.SmallBlind, r.opts.BigBlind)
	r.games[id] = &gameEntry{eng: eng}
	for _, pid := range playerIDs {
		r.seated[pid] = id
	}
	return id, nil
}

// StartGame deals the first hand of a game and notifies the seats.
func (r *Registry) StartGame(gameID int64) error {
	g, err := r.game(gameID)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	events, err := g.eng.StartHand()
	if err != nil {
		return err
	}
	r.deliver(g.eng.Table, events)
	return nil
}

// SubmitAction routes an action to its game and player. Recoverable game
// errors (wrong turn, short stack) come back to the caller with no state
// change; unknown ids surface as ErrNotFound.
func (r *Registry) SubmitAction(gameID, playerID int64, act engine.Action) error {
	g, err := r.game(gameID)
	if err != nil {
		return err
	}
	r.mu.RLock()
	_, known := r.players[playerID]
	r.mu.RUnlock()
	if !known {
		return ErrNotFound
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	events, err := g.eng.HandleAction(playerID, act)
	if err != nil {
		return err
	}
	r.deliver(g.eng.Table, events)
	return nil
}

// StopGame ends a game and frees its seats.
func (r *Registry) StopGame(gameID int64) error {
	g, err := r.game(gameID)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.eng.Table.Status = table.Stopped
	ids := g.eng.Table.PlayerIDs()
	g.mu.Unlock()

	r.mu.Lock()
	for _, pid := range ids {
		delete(r.seated, pid)
	}
	r.mu.Unlock()
	return nil
}

// GameView is the public snapshot of a game for the HTTP API. Hole cards
// are deliberately absent.
type GameView struct {
	ID         int64       `json:"id"`
	Status     string      `json:"status"`
	Pot        int64       `json:"pot"`
	CurrentBet int64       `json:"currentBet"`
	DealerSeat int         `json:"dealerSeat"`
	TurnSeat   int         `json:"turnSeat"`
	Community  []card.Card `json:"community"`
	Seats      []SeatView  `json:"seats"`
}

// SeatView is one seat's public state.
type SeatView struct {
	PlayerID  int64  `json:"playerId"`
	Name      string `json:"name"`
	Chips     int64  `json:"chips"`
	Committed int64  `json:"committed"`
	Folded    bool   `json:"folded"`
}

// Game returns a public snapshot of a game's state.
func (r *Registry) Game(gameID int64) (GameView, error) {
	g, err := r.game(gameID)
	if err != nil {
		return GameView{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	t := g.eng.Table
	view := GameView{
		ID:         t.ID,
		Status:     t.Status.String(),
		Pot:        t.Pot,
		CurrentBet: t.CurrentBet,
		DealerSeat: t.DealerIdx,
		TurnSeat:   t.TurnIdx,
		Community:  t.Community(),
	}
	for _, p := range t.Seats {
		view.Seats = append(view.Seats, SeatView{
			PlayerID:  p.ID,
			Name:      p.Name,
			Chips:     p.Chips,
			Committed: p.Committed,
			Folded:    !p.HasHand() && t.Status == table.Running,
		})
	}
	return view, nil
}

func (r *Registry) game(id int64) (*gameEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// deliver fans engine events out through the notifier and feeds finished
// hands to the result sink. Called with the game's mutex held.
func (r *Registry) deliver(t *table.Table, events []engine.Event) {
	for _, ev := range events {
		ids := ev.To
		if ids == nil {
			ids = t.PlayerIDs()
		}
		r.notifier.BroadcastToPlayers(ids, string(ev.Kind), ev.Data)

		if ev.Kind == engine.EventHandWon && r.results != nil {
			if won, ok := ev.Data.(engine.HandWonData); ok {
				if err := r.results.RecordHandResult(context.Background(),
					won.GameID, won.Winner, won.Amount, won.Hand); err != nil {
					log.Warn("hand result not recorded", "game", won.GameID, "err", err)
				}
			}
		}
	}
}
