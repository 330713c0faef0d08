package lobby

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"RiverPoker/internal/websocket"
)

// Notifier is the slice of the hub the lobby needs.
type Notifier interface {
	BroadcastToPlayers(playerIDs []int64, msg websocket.OutgoingMessage)
}

// GameStarter turns a formed table into a running game; the registry
// implements it.
type GameStarter interface {
	CreateGame(playerIDs []int64, seed *int64) (int64, error)
	StartGame(gameID int64) error
}

// Service queues players per stakes+size pool and forms a table as soon as
// a pool fills. Forming and starting the game happens inline with the
// filling Join call.
type Service struct {
	repo      Repo
	games     GameStarter
	notifier  Notifier
	playerTTL int // seconds before an idle queue entry expires
}

func NewService(repo Repo, games GameStarter, notifier Notifier, playerTTL int) *Service {
	return &Service{repo: repo, games: games, notifier: notifier, playerTTL: playerTTL}
}

// Join enqueues the player and tries to form a table. Returns the table
// when one formed, or queued=true while waiting.
func (s *Service) Join(ctx context.Context, req JoinRequest) (*Table, bool, error) {
	if req.TableSize <= 1 {
		return nil, false, errors.New("invalid tableSize")
	}

	if err := s.repo.Enqueue(ctx, req.Stakes, req.TableSize, req.PlayerID, s.playerTTL); err != nil {
		return nil, false, err
	}

	cnt, err := s.repo.Count(ctx, req.Stakes, req.TableSize)
	if err != nil {
		return nil, false, err
	}
	if int(cnt) < req.TableSize {
		return nil, true, nil
	}

	ids, err := s.repo.PopN(ctx, req.Stakes, req.TableSize, req.TableSize)
	if err != nil {
		return nil, false, err
	}
	if len(ids) < req.TableSize {
		// lost the race with a concurrent Join; stay queued
		return nil, true, nil
	}

	gameID, err := s.games.CreateGame(ids, nil)
	if err != nil {
		return nil, false, err
	}

	tbl := &Table{
		ID:        uuid.NewString(),
		Stakes:    req.Stakes,
		TableSize: req.TableSize,
		Players:   ids,
		GameID:    gameID,
		CreatedAt: time.Now(),
	}

	s.notifier.BroadcastToPlayers(ids, websocket.OutgoingMessage{
		Event: "matched",
		Data: map[string]any{
			"tableId":   tbl.ID,
			"gameId":    gameID,
			"stakes":    tbl.Stakes,
			"tableSize": tbl.TableSize,
			"players":   ids,
		},
	})

	if err := s.games.StartGame(gameID); err != nil {
		log.Error("formed table failed to start", "game", gameID, "err", err)
		return nil, false, err
	}
	log.Info("table formed", "table", tbl.ID, "game", gameID, "players", ids)

	return tbl, false, nil
}

// Cancel removes the player from their queue, if any.
func (s *Service) Cancel(ctx context.Context, playerID int64) error {
	return s.repo.Remove(ctx, playerID)
}
