package lobby

import "time"

// JoinRequest asks to be seated at a table of the given stakes and size.
// The player id comes from the authenticated session, not the body.
type JoinRequest struct {
	PlayerID  int64  `json:"-"`
	Stakes    string `json:"stakes" binding:"required"`    // e.g. "cash-10-20"
	TableSize int    `json:"tableSize" binding:"required"` // 2/6/9
}

// JoinResponse reports queue state; when a table formed it carries the
// created game id and the seat list.
type JoinResponse struct {
	Queued    bool    `json:"queued"`
	TableID   string  `json:"tableId,omitempty"`
	GameID    int64   `json:"gameId,omitempty"`
	Players   []int64 `json:"players,omitempty"`
	Stakes    string  `json:"stakes"`
	TableSize int     `json:"tableSize"`
}

// Table is a formed group of players, ready to become a game.
type Table struct {
	ID        string
	Stakes    string
	TableSize int
	Players   []int64
	GameID    int64
	CreatedAt time.Time
}
