package registry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"RiverPoker/internal/game/engine"
)

// Handler exposes game state and actions over HTTP. Events still flow over
// the websocket; these endpoints exist for polling clients and debugging.
type Handler struct {
	reg *Registry
}

func NewHandler(reg *Registry) *Handler {
	return &Handler{reg: reg}
}

type actionRequest struct {
	Action engine.ActionKind `json:"action" binding:"required"`
	Amount int64             `json:"amount"`
}

// GET /games/:id
func (h *Handler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad game id"})
		return
	}
	view, err := h.reg.Game(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /games/:id/actions  body: {action, amount}
func (h *Handler) PostAction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad game id"})
		return
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playerID := c.GetInt64("playerID")
	err = h.reg.SubmitAction(id, playerID, engine.Action{Kind: req.Action, Amount: req.Amount})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		// turn order, short stacks and the like: the table is unchanged
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	}
}
