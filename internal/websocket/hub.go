package websocket

import (
	"sync"

	"github.com/charmbracelet/log"
)

// HubInterface is what the rest of the service needs from the hub.
type HubInterface interface {
	SendToPlayer(playerID int64, msg OutgoingMessage)
	BroadcastToPlayers(playerIDs []int64, msg OutgoingMessage)
	ClientByPlayer(playerID int64) (*Client, bool)
	Close()
}

// Hub owns all live connections, keyed by player id. All bookkeeping goes
// through its channels so connection churn and delivery never race.
type Hub struct {
	clients    map[int64]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastReq
	sendOne    chan sendReq
	incoming   chan IncomingMessage
	OnIncoming func(IncomingMessage)
	quit       chan struct{}
	mu         sync.RWMutex
}

type broadcastReq struct {
	PlayerIDs []int64
	Message   OutgoingMessage
}

type sendReq struct {
	PlayerID int64
	Message  OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastReq),
		sendOne:    make(chan sendReq),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	log.Debug("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.PlayerID] = c
			h.mu.Unlock()
			log.Debug("client registered", "player", c.PlayerID, "connected", len(h.clients))

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c.PlayerID]; ok {
				delete(h.clients, c.PlayerID)
				close(c.Send)
			}
			h.mu.Unlock()
			log.Debug("client unregistered", "player", c.PlayerID, "connected", len(h.clients))

		case req := <-h.broadcast:
			for _, id := range req.PlayerIDs {
				if client, ok := h.clients[id]; ok {
					select {
					case client.Send <- req.Message:
					default:
						// slow consumer, drop rather than block the hub
					}
				}
			}

		case req := <-h.sendOne:
			if client, ok := h.clients[req.PlayerID]; ok {
				select {
				case client.Send <- req.Message:
				default:
				}
			}

		case req := <-h.incoming:
			if h.OnIncoming != nil {
				h.OnIncoming(req)
			}

		case <-h.quit:
			for _, c := range h.clients {
				close(c.Send)
			}
			return
		}
	}
}

// BroadcastToPlayers queues a message for several players. Players without
// a live connection are silently skipped; delivery is best-effort.
func (h *Hub) BroadcastToPlayers(playerIDs []int64, msg OutgoingMessage) {
	h.broadcast <- broadcastReq{PlayerIDs: playerIDs, Message: msg}
}

// SendToPlayer queues a message for one player.
func (h *Hub) SendToPlayer(playerID int64, msg OutgoingMessage) {
	h.sendOne <- sendReq{PlayerID: playerID, Message: msg}
}

// ClientByPlayer looks up a live connection.
func (h *Hub) ClientByPlayer(playerID int64) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[playerID]
	return c, ok
}

func (h *Hub) Close() {
	close(h.quit)
}
