package websocket

// OutgoingMessage is the wire envelope for server-to-player events.
type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// IncomingMessage is a player-to-server message; From is stamped by the
// connection, never trusted from the payload.
type IncomingMessage struct {
	From  int64       `json:"from"`
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
