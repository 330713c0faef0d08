package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	c1 := &Client{PlayerID: 1, Send: make(chan OutgoingMessage, 1), Hub: hub}
	c2 := &Client{PlayerID: 2, Send: make(chan OutgoingMessage, 1), Hub: hub}

	hub.register <- c1
	hub.register <- c2

	msg := OutgoingMessage{
		Event: "deal_flop",
		Data:  map[string]interface{}{"gameId": int64(7)},
	}
	hub.BroadcastToPlayers([]int64{1, 2}, msg)

	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, "deal_flop", (<-c1.Send).Event)
	assert.Equal(t, "deal_flop", (<-c2.Send).Event)
}

func TestHubSendToPlayer(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	c1 := &Client{PlayerID: 1, Send: make(chan OutgoingMessage, 1), Hub: hub}
	c2 := &Client{PlayerID: 2, Send: make(chan OutgoingMessage, 1), Hub: hub}

	hub.register <- c1
	hub.register <- c2

	hub.SendToPlayer(1, OutgoingMessage{Event: "deal_hole", Data: "private"})

	time.Sleep(20 * time.Millisecond)

	received := <-c1.Send
	assert.Equal(t, "deal_hole", received.Event)
	assert.Equal(t, "private", received.Data)

	select {
	case <-c2.Send:
		assert.Fail(t, "player 2 should not receive anything")
	default:
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	c := &Client{PlayerID: 9, Send: make(chan OutgoingMessage, 1), Hub: hub}

	hub.register <- c
	time.Sleep(10 * time.Millisecond)

	if _, ok := hub.ClientByPlayer(9); !ok {
		t.Fatalf("client should be registered")
	}

	hub.unregister <- c
	time.Sleep(10 * time.Millisecond)

	if _, ok := hub.ClientByPlayer(9); ok {
		t.Fatalf("client should be removed after unregister")
	}
}

func TestHubSkipsDisconnectedPlayers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	c1 := &Client{PlayerID: 1, Send: make(chan OutgoingMessage, 1), Hub: hub}
	hub.register <- c1

	// player 2 never connected; the broadcast must not block
	hub.BroadcastToPlayers([]int64{1, 2}, OutgoingMessage{Event: "round_over"})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "round_over", (<-c1.Send).Event)
}

func TestHubIncomingDispatch(t *testing.T) {
	hub := NewHub()
	got := make(chan IncomingMessage, 1)
	hub.OnIncoming = func(msg IncomingMessage) { got <- msg }
	go hub.Run()
	defer hub.Close()

	hub.incoming <- IncomingMessage{From: 3, Event: "player_action"}

	select {
	case msg := <-got:
		assert.Equal(t, int64(3), msg.From)
		assert.Equal(t, "player_action", msg.Event)
	case <-time.After(time.Second):
		t.Fatalf("incoming message was not dispatched")
	}
}
