package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := &Client{ID: "a", Username: "root", Hub: hub, Send: make(chan []byte, 1)}
	second := &Client{ID: "b", Username: "root", Hub: hub, Send: make(chan []byte, 1)}
	hub.Register <- first
	hub.Register <- second

	require.Eventually(t, func() bool { return hub.GetOnlineCount() == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"root"}, hub.GetOnlineAdmins())

	hub.Broadcast(NewMessage(EventGroupRemoved, RemovedPayload{IDs: []string{"g1"}, By: "root"}))

	for _, c := range []*Client{first, second} {
		select {
		case data := <-c.Send:
			var msg struct {
				Type    EventType      `json:"type"`
				Payload RemovedPayload `json:"payload"`
			}
			require.NoError(t, json.Unmarshal(data, &msg))
			assert.Equal(t, EventGroupRemoved, msg.Type)
			assert.Equal(t, []string{"g1"}, msg.Payload.IDs)
		case <-time.After(time.Second):
			t.Fatalf("client %s received nothing", c.ID)
		}
	}

	hub.Unregister <- first
	require.Eventually(t, func() bool { return hub.GetOnlineCount() == 1 }, time.Second, 10*time.Millisecond)

	_, open := <-first.Send
	assert.False(t, open)
}

func TestHubBroadcastSkipsFullClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{ID: "slow", Username: "root", Hub: hub, Send: make(chan []byte)}
	hub.Register <- slow
	require.Eventually(t, func() bool { return hub.GetOnlineCount() == 1 }, time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(NewMessage(EventGroupUpdated, nil))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full client")
	}
}
