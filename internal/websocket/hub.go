package websocket

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub maintains the set of connected consoles and broadcasts group events
type Hub struct {
	// Registered clients mapped by connection ID
	Clients map[string]*Client

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Clients[client.ID] = client

	logrus.WithFields(logrus.Fields{
		"conn":     client.ID,
		"username": client.Username,
	}).Info("Console connected")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.Clients[client.ID]; ok {
		delete(h.Clients, client.ID)
		close(client.Send)

		logrus.WithFields(logrus.Fields{
			"conn":     client.ID,
			"username": client.Username,
		}).Info("Console disconnected")
	}
}

// Broadcast sends a message to every connected console
func (h *Hub) Broadcast(message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal message")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
			logrus.WithField("conn", id).Warn("Failed to send message to console")
		}
	}
}

// GetOnlineCount returns the number of currently connected consoles
func (h *Hub) GetOnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.Clients)
}

// GetOnlineAdmins returns the usernames behind the current connections
func (h *Hub) GetOnlineAdmins() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]bool, len(h.Clients))
	names := make([]string, 0, len(h.Clients))
	for _, client := range h.Clients {
		if !seen[client.Username] {
			seen[client.Username] = true
			names = append(names, client.Username)
		}
	}

	return names
}
