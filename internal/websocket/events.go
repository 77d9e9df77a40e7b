package websocket

import (
	"time"

	"groupadmin/server/internal/models"
)

// EventType represents different WebSocket event types
type EventType string

const (
	// Connection events
	EventConnect EventType = "connect"

	// Group events
	EventGroupCreated     EventType = "group_created"
	EventGroupUpdated     EventType = "group_updated"
	EventGroupRemoved     EventType = "group_removed"
	EventGroupFlagChanged EventType = "group_flag_changed"

	// Error events
	EventError EventType = "error"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// GroupPayload carries the group a created/updated event refers to
type GroupPayload struct {
	Group models.Group `json:"group"`
	By    string       `json:"by"`
}

// RemovedPayload lists the ids removed by a batch delete
type RemovedPayload struct {
	IDs []string `json:"ids"`
	By  string   `json:"by"`
}

// FlagPayload represents a moderation flag change
type FlagPayload struct {
	GroupID string      `json:"groupId"`
	Flag    models.Flag `json:"flag"`
	Value   bool        `json:"value"`
	By      string      `json:"by"`
}

// ErrorPayload represents error event payload
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewMessage wraps a payload in a timestamped envelope
func NewMessage(eventType EventType, payload interface{}) WSMessage {
	return WSMessage{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}
