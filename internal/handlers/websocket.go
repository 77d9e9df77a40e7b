package handlers

import (
	"encoding/json"

	ws "groupadmin/server/internal/websocket"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// InitWebSocket creates the hub consoles subscribe to and starts its loop
func InitWebSocket() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	logrus.Infoln("WebSocket Hub initialized")
	return hub
}

// WebSocketUpgrade checks if the request should be upgraded to WebSocket
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}

	return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{
		"success": false,
		"error":   "WebSocket upgrade required",
	})
}

// WebSocketHandler registers a console connection with the hub
func WebSocketHandler(hub *ws.Hub) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		username, _ := c.Locals("username").(string)

		client := ws.NewClient(username, c, hub)
		hub.Register <- client

		if hello, err := json.Marshal(ws.NewMessage(ws.EventConnect, fiber.Map{"conn": client.ID})); err == nil {
			client.Send <- hello
		}

		go client.WritePump()
		client.ReadPump() // This blocks until connection closes
	}
}

// WebSocketStats returns WebSocket connection statistics
func WebSocketStats(hub *ws.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hub == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   "WebSocket hub not initialized",
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"online": hub.GetOnlineCount(),
				"admins": hub.GetOnlineAdmins(),
			},
		})
	}
}
