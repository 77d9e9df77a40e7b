package routes

import (
	"groupadmin/server/internal/handlers"
	"groupadmin/server/internal/middleware"
	ws "groupadmin/server/internal/websocket"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything the routes dispatch to
type Handlers struct {
	Auth   *handlers.AuthHandler
	Groups *handlers.GroupHandler
	Hub    *ws.Hub
}

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, h Handlers) {
	// API v1 group
	api := app.Group("/api/v1")

	// Health check (public)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Group admin API is running",
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", middleware.StrictRateLimiter(), h.Auth.Login)
	auth.Post("/logout", middleware.AuthMiddleware, h.Auth.Logout)
	auth.Get("/me", middleware.AuthMiddleware, h.Auth.GetMe)

	// Group routes (protected)
	groups := api.Group("/groups", middleware.AuthMiddleware)
	groups.Get("/", middleware.RelaxedRateLimiter(), h.Groups.ListGroups)
	groups.Post("/", middleware.ModerateRateLimiter(), h.Groups.CreateGroup)
	groups.Delete("/", middleware.ModerateRateLimiter(), h.Groups.RemoveGroups)
	groups.Get("/:groupId", h.Groups.GetGroup)
	groups.Put("/:groupId", middleware.ModerateRateLimiter(), h.Groups.UpdateGroup)
	groups.Put("/:groupId/disabled", middleware.ModerateRateLimiter(), h.Groups.SetDisabled)
	groups.Put("/:groupId/mute", middleware.ModerateRateLimiter(), h.Groups.SetMute)

	// WebSocket route (protected)
	if h.Hub != nil {
		api.Get("/ws", middleware.AuthMiddleware, handlers.WebSocketUpgrade, websocket.New(handlers.WebSocketHandler(h.Hub)))
		api.Get("/ws/stats", middleware.AuthMiddleware, handlers.WebSocketStats(h.Hub))
	}
}
