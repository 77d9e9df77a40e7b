package handlers

import (
	"crypto/subtle"

	"groupadmin/server/internal/middleware"
	"groupadmin/server/internal/models"
	"groupadmin/server/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler signs the configured administrator in and out
type AuthHandler struct {
	Admin models.Admin
}

// NewAuthHandler creates an auth handler for a single admin account
func NewAuthHandler(admin models.Admin) *AuthHandler {
	return &AuthHandler{Admin: admin}
}

// Login handles admin login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Username and password are required",
		})
	}

	sameUser := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Admin.Username)) == 1
	if !sameUser || !utils.CheckPassword(h.Admin.Password, req.Password) {
		logrus.WithField("username", req.Username).Warn("Failed admin login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid username or password",
		})
	}

	token, err := utils.GenerateToken(h.Admin.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate token",
		})
	}

	// Set HTTP-Only Cookie for browser clients
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
		MaxAge:   int(utils.TokenTTL.Seconds()),
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Admin.ToResponse(token),
	})
}

// GetMe returns current authenticated admin
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": models.AdminResponse{
			Username: middleware.GetUsername(c),
		},
	})
}

// Logout clears the token cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   -1, // Delete cookie
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}
