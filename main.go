package main

import (
	"context"

	"groupadmin/server/internal/config"
	"groupadmin/server/internal/database"
	"groupadmin/server/internal/handlers"
	"groupadmin/server/internal/models"
	"groupadmin/server/internal/routes"
	"groupadmin/server/internal/store"
	"groupadmin/server/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.SetupLogging(); err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}

	utils.SetJWTSecret(cfg.JWTSecret)
	if cfg.AdminPasswordHash == "" {
		logrus.Warn("ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}

	// Pick the group store
	var groups store.GroupStore
	if cfg.UsesMemoryStore() {
		logrus.Warn("DATABASE_URL is not set, using in-memory group store")
		groups = store.NewMemoryStore()
	} else {
		if err := database.Connect(context.Background(), cfg.DatabaseURL); err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()
		groups = store.NewPostgresStore(database.Pool)
	}

	hub := handlers.InitWebSocket()

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Group Admin API v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, routes.Handlers{
		Auth: handlers.NewAuthHandler(models.Admin{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPasswordHash,
		}),
		Groups: handlers.NewGroupHandler(groups, hub),
		Hub:    hub,
	})

	logrus.WithField("port", cfg.Port).Info("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}
