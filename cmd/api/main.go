package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/notifyhub/backend/internal/config"
	"github.com/notifyhub/backend/internal/database"
	"github.com/notifyhub/backend/internal/handlers"
	"github.com/notifyhub/backend/internal/middleware"
	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/repository"
	"github.com/notifyhub/backend/internal/services"
)

func main() {
	// Load .env if present (local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Load configuration
	cfg := config.Load()

	// Connect to database (and Redis when configured)
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := models.AutoMigrate(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire repositories and services
	tenantRepo := repository.NewTenantRepository(database.DB)
	applicationRepo := repository.NewApplicationRepository(database.DB)
	templateRepo := repository.NewTemplateRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.DB)
	historyRepo := repository.NewHistoryRepository(database.DB)

	tenantService := services.NewTenantService(tenantRepo)
	applicationService := services.NewApplicationService(applicationRepo)
	templateService := services.NewTemplateService(templateRepo)
	notificationService := services.NewNotificationService(notificationRepo, historyRepo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "NotifyHub API v1.0",
		ServerHeader: "NotifyHub",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(compress.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "notifyhub-api",
		})
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	templateHandler := handlers.NewTemplateHandler(templateService)

	// API routes
	api := app.Group("/api")

	// Apply rate limiting to API routes (100 requests per minute)
	api.Use(middleware.RateLimiter(100, 1*time.Minute))

	// Public routes
	api.Post("/auth/login", authHandler.Login)

	auth := middleware.AuthRequired(cfg)

	// Tenant routes (no update endpoint; tenants are created and removed)
	tenants := api.Group("/tenants")
	tenants.Get("/", tenantHandler.GetAll)
	tenants.Get("/code/:code", tenantHandler.GetByCode)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Post("/", auth, tenantHandler.Create)
	tenants.Delete("/:id", auth, tenantHandler.Delete)

	// Notification routes
	notifications := api.Group("/notifications")
	notifications.Get("/tenant/:tenantId", notificationHandler.GetByTenant)
	notifications.Get("/tenant/:tenantId/active", notificationHandler.GetActiveByTenant)
	notifications.Get("/:id/history", notificationHandler.GetHistory)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Post("/", auth, notificationHandler.Create)
	notifications.Put("/:id", auth, notificationHandler.Update)
	notifications.Delete("/:id", auth, notificationHandler.Delete)

	// Application routes
	applications := api.Group("/applications")
	applications.Get("/tenant/:tenantId/code/:code", applicationHandler.GetByTenantAndCode)
	applications.Get("/tenant/:tenantId", applicationHandler.GetByTenant)
	applications.Get("/:id", applicationHandler.GetByID)
	applications.Post("/", auth, applicationHandler.Create)
	applications.Put("/:id", auth, applicationHandler.Update)
	applications.Delete("/:id", auth, applicationHandler.Delete)

	// Template routes
	templates := api.Group("/templates")
	templates.Get("/tenant/:tenantId/code/:code", templateHandler.GetByTenantAndCode)
	templates.Get("/tenant/:tenantId", templateHandler.GetByTenant)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Post("/", auth, templateHandler.Create)
	templates.Put("/:id", auth, templateHandler.Update)
	templates.Delete("/:id", auth, templateHandler.Delete)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		app.Shutdown()
	}()

	// Start server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	log.Printf("Starting NotifyHub API server on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
