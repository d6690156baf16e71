package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"peduli-kasih/internal/config"
	"peduli-kasih/internal/handler"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/pkg/i18n"
	"peduli-kasih/internal/repository"
	"peduli-kasih/internal/service"
	"peduli-kasih/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	if err := i18n.LoadTranslations("locales"); err != nil {
		log.Printf("Warning: Failed to load translations: %v (status labels fall back to raw codes)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/logout", h.Auth.Logout)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/auth/me", h.Auth.Me)

	workers := protected.Group("/workers", middleware.RequireRole("admin"))
	workers.Post("/", h.Worker.Create)
	workers.Get("/", h.Worker.List)
	workers.Get("/:workerId", h.Worker.Get)
	workers.Patch("/:workerId/active", h.Worker.SetActive)

	casesGroup := protected.Group("/cases")
	casesGroup.Post("/", h.Case.Create)
	casesGroup.Get("/", h.Case.List)
	casesGroup.Get("/:caseId", h.Case.Get)
	casesGroup.Put("/:caseId", h.Case.Update)
	casesGroup.Get("/:caseId/needs", h.Case.ListNeeds)

	supplies := protected.Group("/supplies")
	supplies.Post("/", middleware.RequireRole("supervisor"), h.Supply.Create)
	supplies.Get("/", h.Supply.List)
	supplies.Get("/:supplyId", h.Supply.Get)
	supplies.Put("/:supplyId", middleware.RequireRole("supervisor"), h.Supply.Update)
	supplies.Delete("/:supplyId", middleware.RequireRole("supervisor"), h.Supply.Delete)

	needs := protected.Group("/needs")
	needs.Post("/", h.Need.Create)
	needs.Get("/", h.Need.List)
	needs.Get("/:needId", h.Need.Get)
	needs.Post("/:needId/approve", middleware.RequireRole("supervisor"), h.Need.Approve)
	needs.Post("/:needId/reject", middleware.RequireRole("supervisor"), h.Need.Reject)
	needs.Post("/:needId/confirm", h.Need.Confirm)
	needs.Post("/:needId/supervisor-approve", middleware.RequireRole("supervisor"), h.Need.SupervisorApprove)
	needs.Post("/:needId/supervisor-reject", middleware.RequireRole("supervisor"), h.Need.SupervisorReject)
	needs.Post("/:needId/matches", h.Need.AddMatch)
	needs.Get("/:needId/matches", h.Need.ListMatches)

	distributions := protected.Group("/distributions")
	distributions.Post("/", h.Distribution.Create)
	distributions.Get("/", h.Distribution.List)
	distributions.Get("/:batchId", h.Distribution.Get)
	distributions.Get("/:batchId/needs", h.Distribution.ListNeeds)
	distributions.Post("/:batchId/collect", h.Distribution.CollectNeed)
	distributions.Post("/:batchId/approve", middleware.RequireRole("supervisor"), h.Distribution.Approve)
	distributions.Post("/:batchId/reject", middleware.RequireRole("supervisor"), h.Distribution.Reject)

	activities := protected.Group("/activities")
	activities.Post("/", h.Activity.Create)
	activities.Get("/", h.Activity.List)
	activities.Get("/:activityId", h.Activity.Get)
	activities.Put("/:activityId", h.Activity.Update)
	activities.Post("/:activityId/registrations", h.Activity.Register)
	activities.Get("/:activityId/registrations", h.Activity.ListRegistrations)

	registrations := protected.Group("/registrations")
	registrations.Patch("/:registrationId/status", h.Activity.SetRegistrationStatus)

	mediaGroup := protected.Group("/media")
	mediaGroup.Post("/", h.Media.Upload)
	mediaGroup.Get("/", h.Media.ListByOwner)
	mediaGroup.Delete("/:mediaId", middleware.RequireRole("supervisor"), h.Media.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.CountUnread)
	notifications.Patch("/:notificationId/read", h.Notification.MarkAsRead)
	notifications.Post("/read-all", h.Notification.MarkAllAsRead)

	protected.Get("/dashboard/stats", middleware.RequireRole("supervisor"), h.Dashboard.Stats)
}
