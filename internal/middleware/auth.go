package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/service/auth"
)

const (
	WorkerContextKey   = "worker"
	WorkerIDContextKey = "worker_id"
)

func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			})
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
		}

		worker, err := authService.GetWorkerByID(c.Context(), claims.WorkerID)
		if err != nil || worker == nil || !worker.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Worker not found or inactive",
			})
		}

		c.Locals(WorkerContextKey, worker)
		c.Locals(WorkerIDContextKey, worker.ID)

		return c.Next()
	}
}

func GetCurrentWorker(c *fiber.Ctx) *domain.Worker {
	worker, ok := c.Locals(WorkerContextKey).(*domain.Worker)
	if !ok {
		return nil
	}
	return worker
}

func GetCurrentWorkerID(c *fiber.Ctx) uuid.UUID {
	workerID, ok := c.Locals(WorkerIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return workerID
}
