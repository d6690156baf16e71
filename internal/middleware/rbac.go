package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole passes when the authenticated worker's role grants at least
// the given role (worker < supervisor < admin).
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		worker := GetCurrentWorker(c)
		if worker == nil {
			return Unauthorized("Worker not found")
		}

		if !worker.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func GetCurrentWorkerRole(c *fiber.Ctx) string {
	worker := GetCurrentWorker(c)
	if worker == nil {
		return ""
	}
	return worker.Role
}
