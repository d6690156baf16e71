package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/worker"
)

type WorkerHandler struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateWorkerInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return middleware.BadRequest("Email, password, and full name are required")
	}

	created, err := h.workerService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, worker.ErrEmailExists) {
			return middleware.Conflict("A worker with this email already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *WorkerHandler) Get(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return middleware.BadRequest("Invalid worker ID")
	}

	found, err := h.workerService.GetByID(c.Context(), workerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *WorkerHandler) List(c *fiber.Ctx) error {
	result, err := h.workerService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *WorkerHandler) SetActive(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return middleware.BadRequest("Invalid worker ID")
	}

	var input struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil || input.IsActive == nil {
		return middleware.BadRequest("is_active is required")
	}

	if err := h.workerService.SetActive(c.Context(), workerID, *input.IsActive); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Worker updated"})
}
