package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/supply"
)

type SupplyHandler struct {
	supplyService supply.Service
}

func NewSupplyHandler(supplyService supply.Service) *SupplyHandler {
	return &SupplyHandler{supplyService: supplyService}
}

func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateSupplyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Unit == "" {
		return middleware.BadRequest("Name and unit are required")
	}

	created, err := h.supplyService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *SupplyHandler) Get(c *fiber.Ctx) error {
	supplyID, err := uuid.Parse(c.Params("supplyId"))
	if err != nil {
		return middleware.BadRequest("Invalid supply ID")
	}

	found, err := h.supplyService.GetByID(c.Context(), supplyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *SupplyHandler) List(c *fiber.Ctx) error {
	result, err := h.supplyService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *SupplyHandler) Update(c *fiber.Ctx) error {
	supplyID, err := uuid.Parse(c.Params("supplyId"))
	if err != nil {
		return middleware.BadRequest("Invalid supply ID")
	}

	var input domain.UpdateSupplyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.supplyService.Update(c.Context(), supplyID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *SupplyHandler) Delete(c *fiber.Ctx) error {
	supplyID, err := uuid.Parse(c.Params("supplyId"))
	if err != nil {
		return middleware.BadRequest("Invalid supply ID")
	}

	if err := h.supplyService.Delete(c.Context(), supplyID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Supply deleted"})
}
