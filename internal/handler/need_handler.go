package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/pkg/i18n"
	"peduli-kasih/internal/service/needstatus"
)

type NeedHandler struct {
	needService needstatus.Service
}

func NewNeedHandler(needService needstatus.Service) *NeedHandler {
	return &NeedHandler{needService: needService}
}

func (h *NeedHandler) Create(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	var input domain.CreateNeedInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Quantity < 1 {
		return middleware.BadRequest("Quantity must be at least 1")
	}

	need, err := h.needService.Create(c.Context(), workerID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(need)
}

func (h *NeedHandler) Get(c *fiber.Ctx) error {
	needID, err := uuid.Parse(c.Params("needId"))
	if err != nil {
		return middleware.BadRequest("Invalid need ID")
	}

	need, err := h.needService.GetByID(c.Context(), needID)
	if err != nil {
		return err
	}

	need.StatusLabel = i18n.Translate(c.Query("lang", "id"), string(need.Status))
	return c.Status(fiber.StatusOK).JSON(need)
}

func (h *NeedHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.NeedStatus
	if s := c.Query("status"); s != "" {
		st := domain.NormalizeNeedStatus(s)
		status = &st
	}

	result, err := h.needService.List(c.Context(), status, params)
	if err != nil {
		return err
	}

	lang := c.Query("lang", "id")
	for i := range result.Data {
		result.Data[i].StatusLabel = i18n.Translate(lang, string(result.Data[i].Status))
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NeedHandler) Approve(c *fiber.Ctx) error {
	return h.transition(c, h.needService.Approve)
}

func (h *NeedHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.needService.Reject)
}

func (h *NeedHandler) Confirm(c *fiber.Ctx) error {
	return h.transition(c, h.needService.Confirm)
}

func (h *NeedHandler) SupervisorApprove(c *fiber.Ctx) error {
	return h.transition(c, h.needService.SupervisorApprove)
}

func (h *NeedHandler) SupervisorReject(c *fiber.Ctx) error {
	return h.transition(c, h.needService.SupervisorReject)
}

func (h *NeedHandler) transition(c *fiber.Ctx, op func(ctx context.Context, id uuid.UUID) error) error {
	needID, err := uuid.Parse(c.Params("needId"))
	if err != nil {
		return middleware.BadRequest("Invalid need ID")
	}

	if err := op(c.Context(), needID); err != nil {
		return err
	}

	need, err := h.needService.GetByID(c.Context(), needID)
	if err != nil {
		return err
	}

	need.StatusLabel = i18n.Translate(c.Query("lang", "id"), string(need.Status))
	return c.Status(fiber.StatusOK).JSON(need)
}

func (h *NeedHandler) AddMatch(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	needID, err := uuid.Parse(c.Params("needId"))
	if err != nil {
		return middleware.BadRequest("Invalid need ID")
	}

	var input domain.CreateMatchInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	input.NeedID = needID

	match, err := h.needService.AddMatch(c.Context(), workerID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(match)
}

func (h *NeedHandler) ListMatches(c *fiber.Ctx) error {
	needID, err := uuid.Parse(c.Params("needId"))
	if err != nil {
		return middleware.BadRequest("Invalid need ID")
	}

	matches, err := h.needService.ListMatches(c.Context(), needID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(matches)
}
