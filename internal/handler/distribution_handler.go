package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/distribution"
)

type DistributionHandler struct {
	distributionService distribution.Service
}

func NewDistributionHandler(distributionService distribution.Service) *DistributionHandler {
	return &DistributionHandler{distributionService: distributionService}
}

func (h *DistributionHandler) Create(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	var input domain.CreateBatchInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.DistributionDate.IsZero() {
		return middleware.BadRequest("distribution_date is required")
	}

	batch, err := h.distributionService.CreateBatch(c.Context(), workerID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(batch)
}

func (h *DistributionHandler) Get(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return middleware.BadRequest("Invalid batch ID")
	}

	batch, err := h.distributionService.GetByID(c.Context(), batchID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(batch)
}

func (h *DistributionHandler) List(c *fiber.Ctx) error {
	var status *domain.BatchStatus
	if s := c.Query("status"); s != "" {
		st := domain.BatchStatus(s)
		status = &st
	}

	result, err := h.distributionService.List(c.Context(), status, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *DistributionHandler) ListNeeds(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return middleware.BadRequest("Invalid batch ID")
	}

	needs, err := h.distributionService.ListNeedsInBatch(c.Context(), batchID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(needs)
}

func (h *DistributionHandler) CollectNeed(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return middleware.BadRequest("Invalid batch ID")
	}

	var input domain.CollectNeedInput
	if err := c.BodyParser(&input); err != nil || input.NeedID == uuid.Nil {
		return middleware.BadRequest("need_id is required")
	}

	if err := h.distributionService.CollectNeed(c.Context(), batchID, input.NeedID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Supply marked as collected"})
}

func (h *DistributionHandler) Approve(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return middleware.BadRequest("Invalid batch ID")
	}

	if err := h.distributionService.Approve(c.Context(), batchID, workerID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Batch approved"})
}

func (h *DistributionHandler) Reject(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return middleware.BadRequest("Invalid batch ID")
	}

	var input domain.RejectBatchInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	rolledBack, err := h.distributionService.Reject(c.Context(), batchID, workerID, input.Reason)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":           "Batch rejected",
		"needs_rolled_back": rolledBack,
	})
}
