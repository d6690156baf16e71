package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/cases"
	"peduli-kasih/internal/service/needstatus"
)

type CaseHandler struct {
	caseService cases.Service
	needService needstatus.Service
}

func NewCaseHandler(caseService cases.Service, needService needstatus.Service) *CaseHandler {
	return &CaseHandler{caseService: caseService, needService: needService}
}

func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCaseInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.CaseNumber == "" || input.FullName == "" {
		return middleware.BadRequest("Case number and full name are required")
	}

	created, err := h.caseService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CaseHandler) Get(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	found, err := h.caseService.GetByID(c.Context(), caseID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *CaseHandler) List(c *fiber.Ctx) error {
	var status *domain.CaseStatus
	if s := c.Query("status"); s != "" {
		st := domain.CaseStatus(s)
		status = &st
	}

	result, err := h.caseService.List(c.Context(), status, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CaseHandler) Update(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	var input domain.UpdateCaseInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.caseService.Update(c.Context(), caseID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *CaseHandler) ListNeeds(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return middleware.BadRequest("Invalid case ID")
	}

	needs, err := h.needService.ListByCase(c.Context(), caseID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(needs)
}
