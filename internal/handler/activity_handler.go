package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/activity"
	"peduli-kasih/internal/service/registration"
)

type ActivityHandler struct {
	activityService     activity.Service
	registrationService registration.Service
}

func NewActivityHandler(activityService activity.Service, registrationService registration.Service) *ActivityHandler {
	return &ActivityHandler{
		activityService:     activityService,
		registrationService: registrationService,
	}
}

func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	var input domain.CreateActivityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" {
		return middleware.BadRequest("Name is required")
	}

	created, err := h.activityService.Create(c.Context(), workerID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("activityId"))
	if err != nil {
		return middleware.BadRequest("Invalid activity ID")
	}

	found, err := h.activityService.GetByID(c.Context(), activityID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	result, err := h.activityService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("activityId"))
	if err != nil {
		return middleware.BadRequest("Invalid activity ID")
	}

	var input domain.CreateActivityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.activityService.Update(c.Context(), activityID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ActivityHandler) Register(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("activityId"))
	if err != nil {
		return middleware.BadRequest("Invalid activity ID")
	}

	var input domain.CreateRegistrationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	input.ActivityID = activityID

	if input.RegistrantType == domain.RegistrantCase && input.CaseID == nil {
		return middleware.BadRequest("case_id is required for case registrations")
	}
	if input.NumberOfCompanions < 0 {
		return middleware.BadRequest("number_of_companions cannot be negative")
	}

	reg, err := h.registrationService.Register(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(reg)
}

func (h *ActivityHandler) ListRegistrations(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("activityId"))
	if err != nil {
		return middleware.BadRequest("Invalid activity ID")
	}

	regs, err := h.registrationService.ListByActivity(c.Context(), activityID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(regs)
}

func (h *ActivityHandler) SetRegistrationStatus(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return middleware.BadRequest("Invalid registration ID")
	}

	var input domain.SetRegistrationStatusInput
	if err := c.BodyParser(&input); err != nil || input.Status == "" {
		return middleware.BadRequest("status is required")
	}

	delta, err := h.registrationService.SetStatus(c.Context(), registrationID, domain.NormalizeRegistrationStatus(input.Status))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":           "Registration updated",
		"participant_delta": delta,
	})
}
