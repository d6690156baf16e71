package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/media"
)

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	ownerType := domain.MediaOwnerType(c.FormValue("owner_type"))
	if ownerType != domain.MediaOwnerActivity && ownerType != domain.MediaOwnerCase {
		return middleware.BadRequest("owner_type must be ACTIVITY or CASE")
	}

	ownerID, err := uuid.Parse(c.FormValue("owner_id"))
	if err != nil {
		return middleware.BadRequest("Invalid owner_id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Cannot read uploaded file")
	}
	defer file.Close()

	uploaded, err := h.mediaService.Upload(
		c.Context(),
		workerID,
		ownerType,
		ownerID,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(uploaded)
}

func (h *MediaHandler) ListByOwner(c *fiber.Ctx) error {
	ownerType := domain.MediaOwnerType(c.Query("owner_type"))
	if ownerType != domain.MediaOwnerActivity && ownerType != domain.MediaOwnerCase {
		return middleware.BadRequest("owner_type must be ACTIVITY or CASE")
	}

	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		return middleware.BadRequest("Invalid owner_id")
	}

	items, err := h.mediaService.ListByOwner(c.Context(), ownerType, ownerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	mediaID, err := uuid.Parse(c.Params("mediaId"))
	if err != nil {
		return middleware.BadRequest("Invalid media ID")
	}

	if err := h.mediaService.Delete(c.Context(), mediaID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Media deleted"})
}
