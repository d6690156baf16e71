package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/notification"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)
	unreadOnly := c.QueryBool("unread_only", false)

	result, err := h.notificationService.ListByWorker(c.Context(), workerID, unreadOnly, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	notificationID, err := uuid.Parse(c.Params("notificationId"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notificationService.MarkAsRead(c.Context(), notificationID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	if err := h.notificationService.MarkAllAsRead(c.Context(), workerID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) CountUnread(c *fiber.Ctx) error {
	workerID := middleware.GetCurrentWorkerID(c)

	count, err := h.notificationService.CountUnread(c.Context(), workerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"unread": count})
}
