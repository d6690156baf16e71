package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/middleware"
	"peduli-kasih/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	worker, tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrAccountInactive) {
			return middleware.Unauthorized(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"worker": worker,
		"tokens": tokens,
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return middleware.BadRequest("Refresh token is required")
	}

	tokens, err := h.authService.RefreshToken(c.Context(), input.RefreshToken)
	if err != nil {
		return middleware.Unauthorized("Invalid or expired refresh token")
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return middleware.BadRequest("Refresh token is required")
	}

	if err := h.authService.Logout(c.Context(), input.RefreshToken); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	worker := middleware.GetCurrentWorker(c)
	if worker == nil {
		return middleware.Unauthorized("Worker not authenticated")
	}
	return c.Status(fiber.StatusOK).JSON(worker)
}
