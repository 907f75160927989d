package handlers

import (
	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	authService *service.AuthService
}

func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// Invite creates a pending account and returns the activation link for it.
func (h *AdminHandler) Invite(c *fiber.Ctx) error {
	var input service.InviteInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if input.Name == "" || input.Phone == "" {
		return httpx.BadRequest(c, "missing_fields", "Name and phone are required")
	}

	link, err := h.authService.Invite(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"inviteLink": link,
	})
}
