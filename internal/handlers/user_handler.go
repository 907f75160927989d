package handlers

import (
	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the account behind the current session.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, ok := sessionUser(c)
	if !ok {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user.ToResponse()})
}

type UpdateProfileRequest struct {
	UserID uint `json:"userId"`
	service.UpdateProfileInput
}

// UpdateProfile changes the caller's own name and/or password.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	userID, err := bodyUserID(c, req.UserID)
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.UpdateProfile(userID, req.UpdateProfileInput)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.ToResponse(),
	})
}
