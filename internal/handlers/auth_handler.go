package handlers

import (
	"errors"
	"time"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/middleware"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
}

func NewAuthHandler(authService *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

type LoginRequest struct {
	Phone       string `json:"phone"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	phone := req.Phone
	if phone == "" {
		phone = req.PhoneNumber
	}
	if phone == "" {
		return httpx.BadRequest(c, "missing_phone", "Phone number is required")
	}

	result, err := h.authService.Login(service.LoginInput{Phone: phone, Password: req.Password})
	switch {
	case errors.Is(err, service.ErrPasswordRequired):
		return httpx.ErrorWith(c, fiber.StatusUnauthorized, "password_required", err.Error(), fiber.Map{
			"needsPassword": true,
		})
	case errors.Is(err, service.ErrNotInvited):
		return httpx.ErrorWith(c, fiber.StatusForbidden, "not_invited", err.Error(), fiber.Map{
			"status": "NOT_INVITED",
		})
	case errors.Is(err, service.ErrPendingActivation):
		return httpx.ErrorWith(c, fiber.StatusForbidden, "pending_activation", err.Error(), fiber.Map{
			"status": "PENDING",
		})
	case err != nil:
		return respondError(c, err)
	}

	h.setSession(c, result.Token, time.Now().Add(service.SessionTTL))
	return c.JSON(fiber.Map{
		"success": true,
		"user":    result.User,
		"token":   result.Token,
	})
}

type ActivateRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *AuthHandler) Activate(c *fiber.Ctx) error {
	var req ActivateRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if req.Token == "" || req.Password == "" {
		return httpx.BadRequest(c, "missing_fields", "Token and password are required")
	}

	if err := h.authService.Activate(req.Token, req.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Hesabınız aktif edildi. Artık giriş yapabilirsiniz.",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.setSession(c, "", time.Unix(0, 0))
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) setSession(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
