package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type SubscribeRequest struct {
	UserID       uint                      `json:"userId"`
	Subscription service.SubscriptionInput `json:"subscription"`
}

func (h *NotificationHandler) Subscribe(c *fiber.Ctx) error {
	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	userID, err := bodyUserID(c, req.UserID)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.notificationService.Subscribe(userID, req.Subscription); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

func (h *NotificationHandler) Unsubscribe(c *fiber.Ctx) error {
	userID, ok := sessionUser(c)
	if !ok {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}
	var req UnsubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	if err := h.notificationService.Unsubscribe(userID, req.Endpoint); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// SendTarget accepts either a numeric user id or the string "all".
type SendTarget struct {
	All    bool
	UserID uint
}

func (t *SendTarget) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	if raw == "all" {
		t.All = true
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return errInvalidUserID
	}
	t.UserID = uint(id)
	return nil
}

type SendRequest struct {
	UserID SendTarget `json:"userId"`
	service.Notification
}

// Send pushes a notification to one user or, with userId "all", to every
// subscription.
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if !req.UserID.All && req.UserID.UserID == 0 {
		return respondError(c, errMissingUserID)
	}
	if req.Title == "" || req.Body == "" {
		return httpx.BadRequest(c, "missing_fields", "Title and body are required")
	}

	target := service.Target{All: req.UserID.All, UserID: req.UserID.UserID}
	result, err := h.notificationService.Broadcast(c.UserContext(), target, req.Notification)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"sent":    result.Sent,
		"total":   result.Total,
	})
}

// Reminders is the cron entry point for the daily reading reminder.
func (h *NotificationHandler) Reminders(c *fiber.Ctx) error {
	result, err := h.notificationService.Remind(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"remindersSent": result.RemindersSent,
		"targetUsers":   result.TargetUsers,
	})
}
