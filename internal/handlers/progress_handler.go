package handlers

import (
	"strconv"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

type RecordProgressRequest struct {
	UserID uint `json:"userId"`
	service.RecordProgressInput
}

func (h *ProgressHandler) Record(c *fiber.Ctx) error {
	var req RecordProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	userID, err := bodyUserID(c, req.UserID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.progressService.RecordProgress(userID, req.RecordProgressInput)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":        true,
		"progress":       result.Progress.ToResponse(),
		"hatimCompleted": result.HatimCompleted,
	})
}

// Get returns the entry for ?userId=&day=, or progress:null when the user
// has not touched that day.
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return respondError(c, err)
	}
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		return httpx.BadRequest(c, "invalid_day", "day must be a number")
	}

	progress, err := h.progressService.GetProgress(userID, day)
	if err != nil {
		return respondError(c, err)
	}
	if progress == nil {
		return c.JSON(fiber.Map{"progress": nil})
	}
	return c.JSON(fiber.Map{"progress": progress.ToResponse()})
}
