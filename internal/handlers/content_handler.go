package handlers

import (
	"strconv"
	"time"

	"github.com/dursunaydin1/refik-app/internal/calendar"
	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	contentService *service.ContentService
	calendar       calendar.Calendar
	now            func() time.Time
}

func NewContentHandler(contentService *service.ContentService, cal calendar.Calendar) *ContentHandler {
	return &ContentHandler{contentService: contentService, calendar: cal, now: time.Now}
}

func (h *ContentHandler) Today(c *fiber.Ctx) error {
	content, err := h.contentService.Today(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(content)
}

func (h *ContentHandler) Day(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil {
		return httpx.BadRequest(c, "invalid_day", "day must be a number")
	}

	content, err := h.contentService.UnitsForDay(c.UserContext(), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(content)
}

// Campaign reports where the reading window stands right now.
func (h *ContentHandler) Campaign(c *fiber.Ctx) error {
	now := h.now()
	day := h.calendar.DayIndex(now)
	return c.JSON(fiber.Map{
		"status":         h.calendar.Status(now),
		"currentDay":     day,
		"daysUntilStart": h.calendar.DaysUntilStart(now),
		"units":          h.calendar.UnitsForDay(day),
		"startsAt":       h.calendar.Start,
		"endsAt":         h.calendar.End,
	})
}
