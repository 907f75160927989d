package handlers

import (
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	stats, err := h.statsService.DashboardStats(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatsHandler) Detailed(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	stats, err := h.statsService.DetailedStats(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
