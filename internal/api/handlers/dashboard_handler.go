package handlers

import (
	"video_library_service/internal/dashboard/app"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handle channel dashboard HTTP requests
type DashboardHandler struct {
	DashboardUseCase app.DashboardUseCase
}

// NewDashboardHandler create a new DashboardHandler
func NewDashboardHandler(dashboardUseCase app.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		DashboardUseCase: dashboardUseCase,
	}
}

// Stats aggregate totals for the requester's channel
// @Summary Get channel stats
// @Description Total videos, views, likes and subscribers
// @Tags Dashboard
// @Produce json
// @Param channelId query string false "Channel ID, defaults to the requester"
// @Success 200 {object} SuccessRes "Channel stats fetched successfully"
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	channelID := c.Query("channelId")
	if channelID == "" {
		channelID, _ = c.Locals(middlewares.TokenUserID).(string)
	}

	stats, err := h.DashboardUseCase.Stats(c.UserContext(), channelID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

// Videos list the requester's channel videos
// @Summary Get channel videos
// @Description All videos owned by the channel, newest first
// @Tags Dashboard
// @Produce json
// @Param channelId query string false "Channel ID, defaults to the requester"
// @Success 200 {object} SuccessRes "Channel videos fetched successfully"
// @Router /api/v1/dashboard/videos [get]
func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	channelID := c.Query("channelId")
	if channelID == "" {
		channelID, _ = c.Locals(middlewares.TokenUserID).(string)
	}

	videos, err := h.DashboardUseCase.Videos(c.UserContext(), channelID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}
