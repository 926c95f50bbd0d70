package handlers

import (
	"net/http"

	"gigboard_backend/internal/services"
	"gigboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stats := rg.Group("/stats")
	{
		stats.GET("", h.GetPlatformStats)
		stats.GET("/recent-activity", h.GetRecentActivity)
		stats.POST("/track-visit", h.TrackVisit)
		stats.POST("/track-download", h.TrackDownload)
	}
}

func (h *StatsHandler) GetPlatformStats(c *gin.Context) {
	resp, err := h.statsService.GetPlatformStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) GetRecentActivity(c *gin.Context) {
	items, err := h.statsService.GetRecentActivity()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *StatsHandler) TrackVisit(c *gin.Context) {
	var req dto.TrackMetricRequest
	// An empty body still counts as a visit from an unknown platform.
	_ = c.ShouldBind(&req)

	if err := h.statsService.TrackVisit(req.Platform); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StatsHandler) TrackDownload(c *gin.Context) {
	var req dto.TrackMetricRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.statsService.TrackDownload(req.Platform); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
